package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_SearchPatients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/patients" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "ana" {
			t.Errorf("search = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Patient{{ID: 7, NombreCompleto: "Ana García"}})
	}))
	defer srv.Close()

	patients, err := New(srv.URL, nil).SearchPatients(context.Background(), "  ana  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 1 || patients[0].ID != 7 {
		t.Fatalf("unexpected patients %+v", patients)
	}
}

func TestClient_APIErrorFromMessageEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Ya existe un paciente con ese identificador."}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).CreatePatient(context.Background(), CreatePatientPayload{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Ya existe un paciente con ese identificador." {
		t.Errorf("message = %q", apiErr.Message)
	}
	if apiErr.IsNotFound() {
		t.Error("duplicate message must not read as not-found")
	}
}

func TestClient_APIErrorFromErrorEnvelope(t *testing.T) {
	// The todo endpoints use {"error": ...} instead of {"message": ...}.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"El título es obligatorio"}`))
	}))
	defer srv.Close()

	var out any
	err := New(srv.URL, nil).do(context.Background(), http.MethodPost, "/todos", map[string]string{}, &out)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "El título es obligatorio" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestClient_APIErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("panic at the disco"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).SearchPatients(context.Background(), "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Ocurrió un error al procesar la solicitud." {
		t.Errorf("fallback message = %q", apiErr.Message)
	}
}

func TestClient_ConnectivityError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	_, err := New(srv.URL, nil).SearchPatients(context.Background(), "")
	var connErr *ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectivityError, got %T: %v", err, err)
	}
	if connErr.Error() != "No se pudo establecer comunicación con el servicio. Intenta nuevamente más tarde." {
		t.Errorf("message = %q", connErr.Error())
	}
	if connErr.Unwrap() == nil {
		t.Error("cause must be preserved")
	}
}

func TestClient_GetPatientByIDNotFoundIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Paciente no encontrado."}`))
	}))
	defer srv.Close()

	p, err := New(srv.URL, nil).GetPatientByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil patient, got %+v", p)
	}
}

func TestClient_DisableMedicNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL, nil).DisableMedic(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_LoginDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ana@clinica.mx" {
			t.Errorf("email not trimmed: %q", body["email"])
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Credenciales inválidas."}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Login(context.Background(), "  ana@clinica.mx  ", "mal")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Credenciales inválidas." {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestClient_ConsultationHistoryQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("startDate") != "2024-01-01" || q.Get("endDate") != "2024-12-31" {
			t.Errorf("unexpected query %v", q)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	entries, err := New(srv.URL, nil).ConsultationHistory(context.Background(), "2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("unexpected entries %+v", entries)
	}
}
