package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchPatients returns the patients matching the optional search term.
func (c *Client) SearchPatients(ctx context.Context, term string) ([]Patient, error) {
	values := url.Values{}
	if strings.TrimSpace(term) != "" {
		values.Set("search", strings.TrimSpace(term))
	}

	var patients []Patient
	if err := c.do(ctx, http.MethodGet, queryPath("/patients", values), nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// CreatePatient registers a patient and returns the created record.
func (c *Client) CreatePatient(ctx context.Context, payload CreatePatientPayload) (*Patient, error) {
	var patient Patient
	if err := c.do(ctx, http.MethodPost, "/patients", payload, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetPatientByID returns the patient, or (nil, nil) when it does not exist.
func (c *Client) GetPatientByID(ctx context.Context, id int64) (*Patient, error) {
	var patient Patient
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/patients/%d", id), nil, &patient)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// ConsultationsByPatient returns up to limit consultations, newest-first.
func (c *Client) ConsultationsByPatient(ctx context.Context, patientID int64, limit int) ([]Consultation, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	path := queryPath(fmt.Sprintf("/patients/%d/consultations", patientID), values)
	var consultations []Consultation
	if err := c.do(ctx, http.MethodGet, path, nil, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

// CreateConsultation registers a consultation for an existing patient.
func (c *Client) CreateConsultation(ctx context.Context, payload CreateConsultationPayload) (*Consultation, error) {
	var consultation Consultation
	if err := c.do(ctx, http.MethodPost, "/consultations", payload, &consultation); err != nil {
		return nil, err
	}
	return &consultation, nil
}

// ConsultationHistory returns the date-bounded global history. Both bounds
// are optional yyyy-MM-dd texts.
func (c *Client) ConsultationHistory(ctx context.Context, startDate, endDate string) ([]HistoryEntry, error) {
	values := url.Values{}
	if strings.TrimSpace(startDate) != "" {
		values.Set("startDate", startDate)
	}
	if strings.TrimSpace(endDate) != "" {
		values.Set("endDate", endDate)
	}

	var entries []HistoryEntry
	if err := c.do(ctx, http.MethodGet, queryPath("/consultations", values), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Login validates credentials. The returned result carries the verdict
// message; a denied login surfaces as an *APIError with the server message.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    strings.TrimSpace(email),
		"password": password,
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Medics returns medics matching the optional term.
func (c *Client) Medics(ctx context.Context, term string, includeInactive bool) ([]Medic, error) {
	values := url.Values{}
	if strings.TrimSpace(term) != "" {
		values.Set("search", strings.TrimSpace(term))
	}
	if includeInactive {
		values.Set("includeInactive", "true")
	}

	var medics []Medic
	if err := c.do(ctx, http.MethodGet, queryPath("/medics", values), nil, &medics); err != nil {
		return nil, err
	}
	return medics, nil
}

// CreateMedic registers a medic.
func (c *Client) CreateMedic(ctx context.Context, payload MedicPayload) (*Medic, error) {
	var medic Medic
	if err := c.do(ctx, http.MethodPost, "/medics", payload, &medic); err != nil {
		return nil, err
	}
	return &medic, nil
}

// UpdateMedic rewrites a medic's details.
func (c *Client) UpdateMedic(ctx context.Context, id int64, payload MedicPayload) (*Medic, error) {
	var medic Medic
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/medics/%d", id), payload, &medic); err != nil {
		return nil, err
	}
	return &medic, nil
}

// DisableMedic deactivates a medic (soft delete).
func (c *Client) DisableMedic(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/medics/%d", id), nil, nil)
}

// Users returns login accounts matching the optional term.
func (c *Client) Users(ctx context.Context, term string, includeInactive bool) ([]UserAccount, error) {
	values := url.Values{}
	if strings.TrimSpace(term) != "" {
		values.Set("search", strings.TrimSpace(term))
	}
	if includeInactive {
		values.Set("includeInactive", "true")
	}

	var accounts []UserAccount
	if err := c.do(ctx, http.MethodGet, queryPath("/users", values), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateUser registers a login account.
func (c *Client) CreateUser(ctx context.Context, payload UserPayload) (*UserAccount, error) {
	var account UserAccount
	if err := c.do(ctx, http.MethodPost, "/users", payload, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateUser rewrites an account. A blank password keeps the current one.
func (c *Client) UpdateUser(ctx context.Context, id int64, payload UserPayload) (*UserAccount, error) {
	var account UserAccount
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), payload, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DisableUser deactivates a login account (soft delete).
func (c *Client) DisableUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
