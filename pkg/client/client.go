// Package client is a typed client for the clinic API. It wraps every
// endpoint, normalizes error bodies into a single error type, and exposes
// small in-memory caches for UI consumers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// genericErrorMessage is used when an error response carries no readable body.
const genericErrorMessage = "Ocurrió un error al procesar la solicitud."

// connectivityMessage is used when no response was received at all.
const connectivityMessage = "No se pudo establecer comunicación con el servicio. Intenta nuevamente más tarde."

// APIError is the normalized error for any non-2xx response. Message is the
// server's message/error field, or a generic fallback.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// IsNotFound reports whether the server message indicates a missing entity.
func (e *APIError) IsNotFound() bool {
	return strings.Contains(strings.ToLower(e.Message), "no encontrad")
}

// ConnectivityError is raised when the service could not be reached at all.
type ConnectivityError struct {
	cause error
}

func (e *ConnectivityError) Error() string { return connectivityMessage }
func (e *ConnectivityError) Unwrap() error { return e.cause }

// Client talks to the clinic API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL. httpClient may be nil, in
// which case a default client with a request timeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// apiErrorBody covers both error envelopes the backend produces.
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs a request and decodes the JSON response into out. A nil out
// (or a 204 response) short-circuits body decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectivityError{cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := genericErrorMessage
		var errBody apiErrorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			if errBody.Message != "" {
				message = errBody.Message
			} else if errBody.Error != "" {
				message = errBody.Error
			}
		}
		return &APIError{Message: message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func queryPath(base string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}
