package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is the backend's error envelope. Non-2xx responses carry a JSON
// body with an optional "detail" or "message" string.
type Error struct {
	// Status is the HTTP status code of the response.
	Status int
	// Detail is the backend's detail string, when present.
	Detail string
	// Message is the backend's message string, when present.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
	}
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

// Text composes the user-visible error text: detail first, then message,
// then the given fallback.
func (e *Error) Text(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// ErrorText extracts user-visible text from any error returned by the
// bindings. Backend envelopes yield their detail/message; everything else
// (network failures, decode errors) yields the fallback so raw internals
// never reach the operator.
func ErrorText(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Text(fallback)
	}
	return fallback
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// decodeError builds an *Error from a non-2xx response. The body is read
// with a cap; a non-JSON body simply yields an envelope without text.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}
	apiErr.Detail = envelope.Detail
	apiErr.Message = envelope.Message
	return apiErr
}
