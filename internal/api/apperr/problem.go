// Package apperr writes RFC 7807 problem responses.
package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"` // e.g. "required", "invalid", "too_long"
	Message string `json:"message"`
}

type Problem struct {
	Type        string       `json:"type,omitempty"`
	Title       string       `json:"title"`
	Status      int          `json:"status"`
	Detail      string       `json:"detail,omitempty"`
	Instance    string       `json:"instance,omitempty"`
	RequestID   string       `json:"request_id,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
	Retryable   bool         `json:"retryable,omitempty"`
}

func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.Path
	}
	if p.RequestID == "" && r != nil {
		p.RequestID = r.Header.Get("X-Request-ID")
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func WriteStatus(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	Write(w, r, Problem{Status: status, Title: title, Detail: detail})
}

// DecodeError maps a request body decoding failure to a problem.
// Bodies cut off by http.MaxBytesReader become 413.
func DecodeError(err error) Problem {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return Problem{Status: http.StatusRequestEntityTooLarge, Title: "Payload Too Large", Detail: "request body exceeds the configured limit"}
	}
	return Problem{Status: http.StatusBadRequest, Title: "Bad Request", Detail: "invalid request body: " + err.Error()}
}
