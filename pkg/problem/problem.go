package problem

import (
	"encoding/json"
	"net/http"
	"time"
)

const ContentType = "application/json"

// Problem is the uniform error body returned by the API.
type Problem struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// New creates a Problem for status with the given client-facing message.
func New(status int, message string) *Problem {
	return &Problem{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	}
}

// Write writes the problem to the response, taking the path from r.
func (p *Problem) Write(w http.ResponseWriter, r *http.Request) {
	if r != nil && r.URL != nil {
		p.Path = r.URL.Path
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

// Common problem constructors

func BadRequest(message string) *Problem {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Problem {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Problem {
	return New(http.StatusConflict, message)
}

func InternalError(message string) *Problem {
	return New(http.StatusInternalServerError, message)
}
