package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Envelope is the body of every /api response.
type Envelope struct {
	Code    string `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// WorkdayData is the payload of a successful lookup.
type WorkdayData struct {
	IsWorkday bool `json:"isWorkday"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Entries  int    `json:"entries,omitempty"`
	Year     int    `json:"year,omitempty"`
	Digest   string `json:"digest,omitempty"`
	LoadedAt string `json:"loadedAt,omitempty"`
}

// Messages used in error envelopes.
const (
	MessageOK               = "OK"
	MessageIncorrectDate    = "incorrect date"
	MessageIncorrectParam   = "incorrect request parameter"
	MessageNotFound         = "Not Found"
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageUnavailable      = "calendar not loaded"
	MessageInternalError    = "internal server error"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeResult(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		Code:    strconv.Itoa(http.StatusOK),
		Success: true,
		Message: MessageOK,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{
		Code:    strconv.Itoa(status),
		Success: false,
		Message: message,
	})
}
