package oauthmodel

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes surfaced to API callers and, for
// browser-redirect flows, as query-string error codes on the frontend
// error route.
const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeInvalidGrant        = "invalid_grant"
	ErrorCodeInvalidState        = "invalid_state"
	ErrorCodeTokenExchangeFailed = "token_exchange_failed"
	ErrorCodeUnauthorized        = "unauthorized"
	ErrorCodeInternalError       = "internal_error"
)

// ErrorResponse is the structured JSON error body for API callers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a structured JSON error response
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// WriteJSON writes v as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
