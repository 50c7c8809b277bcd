package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every business error. Callers only ever see
// the generic message; detail stays in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResponseJSON writes any payload with the given status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorResponse{Error: message})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}
