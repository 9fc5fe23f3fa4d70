package handler

import (
	"encoding/json"
	"net/http"

	apperrors "match-pairs-api/pkg/errors"
)

// errorResponse is the body of every non-2xx response
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Detail: message})
}

// writeAppError maps err to its status code; anything that is not an AppError becomes a 500.
func writeAppError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewUnexpectedError(err)
	}
	writeError(w, appErr.StatusCode, appErr.Message)
}
