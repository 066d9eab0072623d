package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-api/internal/validation"
)

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type validationResponse struct {
	Success bool              `json:"success"`
	Errors  validation.Errors `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondSuccess(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, successResponse{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// respondInvalid writes a 400 with field errors taken from err.
func respondInvalid(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		verrs = validation.Errors{{Field: "body", Message: err.Error()}}
	}
	writeJSON(w, http.StatusBadRequest, validationResponse{Success: false, Errors: verrs})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validation.FromDecodeError(err)
	}
	return nil
}
