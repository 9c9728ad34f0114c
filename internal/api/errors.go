package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/grossup"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	writeJSON(w, status, errorResponse{Error: errCode, ErrorDescription: errDesc})
}

// statusFor maps engine errors onto a status and an error code. Anything that
// is not a known input problem is an internal error.
func statusFor(err error) (int, string) {
	var solverErr *grossup.SolverError
	switch {
	case errors.Is(err, domain.ErrNegativeAmount):
		return http.StatusBadRequest, "negative_amount"
	case errors.Is(err, domain.ErrDeclarationNotFound):
		return http.StatusNotFound, "declaration_not_found"
	case errors.As(err, &solverErr) && solverErr.Operation == "validate_request":
		return http.StatusBadRequest, "invalid_request"
	case errors.As(err, &solverErr) && solverErr.Operation == "bracket_target":
		return http.StatusUnprocessableEntity, "target_out_of_range"
	}
	return http.StatusInternalServerError, "internal_error"
}
