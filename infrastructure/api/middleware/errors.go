package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/seetharamanm/layercover/application/service"
	"github.com/seetharamanm/layercover/domain/coverage"
	"github.com/seetharamanm/layercover/infrastructure/tabular"
)

// Error codes the presentation layer switches its empty states on.
const (
	CodeMissingColumns = "missing_columns"
	CodeEmptyDataset   = "empty_dataset"
	CodeNoDataset      = "no_dataset"
	CodeBadRequest     = "bad_request"
	CodeInternal       = "internal_error"
)

// APIError is one error object in an error response.
type APIError struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// ErrorResponse is the error response wrapper.
type ErrorResponse struct {
	Errors []APIError `json:"errors"`
}

// WriteError maps a domain error onto an HTTP status and machine-readable
// code and writes the JSON error response. The code field is load-bearing:
// the UI shows a different empty state for "nothing uploaded yet" than for
// "upload had no valid rows".
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	code := CodeInternal
	title := "Internal Server Error"

	switch {
	case errors.Is(err, tabular.ErrMissingColumns):
		status = http.StatusBadRequest
		code = CodeMissingColumns
		title = "Missing Columns"
	case errors.Is(err, coverage.ErrEmptyDataset):
		status = http.StatusBadRequest
		code = CodeEmptyDataset
		title = "Empty Dataset"
	case errors.Is(err, service.ErrNoDataset):
		status = http.StatusNotFound
		code = CodeNoDataset
		title = "No Dataset Loaded"
	}

	if logger != nil {
		logger.Error("request error",
			"status", status,
			"code", code,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	resp := ErrorResponse{
		Errors: []APIError{
			{
				Status: http.StatusText(status),
				Code:   code,
				Title:  title,
				Detail: err.Error(),
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteBadRequest writes a 400 response for malformed request payloads.
func WriteBadRequest(w http.ResponseWriter, detail string) {
	resp := ErrorResponse{
		Errors: []APIError{
			{
				Status: http.StatusText(http.StatusBadRequest),
				Code:   CodeBadRequest,
				Title:  "Bad Request",
				Detail: detail,
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
