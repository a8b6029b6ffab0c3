package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seetharamanm/layercover/application/service"
	"github.com/seetharamanm/layercover/domain/coverage"
	"github.com/seetharamanm/layercover/infrastructure/tabular"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing columns",
			err:        tabular.NewMissingColumnsError("Item (or Layer)"),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeMissingColumns,
		},
		{
			name:       "empty dataset",
			err:        coverage.ErrEmptyDataset,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmptyDataset,
		},
		{
			name:       "wrapped empty dataset",
			err:        fmt.Errorf("parsing upload: %w", coverage.ErrEmptyDataset),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmptyDataset,
		},
		{
			name:       "no dataset loaded",
			err:        service.ErrNoDataset,
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNoDataset,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/current", nil)

			WriteError(rec, req, tt.err, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.wantCode, resp.Errors[0].Code)
			assert.Contains(t, resp.Errors[0].Detail, tt.err.Error())
		})
	}
}

func TestWriteBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteBadRequest(rec, "request body must be CSV")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, CodeBadRequest, resp.Errors[0].Code)
	assert.Equal(t, "request body must be CSV", resp.Errors[0].Detail)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
