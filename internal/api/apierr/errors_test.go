package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/gameplayers/internal/model"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantAPI   string
		wantField string
	}{
		{"field error", model.NewFieldError("name", "is required"), http.StatusBadRequest, CodeInvalidField, "name"},
		{"wrapped field error", fmt.Errorf("create: %w", model.NewFieldError("race", "bad")), http.StatusBadRequest, CodeInvalidField, "race"},
		{"invalid player", model.ErrInvalidPlayer, http.StatusBadRequest, CodeInvalidPlayer, ""},
		{"not found", model.ErrPlayerNotFound, http.StatusNotFound, CodePlayerNotFound, ""},
		{"invalid request", NewInvalidRequestError("bad body"), http.StatusBadRequest, CodeInvalidRequest, ""},
		{"route not found", NewNotFoundError(), http.StatusNotFound, CodeNotFound, ""},
		{"unknown", errors.New("redis down"), http.StatusInternalServerError, CodeInternalError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantCode, Status(tt.err))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantAPI, resp.Error.Code)
			assert.Equal(t, tt.wantField, resp.Error.Field)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestInternalErrorsDoNotLeakDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("dial tcp 10.0.0.1:6379: connection refused"))

	assert.NotContains(t, rr.Body.String(), "10.0.0.1")
}
