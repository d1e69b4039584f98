package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusCreated, map[string]string{"summary": "done"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "done", body["summary"])
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		err         error
		wantMessage string
	}{
		{
			name:        "validation error passes through",
			code:        http.StatusBadRequest,
			err:         errors.New("tier is invalid"),
			wantMessage: "tier is invalid",
		},
		{
			name:        "unknown tier passes through",
			code:        http.StatusBadRequest,
			err:         errors.New("unknown summary length tier"),
			wantMessage: "unknown summary length tier",
		},
		{
			name:        "extraction failure passes through",
			code:        http.StatusUnprocessableEntity,
			err:         errors.New("no extractable text found in document"),
			wantMessage: "no extractable text found in document",
		},
		{
			name:        "internal detail is masked",
			code:        http.StatusBadGateway,
			err:         errors.New("anthropic: connection reset by peer"),
			wantMessage: "internal server error",
		},
		{
			name:        "5xx always masked even when message looks safe",
			code:        http.StatusInternalServerError,
			err:         errors.New("text is required"),
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)

			assert.Equal(t, tt.code, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["error"])
		})
	}
}

func TestSafeError_NilError(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusBadRequest, nil)

	assert.Empty(t, rec.Body.String())
}
