package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_DefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, 0, w.BytesWritten())
}

func TestWriteHeader_RecordsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.StatusCode())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteHeader_IgnoresSecondCall(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, w.StatusCode())
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestWrite_ImplicitHeaderAndByteCount(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write([]byte("study notes"))
	require.NoError(t, err)

	assert.Equal(t, 11, n)
	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, 11, w.BytesWritten())

	_, err = w.Write([]byte(" appended"))
	require.NoError(t, err)
	assert.Equal(t, 20, w.BytesWritten())
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	assert.Equal(t, http.ResponseWriter(rec), w.Unwrap())
}
