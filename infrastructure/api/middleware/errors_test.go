package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clerkd/clerkd/internal/domain"
)

func writeAndDecode(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	WriteError(w, req, err, nil)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestWriteErrorValidation(t *testing.T) {
	status, body := writeAndDecode(t, fmt.Errorf("%w: query parameter %q is required", domain.ErrValidation, "q"))

	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body.Error, "required")
	require.Empty(t, body.Details)
}

func TestWriteErrorNotFound(t *testing.T) {
	status, body := writeAndDecode(t, fmt.Errorf("%w: item x", domain.ErrNotFound))

	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Not found", body.Error)
}

func TestWriteErrorCatalogUnreachable(t *testing.T) {
	status, body := writeAndDecode(t, fmt.Errorf("%w: dial tcp: connection refused", domain.ErrCatalogUnreachable))

	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "could not reach catalog service", body.Error)
	require.Empty(t, body.Details)
}

func TestWriteErrorGenericCarriesDetails(t *testing.T) {
	status, body := writeAndDecode(t, errors.New("model overloaded"))

	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "failed to process query", body.Error)
	require.Equal(t, "model overloaded", body.Details)
}

func TestWriteErrorMalformedCompletionIsGeneric(t *testing.T) {
	status, body := writeAndDecode(t, fmt.Errorf("%w: response contains no text content", domain.ErrMalformedCompletion))

	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "failed to process query", body.Error)
	require.Contains(t, body.Details, "no text content")
}

func TestWriteJSONSetsContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
