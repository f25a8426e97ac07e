package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusInternalServerError, ErrorBody{Error: "boom"})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"boom"}`, rr.Body.String())
}

func TestWriteJSON_KeepsHTMLCharacters(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string field", ErrorBody{Error: "<a&b>"}, `{"error":"<a&b>"}` + "\n"},
		{"raw message", []json.RawMessage{json.RawMessage(`{"name":"R&D <Night>"}`)}, `[{"name":"R&D <Night>"}]` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteJSON(rr, http.StatusOK, tt.v)
			assert.Equal(t, tt.want, rr.Body.String())
		})
	}
}

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusOK, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"},"error":null}`, rr.Body.String())
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONError(rr, http.StatusNotFound, ErrCodeNotFound, "no such page")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":null,"error":{"code":"not_found","message":"no such page"}}`, rr.Body.String())
}
