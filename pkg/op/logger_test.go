package op_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zitadel/logging"

	"github.com/zitadel/endsession/pkg/op"
)

func TestLogMiddleware(t *testing.T) {
	logs := new(bytes.Buffer)
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	var requestLogged bool
	handler := op.LogMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger, ok := logging.FromContext(r.Context())
		require.True(t, ok)
		reqLogger.InfoContext(r.Context(), "handling")
		requestLogged = true
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/end_session?foo=bar", nil))
	require.True(t, requestLogged)

	dec := json.NewDecoder(logs)
	var handling, done map[string]any
	require.NoError(t, dec.Decode(&handling))
	require.NoError(t, dec.Decode(&done))

	assert.Equal(t, "handling", handling["msg"])
	assert.NotEmpty(t, handling["request_id"])
	assert.Equal(t, handling["request_id"], done["request_id"])

	assert.Equal(t, "done", done["msg"])
	assert.Equal(t, map[string]any{"method": "GET", "path": "/end_session"}, done["request"])
	response, ok := done["response"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, http.StatusTeapot, response["status"])
	assert.EqualValues(t, len("short and stout"), response["written"])
}
