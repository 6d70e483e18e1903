package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSession struct {
	Subject   string `json:"sub"`
	SessionID string `json:"sid"`
}

func TestCookieHandler(t *testing.T) {
	handler := NewCookieHandler([]byte("test1234test1234test1234test1234"), []byte("test1234test1234"), WithUnsecure(), WithPath("/app"))

	w := httptest.NewRecorder()
	want := testSession{Subject: "user1", SessionID: "sid1"}
	require.NoError(t, handler.SetCookie(w, "session", want))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "/app", cookies[0].Path)
	assert.False(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)

	var got testSession
	require.NoError(t, handler.CheckCookie(cookies[0], &got))
	assert.Equal(t, want, got)

	tampered := *cookies[0]
	tampered.Value = tampered.Value[:len(tampered.Value)-2]
	assert.Error(t, handler.CheckCookie(&tampered, &got))

	w = httptest.NewRecorder()
	handler.DeleteCookie(w, "session")
	deleted := w.Result().Cookies()
	require.Len(t, deleted, 1)
	assert.Equal(t, -1, deleted[0].MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, deleted[0].SameSite)
}

func TestCookieHandler_options(t *testing.T) {
	handler := NewCookieHandler([]byte("test1234test1234test1234test1234"), nil,
		WithDomain("example.com"),
		WithMaxAge(60),
		WithSameSite(http.SameSiteStrictMode),
	)
	w := httptest.NewRecorder()
	require.NoError(t, handler.SetCookie(w, "session", testSession{Subject: "sub"}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "example.com", cookies[0].Domain)
	assert.Equal(t, 60, cookies[0].MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	assert.True(t, cookies[0].Secure)
}

func TestCookieHandler_emptyEncryptKey(t *testing.T) {
	handler := NewCookieHandler([]byte("test1234test1234test1234test1234"), []byte{})
	w := httptest.NewRecorder()
	require.NoError(t, handler.SetCookie(w, "session", testSession{Subject: "sub"}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	var got testSession
	require.NoError(t, handler.CheckCookie(cookies[0], &got))
	assert.Equal(t, "sub", got.Subject)
}
