package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-very-secret-key-for-testing-!"

// withSession runs fn inside the session middleware for a request carrying
// cookies and returns the recorder.
func withSession(t *testing.T, store sessions.Store, fn func(c echo.Context), cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	h := echosession.Middleware(store)(func(c echo.Context) error {
		fn(c)
		return nil
	})
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestStoreLoadPurge(t *testing.T) {
	store := sessions.NewCookieStore([]byte(testSecret))

	withSession(t, store, func(c echo.Context) {
		_, ok := Load(c)
		assert.False(t, ok)
	})

	var cred Credential
	rec := withSession(t, store, func(c echo.Context) {
		var err error
		cred, err = Store(c, "tok-1", "admin@example.com")
		require.NoError(t, err)
	})
	assert.NotEmpty(t, cred.SID)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	withSession(t, store, func(c echo.Context) {
		got, ok := Load(c)
		require.True(t, ok)
		assert.Equal(t, cred, got)
	}, cookies...)

	rec = withSession(t, store, func(c echo.Context) {
		require.NoError(t, Purge(c))
	}, cookies...)
	purged := rec.Result().Cookies()
	require.NotEmpty(t, purged)
	assert.Less(t, purged[0].MaxAge, 0)
}

func TestSignInRotatesWorkspaceID(t *testing.T) {
	store := sessions.NewCookieStore([]byte(testSecret))
	var first, second Credential
	withSession(t, store, func(c echo.Context) { first, _ = Store(c, "a", "") })
	withSession(t, store, func(c echo.Context) { second, _ = Store(c, "a", "") })
	assert.NotEqual(t, first.SID, second.SID)
}
