package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teardowns []string

func (t *teardowns) Teardown(sid string) { *t = append(*t, sid) }

type guardFixture struct {
	e       *echo.Echo
	cookies []*http.Cookie
	sid     string
	torn    *teardowns
}

func newGuardFixture(t *testing.T, handler echo.HandlerFunc) *guardFixture {
	t.Helper()
	f := &guardFixture{e: echo.New(), torn: &teardowns{}}
	f.e.Use(echosession.Middleware(sessions.NewCookieStore([]byte("guard-test-secret-0123456789abcd"))))
	f.e.POST("/signin", func(c echo.Context) error {
		cred, err := session.Store(c, "tok-1", "admin@example.com")
		if err != nil {
			return err
		}
		f.sid = cred.SID
		return c.NoContent(http.StatusNoContent)
	})
	f.e.GET("/users", handler, Guard(f.torn))

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signin", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	f.cookies = rec.Result().Cookies()
	return f
}

func (f *guardFixture) get(signedIn, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if signedIn {
		for _, c := range f.cookies {
			req.AddCookie(c)
		}
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestGuardRedirectsWithoutCredential(t *testing.T) {
	called := false
	f := newGuardFixture(t, func(c echo.Context) error {
		called = true
		return nil
	})

	rec := f.get(false, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, SignInPath, rec.Header().Get(echo.HeaderLocation))
	assert.False(t, called)
}

func TestGuardAttachesCredential(t *testing.T) {
	f := newGuardFixture(t, func(c echo.Context) error {
		token, ok := apiclient.CredentialFrom(c.Request().Context())
		if !ok {
			return fmt.Errorf("no credential")
		}
		return c.String(http.StatusOK, token)
	})

	rec := f.get(true, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-1", rec.Body.String())
	assert.Empty(t, *f.torn)
}

func TestGuardPurgesOnRejectedCredential(t *testing.T) {
	f := newGuardFixture(t, func(c echo.Context) error {
		return fmt.Errorf("load api/admin/getAllServiceProvider: %w", domain.ErrUnauthorized)
	})

	rec := f.get(true, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SignInPath, rec.Header().Get("HX-Redirect"))
	assert.Empty(t, rec.Body.String(), "no error text is rendered")
	assert.Equal(t, []string{f.sid}, []string(*f.torn))

	var expired bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.Name && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "session cookie is expired")
}

func TestGuardPassesOtherErrorsThrough(t *testing.T) {
	f := newGuardFixture(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	rec := f.get(true, false)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, *f.torn)
}
