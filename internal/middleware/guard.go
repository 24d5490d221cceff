package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/session"
	"github.com/nfrund/hireboard/internal/view"
)

// CredentialKey is the echo context key of the session.Credential.
const CredentialKey = "credential"

// SignInPath is where the guard sends signed-out admins.
const SignInPath = "/signin"

// SessionExpired is shown on the sign-in page after the API rejected a credential.
const SessionExpired = "Your session has expired. Please sign in again."

// Teardowner drops the server-side state of a session.
type Teardowner interface {
	Teardown(sid string)
}

// Guard protects the console routes. Without a stored credential the
// request never reaches the handler. With one, the credential is attached to
// the request context for the API client; if the handler then reports that
// the API rejected it, the credential is purged, the admin's views are torn
// down, and the browser is sent to sign in. Nothing is rendered in the
// console itself.
func Guard(spaces Teardowner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred, ok := session.Load(c)
			if !ok {
				return view.Redirect(c, SignInPath)
			}

			c.Set(CredentialKey, cred)
			ctx := apiclient.WithCredential(c.Request().Context(), cred.Token)
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err == nil || !domain.IsAuth(err) {
				return err
			}

			FromContext(ctx).Info("credential rejected by api, signing out", "error", err)
			if perr := session.Purge(c); perr != nil {
				FromContext(ctx).Warn("purge session", "error", perr)
			}
			spaces.Teardown(cred.SID)
			view.SetFlashError(c, SessionExpired)
			return view.Redirect(c, SignInPath)
		}
	}
}

// CredentialFrom returns the credential set by Guard.
func CredentialFrom(c echo.Context) (session.Credential, bool) {
	cred, ok := c.Get(CredentialKey).(session.Credential)
	return cred, ok
}
