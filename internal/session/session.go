// Package session persists the admin's bearer credential in a signed cookie.
package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Name is the cookie session holding the credential.
	Name = "admin-session"

	keyToken = "token"
	keySID   = "sid"
	keyEmail = "email"
)

// Credential is what a signed-in admin carries.
type Credential struct {
	Token string
	// SID identifies the admin's workspace on this server.
	SID   string
	Email string
}

// Options returns the cookie options used for the admin session.
func Options(secure bool, maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Load returns the stored credential, if any.
func Load(c echo.Context) (Credential, bool) {
	sess, err := echosession.Get(Name, c)
	if err != nil {
		return Credential{}, false
	}
	token, _ := sess.Values[keyToken].(string)
	sid, _ := sess.Values[keySID].(string)
	if token == "" || sid == "" {
		return Credential{}, false
	}
	email, _ := sess.Values[keyEmail].(string)
	return Credential{Token: token, SID: sid, Email: email}, true
}

// Store saves token under a fresh workspace id and returns the credential.
func Store(c echo.Context, token, email string) (Credential, error) {
	// An undecodable cookie still yields a fresh session to overwrite it.
	sess, err := echosession.Get(Name, c)
	if sess == nil {
		return Credential{}, err
	}
	cred := Credential{Token: token, SID: uuid.NewString(), Email: email}
	sess.Values[keyToken] = cred.Token
	sess.Values[keySID] = cred.SID
	sess.Values[keyEmail] = cred.Email
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return Credential{}, err
	}
	return cred, nil
}

// Purge removes the credential and expires the cookie.
func Purge(c echo.Context) error {
	sess, err := echosession.Get(Name, c)
	if sess == nil {
		return err
	}
	delete(sess.Values, keyToken)
	delete(sess.Values, keySID)
	delete(sess.Values, keyEmail)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
