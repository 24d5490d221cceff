package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/middleware"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/session"
	"github.com/nfrund/hireboard/internal/view"
	"github.com/nfrund/hireboard/web/src/templates/layouts"
	"github.com/nfrund/hireboard/web/src/templates/pages"
)

// HomePath is where a signed-in admin lands.
const HomePath = "/admin/dashboard"

// AuthHandler signs admins in and out.
type AuthHandler struct {
	api    resources.PublicSender
	spaces middleware.Teardowner
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(api resources.PublicSender, spaces middleware.Teardowner) *AuthHandler {
	return &AuthHandler{api: api, spaces: spaces}
}

// SignInGet renders the sign-in form, or skips it when already signed in.
func (h *AuthHandler) SignInGet(c echo.Context) error {
	if _, ok := session.Load(c); ok {
		return c.Redirect(http.StatusSeeOther, HomePath)
	}
	return h.form(c, http.StatusOK, "", view.GetFlashData(c))
}

// SignInPost exchanges the submitted credentials for a token.
func (h *AuthHandler) SignInPost(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return h.form(c, http.StatusBadRequest, "", view.FlashData{Error: []string{"Invalid form submission."}})
	}
	if err := c.Validate(&req); err != nil {
		return h.form(c, http.StatusUnprocessableEntity, req.Email, view.FlashData{Error: []string{invalid(err)}})
	}

	ctx := c.Request().Context()
	token, err := resources.SignIn(ctx, h.api, req.Email, req.Password)
	if err != nil {
		middleware.FromContext(ctx).Info("sign-in rejected", "email", req.Email, "error", err)
		return h.form(c, http.StatusUnauthorized, req.Email, view.FlashData{Error: []string{signInMessage(err)}})
	}

	if _, err := session.Store(c, token, req.Email); err != nil {
		middleware.FromContext(ctx).Error("store credential", "error", err)
		return h.form(c, http.StatusInternalServerError, req.Email, view.FlashData{Error: []string{"Could not start your session."}})
	}
	view.SetFlashSuccess(c, "Signed in successfully.")
	return c.Redirect(http.StatusSeeOther, HomePath)
}

// SignOut drops the credential and everything loaded for it.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if cred, ok := session.Load(c); ok {
		h.spaces.Teardown(cred.SID)
	}
	if err := session.Purge(c); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("purge session", "error", err)
	}
	view.SetFlashSuccess(c, "You have been signed out.")
	return view.Redirect(c, middleware.SignInPath)
}

func (h *AuthHandler) form(c echo.Context, status int, email string, fl view.FlashData) error {
	return c.Render(status, "", layouts.Bare("Sign in", fl, view.Templ(pages.SignIn(email))))
}

func signInMessage(err error) string {
	if errors.Is(err, domain.ErrBadShape) {
		return "The server returned an unexpected response."
	}
	return domain.Message(err, "Sign-in failed. Please try again.")
}
