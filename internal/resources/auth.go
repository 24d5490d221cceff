package resources

import (
	"context"
	"net/http"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/tidwall/gjson"
)

const loginEndpoint = "api/admin/login"

// PublicSender sends requests that need no credential.
type PublicSender interface {
	SendPublic(ctx context.Context, method, path string, payload any) (gjson.Result, error)
}

// SignIn exchanges admin credentials for a bearer token.
func SignIn(ctx context.Context, api PublicSender, email, password string) (string, error) {
	body, err := api.SendPublic(ctx, http.MethodPost, loginEndpoint, map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}
	for _, path := range []string{"token", "data.token"} {
		if t := body.Get(path); t.Type == gjson.String && t.Str != "" {
			return t.Str, nil
		}
	}
	msg := body.Get("message").String()
	if msg == "" {
		return "", domain.ErrBadShape
	}
	return "", &domain.APIError{Status: http.StatusOK, Message: msg}
}
