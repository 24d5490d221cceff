// Package resources maps the marketplace API's collections to display rows
// and wraps its write endpoints.
package resources

import (
	"context"
	"net/url"

	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/nfrund/hireboard/internal/domain"
	"github.com/tidwall/gjson"
)

// API is the subset of *apiclient.Client the resources use.
type API interface {
	Get(ctx context.Context, path string, query url.Values) (gjson.Result, error)
	Send(ctx context.Context, method, path string, payload any) (gjson.Result, error)
	SendMultipart(ctx context.Context, method, path string, fields map[string]string, files ...apiclient.Upload) (gjson.Result, error)
	BaseURL() string
}

var _ API = (*apiclient.Client)(nil)

// requireSuccess turns a 2xx body without "success": true into an error
// carrying the body's message.
func requireSuccess(body gjson.Result) error {
	if body.Get("success").Bool() {
		return nil
	}
	return &domain.APIError{Status: 200, Message: body.Get("message").String()}
}

// idOf is the API's record id.
func idOf(item gjson.Result) string {
	return item.Get("_id").String()
}
