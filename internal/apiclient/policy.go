package apiclient

import (
	"net/http"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/tidwall/gjson"
)

// Response is what a Policy sees of every API reply.
type Response struct {
	Status int
	Body   gjson.Result
}

// Message returns the server-supplied "message" field, if any.
func (r *Response) Message() string {
	return r.Body.Get("message").String()
}

// Policy inspects every response before its caller does. Returning a
// non-nil error fails the call with that error.
type Policy func(resp *Response) error

// sessionMessages are the texts the marketplace API uses when a bearer token
// is invalid, expired, or superseded by a login on another device.
var sessionMessages = map[string]struct{}{
	"Not authorized, token failed":                                {},
	"Session expired or logged in on another device":              {},
	"Un-Authorized, You are not authorized to access this route.": {},
}

// SessionPolicy turns credential rejections into domain.ErrUnauthorized so
// that the guard is the only place reacting to them.
func SessionPolicy(resp *Response) error {
	if resp.Status == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	if _, ok := sessionMessages[resp.Message()]; ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// IsSessionMessage reports whether msg is one of the API's session-failure texts.
func IsSessionMessage(msg string) bool {
	_, ok := sessionMessages[msg]
	return ok
}
