package apiclient

import "context"

type credentialKey struct{}

// WithCredential returns a context carrying the admin's bearer token.
// The session guard attaches it once per request; every API call made with
// the derived context is authenticated with it.
func WithCredential(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, credentialKey{}, token)
}

// CredentialFrom returns the bearer token carried by ctx.
func CredentialFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(credentialKey{}).(string)
	return token, ok && token != ""
}
