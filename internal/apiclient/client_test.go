package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c, &hits
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, domain.ErrConfig)

	_, err = New("not a url")
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestGetWithoutCredentialSkipsNetwork(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[]}`))
	})

	_, err := c.Get(context.Background(), "api/admin/getAllUsers", nil)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestGetAttachesBearerAndQuery(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/adminWork-category", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{"data":[{"_id":"c1"}],"total":11}`))
	})

	ctx := WithCredential(context.Background(), "tok-1")
	body, err := c.Get(ctx, "api/adminWork-category", url.Values{"page": {"2"}})

	require.NoError(t, err)
	assert.Equal(t, int64(11), body.Get("total").Int())
	assert.Equal(t, "c1", body.Get("data.0._id").String())
}

func TestSessionMessagesBecomeUnauthorized(t *testing.T) {
	for _, msg := range []string{
		"Not authorized, token failed",
		"Session expired or logged in on another device",
		"Un-Authorized, You are not authorized to access this route.",
	} {
		t.Run(msg, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"message":"` + msg + `"}`))
			})

			_, err := c.Get(WithCredential(context.Background(), "tok"), "api/x", nil)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestStatus401IsUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Get(WithCredential(context.Background(), "tok"), "api/x", nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOtherFailuresCarryServerMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"User not found"}`))
	})

	_, err := c.Send(WithCredential(context.Background(), "tok"), http.MethodPatch, "api/admin/updateUserStatus", map[string]any{"userId": "u1"})

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "User not found", apiErr.Message)
	assert.False(t, domain.IsAuth(err))
}

func TestSendEncodesJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"userId":"u1","active":false}`, string(b))
		w.Write([]byte(`{"success":true}`))
	})

	body, err := c.Send(WithCredential(context.Background(), "tok"), http.MethodPatch, "api/admin/updateUserStatus",
		map[string]any{"userId": "u1", "active": false})
	require.NoError(t, err)
	assert.True(t, body.Get("success").Bool())
}

func TestSendPublicNeedsNoCredential(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"abc"}`))
	})

	body, err := c.SendPublic(context.Background(), http.MethodPost, "api/admin/login", map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "abc", body.Get("token").String())
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestPublicRejectionKeepsServerMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	})

	_, err := c.SendPublic(context.Background(), http.MethodPost, "api/admin/login", map[string]string{"email": "a@b.c"})
	require.Error(t, err)
	assert.False(t, domain.IsAuth(err))
	assert.Equal(t, "Invalid email or password", domain.Message(err, ""))
}

func TestSendMultipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "Plumbing", r.FormValue("name"))
		f, hdr, err := r.FormFile("image")
		if assert.NoError(t, err) {
			defer f.Close()
			assert.Equal(t, "pipe.png", hdr.Filename)
		}
		w.Write([]byte(`{"success":true}`))
	})

	ctx := WithCredential(context.Background(), "tok")
	_, err := c.SendMultipart(ctx, http.MethodPost, "api/work-category",
		map[string]string{"name": "Plumbing"},
		Upload{Field: "image", Filename: "pipe.png", Body: strings.NewReader("png-bytes")})
	require.NoError(t, err)
}

func TestCustomPolicyRunsAfterSession(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"maintenance"}`))
	})
	errMaintenance := errors.New("maintenance")
	WithPolicy(func(resp *Response) error {
		if resp.Message() == "maintenance" {
			return errMaintenance
		}
		return nil
	})(c)

	_, err := c.Get(WithCredential(context.Background(), "tok"), "api/x", nil)
	assert.ErrorIs(t, err, errMaintenance)
}
