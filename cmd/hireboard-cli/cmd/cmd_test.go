package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListUsersPrintsRequestedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/getAllUsers", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[
			{"_id":"u1","full_name":"Asha Rao","active":true},
			{"_id":"u2","full_name":"Vikram Singh","active":false}
		]}`))
	}))
	defer srv.Close()

	out, err := run(t, "list", "users", "--api", srv.URL, "--token", "tok-1", "--page", "2", "--size", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Vikram Singh")
	assert.NotContains(t, out, "Asha Rao")
	assert.Contains(t, out, "page 2 of 2 (2 items)")
}

func TestListRejectsUnknownResource(t *testing.T) {
	_, err := run(t, "list", "restaurants", "--api", "http://127.0.0.1:1", "--token", "tok-1", "--page", "1", "--size", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hireboard-cli dev")
}
