package binstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"beervault/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateBin(t *testing.T) {
	var gotMethod, gotKey, gotName string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotKey = r.Header.Get("X-Master-Key")
		gotName = r.Header.Get("X-Bin-Name")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"metadata":{"id":"bin123"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	id, err := c.CreateBin(context.Background(), "BeerVault-Entries", []string{"x"})
	require.NoError(t, err)

	assert.Equal(t, "bin123", id)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "BeerVault-Entries", gotName)
	assert.JSONEq(t, `["x"]`, string(gotBody))
}

func TestClient_CreateBin_NoID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"metadata":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.CreateBin(context.Background(), "n", nil)
	require.Error(t, err)
}

func TestClient_ReadBin(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"record":[{"id":"e1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	var out []map[string]any
	require.NoError(t, c.ReadBin(context.Background(), "bin123", &out))

	assert.Equal(t, "/bin123/latest", gotPath)
	require.Len(t, out, 1)
	assert.Equal(t, "e1", out[0]["id"])
}

func TestClient_UpdateBin(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	require.NoError(t, c.UpdateBin(context.Background(), "bin123", map[string]int{"n": 1}))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/bin123", gotPath)
	assert.JSONEq(t, `{"n":1}`, string(gotBody))
}

func TestClient_Non2xxIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key")
	var out json.RawMessage
	err := c.ReadBin(context.Background(), "bin123", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUnavailable))
}

func TestClient_UnreachableIsUnavailable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "key") // nothing listens here
	err := c.UpdateBin(context.Background(), "bin123", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUnavailable))
}
