package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderClientSend(t *testing.T) {
	var got providerRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"id": "re_123"})
	}))
	defer srv.Close()

	c := NewProviderClient(srv.URL, "secret-key", 0)
	id, err := c.Send(context.Background(), Message{
		From:    "noreply@acme.io",
		To:      "a@b.co",
		Subject: "Hi",
		HTML:    "<html></html>",
		ReplyTo: "support@acme.io",
	})
	require.NoError(t, err)
	assert.Equal(t, "re_123", id)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, []string{"a@b.co"}, got.To)
	assert.Equal(t, "support@acme.io", got.ReplyTo)
}

func TestProviderClientErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid from address"})
	}))
	defer srv.Close()

	c := NewProviderClient(srv.URL, "k", 0)
	_, err := c.Send(context.Background(), Message{To: "a@b.co"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestProviderClientMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewProviderClient(srv.URL, "k", 0)
	_, err := c.Send(context.Background(), Message{To: "a@b.co"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no message id")
}

func TestProviderClientSingleAttempt(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	c := NewProviderClient(srv.URL, "k", 0)
	_, err := c.Send(context.Background(), Message{To: "a@b.co"})
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "the client must never retry a send")
}
