package network

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.Header.Get("User-Agent"), "Droid-TestApp/1.0.0")
		assert.Equal(t, "yes", r.Header.Get("X-Custom"))
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	c := NewClient("TestApp")
	body, err := c.Get(context.Background(), server.URL, map[string]string{"X-Custom": "yes"})
	require.NoError(t, err)
	assert.Equal(t, "hello", body)
}

func TestGetServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient("TestApp")
	_, err := c.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var buf [32]byte
		n, _ := r.Body.Read(buf[:])
		assert.Equal(t, "payload", string(buf[:n]))
		w.Write([]byte("created"))
	}))
	defer server.Close()

	c := NewClient("TestApp")
	body, err := c.Post(context.Background(), server.URL, []byte("payload"), nil)
	require.NoError(t, err)
	assert.Equal(t, "created", body)
}

func TestPostJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	type reply struct {
		OK bool `json:"ok"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ada", in.Name)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := NewClient("TestApp")
	var out reply
	require.NoError(t, c.PostJSON(context.Background(), server.URL, payload{Name: "ada"}, &out))
	assert.True(t, out.OK)
}

func TestPostJSONDiscardsResponseWhenOutNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := NewClient("TestApp")
	require.NoError(t, c.PostJSON(context.Background(), server.URL, map[string]string{}, nil))
}

func TestIsConnected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
	}))
	defer server.Close()

	c := NewClient("TestApp", WithProbeURL(server.URL))
	assert.True(t, c.IsConnected(context.Background()))

	server.Close()
	assert.False(t, c.IsConnected(context.Background()))
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c := NewClient("TestApp")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Get(ctx, server.URL, nil)
	require.Error(t, err)
}
