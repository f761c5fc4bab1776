package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ResolveNames(t *testing.T) {
	t.Run("resolves known ids and omits unknown ones", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/users/resolve", r.URL.Path)

			var req struct {
				IDs []string `json:"ids"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.ElementsMatch(t, []string{"u1", "u2"}, req.IDs)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"users":[{"id":"u1","name":"Alice","avatar":"a.png"}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		got, err := c.ResolveNames(context.Background(), []string{"u1", "u2"})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Alice", got["u1"].Name)
		assert.Equal(t, "a.png", got["u1"].Avatar)
	})

	t.Run("empty id list skips the request", func(t *testing.T) {
		c := NewClient("http://directory.invalid", time.Second)
		got, err := c.ResolveNames(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		_, err := c.ResolveNames(context.Background(), []string{"u1"})

		assert.Error(t, err)
	})
}
