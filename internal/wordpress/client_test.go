package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://example.com", "https://example.com/wp-json"},
		{"https://example.com/", "https://example.com/wp-json"},
		{"https://example.com/wp-json", "https://example.com/wp-json"},
		{"https://example.com/wp-json/", "https://example.com/wp-json"},
		{"https://example.com/wp-json/wp/v2", "https://example.com/wp-json"},
		{"  https://example.com  ", "https://example.com/wp-json"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBaseURL(tt.input), "input %q", tt.input)
	}
}

// testClient points a zero-delay client at an httptest server.
func testClient(serverURL string) *Client {
	c := NewClient(Config{BaseURL: serverURL})
	c.PageDelay = 0
	return c
}

func TestClient_FetchUsers_Pagination(t *testing.T) {
	pagesServed := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/users", r.URL.Path)
		pagesServed++

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		require.Equal(t, 2, perPage)

		w.Header().Set("X-WP-TotalPages", "2")
		var users []User
		switch page {
		case 1:
			users = []User{{ID: 1, Name: "Jane"}, {ID: 2, Name: "John"}}
		case 2:
			users = []User{{ID: 3, Name: "Mary"}}
		}
		json.NewEncoder(w).Encode(users)
	}))
	defer server.Close()

	c := testClient(server.URL)
	c.PageSize = 2

	users, err := c.FetchUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, 2, pagesServed)
	assert.Equal(t, "Mary", users[2].Name)
}

func TestClient_FetchUsers_StopsOnShortPage(t *testing.T) {
	pagesServed := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		// No X-WP-TotalPages header: the short page is the only stop signal.
		json.NewEncoder(w).Encode([]User{{ID: 1, Name: "Jane"}})
	}))
	defer server.Close()

	c := testClient(server.URL)
	c.PageSize = 100

	users, err := c.FetchUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, 1, pagesServed)
}

func TestClient_MaxPagesCap(t *testing.T) {
	pagesServed := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		// Always a full page, so only MaxPages stops the loop.
		json.NewEncoder(w).Encode([]Category{{ID: pagesServed, Name: "Cat"}})
	}))
	defer server.Close()

	c := testClient(server.URL)
	c.PageSize = 1
	c.MaxPages = 3

	cats, err := c.FetchCategories(context.Background())

	require.NoError(t, err)
	assert.Len(t, cats, 3)
	assert.Equal(t, 3, pagesServed)
}

func TestClient_FetchPosts_StatusFilter(t *testing.T) {
	var gotStatus string
	var gotAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStatus = r.URL.Query().Get("status")
		_, _, gotAuth = r.BasicAuth()
		json.NewEncoder(w).Encode([]Post{})
	}))
	defer server.Close()

	t.Run("anonymous clients never send a status filter", func(t *testing.T) {
		c := testClient(server.URL)
		_, err := c.FetchPosts(context.Background(), []string{"publish", "draft"})
		require.NoError(t, err)
		assert.Empty(t, gotStatus)
		assert.False(t, gotAuth)
	})

	t.Run("credentials enable the status filter and basic auth", func(t *testing.T) {
		c := NewClient(Config{BaseURL: server.URL, Username: "admin", Password: "s3cret"})
		c.PageDelay = 0
		_, err := c.FetchPosts(context.Background(), []string{"publish", "draft"})
		require.NoError(t, err)
		assert.Equal(t, "publish,draft", gotStatus)
		assert.True(t, gotAuth)
	})
}

func TestClient_BasicAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "app password", pass)
		json.NewEncoder(w).Encode([]User{})
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, Username: "admin", Password: "app password"})
	c.PageDelay = 0

	_, err := c.FetchUsers(context.Background())
	require.NoError(t, err)
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.FetchPosts(context.Background(), nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_StatusErrorCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":"internal_error"}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.FetchCategories(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "internal_error")
}

func TestClient_FetchMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wp/v2/media/42":
			json.NewEncoder(w).Encode(Media{
				ID:        42,
				SourceURL: "https://cdn.example.com/img.jpg",
				AltText:   "an image",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := testClient(server.URL)

	media, err := c.FetchMedia(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, media)
	assert.Equal(t, "https://cdn.example.com/img.jpg", media.SourceURL)

	// A deleted attachment is not an error.
	media, err = c.FetchMedia(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, media)
}

func TestClient_TestConnection(t *testing.T) {
	t.Run("healthy site", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]Post{})
		}))
		defer server.Close()

		assert.NoError(t, testClient(server.URL).TestConnection(context.Background()))
	})

	t.Run("posts closed but categories open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/wp-json/wp/v2/posts" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode([]Category{})
		}))
		defer server.Close()

		assert.NoError(t, testClient(server.URL).TestConnection(context.Background()))
	})

	t.Run("html instead of json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not an api</html>"))
		}))
		defer server.Close()

		assert.Error(t, testClient(server.URL).TestConnection(context.Background()))
	})

	t.Run("unreachable host", func(t *testing.T) {
		c := testClient("http://127.0.0.1:1")
		assert.Error(t, c.TestConnection(context.Background()))
	})
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Post{{ID: 1, Slug: "a"}})
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(server.URL)
	_, err := c.FetchPosts(ctx, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
