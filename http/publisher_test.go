package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/awalczak/mailpost"
	mailposthttp "github.com/awalczak/mailpost/http"
	"github.com/awalczak/mailpost/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePost() *mailpost.Post {
	return &mailpost.Post{
		ID:        "post-1",
		Author:    "Jane Doe",
		Content:   "Looking forward to the weekend hike!",
		Category:  mailpost.CategoryStatus,
		Timestamp: time.Date(2024, 3, 5, 10, 32, 0, 0, time.UTC),
		Source: mailpost.Source{
			Subject: "Jane Doe posted an update",
			Sender:  "noreply@example.com",
		},
	}
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("posts JSON payload to endpoint", func(t *testing.T) {
		t.Parallel()

		var gotContentType string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		publisher := mailposthttp.NewPublisher(server.URL)
		err := publisher.Publish(context.Background(), samplePost())

		require.NoError(t, err)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "Jane Doe", gotBody["author"])
		assert.Equal(t, "Looking forward to the weekend hike!", gotBody["body"])
		assert.Equal(t, "status", gotBody["category"])
		assert.Equal(t, 1.0, gotBody["importance"])
	})

	t.Run("sends bearer token when configured", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
		}))
		defer server.Close()

		publisher := mailposthttp.NewPublisher(server.URL, mailposthttp.WithToken("s3cret"))
		err := publisher.Publish(context.Background(), samplePost())

		require.NoError(t, err)
		assert.Equal(t, "Bearer s3cret", gotAuth)
	})

	t.Run("renders ContentHTML through converter", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &gotBody)
		}))
		defer server.Close()

		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "**rendered**", nil
			},
		}

		post := samplePost()
		post.ContentHTML = "<b>rendered</b>"

		publisher := mailposthttp.NewPublisher(server.URL, mailposthttp.WithConverter(converter))
		err := publisher.Publish(context.Background(), post)

		require.NoError(t, err)
		assert.Equal(t, "**rendered**", gotBody["body"])
	})

	t.Run("maps 401 to EUNAUTHORIZED", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		publisher := mailposthttp.NewPublisher(server.URL)
		err := publisher.Publish(context.Background(), samplePost())

		require.Error(t, err)
		assert.Equal(t, mailpost.EUNAUTHORIZED, mailpost.ErrorCode(err))
	})

	t.Run("returns error for server failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		publisher := mailposthttp.NewPublisher(server.URL)
		err := publisher.Publish(context.Background(), samplePost())
		require.Error(t, err)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		publisher := mailposthttp.NewPublisher(server.URL, mailposthttp.WithTimeout(10*time.Millisecond))
		err := publisher.Publish(context.Background(), samplePost())
		require.Error(t, err)
	})

	t.Run("rejects nil post", func(t *testing.T) {
		t.Parallel()

		publisher := mailposthttp.NewPublisher("http://example.invalid")
		err := publisher.Publish(context.Background(), nil)

		assert.Equal(t, mailpost.EINVALID, mailpost.ErrorCode(err))
	})
}
