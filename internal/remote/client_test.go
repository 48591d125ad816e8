package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/notiboard/notiboard/internal/model"
)

func record(id string) model.Notification {
	return model.Notification{
		ID:          id,
		Message:     "hello",
		ScheduledAt: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
		Channel:     model.ChannelEmail,
		Recipient:   "a@b.com",
		Status:      model.StatusScheduled,
	}
}

func TestClient_Create(t *testing.T) {
	want := record("x1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notify", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var input model.CreateInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "hello", input.Message)
		assert.Equal(t, model.ChannelEmail, input.Channel)

		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api", time.Second)

	got, err := c.Create(context.Background(), model.CreateInput{
		Message:     "hello",
		ScheduledAt: want.ScheduledAt,
		Channel:     model.ChannelEmail,
		Recipient:   "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_Cancel(t *testing.T) {
	want := record("x1")
	want.Status = model.StatusCancelled

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/notify/x1", r.URL.Path)

		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	got, err := c.Cancel(context.Background(), "x1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, got.Status)
}

func TestClient_List(t *testing.T) {
	want := []model.Notification{record("a"), record("b")}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)

		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	got, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_Get(t *testing.T) {
	want := record("a")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notify/a", r.URL.Path)

		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	got, err := c.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_ErrorBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"scheduled_at cannot be in the past"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.Create(context.Background(), model.CreateInput{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "scheduled_at cannot be in the past", apiErr.Message)
}

func TestClient_ErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "HTTP error! status: 500", apiErr.Message)
}

func TestClient_WaitReady_SucceedsAfterRetries(t *testing.T) {
	var probes atomic.Int32

	// The notifier answers only on the third probe, as if still booting.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)

		if probes.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		require.NoError(t, json.NewEncoder(w).Encode([]model.Notification{}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	strategy := retry.Strategy{Attempts: 5, Delay: time.Millisecond}
	require.NoError(t, c.WaitReady(context.Background(), strategy))
	assert.Equal(t, int32(3), probes.Load())
}

func TestClient_WaitReady_GivesUpAfterAttempts(t *testing.T) {
	var probes atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond}
	err := c.WaitReady(context.Background(), strategy)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notifier not reachable")
	assert.Equal(t, int32(3), probes.Load())
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(srv.URL, time.Second)

	_, err := c.List(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
