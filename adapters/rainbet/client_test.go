package rainbet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/contracts"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

var testWindow = models.TimeWindow{
	Start: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
}

func TestFetchWagers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/external/affiliates", r.URL.Path)

		// Window is sent at date granularity.
		q := r.URL.Query()
		assert.Equal(t, "2025-03-01", q.Get("start_at"))
		assert.Equal(t, "2025-03-31", q.Get("end_at"))
		assert.Equal(t, "test_key", q.Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"affiliates":[
			{"username":"highroller99","wagered_amount":"1520.55"},
			{"username":"casualplayer","wagered_amount":"10"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient("test_key", srv.URL)
	records, err := client.FetchWagers(context.Background(), testWindow)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "highroller99", records[0].Identifier)
	assert.Equal(t, 1520.55, records[0].Amount)
	assert.Equal(t, 10.0, records[1].Amount)
}

func TestFetchWagersEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"affiliates":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test_key", srv.URL)
	records, err := client.FetchWagers(context.Background(), testWindow)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchWagersMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"nothing here"}`))
	}))
	defer srv.Close()

	client := NewClient("test_key", srv.URL)
	_, err := client.FetchWagers(context.Background(), testWindow)

	assert.True(t, errors.Is(err, contracts.ErrMalformedPayload), "got %v", err)
}

func TestFetchWagersInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	client := NewClient("test_key", srv.URL)
	_, err := client.FetchWagers(context.Background(), testWindow)

	assert.True(t, errors.Is(err, contracts.ErrMalformedPayload), "got %v", err)
}

func TestFetchWagersUnparseableAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"affiliates":[{"username":"highroller99","wagered_amount":"n/a"}]}`))
	}))
	defer srv.Close()

	client := NewClient("test_key", srv.URL)
	_, err := client.FetchWagers(context.Background(), testWindow)

	assert.True(t, errors.Is(err, contracts.ErrMalformedPayload), "got %v", err)
}

func TestFetchWagersStatusErrorNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		http.Error(w, "invalid key", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("bad_key", srv.URL)
	_, err := client.FetchWagers(context.Background(), testWindow)

	assert.Error(t, err)
	assert.Equal(t, 1, attempts, "status errors must not be retried")
}
