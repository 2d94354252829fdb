package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-sentiment-dashboard/internal/dashboard/config"
	"stock-sentiment-dashboard/internal/entity"
	"stock-sentiment-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
  "updated_at": "2024-01-03 10:00",
  "kpis": {"totalArticles": 42, "bullish": 20, "bearish": 10, "neutral": 12},
  "sentimentDistribution": {"positive": 20, "neutral": 12, "negative": 10},
  "trend": [
    {"time": "01-01", "positive": 5, "neutral": 4, "negative": 3},
    {"time": "01-02", "positive": 15, "neutral": 8, "negative": 7}
  ],
  "articles": [
    {"title": "Apple beats", "url": "https://news.example/1", "source": "Reuters", "published_at": "2024-01-02", "sentiment": "Positive", "confidence": 0.75},
    {"title": "Apple slips", "url": "https://news.example/2", "source": "", "published_at": null, "sentiment": "Mixed", "confidence": 0.1}
  ]
}`

func newTestRepository(t *testing.T, handler http.HandlerFunc) BackendRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendRepository(config.Backend{BaseURL: server.URL + "/"}, logger.NewNop())
}

func TestBackendRepository_FetchSnapshot(t *testing.T) {
	t.Run("decodes snapshot verbatim", func(t *testing.T) {
		var gotPath, gotKeyword string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKeyword = r.URL.Query().Get("keyword")
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, snapshotJSON)
		})

		snapshot, err := repo.FetchSnapshot(context.Background(), "Apple stock")

		require.NoError(t, err)
		assert.Equal(t, "/dashboard", gotPath)
		assert.Equal(t, "Apple stock", gotKeyword)

		var want entity.DashboardSnapshot
		require.NoError(t, json.Unmarshal([]byte(snapshotJSON), &want))
		assert.Equal(t, &want, snapshot)
		assert.Equal(t, 42, snapshot.KPIs.TotalArticles)
		require.Len(t, snapshot.Articles, 2)
		assert.Nil(t, snapshot.Articles[1].PublishedAt)
		assert.Equal(t, entity.Sentiment("Mixed"), snapshot.Articles[1].Sentiment)
		assert.Equal(t, "01-01", snapshot.Trend[0].Time)
	})

	t.Run("non-success status returns FetchError with status", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		snapshot, err := repo.FetchSnapshot(context.Background(), "AAPL")

		assert.Nil(t, snapshot)
		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
		assert.Equal(t, "Dashboard request failed: 503", err.Error())
	})

	t.Run("invalid body returns FetchError", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "not json")
		})

		_, err := repo.FetchSnapshot(context.Background(), "AAPL")

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Contains(t, err.Error(), "invalid response body")
	})

	t.Run("transport failure returns FetchError", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		repo := NewBackendRepository(config.Backend{BaseURL: server.URL}, logger.NewNop())

		_, err := repo.FetchSnapshot(context.Background(), "AAPL")

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, 0, fetchErr.StatusCode)
		assert.Error(t, fetchErr.Unwrap())
	})
}

func TestBackendRepository_RequestEmailReport(t *testing.T) {
	request := entity.NewEmailReportRequest("AAPL", "2024-01-01", "2024-01-03", "a@b.com")

	t.Run("posts literal fields with max_records", func(t *testing.T) {
		calls := 0
		var body map[string]interface{}
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/email/request", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusOK)
		})

		err := repo.RequestEmailReport(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, map[string]interface{}{
			"keyword":     "AAPL",
			"start_date":  "2024-01-01",
			"end_date":    "2024-01-03",
			"email":       "a@b.com",
			"max_records": float64(1000),
		}, body)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "string detail", status: http.StatusUnprocessableEntity, body: `{"detail":"invalid email"}`, message: "invalid email"},
		{name: "validation list detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"},{"msg":"end_date before start_date"}]}`, message: "value is not a valid email address; end_date before start_date"},
		{name: "empty body", status: http.StatusInternalServerError, body: "", message: "Email request failed: 500"},
		{name: "unparseable body", status: http.StatusBadGateway, body: "<html>bad gateway</html>", message: "Email request failed: 502"},
		{name: "missing detail", status: http.StatusBadRequest, body: `{"error":"nope"}`, message: "Email request failed: 400"},
		{name: "empty detail", status: http.StatusBadRequest, body: `{"detail":""}`, message: "Email request failed: 400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := repo.RequestEmailReport(context.Background(), request)

			var requestErr *RequestError
			require.True(t, errors.As(err, &requestErr))
			assert.Equal(t, tt.status, requestErr.StatusCode)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestParseErrorDetail(t *testing.T) {
	detail, ok := parseErrorDetail([]byte(`{"detail":"quota exceeded"}`))
	assert.True(t, ok)
	assert.Equal(t, "quota exceeded", detail)

	_, ok = parseErrorDetail([]byte(`{"detail":{"code":1}}`))
	assert.False(t, ok)

	_, ok = parseErrorDetail(nil)
	assert.False(t, ok)
}
