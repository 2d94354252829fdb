package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stock-sentiment-dashboard/internal/dashboard/config"
	"stock-sentiment-dashboard/internal/dashboard/metrics"
	"stock-sentiment-dashboard/internal/entity"
	"stock-sentiment-dashboard/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BackendRepository talks to the analytics backend.
type BackendRepository interface {
	FetchSnapshot(ctx context.Context, keyword string) (*entity.DashboardSnapshot, error)
	RequestEmailReport(ctx context.Context, req *entity.EmailReportRequest) error
}

type backendRepository struct {
	baseURL        string
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewBackendRepository creates a client for the backend described by cfg.
func NewBackendRepository(cfg config.Backend, log *logger.Logger) BackendRepository {
	limit := rate.Inf
	if cfg.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.MaxRequestPerMinute))
	}
	return &backendRepository{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		requestLimiter: rate.NewLimiter(limit, 1),
	}
}

// FetchSnapshot loads the dashboard snapshot for keyword. Every call hits the backend.
func (r *backendRepository) FetchSnapshot(ctx context.Context, keyword string) (*entity.DashboardSnapshot, error) {
	endpoint := r.baseURL + "/dashboard?" + url.Values{"keyword": {keyword}}.Encode()
	start := time.Now()

	resp, err := r.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.RecordBackendRequest(metrics.OperationFetchSnapshot, metrics.OutcomeTransport, time.Since(start).Seconds())
		r.log.ErrorContext(ctx, "Failed to send dashboard request", zap.String("url", endpoint), zap.Error(err))
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordBackendRequest(metrics.OperationFetchSnapshot, metrics.OutcomeHTTPError, time.Since(start).Seconds())
		r.log.ErrorContext(ctx, "Received non-success response for dashboard", zap.String("url", endpoint), zap.Int("status_code", resp.StatusCode))
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var snapshot entity.DashboardSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		metrics.RecordBackendRequest(metrics.OperationFetchSnapshot, metrics.OutcomeDecode, time.Since(start).Seconds())
		r.log.ErrorContext(ctx, "Failed to decode dashboard response", zap.String("url", endpoint), zap.Error(err))
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response body: %w", err)}
	}

	metrics.RecordBackendRequest(metrics.OperationFetchSnapshot, metrics.OutcomeSuccess, time.Since(start).Seconds())
	r.log.DebugContext(ctx, "Dashboard snapshot fetched",
		logger.StringField("keyword", keyword),
		logger.IntField("articles", len(snapshot.Articles)),
	)
	return &snapshot, nil
}

// RequestEmailReport queues an email report. Success means accepted, not delivered.
func (r *backendRepository) RequestEmailReport(ctx context.Context, req *entity.EmailReportRequest) error {
	endpoint := r.baseURL + "/email/request"
	payload, err := json.Marshal(req)
	if err != nil {
		return &RequestError{Message: "Failed to queue email request.", Err: err}
	}
	start := time.Now()

	resp, err := r.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		metrics.RecordBackendRequest(metrics.OperationEmailReport, metrics.OutcomeTransport, time.Since(start).Seconds())
		r.log.ErrorContext(ctx, "Failed to send email report request", zap.String("url", endpoint), zap.Error(err))
		return &RequestError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		message, ok := parseErrorDetail(body)
		if !ok {
			message = fmt.Sprintf("Email request failed: %d", resp.StatusCode)
		}
		metrics.RecordBackendRequest(metrics.OperationEmailReport, metrics.OutcomeHTTPError, time.Since(start).Seconds())
		r.log.ErrorContext(ctx, "Received non-success response for email report",
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("detail", message),
		)
		return &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	metrics.RecordBackendRequest(metrics.OperationEmailReport, metrics.OutcomeSuccess, time.Since(start).Seconds())
	r.log.InfoContext(ctx, "Email report queued",
		logger.StringField("keyword", req.Keyword),
		logger.StringField("start_date", req.StartDate),
		logger.StringField("end_date", req.EndDate),
	)
	return nil
}

func (r *backendRepository) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.httpClient.Do(req)
}
