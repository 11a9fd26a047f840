package backend

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

	"github.com/m04kA/DMar-BookingService/pkg/reqctx"
)

// Исходы запросов для метрик
const (
	outcomeSuccess      = "success"
	outcomeError        = "error"
	outcomeConnectivity = "connectivity"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder интерфейс для метрик запросов к бэкенду
type Recorder interface {
	ObserveBackendRequest(endpoint, outcome string, duration time.Duration)
}

// Client клиент каталога и заказов D'Mar (Laravel API)
type Client struct {
	baseURL       string
	sessionHeader string
	httpClient    *http.Client
	log           Logger
	metrics       Recorder
}

// NewClient создает новый экземпляр клиента. metrics может быть nil.
func NewClient(baseURL string, timeout time.Duration, sessionHeader string, log Logger, metrics Recorder) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		sessionHeader: sessionHeader,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// response тело и статус ответа
type response struct {
	status int
	body   []byte
}

// do выполняет запрос и читает тело целиком.
// Любая ошибка транспорта (включая таймаут) возвращается как ErrConnectivity.
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, payload interface{}) (*response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sessionID, ok := reqctx.SessionID(ctx); ok && c.sessionHeader != "" {
		req.Header.Set(c.sessionHeader, sessionID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, outcomeConnectivity, start)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrConnectivity, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, outcomeConnectivity, start)
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrConnectivity, err)
	}

	outcome := outcomeSuccess
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = outcomeError
	}
	c.observe(endpoint, outcome, start)

	return &response{status: resp.StatusCode, body: raw}, nil
}

// get выполняет GET и проверяет статус. 404 превращается в ErrNotFound.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error) {
	resp, err := c.do(ctx, endpoint, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.status >= 200 && resp.status <= 299:
		return resp.body, nil
	case resp.status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.status, truncate(resp.body))
	}
}

func (c *Client) observe(endpoint, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveBackendRequest(endpoint, outcome, time.Since(start))
}

func truncate(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
