// Package gateway is the shared HTTP/JSON transport for the resource services
// (users, staff, salons, service offerings, bookings).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/m04kA/SMC-SalonBooking/pkg/authctx"
)

// messagePaths поля, в которых сервисы присылают текст ошибки
var messagePaths = []string{"message", "error.message", "error", "detail", "title"}

// Client базовый клиент ресурсного сервиса
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый клиент. timeout = 0 означает отсутствие таймаута.
func NewClient(name, baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	return &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// Name возвращает имя сервиса (для логов и метрик)
func (c *Client) Name() string {
	return c.name
}

// Do выполняет запрос method к path, сериализуя body (если не nil) и декодируя ответ в out (если не nil)
func (c *Client) Do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	started := time.Now()
	err := c.do(ctx, operation, method, path, body, out)

	result := "ok"
	if err != nil {
		result = "error"
	}
	if c.metrics != nil {
		c.metrics.ObserveGateway(c.name, operation, result, time.Since(started))
	}

	return err
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s.%s - failed to encode request: %v", ErrInternal, c.name, operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: %s.%s - failed to create request: %v", ErrInternal, c.name, operation, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := authctx.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s.%s: %s %s failed: %v", c.name, operation, method, url, err)
		return &Error{
			Gateway:   c.name,
			Operation: operation,
			Message:   fallbackMessage,
			cause:     err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s.%s - failed to read response: %v", ErrInvalidResponse, c.name, operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractMessage(raw)
		c.log.Warn("%s.%s: %s %s returned %d: %s", c.name, operation, method, url, resp.StatusCode, msg)
		return &Error{
			Gateway:    c.name,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s.%s - failed to decode response: %v", ErrInvalidResponse, c.name, operation, err)
	}

	return nil
}

// extractMessage достает текст ошибки из тела ответа, иначе возвращает общее сообщение
func extractMessage(raw []byte) string {
	if gjson.ValidBytes(raw) {
		for _, path := range messagePaths {
			if v := gjson.GetBytes(raw, path); v.Type == gjson.String && strings.TrimSpace(v.String()) != "" {
				return v.String()
			}
		}
		return fallbackMessage
	}

	if text := strings.TrimSpace(string(raw)); text != "" && len(text) <= 200 {
		return text
	}
	return fallbackMessage
}
