// Package quote получает случайную цитату из внешнего сервиса.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/greetings-skill/internal/metrics"
)

// DefaultURL — адрес сервиса цитат по умолчанию.
const DefaultURL = "https://api.quotable.io/random"

var (
	ErrTransport = errors.New("quote service unavailable")
	ErrParse     = errors.New("malformed quote payload")
)

//go:generate mockgen -destination=mock/quote.go -package=mock . Fetcher

// Fetcher возвращает текст одной случайной цитаты.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

type payload struct {
	Content string `json:"content"`
}

// Client ходит в сервис цитат одним GET-запросом без повторов и кеша.
type Client struct {
	url  string
	http *resty.Client
	log  *zap.Logger
}

type ClientOption func(*Client)

// WithRestyClient подменяет HTTP-клиент, например в тестах.
func WithRestyClient(rc *resty.Client) ClientOption {
	return func(c *Client) {
		c.http = rc
	}
}

func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:  url,
		http: resty.New(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Fetch(ctx context.Context) (string, error) {
	start := time.Now()
	text, err := c.fetch(ctx)
	metrics.QuoteFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.QuoteFetchTotal.WithLabelValues(metrics.OutcomeError).Inc()
		c.log.Debug("cannot fetch quote", zap.String("url", c.url), zap.Error(err))
		return "", err
	}

	metrics.QuoteFetchTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	return text, nil
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.url)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode())
	}

	return Parse(resp.Body())
}

// Parse извлекает поле content из ответа сервиса.
// Сервис иногда отдаёт некорректно экранированные строки, поэтому все обратные
// слеши удаляются до разбора JSON.
func Parse(body []byte) (string, error) {
	cleaned := strings.ReplaceAll(string(body), `\`, "")

	var p payload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	if p.Content == "" {
		return "", fmt.Errorf("%w: empty content", ErrParse)
	}

	return p.Content, nil
}
