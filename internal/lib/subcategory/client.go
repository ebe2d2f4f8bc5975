package subcategory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"classifieds/internal/config"
	"classifieds/internal/lib/metrics"

	"github.com/samber/lo"
)

var (
	ErrDisabled = errors.New("subcategory source is disabled")
)

// Catalog — удалённый справочник подкатегорий.
type Catalog string

const (
	CatalogChildren Catalog = "children"
	CatalogPharmacy Catalog = "pharmacy"
)

// Client — клиент удалённого справочника подкатегорий.
type Client interface {
	// Fetch возвращает записи первого уровня справочника.
	Fetch(ctx context.Context, catalog Catalog) ([]Entry, error)
	IsEnabled() bool
}

// Entry — запись справочника.
type Entry struct {
	Slug   string `json:"slug"`
	NameRU string `json:"name_ru"`
	NameKZ string `json:"name_kz"`
	Level  int    `json:"level"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *slog.Logger
	metrics    *metrics.SourceMetrics
}

// NewClient создаёт клиент справочника. При выключенном источнике возвращает заглушку.
func NewClient(cfg config.SubcategoryConfig, log *slog.Logger, m *metrics.SourceMetrics) Client {
	if !cfg.Enabled {
		return &noopClient{log: log}
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		log:     log,
		metrics: m,
	}
}

func (c *client) Fetch(ctx context.Context, catalog Catalog) ([]Entry, error) {
	const op = "subcategory.Client.Fetch"

	timer := c.metrics.StartTimer(metrics.SourceSubcategory)
	entries, err := c.fetch(ctx, catalog)
	timer.Stop(err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	firstLevel := lo.Filter(entries, func(e Entry, _ int) bool { return e.Level == 1 })

	c.log.Debug("subcategories fetched",
		slog.String("catalog", string(catalog)),
		slog.Int("total", len(entries)),
		slog.Int("first_level", len(firstLevel)),
	)

	return firstLevel, nil
}

func (c *client) fetch(ctx context.Context, catalog Catalog) ([]Entry, error) {
	endpoint, err := url.JoinPath(c.baseURL, "categories", string(catalog))
	if err != nil {
		return nil, fmt.Errorf("failed to build url: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("apikey", c.apiKey)
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return entries, nil
}

func (c *client) IsEnabled() bool {
	return true
}

// noopClient — заглушка для случая, когда справочник отключен.
type noopClient struct {
	log *slog.Logger
}

func (c *noopClient) Fetch(_ context.Context, catalog Catalog) ([]Entry, error) {
	c.log.Debug("subcategory source is disabled", slog.String("catalog", string(catalog)))
	return nil, ErrDisabled
}

func (c *noopClient) IsEnabled() bool {
	return false
}
