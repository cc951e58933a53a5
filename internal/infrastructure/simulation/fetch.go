package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain"
	"go.uber.org/zap"
)

// FetchJSON - GET с разбором JSON в out.
// Отменённый вызывающим запрос возвращает domain.ErrFetchAborted.
func FetchJSON(ctx context.Context, httpClient *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return domain.ErrFetchAborted
		}
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("HTTP error! status: %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return domain.ErrFetchAborted
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// StatusClient - чтение GET {baseURL}/ сервиса симуляции
type StatusClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewStatusClient - создание клиента проверки статуса сервиса симуляции
func NewStatusClient(cfg *config.SimulationConfig, logger *zap.Logger) *StatusClient {
	return &StatusClient{
		httpClient: &http.Client{Timeout: cfg.StatusTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// Status - корневой документ сервиса
func (c *StatusClient) Status(ctx context.Context) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := FetchJSON(ctx, c.httpClient, c.baseURL+"/", &doc); err != nil {
		if !errors.Is(err, domain.ErrFetchAborted) {
			c.logger.Warn("Simulation service status check failed", zap.Error(err))
		}
		return nil, err
	}
	return doc, nil
}
