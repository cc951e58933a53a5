package simulation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain"
	"go.uber.org/zap"
)

const simulatePath = "/simulate"

// HTTPSimulator - клиент внешнего сервиса оптимизации
type HTTPSimulator struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewHTTPSimulator - создание клиента сервиса симуляции
func NewHTTPSimulator(cfg *config.SimulationConfig, logger *zap.Logger) *HTTPSimulator {
	return &HTTPSimulator{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

type simulateResponse struct {
	Message json.RawMessage `json:"message"`
}

// Simulate - POST /simulate и разбор результата
func (c *HTTPSimulator) Simulate(ctx context.Context, districts []domain.DistrictPayload) (*domain.SimulationResult, error) {
	if districts == nil {
		districts = []domain.DistrictPayload{}
	}

	body, err := json.Marshal(districts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode districts: %w", err)
	}

	url := c.baseURL + simulatePath

	c.logger.Debug("Calling simulation service",
		zap.String("url", url),
		zap.Int("districts_count", len(districts)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := parseErrorDetail(respBody)
		c.logger.Warn("Simulation service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", msg))
		return nil, &domain.SimulationError{StatusCode: resp.StatusCode, Message: msg}
	}

	result, err := decodeResult(respBody)
	if err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Simulation service call successful",
		zap.Bool("has_outcome", result.Outcome != nil))

	return result, nil
}

// decodeResult - принимает {"message": {pso, fa}} и старый формат {"message": "text"}
func decodeResult(body []byte) (*domain.SimulationResult, error) {
	var sr simulateResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	raw := bytes.TrimSpace(sr.Message)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("failed to decode response: missing message field")
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		return &domain.SimulationResult{Message: text}, nil
	}

	var outcome domain.SimulationOutcome
	if err := json.Unmarshal(raw, &outcome); err != nil {
		return nil, fmt.Errorf("failed to decode outcome: %w", err)
	}
	return &domain.SimulationResult{Outcome: &outcome}, nil
}
