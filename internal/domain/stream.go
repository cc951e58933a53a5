package domain

import (
	"time"

	"github.com/google/uuid"
)

// Имена стримов
const (
	StreamSimulationRequest = "stream:simulation:request"
	StreamSimulationDone    = "stream:simulation:done"
)

// SimulationRequestEvent - headless request to run a simulation
type SimulationRequestEvent struct {
	RequestID uuid.UUID         `json:"request_id"`
	Districts []DistrictPayload `json:"districts"`
}

// SimulationDoneEvent - результат симуляции
type SimulationDoneEvent struct {
	RequestID   uuid.UUID         `json:"request_id"`
	Source      string            `json:"source"`
	Status      string            `json:"status"`
	Result      *SimulationResult `json:"result,omitempty"`
	Error       string            `json:"error,omitempty"`
	Districts   int               `json:"districts"`
	DurationMS  int64             `json:"duration_ms"`
	CompletedAt time.Time         `json:"completed_at"`
}

// Источники событий
const (
	SourceDashboard = "dashboard"
	SourceWorker    = "worker"
)

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
