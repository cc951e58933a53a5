package domain

import (
	"errors"
	"fmt"
)

// FallbackErrorMessage - текст, когда сервис симуляции не дал пригодных деталей
const FallbackErrorMessage = "Simulation failed. Please try again."

// ErrFetchAborted - чтение отменено вызывающим, пользователю не показывается
var ErrFetchAborted = errors.New("fetch aborted")

// SimulationError - ошибка, возвращенная сервисом симуляции
type SimulationError struct {
	StatusCode int
	Message    string
}

func (e *SimulationError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("simulation service error: status %d: %s", e.StatusCode, e.Message)
}

// UserMessage - текст ошибки симулятора для пользователя
func UserMessage(err error) string {
	var simErr *SimulationError
	if errors.As(err, &simErr) && simErr.Message != "" {
		return simErr.Message
	}
	return FallbackErrorMessage
}
