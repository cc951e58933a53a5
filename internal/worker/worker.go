package worker

import (
	"context"
)

// Worker - долгоживущий consumer стрима под управлением WorkerManager
type Worker interface {
	// Start блокирует до остановки воркера или завершения ctx
	Start(ctx context.Context) error

	// Stop сигнализирует Start завершиться, можно вызывать повторно
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
