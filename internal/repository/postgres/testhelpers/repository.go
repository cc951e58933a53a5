package testhelpers

import (
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"github.com/emergency-response-dashboard/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRegistryRepositoryForTest creates a registry repository over table
func NewRegistryRepositoryForTest(db *sqlx.DB, table string, logger *zap.Logger) (repository.RegistryRepository, error) {
	return postgres.NewRegistryRepository(NewDBForTest(db, logger), table, logger)
}
