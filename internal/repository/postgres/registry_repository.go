package postgres

import (
	"context"
	"fmt"
	"regexp"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type registryRepository struct {
	db     *DB
	table  string
	logger *zap.Logger
}

// districtRow - строка таблицы районов
type districtRow struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	WaterLevel float64 `db:"water_level"`
	SRR        int     `db:"srr"`
	Health     int     `db:"health"`
	Log        int     `db:"log"`
	PosX       float64 `db:"pos_x"`
	PosY       float64 `db:"pos_y"`
}

func (r districtRow) toDomain() domain.District {
	return domain.District{
		ID:         r.ID,
		Name:       r.Name,
		WaterLevel: r.WaterLevel,
		Personnel: domain.PersonnelCount{
			SRR:    r.SRR,
			Health: r.Health,
			Log:    r.Log,
		},
		Position: domain.Position{X: r.PosX, Y: r.PosY},
	}
}

// NewRegistryRepository - чтение начального реестра из таблицы.
// Имя подставляется в SQL, поэтому допускаются только простые идентификаторы (можно со схемой).
func NewRegistryRepository(db *DB, table string, logger *zap.Logger) (repository.RegistryRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid registry table name %q", table)
	}

	return &registryRepository{
		db:     db,
		table:  table,
		logger: logger,
	}, nil
}

// Load - районы в порядке числового id ("2" раньше "10")
func (r *registryRepository) Load(ctx context.Context) ([]domain.District, error) {
	query := fmt.Sprintf(`
		SELECT id, name, water_level, srr, health, log, pos_x, pos_y
		FROM %s
		ORDER BY length(id), id`, r.table)

	var rows []districtRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to load districts", zap.String("table", r.table), zap.Error(err))
		return nil, fmt.Errorf("load districts: %w", err)
	}

	districts := make([]domain.District, 0, len(rows))
	for _, row := range rows {
		districts = append(districts, row.toDomain())
	}

	r.logger.Debug("Districts loaded from database",
		zap.String("table", r.table),
		zap.Int("count", len(districts)))

	return districts, nil
}
