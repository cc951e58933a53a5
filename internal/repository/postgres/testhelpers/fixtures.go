package testhelpers

import (
	"context"
	"fmt"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/jmoiron/sqlx"
)

// CreateDistrictTable creates an empty table with the registry schema.
func CreateDistrictTable(ctx context.Context, db *sqlx.DB, table string) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE %s (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			water_level DOUBLE PRECISION NOT NULL DEFAULT 0,
			srr         INTEGER NOT NULL DEFAULT 0,
			health      INTEGER NOT NULL DEFAULT 0,
			log         INTEGER NOT NULL DEFAULT 0,
			pos_x       DOUBLE PRECISION NOT NULL,
			pos_y       DOUBLE PRECISION NOT NULL
		)`, table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}

// InsertDistricts loads fixture rows into table.
func InsertDistricts(ctx context.Context, db *sqlx.DB, table string, districts []domain.District) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, water_level, srr, health, log, pos_x, pos_y)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, table)

	for _, d := range districts {
		_, err := db.ExecContext(ctx, query,
			d.ID, d.Name, d.WaterLevel,
			d.Personnel.SRR, d.Personnel.Health, d.Personnel.Log,
			d.Position.X, d.Position.Y,
		)
		if err != nil {
			return fmt.Errorf("insert district %s: %w", d.ID, err)
		}
	}
	return nil
}
