package repository

import (
	"context"
	"fmt"

	"github.com/Shivanand-hulikatti/event-finder/internal/district"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDistricts loads the static district table into the district relation
// so events can reference it. Existing rows are updated in place.
func SeedDistricts(ctx context.Context, db *pgxpool.Pool) error {
	const upsert = `INSERT INTO district (id, level, name, parent_district_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET level = EXCLUDED.level, name = EXCLUDED.name, parent_district_id = EXCLUDED.parent_district_id`

	batch := &pgx.Batch{}
	for _, p := range district.LevelOne() {
		batch.Queue(upsert, p.ID, 1, p.Name, nil)
	}
	for _, p := range district.LevelOne() {
		for _, d := range district.LevelTwo(p.ID) {
			batch.Queue(upsert, d.ID, 2, d.Name, p.ID)
		}
	}

	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed districts: %w", err)
	}
	return nil
}
