package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository handles persistence for event view history.
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository constructs a HistoryRepository.
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record stores that the user viewed the event at the given time. A repeat
// view only moves viewed_at forward.
func (r *HistoryRepository) Record(ctx context.Context, userID, eventID int64, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_event_view_history (user_id, pe_id, viewed_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, pe_id) DO UPDATE SET viewed_at = EXCLUDED.viewed_at`,
		userID, eventID, at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record event view: %w", err)
	}
	return nil
}

// Page returns refs of the events the user viewed, most recent first.
// Ref.At is the last view time.
func (r *HistoryRepository) Page(ctx context.Context, userID int64, after *Ref, limit int) ([]Ref, error) {
	return pageByUser(ctx, r.db, "user_event_view_history", "viewed_at", userID, after, limit)
}
