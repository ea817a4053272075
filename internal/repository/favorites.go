package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

// FavoriteRepository handles persistence for user favorites.
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository constructs a FavoriteRepository.
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add bookmarks an event for a user. Adding twice returns ErrAlreadyExists.
func (r *FavoriteRepository) Add(ctx context.Context, userID, eventID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_favorite (user_id, pe_id, created_at) VALUES ($1, $2, $3)`,
		userID, eventID, time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// Remove deletes a bookmark. Removing a missing bookmark is not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, eventID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM user_favorite WHERE user_id = $1 AND pe_id = $2`,
		userID, eventID,
	)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// Exists reports whether the user has bookmarked the event.
func (r *FavoriteRepository) Exists(ctx context.Context, userID, eventID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_favorite WHERE user_id = $1 AND pe_id = $2)`,
		userID, eventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

// Page returns refs of the user's bookmarked events, most recently
// bookmarked first. Ref.At is the bookmark time.
func (r *FavoriteRepository) Page(ctx context.Context, userID int64, after *Ref, limit int) ([]Ref, error) {
	return pageByUser(ctx, r.db, "user_favorite", "created_at", userID, after, limit)
}

// pageByUser lists (pe_id, ts) pairs of a per-user table, newest first.
// The cursor id is the event id, matching what the listing returns.
func pageByUser(ctx context.Context, db *pgxpool.Pool, table, tsColumn string, userID int64, after *Ref, limit int) ([]Ref, error) {
	var cursorAt *time.Time
	var cursorID *int64
	if after != nil {
		cursorAt, cursorID = &after.At, &after.ID
	}

	query := fmt.Sprintf(
		`SELECT pe_id, %[2]s
		 FROM %[1]s
		 WHERE user_id = $1
		   AND ($2::timestamptz IS NULL OR (%[2]s, pe_id) < ($2, $3::bigint))
		 ORDER BY %[2]s DESC, pe_id DESC
		 LIMIT $4`,
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{tsColumn}.Sanitize(),
	)
	rows, err := db.Query(ctx, query, userID, cursorAt, cursorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return scanRefs(rows)
}
