package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/event-finder/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByAuthID returns the user bound to an identity subject or ErrNotFound.
func (r *UserRepository) GetByAuthID(ctx context.Context, authID string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT id, uid, auth_id, username, email, profile_image_url, created_at
		 FROM app_user WHERE auth_id = $1`,
		authID,
	).Scan(&u.ID, &u.UID, &u.AuthID, &u.Username, &u.Email, &u.ProfileImageURL, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Create inserts u and fills in its id and creation time. A concurrent
// insert for the same identity returns ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO app_user (uid, auth_id, username, email)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (auth_id) DO NOTHING
		 RETURNING id, created_at`,
		u.UID, u.AuthID, u.Username, u.Email,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
