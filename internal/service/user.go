package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Shivanand-hulikatti/event-finder/internal/model"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository"
	"github.com/google/uuid"
)

// ErrUnknownUser is returned when an authenticated identity has no user
// row yet. Clients resolve it by calling GetOrCreateUser.
var ErrUnknownUser = errors.New("user not registered")

var (
	usernamePrefixes = []string{"행복한", "즐거운", "부지런한", "호기심많은", "느긋한", "용감한"}
	usernameSuffixes = []string{"다람쥐", "고양이", "펭귄", "여우", "부엉이", "수달"}
)

// GetOrCreateUser returns the user bound to authID, creating one with a
// generated username on first sight. The bool reports whether it was
// created.
func (s *EventService) GetOrCreateUser(ctx context.Context, authID string, email *string) (*model.User, bool, error) {
	u, err := s.users.GetByAuthID(ctx, authID)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	u = &model.User{
		UID:      newUID(),
		AuthID:   authID,
		Username: newUsername(),
		Email:    email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			// Lost a race with a concurrent first request.
			u, err = s.users.GetByAuthID(ctx, authID)
			if err != nil {
				return nil, false, fmt.Errorf("get user: %w", err)
			}
			return u, false, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	s.log.WithField("uid", u.UID).Info("user created")
	return u, true, nil
}

// AddFavorite bookmarks an event. Bookmarking twice is not an error.
func (s *EventService) AddFavorite(ctx context.Context, eventUUID, authID string) error {
	userID, eventID, err := s.resolve(ctx, eventUUID, authID)
	if err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, userID, eventID); err != nil && !errors.Is(err, repository.ErrAlreadyExists) {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite removes a bookmark.
func (s *EventService) RemoveFavorite(ctx context.Context, eventUUID, authID string) error {
	userID, eventID, err := s.resolve(ctx, eventUUID, authID)
	if err != nil {
		return err
	}
	if err := s.favorites.Remove(ctx, userID, eventID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the caller bookmarked the event. Anonymous
// callers and unregistered identities get false.
func (s *EventService) IsFavorite(ctx context.Context, eventUUID, authID string) (bool, error) {
	if authID == "" {
		if err := checkUUID(eventUUID); err != nil {
			return false, err
		}
		if _, err := s.events.IDByUUID(ctx, eventUUID); err != nil {
			return false, err
		}
		return false, nil
	}
	userID, eventID, err := s.resolve(ctx, eventUUID, authID)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return false, nil
		}
		return false, err
	}
	ok, err := s.favorites.Exists(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return ok, nil
}

// FavoriteEvents lists the caller's bookmarks, most recent first.
func (s *EventService) FavoriteEvents(ctx context.Context, authID, token string, limit int) (*model.Page[model.Event], error) {
	limit, err := s.limit(limit)
	if err != nil {
		return nil, err
	}
	u, err := s.user(ctx, authID)
	if err != nil {
		return nil, err
	}
	refs, err := s.favorites.Page(ctx, u.ID, repository.ParseToken(token), limit+1)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return s.page(ctx, refs, limit)
}

// RecordView stores that the caller viewed the event now.
func (s *EventService) RecordView(ctx context.Context, eventUUID, authID string) error {
	userID, eventID, err := s.resolve(ctx, eventUUID, authID)
	if err != nil {
		return err
	}
	if err := s.history.Record(ctx, userID, eventID, s.now()); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// ViewHistory lists events the caller viewed, most recent first.
func (s *EventService) ViewHistory(ctx context.Context, authID, token string, limit int) (*model.Page[model.Event], error) {
	limit, err := s.limit(limit)
	if err != nil {
		return nil, err
	}
	u, err := s.user(ctx, authID)
	if err != nil {
		return nil, err
	}
	refs, err := s.history.Page(ctx, u.ID, repository.ParseToken(token), limit+1)
	if err != nil {
		return nil, fmt.Errorf("list view history: %w", err)
	}
	return s.page(ctx, refs, limit)
}

func (s *EventService) user(ctx context.Context, authID string) (*model.User, error) {
	u, err := s.users.GetByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// resolve maps an identity and an event UUID to row ids.
func (s *EventService) resolve(ctx context.Context, eventUUID, authID string) (int64, int64, error) {
	if err := checkUUID(eventUUID); err != nil {
		return 0, 0, err
	}
	u, err := s.user(ctx, authID)
	if err != nil {
		return 0, 0, err
	}
	eventID, err := s.events.IDByUUID(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, 0, repository.ErrNotFound
		}
		return 0, 0, fmt.Errorf("get event: %w", err)
	}
	return u.ID, eventID, nil
}

func newUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func newUsername() string {
	return fmt.Sprintf("%s%s-%05d",
		usernamePrefixes[rand.Intn(len(usernamePrefixes))],
		usernameSuffixes[rand.Intn(len(usernameSuffixes))],
		rand.Intn(100000),
	)
}
