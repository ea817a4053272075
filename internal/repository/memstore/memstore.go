// Package memstore is an in-memory Event Repository for development
// servers and tests. It mirrors the ordering and cursor semantics of the
// PostgreSQL repositories.
package memstore

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/district"
	"github.com/Shivanand-hulikatti/event-finder/internal/model"
	"github.com/Shivanand-hulikatti/event-finder/internal/registration"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository"
	"github.com/google/uuid"
)

type record struct {
	detail    model.EventDetail
	id        int64
	createdAt time.Time
	districts []int
	tags      []string
}

// Events is an in-memory EventStore.
type Events struct {
	mu      sync.Mutex
	records []*record
	nextID  int64
	now     func() time.Time
}

// NewEvents returns an empty store. now stamps created_at of new events.
func NewEvents(now func() time.Time) *Events {
	return &Events{nextID: 1, now: now}
}

func (s *Events) Search(_ context.Context, f model.SearchFilters, after *repository.Ref, limit int) ([]repository.Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var refs []repository.Ref
	for _, r := range s.records {
		if matches(r, f) {
			refs = append(refs, repository.Ref{ID: r.id, At: r.createdAt})
		}
	}
	return pageAfter(refs, after, limit), nil
}

func matches(r *record, f model.SearchFilters) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.detail.Category.Value) {
		return false
	}
	if len(f.Districts) > 0 && !slices.ContainsFunc(r.districts, func(id int) bool { return slices.Contains(f.Districts, id) }) {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(r.tags, func(t string) bool { return slices.Contains(f.Tags, t) }) {
		return false
	}
	fee := r.detail.ParticipationFee
	if f.MinParticipationFee != nil && (fee == nil || *fee < *f.MinParticipationFee) {
		return false
	}
	if f.MaxParticipationFee != nil && (fee == nil || *fee > *f.MaxParticipationFee) {
		return false
	}
	return true
}

func (s *Events) OngoingFestivals(_ context.Context, day time.Time, after *repository.Ref, limit int) ([]repository.Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := day.Format(time.DateOnly)
	var refs []repository.Ref
	for _, r := range s.records {
		p := r.detail.Period
		if r.detail.Category.Value == "festival" &&
			p.Start.Format(time.DateOnly) <= d && p.End.Format(time.DateOnly) >= d {
			refs = append(refs, repository.Ref{ID: r.id, At: r.createdAt})
		}
	}
	return pageAfter(refs, after, limit), nil
}

func (s *Events) Newest(ctx context.Context, after *repository.Ref, limit int) ([]repository.Ref, error) {
	return s.Search(ctx, model.SearchFilters{}, after, limit)
}

func (s *Events) LoadEvents(_ context.Context, ids []int64) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, 0, len(ids))
	for _, id := range ids {
		r := s.byID(id)
		if r == nil {
			continue
		}
		d := r.detail
		out = append(out, model.Event{
			ID:                   r.id,
			UUID:                 d.UUID,
			Category:             d.Category,
			Tags:                 d.Tags,
			OriginalName:         d.Name,
			Name:                 d.RefinedName,
			Districts:            d.Districts,
			ParticipationFee:     d.ParticipationFee,
			Period:               d.Period,
			RegistrationSessions: slices.Clone(d.RegistrationSessions),
			CreatedAt:            r.createdAt,
		})
	}
	return out, nil
}

func (s *Events) Detail(_ context.Context, eventUUID string) (*model.EventDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.byUUID(eventUUID)
	if r == nil {
		return nil, repository.ErrNotFound
	}
	d := r.detail
	d.RegistrationSessions = slices.Clone(d.RegistrationSessions)
	return &d, nil
}

func (s *Events) IDByUUID(_ context.Context, eventUUID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.byUUID(eventUUID)
	if r == nil {
		return 0, repository.ErrNotFound
	}
	return r.id, nil
}

func (s *Events) Create(_ context.Context, req model.CreateEventRequest) (string, error) {
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return "", err
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return "", err
	}

	sessions := req.Sessions()
	registration.SortSessions(sessions)

	var districts []string
	for _, d := range district.LevelTwoByIDs(req.DistrictIDs) {
		districts = append(districts, d.Name)
	}

	d := model.EventDetail{
		UUID:                 uuid.NewString(),
		Name:                 req.Name,
		RefinedName:          req.RefinedName,
		Category:             model.CategoryLabel(req.Category),
		Tags:                 model.TagLabels(req.Tags),
		Period:               model.Period{Start: start, End: end},
		TimetableSlots:       req.TimetableSlots,
		Districts:            districts,
		Venue:                model.Venue{T: "offline", Name: req.VenueName, Address: req.VenueAddress},
		InstitutionName:      req.InstitutionName,
		SourceURL:            req.SourceURL,
		ContactPhone:         req.ContactPhone,
		RegistrationSessions: sessions,
		RegistrationMethods:  req.RegistrationMethods,
		Description:          req.Description,
		Capacity:             req.Capacity,
		ParticipationFee:     req.ParticipationFee,
		TargetResidence:      req.TargetResidence,
	}
	if req.VenueLocation != nil {
		d.Venue.Location = *req.VenueLocation
	}
	if d.TimetableSlots == nil {
		d.TimetableSlots = []model.TimetableSlot{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, &record{
		detail:    d,
		id:        s.nextID,
		createdAt: s.now(),
		districts: req.DistrictIDs,
		tags:      req.Tags,
	})
	s.nextID++
	return d.UUID, nil
}

func (s *Events) Delete(_ context.Context, eventUUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.detail.UUID == eventUUID {
			s.records = slices.Delete(s.records, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Events) byID(id int64) *record {
	for _, r := range s.records {
		if r.id == id {
			return r
		}
	}
	return nil
}

func (s *Events) byUUID(v string) *record {
	for _, r := range s.records {
		if r.detail.UUID == v {
			return r
		}
	}
	return nil
}

type userEvent struct{ user, event int64 }

// Marks is an in-memory per-user event list. It serves both as a
// FavoriteStore and as a HistoryStore.
type Marks struct {
	mu    sync.Mutex
	marks map[userEvent]time.Time
	now   func() time.Time
}

// NewMarks returns an empty Marks. now stamps bookmarks.
func NewMarks(now func() time.Time) *Marks {
	return &Marks{marks: map[userEvent]time.Time{}, now: now}
}

func (m *Marks) Add(_ context.Context, userID, eventID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := userEvent{userID, eventID}
	if _, ok := m.marks[k]; ok {
		return repository.ErrAlreadyExists
	}
	m.marks[k] = m.now()
	return nil
}

func (m *Marks) Remove(_ context.Context, userID, eventID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.marks, userEvent{userID, eventID})
	return nil
}

func (m *Marks) Exists(_ context.Context, userID, eventID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.marks[userEvent{userID, eventID}]
	return ok, nil
}

func (m *Marks) Record(_ context.Context, userID, eventID int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks[userEvent{userID, eventID}] = at
	return nil
}

func (m *Marks) Page(_ context.Context, userID int64, after *repository.Ref, limit int) ([]repository.Ref, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var refs []repository.Ref
	for k, at := range m.marks {
		if k.user == userID {
			refs = append(refs, repository.Ref{ID: k.event, At: at})
		}
	}
	return pageAfter(refs, after, limit), nil
}

// Users is an in-memory UserStore.
type Users struct {
	mu     sync.Mutex
	byAuth map[string]model.User
	nextID int64
	now    func() time.Time
}

// NewUsers returns an empty Users.
func NewUsers(now func() time.Time) *Users {
	return &Users{byAuth: map[string]model.User{}, nextID: 1, now: now}
}

func (s *Users) GetByAuthID(_ context.Context, authID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byAuth[authID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Users) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byAuth[u.AuthID]; ok {
		return repository.ErrAlreadyExists
	}
	u.ID = s.nextID
	u.CreatedAt = s.now()
	s.nextID++
	s.byAuth[u.AuthID] = *u
	return nil
}

// pageAfter sorts refs newest first and returns up to limit of them that
// come strictly after the cursor.
func pageAfter(refs []repository.Ref, after *repository.Ref, limit int) []repository.Ref {
	sort.Slice(refs, func(i, j int) bool {
		if !refs[i].At.Equal(refs[j].At) {
			return refs[i].At.After(refs[j].At)
		}
		return refs[i].ID > refs[j].ID
	})
	out := make([]repository.Ref, 0, limit)
	for _, r := range refs {
		if after != nil && !(r.At.Before(after.At) || (r.At.Equal(after.At) && r.ID < after.ID)) {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, r)
	}
	return out
}
