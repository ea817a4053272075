// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/district"
	"github.com/Shivanand-hulikatti/event-finder/internal/model"
	"github.com/Shivanand-hulikatti/event-finder/internal/registration"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidInput wraps every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// MaxPageSize caps the page size a caller may request.
const MaxPageSize = 100

// EventStore is the event half of the Event Repository.
type EventStore interface {
	Search(ctx context.Context, f model.SearchFilters, after *repository.Ref, limit int) ([]repository.Ref, error)
	OngoingFestivals(ctx context.Context, day time.Time, after *repository.Ref, limit int) ([]repository.Ref, error)
	Newest(ctx context.Context, after *repository.Ref, limit int) ([]repository.Ref, error)
	LoadEvents(ctx context.Context, ids []int64) ([]model.Event, error)
	Detail(ctx context.Context, eventUUID string) (*model.EventDetail, error)
	IDByUUID(ctx context.Context, eventUUID string) (int64, error)
	Create(ctx context.Context, req model.CreateEventRequest) (string, error)
	Delete(ctx context.Context, eventUUID string) error
}

// FavoriteStore persists bookmarks.
type FavoriteStore interface {
	Add(ctx context.Context, userID, eventID int64) error
	Remove(ctx context.Context, userID, eventID int64) error
	Exists(ctx context.Context, userID, eventID int64) (bool, error)
	Page(ctx context.Context, userID int64, after *repository.Ref, limit int) ([]repository.Ref, error)
}

// HistoryStore persists view history.
type HistoryStore interface {
	Record(ctx context.Context, userID, eventID int64, at time.Time) error
	Page(ctx context.Context, userID int64, after *repository.Ref, limit int) ([]repository.Ref, error)
}

// UserStore persists users.
type UserStore interface {
	GetByAuthID(ctx context.Context, authID string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// EventService orchestrates event-related business operations.
type EventService struct {
	events    EventStore
	favorites FavoriteStore
	history   HistoryStore
	users     UserStore

	validate *validator.Validate
	loc      *time.Location
	pageSize int
	now      func() time.Time
	log      logrus.FieldLogger
}

// Option customises an EventService.
type Option func(*EventService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *EventService) { s.now = now }
}

// WithLocation sets the time zone event dates are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(s *EventService) { s.loc = loc }
}

// WithPageSize sets the default page size.
func WithPageSize(n int) Option {
	return func(s *EventService) { s.pageSize = n }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *EventService) { s.log = l }
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(events EventStore, favorites FavoriteStore, history HistoryStore, users UserStore, opts ...Option) *EventService {
	s := &EventService{
		events:    events,
		favorites: favorites,
		history:   history,
		users:     users,
		validate:  validator.New(),
		loc:       time.UTC,
		pageSize:  20,
		now:       time.Now,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchEvents returns one page of events matching f.
func (s *EventService) SearchEvents(ctx context.Context, f model.SearchFilters, token string, limit int) (*model.Page[model.Event], error) {
	if err := s.validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if f.MinParticipationFee != nil && f.MaxParticipationFee != nil && *f.MinParticipationFee > *f.MaxParticipationFee {
		return nil, fmt.Errorf("%w: minFee is greater than maxFee", ErrInvalidInput)
	}
	limit, err := s.limit(limit)
	if err != nil {
		return nil, err
	}
	if f.RegistrationStatus != "" {
		return s.searchByRegistration(ctx, f, token, limit)
	}

	refs, err := s.events.Search(ctx, f, repository.ParseToken(token), limit+1)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return s.page(ctx, refs, limit)
}

// searchByRegistration pages over events whose registration status is
// f.RegistrationStatus. The status depends on now, so the store is scanned
// in batches and classified here until limit+1 events match or the store
// runs out. NextToken points at the last returned match.
func (s *EventService) searchByRegistration(ctx context.Context, f model.SearchFilters, token string, limit int) (*model.Page[model.Event], error) {
	want := registration.Kind(f.RegistrationStatus)
	batch := max(limit+1, MaxPageSize)
	after := repository.ParseToken(token)

	var matched []model.Event
	var refs []repository.Ref
	for len(matched) <= limit {
		batchRefs, err := s.events.Search(ctx, f, after, batch)
		if err != nil {
			return nil, fmt.Errorf("search events: %w", err)
		}
		if len(batchRefs) == 0 {
			break
		}
		events, err := s.load(ctx, batchRefs)
		if err != nil {
			return nil, err
		}
		byID := make(map[int64]repository.Ref, len(batchRefs))
		for _, ref := range batchRefs {
			byID[ref.ID] = ref
		}
		for _, e := range events {
			if e.RegistrationStatus == nil || e.RegistrationStatus.Kind() != want {
				continue
			}
			matched = append(matched, e)
			refs = append(refs, byID[e.ID])
			if len(matched) > limit {
				break
			}
		}
		if len(batchRefs) < batch {
			break
		}
		last := batchRefs[len(batchRefs)-1]
		after = &last
	}

	page := &model.Page[model.Event]{Events: []model.Event{}}
	if len(matched) > limit {
		matched = matched[:limit]
		page.NextToken = refs[limit-1].Token()
	}
	if len(matched) > 0 {
		page.Events = matched
	}
	return page, nil
}

// OngoingFestivals returns festivals running today.
func (s *EventService) OngoingFestivals(ctx context.Context, token string, limit int) (*model.Page[model.Event], error) {
	limit, err := s.limit(limit)
	if err != nil {
		return nil, err
	}
	today := s.now().In(s.loc)
	refs, err := s.events.OngoingFestivals(ctx, today, repository.ParseToken(token), limit+1)
	if err != nil {
		return nil, fmt.Errorf("list ongoing festivals: %w", err)
	}
	return s.page(ctx, refs, limit)
}

// NewEvents returns events ordered by creation time, newest first.
func (s *EventService) NewEvents(ctx context.Context, token string, limit int) (*model.Page[model.Event], error) {
	limit, err := s.limit(limit)
	if err != nil {
		return nil, err
	}
	refs, err := s.events.Newest(ctx, repository.ParseToken(token), limit+1)
	if err != nil {
		return nil, fmt.Errorf("list new events: %w", err)
	}
	return s.page(ctx, refs, limit)
}

// GetEvent returns the detail of an event. When authID is non-empty and
// belongs to a known user the view is recorded; failing to record it is
// logged, not returned.
func (s *EventService) GetEvent(ctx context.Context, eventUUID, authID string) (*model.EventDetail, error) {
	if err := checkUUID(eventUUID); err != nil {
		return nil, err
	}
	d, err := s.events.Detail(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now()
	d.Period = s.localPeriod(d.Period)
	d.RegistrationStatus = registration.Classify(d.RegistrationSessions, d.Period.Start, now)
	d.Status = d.Period.Status(now)

	if authID != "" {
		if err := s.RecordView(ctx, eventUUID, authID); err != nil && !errors.Is(err, ErrUnknownUser) {
			s.log.WithError(err).WithField("event", eventUUID).Warn("record event view")
		}
	}
	return d, nil
}

// CreateEvent validates the request and stores the event.
func (s *EventService) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.EventDetail, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.EndDate < req.StartDate {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	for i, sess := range req.RegistrationSessions {
		if sess.Open != nil && sess.Close != nil && sess.Close.Before(*sess.Open) {
			return nil, fmt.Errorf("%w: registration session %d closes before it opens", ErrInvalidInput, i)
		}
	}
	if loc := req.VenueLocation; loc != nil && (loc[0] < -180 || loc[0] > 180 || loc[1] < -90 || loc[1] > 90) {
		return nil, fmt.Errorf("%w: venueLocation must be [lng, lat] within ±180 and ±90", ErrInvalidInput)
	}
	if known := district.LevelTwoByIDs(req.DistrictIDs); len(known) != len(req.DistrictIDs) {
		return nil, fmt.Errorf("%w: unknown district id in %v", ErrInvalidInput, req.DistrictIDs)
	}

	eventUUID, err := s.events.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.log.WithField("event", eventUUID).Info("event created")
	return s.GetEvent(ctx, eventUUID, "")
}

// DeleteEvent removes an event.
func (s *EventService) DeleteEvent(ctx context.Context, eventUUID string) error {
	if err := checkUUID(eventUUID); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventUUID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// limit applies the default page size and the upper bound.
func (s *EventService) limit(n int) (int, error) {
	switch {
	case n == 0:
		return s.pageSize, nil
	case n < 0 || n > MaxPageSize:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxPageSize)
	}
	return n, nil
}

// page trims a limit+1 probe to limit refs, loads the events and derives
// their statuses.
func (s *EventService) page(ctx context.Context, refs []repository.Ref, limit int) (*model.Page[model.Event], error) {
	page := &model.Page[model.Event]{Events: []model.Event{}}
	if len(refs) == 0 {
		return page, nil
	}
	if len(refs) > limit {
		refs = refs[:limit]
		page.NextToken = refs[len(refs)-1].Token()
	}
	events, err := s.load(ctx, refs)
	if err != nil {
		return nil, err
	}
	page.Events = events
	return page, nil
}

// load fetches the events behind refs, in ref order, with their period and
// registration statuses computed at now.
func (s *EventService) load(ctx context.Context, refs []repository.Ref) ([]model.Event, error) {
	ids := make([]int64, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	events, err := s.events.LoadEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	now := s.now()
	for i := range events {
		e := &events[i]
		e.Period = s.localPeriod(e.Period)
		e.RegistrationStatus = registration.Classify(e.RegistrationSessions, e.Period.Start, now)
		e.Status = e.Period.Status(now)
	}
	return events, nil
}

// localPeriod reinterprets stored calendar dates as midnight in the
// service time zone.
func (s *EventService) localPeriod(p model.Period) model.Period {
	return model.Period{Start: s.localDate(p.Start), End: s.localDate(p.End)}
}

func (s *EventService) localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func checkUUID(v string) error {
	if _, err := uuid.Parse(v); err != nil {
		return repository.ErrNotFound
	}
	return nil
}
