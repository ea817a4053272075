// Package repository implements all database queries for the event finder.
// It uses pgx directly (no ORM).
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/model"
	"github.com/Shivanand-hulikatti/event-finder/internal/registration"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when an insert hits a unique constraint.
var ErrAlreadyExists = errors.New("already exists")

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Search returns up to limit refs of events matching f, newest first,
// strictly after the given cursor. The registration status filter is not
// applied here.
func (r *EventRepository) Search(ctx context.Context, f model.SearchFilters, after *Ref, limit int) ([]Ref, error) {
	var cursorAt *time.Time
	var cursorID *int64
	if after != nil {
		cursorAt, cursorID = &after.At, &after.ID
	}

	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.created_at
		 FROM public_event e
		 WHERE ($1::text[] IS NULL OR e.category = ANY($1))
		   AND ($2::int[] IS NULL OR EXISTS (
		         SELECT 1 FROM pe_district d WHERE d.pe_id = e.id AND d.district_id = ANY($2)))
		   AND ($3::int IS NULL OR e.participation_fee >= $3)
		   AND ($4::int IS NULL OR e.participation_fee <= $4)
		   AND ($5::text[] IS NULL OR EXISTS (
		         SELECT 1 FROM pe_tag t WHERE t.pe_id = e.id AND t.tag = ANY($5)))
		   AND ($6::timestamptz IS NULL OR (e.created_at, e.id) < ($6, $7::bigint))
		 ORDER BY e.created_at DESC, e.id DESC
		 LIMIT $8`,
		nilIfEmpty(f.Categories), nilIfEmpty(f.Districts),
		f.MinParticipationFee, f.MaxParticipationFee,
		nilIfEmpty(f.Tags), cursorAt, cursorID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return scanRefs(rows)
}

// OngoingFestivals returns refs of festivals whose period contains day.
func (r *EventRepository) OngoingFestivals(ctx context.Context, day time.Time, after *Ref, limit int) ([]Ref, error) {
	var cursorAt *time.Time
	var cursorID *int64
	if after != nil {
		cursorAt, cursorID = &after.At, &after.ID
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, created_at
		 FROM public_event
		 WHERE category = 'festival'
		   AND start_date <= $1::date AND end_date >= $1::date
		   AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::bigint))
		 ORDER BY created_at DESC, id DESC
		 LIMIT $4`,
		day.Format(time.DateOnly), cursorAt, cursorID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list ongoing festivals: %w", err)
	}
	return scanRefs(rows)
}

// Newest returns refs of events ordered by creation time, newest first.
func (r *EventRepository) Newest(ctx context.Context, after *Ref, limit int) ([]Ref, error) {
	return r.Search(ctx, model.SearchFilters{}, after, limit)
}

// LoadEvents fetches list representations for ids, in the order of ids.
// Registration sessions are sorted chronologically. Computed statuses are
// left for the caller.
func (r *EventRepository) LoadEvents(ctx context.Context, ids []int64) ([]model.Event, error) {
	if len(ids) == 0 {
		return []model.Event{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.uuid::text, e.name, e.refined_name, e.participation_fee,
		        e.start_date, e.end_date, e.category, e.created_at,
		        COALESCE((SELECT array_agg(t.tag ORDER BY t.tag)
		                  FROM pe_tag t WHERE t.pe_id = e.id), '{}'),
		        COALESCE((SELECT array_agg(d.name ORDER BY d.level, d.id)
		                  FROM pe_district pd JOIN district d ON d.id = pd.district_id
		                  WHERE pd.pe_id = e.id), '{}')
		 FROM public_event e
		 WHERE e.id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*model.Event, len(ids))
	for rows.Next() {
		var (
			e        model.Event
			category string
			tags     []string
		)
		if err := rows.Scan(&e.ID, &e.UUID, &e.OriginalName, &e.Name, &e.ParticipationFee,
			&e.Period.Start, &e.Period.End, &category, &e.CreatedAt, &tags, &e.Districts); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Category = model.CategoryLabel(category)
		e.Tags = model.TagLabels(tags)
		e.RegistrationSessions = []registration.Session{}
		byID[e.ID] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	sessions, err := r.sessions(ctx, ids)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			continue
		}
		if s := sessions[id]; s != nil {
			e.RegistrationSessions = s
		}
		events = append(events, *e)
	}
	return events, nil
}

// sessions returns the registration sessions of each event, sorted.
func (r *EventRepository) sessions(ctx context.Context, ids []int64) (map[int64][]registration.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT pe_id, open_dt, close_dt
		 FROM pe_registration_session
		 WHERE pe_id = ANY($1)
		 ORDER BY id`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list registration sessions: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]registration.Session)
	for rows.Next() {
		var (
			id int64
			s  registration.Session
		)
		if err := rows.Scan(&id, &s.Open, &s.Close); err != nil {
			return nil, fmt.Errorf("scan registration session: %w", err)
		}
		out[id] = append(out[id], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registration sessions: %w", err)
	}

	for _, s := range out {
		registration.SortSessions(s)
	}
	return out, nil
}

// Detail returns the full representation of one event or ErrNotFound.
func (r *EventRepository) Detail(ctx context.Context, eventUUID string) (*model.EventDetail, error) {
	var (
		d        model.EventDetail
		id       int64
		category string
		tags     []string
		lng, lat *float64
		venue    struct{ name, address *string }
	)
	err := r.db.QueryRow(ctx,
		`SELECT e.id, e.uuid::text, e.name, e.refined_name, e.description, e.category,
		        e.institution_name, e.start_date, e.end_date, e.venue_name, e.venue_address,
		        e.venue_lng, e.venue_lat, e.capacity, e.participation_fee, e.contact_phone,
		        e.target_residence, e.registration_methods, e.source_url,
		        COALESCE((SELECT array_agg(t.tag ORDER BY t.tag)
		                  FROM pe_tag t WHERE t.pe_id = e.id), '{}'),
		        (SELECT array_agg(d.name ORDER BY d.level, d.id)
		         FROM pe_district pd JOIN district d ON d.id = pd.district_id
		         WHERE pd.pe_id = e.id)
		 FROM public_event e
		 WHERE e.uuid = $1`,
		eventUUID,
	).Scan(&id, &d.UUID, &d.Name, &d.RefinedName, &d.Description, &category,
		&d.InstitutionName, &d.Period.Start, &d.Period.End, &venue.name, &venue.address,
		&lng, &lat, &d.Capacity, &d.ParticipationFee, &d.ContactPhone,
		&d.TargetResidence, &d.RegistrationMethods, &d.SourceURL, &tags, &d.Districts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event detail: %w", err)
	}

	d.Category = model.CategoryLabel(category)
	d.Tags = model.TagLabels(tags)
	d.Venue = model.Venue{T: "offline", Name: deref(venue.name), Address: deref(venue.address)}
	if lng != nil && lat != nil {
		d.Venue.Location = [2]float64{*lng, *lat}
	}

	sessions, err := r.sessions(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	d.RegistrationSessions = sessions[id]
	if d.RegistrationSessions == nil {
		d.RegistrationSessions = []registration.Session{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, day, start_time, end_time
		 FROM pe_timetable_slot
		 WHERE pe_id = $1
		 ORDER BY day, start_time`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("list timetable slots: %w", err)
	}
	d.TimetableSlots, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TimetableSlot, error) {
		var s model.TimetableSlot
		err := row.Scan(&s.ID, &s.Day, &s.StartTime, &s.EndTime)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan timetable slot: %w", err)
	}

	return &d, nil
}

// IDByUUID resolves an event UUID to its row id.
func (r *EventRepository) IDByUUID(ctx context.Context, eventUUID string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM public_event WHERE uuid = $1`, eventUUID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get event id: %w", err)
	}
	return id, nil
}

// Create inserts an event with its sessions, tags, districts and timetable
// in one transaction and returns the generated UUID.
func (r *EventRepository) Create(ctx context.Context, req model.CreateEventRequest) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var lng, lat *float64
	if req.VenueLocation != nil {
		lng, lat = &req.VenueLocation[0], &req.VenueLocation[1]
	}

	eventUUID := uuid.New().String()
	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO public_event (uuid, name, refined_name, description, category,
		        institution_name, start_date, end_date, venue_name, venue_address,
		        venue_lng, venue_lat, capacity, participation_fee, contact_phone,
		        target_residence, registration_methods, source_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::date, $9, $10,
		         $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING id`,
		eventUUID, req.Name, req.RefinedName, req.Description, req.Category,
		req.InstitutionName, req.StartDate, req.EndDate, req.VenueName, req.VenueAddress,
		lng, lat, req.Capacity, req.ParticipationFee, req.ContactPhone,
		req.TargetResidence, req.RegistrationMethods, req.SourceURL,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}

	batch := &pgx.Batch{}
	for _, tag := range req.Tags {
		batch.Queue(`INSERT INTO pe_tag (pe_id, tag) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, tag)
	}
	for _, districtID := range req.DistrictIDs {
		batch.Queue(`INSERT INTO pe_district (pe_id, district_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, districtID)
	}
	for _, s := range req.RegistrationSessions {
		batch.Queue(`INSERT INTO pe_registration_session (pe_id, open_dt, close_dt) VALUES ($1, $2, $3)`, id, s.Open, s.Close)
	}
	for _, s := range req.TimetableSlots {
		batch.Queue(`INSERT INTO pe_timetable_slot (pe_id, day, start_time, end_time) VALUES ($1, $2, $3, $4)`,
			id, s.Day, s.StartTime, s.EndTime)
	}
	if batch.Len() > 0 {
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return "", fmt.Errorf("insert event children: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}
	return eventUUID, nil
}

// Delete removes an event and, by cascade, everything attached to it.
func (r *EventRepository) Delete(ctx context.Context, eventUUID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM public_event WHERE uuid = $1`, eventUUID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRefs(rows pgx.Rows) ([]Ref, error) {
	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Ref, error) {
		var ref Ref
		err := row.Scan(&ref.ID, &ref.At)
		return ref, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ref: %w", err)
	}
	return refs, nil
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
