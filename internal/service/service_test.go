package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/model"
	"github.com/Shivanand-hulikatti/event-finder/internal/registration"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository/memstore"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var seoul = time.FixedZone("KST", 9*60*60)

type fixture struct {
	svc   *EventService
	now   time.Time
	clock func() time.Time
	tick  *time.Duration
	logs  *test.Hook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{now: time.Date(2025, 1, 15, 10, 0, 0, 0, seoul), tick: new(time.Duration)}
	// Every call advances the clock so creation order is observable.
	f.clock = func() time.Time {
		*f.tick += time.Second
		return f.now.Add(*f.tick)
	}

	logger, hook := test.NewNullLogger()
	f.logs = hook
	f.svc = NewEventService(
		memstore.NewEvents(f.clock),
		memstore.NewMarks(f.clock),
		memstore.NewMarks(f.clock),
		memstore.NewUsers(f.clock),
		WithClock(func() time.Time { return f.now }),
		WithLocation(seoul),
		WithPageSize(2),
		WithLogger(logger),
	)
	return f
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) create(t *testing.T, name, category, start, end string, sessions ...model.SessionInput) *model.EventDetail {
	t.Helper()
	d, err := f.svc.CreateEvent(context.Background(), model.CreateEventRequest{
		Name:                 name,
		RefinedName:          name,
		Category:             category,
		InstitutionName:      "구립도서관",
		StartDate:            start,
		EndDate:              end,
		SourceURL:            "https://example.com/events/1",
		RegistrationSessions: sessions,
	})
	if err != nil {
		t.Fatalf("CreateEvent(%s): %v", name, err)
	}
	return d
}

func kst(y int, m time.Month, d, h int) *time.Time {
	return ptr(time.Date(y, m, d, h, 0, 0, 0, seoul))
}

func TestGetEventClassifiesRegistration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	upcoming := f.create(t, "코딩 강좌", "lecture", "2025-02-01", "2025-02-28",
		model.SessionInput{Open: kst(2025, 1, 20, 9), Close: kst(2025, 1, 25, 18)})
	firstCome := f.create(t, "도자기 체험", "experience", "2025-02-01", "2025-02-02",
		model.SessionInput{Open: kst(2025, 1, 10, 9)})
	none := f.create(t, "상설 전시", "exhibition", "2025-01-01", "2025-12-31")

	tests := []struct {
		uuid   string
		want   registration.Status
		status model.EventStatus
	}{
		{upcoming.UUID, registration.Upcoming{LeftDays: 5}, model.EventUpcoming},
		{firstCome.UUID, registration.Opened{FirstComeServed: true}, model.EventUpcoming},
		{none.UUID, nil, model.EventOngoing},
	}
	for _, tt := range tests {
		d, err := f.svc.GetEvent(ctx, tt.uuid, "")
		if err != nil {
			t.Fatalf("GetEvent: %v", err)
		}
		if d.RegistrationStatus != tt.want {
			t.Errorf("%s: registration status = %#v, want %#v", d.Name, d.RegistrationStatus, tt.want)
		}
		if d.Status != tt.status {
			t.Errorf("%s: status = %s, want %s", d.Name, d.Status, tt.status)
		}
	}

	// Once the event period starts, a right-open registration closes.
	f.now = time.Date(2025, 2, 1, 0, 0, 0, 0, seoul)
	d, err := f.svc.GetEvent(ctx, firstCome.UUID, "")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if d.RegistrationStatus != (registration.Closed{}) {
		t.Errorf("after period start: %#v, want Closed", d.RegistrationStatus)
	}
}

func TestCreateEventSortsSessions(t *testing.T) {
	f := newFixture(t)
	d := f.create(t, "요리 교실", "lecture", "2025-03-01", "2025-03-31",
		model.SessionInput{Open: kst(2025, 1, 20, 9), Close: kst(2025, 1, 22, 18)},
		model.SessionInput{Close: kst(2025, 1, 10, 18)},
	)
	if len(d.RegistrationSessions) != 2 || d.RegistrationSessions[0].Open != nil {
		t.Fatalf("sessions not sorted: %+v", d.RegistrationSessions)
	}
	if d.RegistrationStatus != (registration.Upcoming{LeftDays: 5}) {
		t.Errorf("status = %#v", d.RegistrationStatus)
	}
}

func TestCreateEventValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	valid := model.CreateEventRequest{
		Name: "a", RefinedName: "a", Category: "lecture", InstitutionName: "i",
		StartDate: "2025-03-01", EndDate: "2025-03-02", SourceURL: "https://example.com",
	}

	tests := map[string]func(r *model.CreateEventRequest){
		"missing name":     func(r *model.CreateEventRequest) { r.Name = "" },
		"unknown category": func(r *model.CreateEventRequest) { r.Category = "party" },
		"bad date":         func(r *model.CreateEventRequest) { r.StartDate = "03/01/2025" },
		"end before start": func(r *model.CreateEventRequest) { r.EndDate = "2025-02-01" },
		"negative fee":     func(r *model.CreateEventRequest) { r.ParticipationFee = ptr(-1) },
		"bad url":          func(r *model.CreateEventRequest) { r.SourceURL = "nope" },
		"inverted session": func(r *model.CreateEventRequest) {
			r.RegistrationSessions = []model.SessionInput{{Open: kst(2025, 1, 20, 9), Close: kst(2025, 1, 10, 9)}}
		},
		"unknown district": func(r *model.CreateEventRequest) { r.DistrictIDs = []int{-18, 999999} },
		"longitude out of range": func(r *model.CreateEventRequest) {
			r.VenueLocation = &[2]float64{181, 37.5}
		},
		"latitude out of range": func(r *model.CreateEventRequest) {
			r.VenueLocation = &[2]float64{127.0, -91}
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			if _, err := f.svc.CreateEvent(ctx, req); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateEventAcceptsVenueAndDistricts(t *testing.T) {
	f := newFixture(t)
	d, err := f.svc.CreateEvent(context.Background(), model.CreateEventRequest{
		Name: "a", RefinedName: "a", Category: "lecture", InstitutionName: "i",
		StartDate: "2025-03-01", EndDate: "2025-03-02", SourceURL: "https://example.com",
		VenueLocation: &[2]float64{-180, 90},
		DistrictIDs:   []int{-18, 41},
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if want := []string{"강남구", "중구"}; len(d.Districts) != 2 || d.Districts[0] != want[0] || d.Districts[1] != want[1] {
		t.Errorf("districts = %v, want %v", d.Districts, want)
	}
	if d.Venue.Location != [2]float64{-180, 90} {
		t.Errorf("location = %v", d.Venue.Location)
	}
}

func TestGetEventNotFound(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"not-a-uuid", "4b6c2f5e-1d0a-4f7e-9a57-0c3d2b1e8f90"} {
		if _, err := f.svc.GetEvent(context.Background(), id, ""); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("GetEvent(%q) err = %v, want ErrNotFound", id, err)
		}
	}
}

func TestSearchPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var names []string
	for _, n := range []string{"첫째", "둘째", "셋째", "넷째", "다섯째"} {
		f.create(t, n, "lecture", "2025-03-01", "2025-03-02")
		names = append([]string{n}, names...)
	}

	var got []string
	token := ""
	pages := 0
	for {
		page, err := f.svc.SearchEvents(ctx, model.SearchFilters{}, token, 0)
		if err != nil {
			t.Fatalf("SearchEvents: %v", err)
		}
		pages++
		for _, e := range page.Events {
			got = append(got, e.Name)
		}
		if page.NextToken == "" {
			break
		}
		token = page.NextToken
	}

	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	if len(got) != len(names) {
		t.Fatalf("got %v, want %v", got, names)
	}
	for i := range names {
		if got[i] != names[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], names[i])
		}
	}
}

func TestSearchFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "열린 강좌", "lecture", "2025-03-01", "2025-03-02",
		model.SessionInput{Open: kst(2025, 1, 10, 9), Close: kst(2025, 1, 20, 18)})
	f.create(t, "예정 강좌", "lecture", "2025-03-01", "2025-03-02",
		model.SessionInput{Open: kst(2025, 1, 20, 9), Close: kst(2025, 1, 25, 18)})
	f.create(t, "축제", "festival", "2025-03-01", "2025-03-02")

	page, err := f.svc.SearchEvents(ctx, model.SearchFilters{RegistrationStatus: "opened"}, "", 10)
	if err != nil {
		t.Fatalf("SearchEvents: %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].Name != "열린 강좌" {
		t.Errorf("opened filter = %+v", page.Events)
	}

	page, err = f.svc.SearchEvents(ctx, model.SearchFilters{Categories: []string{"festival"}}, "", 10)
	if err != nil {
		t.Fatalf("SearchEvents: %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].Category.Name != "행사/축제" {
		t.Errorf("category filter = %+v", page.Events)
	}

	bad := []model.SearchFilters{
		{RegistrationStatus: "closed"},
		{Categories: []string{"party"}},
		{MinParticipationFee: ptr(5000), MaxParticipationFee: ptr(1000)},
	}
	for _, filters := range bad {
		if _, err := f.svc.SearchEvents(ctx, filters, "", 10); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SearchEvents(%+v) err = %v, want ErrInvalidInput", filters, err)
		}
	}
	if _, err := f.svc.SearchEvents(ctx, model.SearchFilters{}, "", MaxPageSize+1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("oversized limit err = %v", err)
	}
}

func TestSearchRegistrationStatusFillsPages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	opened := model.SessionInput{Open: kst(2025, 1, 10, 9), Close: kst(2025, 1, 20, 18)}
	closed := model.SessionInput{Open: kst(2025, 1, 1, 9), Close: kst(2025, 1, 5, 18)}

	// Oldest first; matching events sit behind runs of closed ones.
	f.create(t, "열림1", "lecture", "2025-03-01", "2025-03-02", opened)
	for _, n := range []string{"마감1", "마감2", "마감3"} {
		f.create(t, n, "lecture", "2025-03-01", "2025-03-02", closed)
	}
	f.create(t, "열림2", "lecture", "2025-03-01", "2025-03-02", opened)
	for _, n := range []string{"마감4", "마감5", "마감6"} {
		f.create(t, n, "lecture", "2025-03-01", "2025-03-02", closed)
	}

	filters := model.SearchFilters{RegistrationStatus: "opened"}
	tests := []struct {
		limit int
		pages [][]string
	}{
		{1, [][]string{{"열림2"}, {"열림1"}}},
		{2, [][]string{{"열림2", "열림1"}}},
		{5, [][]string{{"열림2", "열림1"}}},
	}
	for _, tt := range tests {
		var got [][]string
		token := ""
		for {
			page, err := f.svc.SearchEvents(ctx, filters, token, tt.limit)
			if err != nil {
				t.Fatalf("SearchEvents: %v", err)
			}
			var names []string
			for _, e := range page.Events {
				names = append(names, e.Name)
			}
			got = append(got, names)
			if page.NextToken == "" {
				break
			}
			if len(got) > len(tt.pages) {
				t.Fatalf("limit %d: too many pages: %v", tt.limit, got)
			}
			token = page.NextToken
		}
		if !reflect.DeepEqual(got, tt.pages) {
			t.Errorf("limit %d: pages = %v, want %v", tt.limit, got, tt.pages)
		}
	}

	page, err := f.svc.SearchEvents(ctx, model.SearchFilters{RegistrationStatus: "upcoming"}, "", 1)
	if err != nil {
		t.Fatalf("SearchEvents: %v", err)
	}
	if len(page.Events) != 0 || page.NextToken != "" {
		t.Errorf("no upcoming events: got %d events, token %q", len(page.Events), page.NextToken)
	}
}

func TestOngoingFestivals(t *testing.T) {
	f := newFixture(t)
	f.create(t, "겨울 축제", "festival", "2025-01-10", "2025-01-20")
	f.create(t, "봄 축제", "festival", "2025-04-01", "2025-04-10")
	f.create(t, "겨울 강좌", "lecture", "2025-01-10", "2025-01-20")

	page, err := f.svc.OngoingFestivals(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("OngoingFestivals: %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].Name != "겨울 축제" {
		t.Errorf("OngoingFestivals = %+v", page.Events)
	}
	if page.Events[0].Status != model.EventOngoing {
		t.Errorf("status = %s", page.Events[0].Status)
	}
}

func TestFavoritesAndHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.create(t, "가", "lecture", "2025-03-01", "2025-03-02")
	b := f.create(t, "나", "lecture", "2025-03-01", "2025-03-02")

	if _, err := f.svc.FavoriteEvents(ctx, "kakao|1", "", 0); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("FavoriteEvents before registration: err = %v", err)
	}

	u, created, err := f.svc.GetOrCreateUser(ctx, "kakao|1", nil)
	if err != nil || !created {
		t.Fatalf("GetOrCreateUser = %+v, %v, %v", u, created, err)
	}
	if len(u.UID) != 16 || u.Username == "" {
		t.Errorf("generated user = %+v", u)
	}
	again, created, err := f.svc.GetOrCreateUser(ctx, "kakao|1", nil)
	if err != nil || created || again.UID != u.UID {
		t.Errorf("second GetOrCreateUser = %+v, %v, %v", again, created, err)
	}

	for _, id := range []string{a.UUID, b.UUID, a.UUID} {
		if err := f.svc.AddFavorite(ctx, id, "kakao|1"); err != nil {
			t.Fatalf("AddFavorite: %v", err)
		}
	}
	ok, err := f.svc.IsFavorite(ctx, a.UUID, "kakao|1")
	if err != nil || !ok {
		t.Errorf("IsFavorite = %v, %v", ok, err)
	}
	ok, err = f.svc.IsFavorite(ctx, a.UUID, "")
	if err != nil || ok {
		t.Errorf("anonymous IsFavorite = %v, %v", ok, err)
	}

	page, err := f.svc.FavoriteEvents(ctx, "kakao|1", "", 10)
	if err != nil {
		t.Fatalf("FavoriteEvents: %v", err)
	}
	if len(page.Events) != 2 || page.Events[0].UUID != b.UUID {
		t.Errorf("favorites = %+v", page.Events)
	}

	if err := f.svc.RemoveFavorite(ctx, b.UUID, "kakao|1"); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	page, _ = f.svc.FavoriteEvents(ctx, "kakao|1", "", 10)
	if len(page.Events) != 1 || page.Events[0].UUID != a.UUID {
		t.Errorf("favorites after remove = %+v", page.Events)
	}

	// Viewing records history, most recent first.
	for _, id := range []string{a.UUID, b.UUID} {
		if _, err := f.svc.GetEvent(ctx, id, "kakao|1"); err != nil {
			t.Fatalf("GetEvent: %v", err)
		}
		f.now = f.now.Add(time.Minute)
	}
	page, err = f.svc.ViewHistory(ctx, "kakao|1", "", 10)
	if err != nil {
		t.Fatalf("ViewHistory: %v", err)
	}
	if len(page.Events) != 2 || page.Events[0].UUID != b.UUID {
		t.Errorf("history = %+v", page.Events)
	}

	// An unregistered identity viewing an event is not an error and is not logged.
	f.logs.Reset()
	if _, err := f.svc.GetEvent(ctx, a.UUID, "apple|2"); err != nil {
		t.Errorf("GetEvent by unknown user: %v", err)
	}
	for _, e := range f.logs.AllEntries() {
		if e.Level <= logrus.WarnLevel {
			t.Errorf("unexpected log: %s", e.Message)
		}
	}
}

func TestDeleteEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.create(t, "삭제", "lecture", "2025-03-01", "2025-03-02")

	if err := f.svc.DeleteEvent(ctx, d.UUID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if err := f.svc.DeleteEvent(ctx, d.UUID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second DeleteEvent err = %v", err)
	}
}
