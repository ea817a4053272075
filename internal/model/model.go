// Package model defines the core domain types for the event finder.
package model

import (
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/registration"
)

// Label pairs a stored value with its display name.
type Label struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// Period is the date range an event runs over. End is inclusive.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Status reports where now falls relative to the period.
func (p Period) Status(now time.Time) EventStatus {
	if now.Before(p.Start) {
		return EventUpcoming
	}
	if now.Before(p.End.AddDate(0, 0, 1)) {
		return EventOngoing
	}
	return EventEnded
}

// EventStatus is the lifecycle state of an event's own period.
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventOngoing  EventStatus = "ongoing"
	EventEnded    EventStatus = "ended"
)

// Event is the list representation of an event.
type Event struct {
	ID                   int64                  `json:"id"`
	UUID                 string                 `json:"uuid"`
	Category             Label                  `json:"category"`
	Tags                 []Label                `json:"tags"`
	OriginalName         string                 `json:"originalName"`
	Name                 string                 `json:"name"`
	Districts            []string               `json:"districts"`
	ParticipationFee     *int                   `json:"participationFee"`
	Period               Period                 `json:"period"`
	RegistrationSessions []registration.Session `json:"registrationSessions"`
	RegistrationStatus   registration.Status    `json:"registrationStatus"`
	Status               EventStatus            `json:"status"`
	CreatedAt            time.Time              `json:"-"`
}

// Venue is where an offline event takes place. Location is [lng, lat].
type Venue struct {
	T        string     `json:"t"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Location [2]float64 `json:"location"`
}

// TimetableSlot is a recurring weekly slot; Day is 0 (Sunday) to 6.
type TimetableSlot struct {
	ID        int64  `json:"id"`
	Day       int    `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// EventDetail is the full representation of a single event.
type EventDetail struct {
	UUID                 string                 `json:"uuid"`
	Name                 string                 `json:"name"`
	RefinedName          string                 `json:"refinedName"`
	Category             Label                  `json:"category"`
	Tags                 []Label                `json:"tags"`
	Period               Period                 `json:"period"`
	TimetableSlots       []TimetableSlot        `json:"timetableSlots"`
	Districts            []string               `json:"districts"`
	Venue                Venue                  `json:"venue"`
	InstitutionName      string                 `json:"institutionName"`
	SourceURL            string                 `json:"sourceUrl"`
	ContactPhone         *string                `json:"contactPhone"`
	RegistrationSessions []registration.Session `json:"registrationSessions"`
	RegistrationMethods  []string               `json:"registrationMethods"`
	RegistrationStatus   registration.Status    `json:"registrationStatus"`
	Status               EventStatus            `json:"status"`
	Description          *string                `json:"description"`
	Capacity             *int                   `json:"capacity"`
	ParticipationFee     *int                   `json:"participationFee"`
	TargetResidence      *string                `json:"targetResidence"`
}

// User is an application user bound to an identity-provider subject.
type User struct {
	ID              int64     `json:"-"`
	UID             string    `json:"uid"`
	AuthID          string    `json:"-"`
	Username        string    `json:"username"`
	Email           *string   `json:"email"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Page is one page of a cursor-paginated listing. NextToken is empty on
// the last page.
type Page[T any] struct {
	Events    []T    `json:"events"`
	NextToken string `json:"nextToken,omitempty"`
}

// SearchFilters narrows an event search. Zero values mean "no filter".
type SearchFilters struct {
	Categories          []string `validate:"dive,oneof=lecture exhibition experience performance festival"`
	Districts           []int
	MinParticipationFee *int   `validate:"omitempty,gte=0"`
	MaxParticipationFee *int   `validate:"omitempty,gte=0"`
	RegistrationStatus  string `validate:"omitempty,oneof=upcoming opened"`
	Tags                []string
}

// SessionInput is one registration session of a CreateEventRequest.
type SessionInput struct {
	Open  *time.Time `json:"open"`
	Close *time.Time `json:"close"`
}

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Name                 string          `json:"name" validate:"required,max=300"`
	RefinedName          string          `json:"refinedName" validate:"required,max=300"`
	Description          *string         `json:"description"`
	Category             string          `json:"category" validate:"required,oneof=lecture exhibition experience performance festival"`
	InstitutionName      string          `json:"institutionName" validate:"required"`
	StartDate            string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate              string          `json:"endDate" validate:"required,datetime=2006-01-02"`
	VenueName            string          `json:"venueName"`
	VenueAddress         string          `json:"venueAddress"`
	VenueLocation        *[2]float64     `json:"venueLocation"`
	Capacity             *int            `json:"capacity" validate:"omitempty,gt=0"`
	ParticipationFee     *int            `json:"participationFee" validate:"omitempty,gte=0"`
	ContactPhone         *string         `json:"contactPhone"`
	TargetResidence      *string         `json:"targetResidence"`
	RegistrationMethods  []string        `json:"registrationMethods"`
	SourceURL            string          `json:"sourceUrl" validate:"required,url"`
	Tags                 []string        `json:"tags"`
	DistrictIDs          []int           `json:"districtIds"`
	RegistrationSessions []SessionInput  `json:"registrationSessions" validate:"dive"`
	TimetableSlots       []TimetableSlot `json:"timetableSlots" validate:"dive"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Sessions converts request sessions into engine input.
func (r CreateEventRequest) Sessions() []registration.Session {
	out := make([]registration.Session, 0, len(r.RegistrationSessions))
	for _, s := range r.RegistrationSessions {
		out = append(out, registration.Session{Open: s.Open, Close: s.Close})
	}
	return out
}
