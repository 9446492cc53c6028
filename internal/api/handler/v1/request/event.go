package request

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

const (
	LocationMaxLength    = 50
	DescriptionMaxLength = 500
	ImageMaxLength       = 255
	MenuMaxLength        = 1000
	PrizeMaxLength       = 200
	RouteMaxLength       = 200
)

var errInvalidAmount = errors.New("must be a non-negative amount with at most two decimals")

// EventRequest carries the fields every event setup request shares.
// Amounts are decimal strings such as "40.00".
type EventRequest struct {
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Target      string    `json:"target"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

func (r EventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required),
		validation.Field(&r.Location, validation.Required, validation.Length(1, LocationMaxLength)),
		validation.Field(&r.Target, validation.Required, validation.By(validAmount)),
		validation.Field(&r.Description, validation.Length(0, DescriptionMaxLength)),
		validation.Field(&r.Image, validation.Length(0, ImageMaxLength)),
	)
}

func (r EventRequest) event() domain.Event {
	return domain.Event{
		Date:        r.Date,
		Location:    strings.TrimSpace(r.Location),
		Target:      mustCents(r.Target),
		Description: r.Description,
		Image:       r.Image,
	}
}

type CreateDinnerRequest struct {
	EventRequest
	Menu           string `json:"menu"`
	NumTables      int    `json:"num_tables"`
	SeatsPerTable  int    `json:"seats_per_table"`
	PricePerPerson string `json:"price_per_person"`
}

func (r CreateDinnerRequest) Validate() error {
	if err := r.EventRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Menu, validation.Length(0, MenuMaxLength)),
		validation.Field(&r.NumTables, validation.Required, validation.Min(1)),
		validation.Field(&r.SeatsPerTable, validation.Required, validation.Min(1)),
		validation.Field(&r.PricePerPerson, validation.Required, validation.By(validAmount)),
	)
}

func (r CreateDinnerRequest) ToDomain() domain.Dinner {
	return domain.Dinner{
		Event:          r.event(),
		Menu:           r.Menu,
		NumTables:      r.NumTables,
		SeatsPerTable:  r.SeatsPerTable,
		PricePerPerson: mustCents(r.PricePerPerson),
	}
}

type CreateRaffleRequest struct {
	EventRequest
	Prize          string `json:"prize"`
	PricePerTicket string `json:"price_per_ticket"`
	// MaxTickets defaults to 100 when omitted.
	MaxTickets int `json:"max_tickets"`
}

func (r CreateRaffleRequest) Validate() error {
	if err := r.EventRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prize, validation.Required, validation.Length(1, PrizeMaxLength)),
		validation.Field(&r.PricePerTicket, validation.Required, validation.By(validAmount)),
		validation.Field(&r.MaxTickets, validation.Min(0)),
	)
}

func (r CreateRaffleRequest) ToDomain() domain.Raffle {
	return domain.Raffle{
		Event:          r.event(),
		Prize:          r.Prize,
		PricePerTicket: mustCents(r.PricePerTicket),
		MaxTickets:     r.MaxTickets,
	}
}

type CreateWalkRequest struct {
	EventRequest
	Route             string `json:"route"`
	RegistrationPrice string `json:"registration_price"`
	// MaxParticipants defaults to 100 when omitted.
	MaxParticipants int `json:"max_participants"`
}

func (r CreateWalkRequest) Validate() error {
	if err := r.EventRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Route, validation.Required, validation.Length(1, RouteMaxLength)),
		validation.Field(&r.RegistrationPrice, validation.Required, validation.By(validAmount)),
		validation.Field(&r.MaxParticipants, validation.Min(0)),
	)
}

func (r CreateWalkRequest) ToDomain() domain.Walk {
	return domain.Walk{
		Event:             r.event(),
		Route:             r.Route,
		RegistrationPrice: mustCents(r.RegistrationPrice),
		MaxParticipants:   r.MaxParticipants,
	}
}

type CreateConcertRequest struct {
	EventRequest
	MaxAttendees       int    `json:"max_attendees"`
	NumRows            int    `json:"num_rows"`
	SeatsPerRow        int    `json:"seats_per_row"`
	TicketPrice        string `json:"ticket_price"`
	EnforceAttendeeCap bool   `json:"enforce_attendee_cap"`
}

func (r CreateConcertRequest) Validate() error {
	if err := r.EventRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.MaxAttendees, validation.Required, validation.Min(1)),
		validation.Field(&r.NumRows, validation.Required, validation.Min(1)),
		validation.Field(&r.SeatsPerRow, validation.Required, validation.Min(1)),
		validation.Field(&r.TicketPrice, validation.Required, validation.By(validAmount)),
	)
}

func (r CreateConcertRequest) ToDomain() domain.Concert {
	return domain.Concert{
		Event:              r.event(),
		MaxAttendees:       r.MaxAttendees,
		NumRows:            r.NumRows,
		SeatsPerRow:        r.SeatsPerRow,
		TicketPrice:        mustCents(r.TicketPrice),
		EnforceAttendeeCap: r.EnforceAttendeeCap,
	}
}

func validAmount(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	c, err := domain.ParseCents(s)
	if err != nil || c < 0 {
		return errInvalidAmount
	}
	return nil
}

// mustCents is only called on amounts that already passed Validate.
func mustCents(s string) domain.Cents {
	c, _ := domain.ParseCents(s)
	return c
}
