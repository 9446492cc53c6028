package domain

import "time"

type EventKind string

const (
	KindDinner  EventKind = "dinner"
	KindRaffle  EventKind = "raffle"
	KindWalk    EventKind = "walk"
	KindConcert EventKind = "concert"
)

func (k EventKind) Valid() bool {
	switch k {
	case KindDinner, KindRaffle, KindWalk, KindConcert:
		return true
	}
	return false
}

// Event holds the fields shared by every fundraising event.
type Event struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Target      Cents     `json:"target"`
	Raised      Cents     `json:"raised"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PercentRaised is Raised/Target*100, or 0 when no target is set.
// Raised may exceed Target, so the result can be above 100.
func (e Event) PercentRaised() float64 {
	if e.Target <= 0 {
		return 0
	}
	return float64(e.Raised) / float64(e.Target) * 100
}

func (e *Event) credit(amount Cents) {
	e.Raised += amount
}

// NextNumber returns the number following the highest one already issued
// for an event. Numbers start at 1.
func NextNumber(currentMax int) int {
	if currentMax < 0 {
		currentMax = 0
	}
	return currentMax + 1
}

// Overview groups a few upcoming events of every kind.
type Overview struct {
	Dinners  []Dinner  `json:"dinners"`
	Raffles  []Raffle  `json:"raffles"`
	Walks    []Walk    `json:"walks"`
	Concerts []Concert `json:"concerts"`
}
