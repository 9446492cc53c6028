package domain

import "time"

// AllocationNotice is pushed to live feed subscribers of an event after
// each successful allocation.
type AllocationNotice struct {
	Kind      EventKind `json:"kind"`
	EventID   uint      `json:"event_id"`
	Slot      string    `json:"slot"`
	Raised    Cents     `json:"raised"`
	Remaining int       `json:"remaining"`
	At        time.Time `json:"at"`
}

// TicketIssued is published to the message broker once a ticket is stored.
type TicketIssued struct {
	Reference   string    `json:"reference"`
	Kind        EventKind `json:"kind"`
	EventID     uint      `json:"event_id"`
	Slot        string    `json:"slot"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Amount      Cents     `json:"amount"`
	Raised      Cents     `json:"raised"`
	PurchasedAt time.Time `json:"purchased_at"`
}
