package domain

import "fmt"

type Concert struct {
	Event
	MaxAttendees int   `json:"max_attendees"`
	NumRows      int   `json:"num_rows"`
	SeatsPerRow  int   `json:"seats_per_row"`
	TicketPrice  Cents `json:"ticket_price"`
	// EnforceAttendeeCap turns on the MaxAttendees check at allocation
	// time. Off by default: only per-seat uniqueness is enforced.
	EnforceAttendeeCap bool `json:"enforce_attendee_cap"`
	// Sold is derived from the number of issued entries.
	Sold int `json:"sold"`
}

type SeatPosition struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

func (c Concert) EntriesAvailable() int {
	return c.MaxAttendees - c.Sold
}

func (c Concert) CheckSeat(row, seat int) error {
	if row < 1 || row > c.NumRows {
		return fmt.Errorf("%w: row %d outside 1..%d", ErrInvalidInput, row, c.NumRows)
	}
	if seat < 1 || seat > c.SeatsPerRow {
		return fmt.Errorf("%w: seat %d outside 1..%d", ErrInvalidInput, seat, c.SeatsPerRow)
	}
	return nil
}

// Admit books the (row, seat) pair, which must already have passed
// CheckSeat. taken reports whether another entry already holds it,
// entryCount is the number of entries issued so far.
func (c *Concert) Admit(row, seat int, taken bool, entryCount int) error {
	if taken {
		return fmt.Errorf("%w: row %d seat %d", ErrSeatTaken, row, seat)
	}
	c.Sold = entryCount
	if c.EnforceAttendeeCap && entryCount >= c.MaxAttendees {
		return fmt.Errorf("%w: concert %d is full", ErrCapacityExceeded, c.ID)
	}

	c.Sold++
	c.credit(c.TicketPrice)
	return nil
}
