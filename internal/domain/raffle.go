package domain

import "fmt"

const DefaultMaxRaffleTickets = 100

type Raffle struct {
	Event
	Prize          string `json:"prize"`
	TicketsSold    int    `json:"tickets_sold"`
	PricePerTicket Cents  `json:"price_per_ticket"`
	MaxTickets     int    `json:"max_tickets"`
}

func (r Raffle) TicketsAvailable() int {
	return r.MaxTickets - r.TicketsSold
}

// Sell records one sold ticket against the stored counter.
func (r *Raffle) Sell() error {
	if r.TicketsSold >= r.MaxTickets {
		return fmt.Errorf("%w: raffle %d sold out", ErrCapacityExceeded, r.ID)
	}

	r.TicketsSold++
	r.credit(r.PricePerTicket)
	return nil
}
