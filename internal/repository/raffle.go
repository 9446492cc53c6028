package repository

import (
	"context"
	"time"

	"github.com/charity-events/fundraiser-api/internal/domain"
	"github.com/charity-events/fundraiser-api/internal/repository/dao"
)

func raffleToDao(r domain.Raffle) dao.Raffle {
	return dao.Raffle{
		ID:                  r.ID,
		EventFields:         eventToDao(r.Event),
		Prize:               r.Prize,
		TicketsSold:         r.TicketsSold,
		PricePerTicketCents: int64(r.PricePerTicket),
		MaxTickets:          r.MaxTickets,
	}
}

func raffleToDomain(r dao.Raffle) domain.Raffle {
	return domain.Raffle{
		Event:          eventToDomain(r.ID, r.EventFields),
		Prize:          r.Prize,
		TicketsSold:    r.TicketsSold,
		PricePerTicket: domain.Cents(r.PricePerTicketCents),
		MaxTickets:     r.MaxTickets,
	}
}

func (r *EventRepository) CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	created, err := r.dao.CreateRaffle(ctx, raffleToDao(raffle))
	if err != nil {
		return domain.Raffle{}, wrap("r.dao.CreateRaffle", err)
	}

	return raffleToDomain(created), nil
}

func (r *EventRepository) ListRaffles(ctx context.Context, from time.Time, limit int) ([]domain.Raffle, error) {
	found, err := r.dao.ListRaffles(ctx, from, limit)
	if err != nil {
		return nil, wrap("r.dao.ListRaffles", err)
	}

	raffles := make([]domain.Raffle, len(found))
	for i, raffle := range found {
		raffles[i] = raffleToDomain(raffle)
	}
	return raffles, nil
}

func (r *EventRepository) GetRaffle(ctx context.Context, id uint) (domain.Raffle, error) {
	found, err := r.dao.GetRaffle(ctx, id)
	if err != nil {
		return domain.Raffle{}, wrap("r.dao.GetRaffle", err)
	}

	return raffleToDomain(found), nil
}

func (r *EventRepository) LockRaffle(ctx context.Context, id uint) (domain.Raffle, error) {
	found, err := r.dao.LockRaffle(ctx, id)
	if err != nil {
		return domain.Raffle{}, wrap("r.dao.LockRaffle", err)
	}

	return raffleToDomain(found), nil
}

func (r *EventRepository) MaxRaffleTicketNumber(ctx context.Context, raffleID uint) (int, error) {
	max, err := r.dao.MaxRaffleTicketNumber(ctx, raffleID)
	if err != nil {
		return 0, wrap("r.dao.MaxRaffleTicketNumber", err)
	}

	return max, nil
}

// SaveRaffleTicket stores the ticket and the raffle counters held by raffle.
func (r *EventRepository) SaveRaffleTicket(ctx context.Context, raffle domain.Raffle, ticket domain.RaffleTicket) (domain.RaffleTicket, error) {
	saved, err := r.dao.InsertRaffleTicket(ctx, dao.RaffleTicket{
		TicketFields: ticketToDao(ticket.Ticket),
		RaffleID:     raffle.ID,
		Number:       ticket.Number,
	}, raffle.TicketsSold, int64(raffle.Raised))
	if err != nil {
		return domain.RaffleTicket{}, wrap("r.dao.InsertRaffleTicket", err)
	}

	return domain.RaffleTicket{
		Ticket:   ticketToDomain(saved.ID, saved.TicketFields),
		RaffleID: saved.RaffleID,
		Number:   saved.Number,
	}, nil
}
