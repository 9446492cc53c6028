package repository

import (
	"context"
	"time"

	"github.com/charity-events/fundraiser-api/internal/domain"
	"github.com/charity-events/fundraiser-api/internal/repository/dao"
)

func concertToDao(c domain.Concert) dao.Concert {
	return dao.Concert{
		ID:                 c.ID,
		EventFields:        eventToDao(c.Event),
		MaxAttendees:       c.MaxAttendees,
		NumRows:            c.NumRows,
		SeatsPerRow:        c.SeatsPerRow,
		TicketPriceCents:   int64(c.TicketPrice),
		EnforceAttendeeCap: c.EnforceAttendeeCap,
	}
}

func concertToDomain(c dao.Concert, sold int) domain.Concert {
	return domain.Concert{
		Event:              eventToDomain(c.ID, c.EventFields),
		MaxAttendees:       c.MaxAttendees,
		NumRows:            c.NumRows,
		SeatsPerRow:        c.SeatsPerRow,
		TicketPrice:        domain.Cents(c.TicketPriceCents),
		EnforceAttendeeCap: c.EnforceAttendeeCap,
		Sold:               sold,
	}
}

func (r *EventRepository) CreateConcert(ctx context.Context, c domain.Concert) (domain.Concert, error) {
	created, err := r.dao.CreateConcert(ctx, concertToDao(c))
	if err != nil {
		return domain.Concert{}, wrap("r.dao.CreateConcert", err)
	}

	return concertToDomain(created, 0), nil
}

func (r *EventRepository) ListConcerts(ctx context.Context, from time.Time, limit int) ([]domain.Concert, error) {
	found, err := r.dao.ListConcerts(ctx, from, limit)
	if err != nil {
		return nil, wrap("r.dao.ListConcerts", err)
	}

	ids := make([]uint, len(found))
	for i, c := range found {
		ids[i] = c.ID
	}
	counts, err := r.dao.CountEntries(ctx, ids)
	if err != nil {
		return nil, wrap("r.dao.CountEntries", err)
	}

	concerts := make([]domain.Concert, len(found))
	for i, c := range found {
		concerts[i] = concertToDomain(c, counts[c.ID])
	}
	return concerts, nil
}

func (r *EventRepository) GetConcert(ctx context.Context, id uint) (domain.Concert, error) {
	found, err := r.dao.GetConcert(ctx, id)
	if err != nil {
		return domain.Concert{}, wrap("r.dao.GetConcert", err)
	}

	counts, err := r.dao.CountEntries(ctx, []uint{id})
	if err != nil {
		return domain.Concert{}, wrap("r.dao.CountEntries", err)
	}

	return concertToDomain(found, counts[id]), nil
}

func (r *EventRepository) LockConcert(ctx context.Context, id uint) (domain.Concert, error) {
	found, err := r.dao.LockConcert(ctx, id)
	if err != nil {
		return domain.Concert{}, wrap("r.dao.LockConcert", err)
	}

	counts, err := r.dao.CountEntries(ctx, []uint{id})
	if err != nil {
		return domain.Concert{}, wrap("r.dao.CountEntries", err)
	}

	return concertToDomain(found, counts[id]), nil
}

func (r *EventRepository) SeatTaken(ctx context.Context, concertID uint, row, seat int) (bool, error) {
	taken, err := r.dao.SeatTaken(ctx, concertID, row, seat)
	if err != nil {
		return false, wrap("r.dao.SeatTaken", err)
	}

	return taken, nil
}

func (r *EventRepository) OccupiedSeats(ctx context.Context, concertID uint) ([]domain.SeatPosition, error) {
	if _, err := r.dao.GetConcert(ctx, concertID); err != nil {
		return nil, wrap("r.dao.GetConcert", err)
	}

	entries, err := r.dao.OccupiedSeats(ctx, concertID)
	if err != nil {
		return nil, wrap("r.dao.OccupiedSeats", err)
	}

	seats := make([]domain.SeatPosition, len(entries))
	for i, e := range entries {
		seats[i] = domain.SeatPosition{Row: e.Row, Seat: e.Seat}
	}
	return seats, nil
}

func (r *EventRepository) SaveConcertEntry(ctx context.Context, c domain.Concert, entry domain.ConcertEntry) (domain.ConcertEntry, error) {
	saved, err := r.dao.InsertConcertEntry(ctx, dao.ConcertEntry{
		TicketFields: ticketToDao(entry.Ticket),
		ConcertID:    c.ID,
		Row:          entry.Row,
		Seat:         entry.Seat,
	}, int64(c.Raised))
	if err != nil {
		return domain.ConcertEntry{}, wrap("r.dao.InsertConcertEntry", err)
	}

	return domain.ConcertEntry{
		Ticket:    ticketToDomain(saved.ID, saved.TicketFields),
		ConcertID: saved.ConcertID,
		Row:       saved.Row,
		Seat:      saved.Seat,
	}, nil
}
