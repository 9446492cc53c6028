package repository

import (
	"context"
	"time"

	"github.com/charity-events/fundraiser-api/internal/domain"
	"github.com/charity-events/fundraiser-api/internal/repository/dao"
)

func walkToDao(w domain.Walk) dao.Walk {
	return dao.Walk{
		ID:                     w.ID,
		EventFields:            eventToDao(w.Event),
		Route:                  w.Route,
		RegistrationPriceCents: int64(w.RegistrationPrice),
		MaxParticipants:        w.MaxParticipants,
	}
}

func walkToDomain(w dao.Walk, registered int) domain.Walk {
	return domain.Walk{
		Event:             eventToDomain(w.ID, w.EventFields),
		Route:             w.Route,
		RegistrationPrice: domain.Cents(w.RegistrationPriceCents),
		MaxParticipants:   w.MaxParticipants,
		Registered:        registered,
	}
}

func (r *EventRepository) CreateWalk(ctx context.Context, w domain.Walk) (domain.Walk, error) {
	created, err := r.dao.CreateWalk(ctx, walkToDao(w))
	if err != nil {
		return domain.Walk{}, wrap("r.dao.CreateWalk", err)
	}

	return walkToDomain(created, 0), nil
}

func (r *EventRepository) ListWalks(ctx context.Context, from time.Time, limit int) ([]domain.Walk, error) {
	found, err := r.dao.ListWalks(ctx, from, limit)
	if err != nil {
		return nil, wrap("r.dao.ListWalks", err)
	}

	ids := make([]uint, len(found))
	for i, w := range found {
		ids[i] = w.ID
	}
	counts, err := r.dao.CountBibs(ctx, ids)
	if err != nil {
		return nil, wrap("r.dao.CountBibs", err)
	}

	walks := make([]domain.Walk, len(found))
	for i, w := range found {
		walks[i] = walkToDomain(w, counts[w.ID])
	}
	return walks, nil
}

func (r *EventRepository) GetWalk(ctx context.Context, id uint) (domain.Walk, error) {
	found, err := r.dao.GetWalk(ctx, id)
	if err != nil {
		return domain.Walk{}, wrap("r.dao.GetWalk", err)
	}

	stats, err := r.dao.WalkBibStats(ctx, id)
	if err != nil {
		return domain.Walk{}, wrap("r.dao.WalkBibStats", err)
	}

	return walkToDomain(found, stats.Count), nil
}

// LockWalk locks the walk row and returns it with the current bib count and
// the highest bib number issued so far.
func (r *EventRepository) LockWalk(ctx context.Context, id uint) (domain.Walk, int, error) {
	found, err := r.dao.LockWalk(ctx, id)
	if err != nil {
		return domain.Walk{}, 0, wrap("r.dao.LockWalk", err)
	}

	stats, err := r.dao.WalkBibStats(ctx, id)
	if err != nil {
		return domain.Walk{}, 0, wrap("r.dao.WalkBibStats", err)
	}

	return walkToDomain(found, stats.Count), stats.MaxNumber, nil
}

func (r *EventRepository) SaveWalkBib(ctx context.Context, w domain.Walk, bib domain.WalkBib) (domain.WalkBib, error) {
	saved, err := r.dao.InsertWalkBib(ctx, dao.WalkBib{
		TicketFields: ticketToDao(bib.Ticket),
		WalkID:       w.ID,
		Number:       bib.Number,
		ShirtSize:    string(bib.ShirtSize),
	}, int64(w.Raised))
	if err != nil {
		return domain.WalkBib{}, wrap("r.dao.InsertWalkBib", err)
	}

	return domain.WalkBib{
		Ticket:    ticketToDomain(saved.ID, saved.TicketFields),
		WalkID:    saved.WalkID,
		Number:    saved.Number,
		ShirtSize: domain.ShirtSize(saved.ShirtSize),
	}, nil
}
