package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charity-events/fundraiser-api/internal/domain"
	"github.com/charity-events/fundraiser-api/internal/repository/dao"
)

type EventDAO interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateDinner(ctx context.Context, dinner dao.Dinner) (dao.Dinner, error)
	ListDinners(ctx context.Context, from time.Time, limit int) ([]dao.Dinner, error)
	GetDinner(ctx context.Context, id uint) (dao.Dinner, error)
	LockDinner(ctx context.Context, id uint) (dao.Dinner, error)
	ListTables(ctx context.Context, dinnerID uint) ([]dao.DinnerTable, error)
	GetTable(ctx context.Context, id uint) (dao.DinnerTable, error)
	LockTable(ctx context.Context, id uint) (dao.DinnerTable, error)
	InsertDinnerEntry(ctx context.Context, entry dao.DinnerEntry, assignments int, raisedCents int64) (dao.DinnerEntry, error)

	CreateRaffle(ctx context.Context, raffle dao.Raffle) (dao.Raffle, error)
	ListRaffles(ctx context.Context, from time.Time, limit int) ([]dao.Raffle, error)
	GetRaffle(ctx context.Context, id uint) (dao.Raffle, error)
	LockRaffle(ctx context.Context, id uint) (dao.Raffle, error)
	MaxRaffleTicketNumber(ctx context.Context, raffleID uint) (int, error)
	InsertRaffleTicket(ctx context.Context, ticket dao.RaffleTicket, ticketsSold int, raisedCents int64) (dao.RaffleTicket, error)

	CreateWalk(ctx context.Context, walk dao.Walk) (dao.Walk, error)
	ListWalks(ctx context.Context, from time.Time, limit int) ([]dao.Walk, error)
	GetWalk(ctx context.Context, id uint) (dao.Walk, error)
	LockWalk(ctx context.Context, id uint) (dao.Walk, error)
	CountBibs(ctx context.Context, walkIDs []uint) (map[uint]int, error)
	WalkBibStats(ctx context.Context, walkID uint) (dao.BibStats, error)
	InsertWalkBib(ctx context.Context, bib dao.WalkBib, raisedCents int64) (dao.WalkBib, error)

	CreateConcert(ctx context.Context, concert dao.Concert) (dao.Concert, error)
	ListConcerts(ctx context.Context, from time.Time, limit int) ([]dao.Concert, error)
	GetConcert(ctx context.Context, id uint) (dao.Concert, error)
	LockConcert(ctx context.Context, id uint) (dao.Concert, error)
	CountEntries(ctx context.Context, concertIDs []uint) (map[uint]int, error)
	SeatTaken(ctx context.Context, concertID uint, row, seat int) (bool, error)
	OccupiedSeats(ctx context.Context, concertID uint) ([]dao.ConcertEntry, error)
	InsertConcertEntry(ctx context.Context, entry dao.ConcertEntry, raisedCents int64) (dao.ConcertEntry, error)

	LockTicket(ctx context.Context, reference string) (dao.TicketRow, error)
	MarkTicketUsed(ctx context.Context, kind string, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

// toDomainErr maps storage errors onto the domain sentinels.
func toDomainErr(err error) error {
	switch {
	case errors.Is(err, dao.ErrNotFound):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	case errors.Is(err, dao.ErrSeatTaken):
		return fmt.Errorf("%w: %v", domain.ErrSeatTaken, err)
	case errors.Is(err, dao.ErrDuplicate):
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s -> %w", op, toDomainErr(err))
}

func (r *EventRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.dao.WithTx(ctx, fn)
}

func eventToDao(e domain.Event) dao.EventFields {
	return dao.EventFields{
		Date:        e.Date,
		Location:    e.Location,
		TargetCents: int64(e.Target),
		RaisedCents: int64(e.Raised),
		Description: e.Description,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func eventToDomain(id uint, f dao.EventFields) domain.Event {
	return domain.Event{
		ID:          id,
		Date:        f.Date,
		Location:    f.Location,
		Target:      domain.Cents(f.TargetCents),
		Raised:      domain.Cents(f.RaisedCents),
		Description: f.Description,
		Image:       f.Image,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func ticketToDao(t domain.Ticket) dao.TicketFields {
	return dao.TicketFields{
		Reference:   t.Reference,
		Name:        t.Purchaser.Name,
		Email:       t.Purchaser.Email,
		Phone:       t.Purchaser.Phone,
		Used:        t.Used,
		PurchasedAt: t.PurchasedAt,
	}
}

func ticketToDomain(id uint, f dao.TicketFields) domain.Ticket {
	return domain.Ticket{
		ID:        id,
		Reference: f.Reference,
		Purchaser: domain.Purchaser{
			Name:  f.Name,
			Email: f.Email,
			Phone: f.Phone,
		},
		Used:        f.Used,
		PurchasedAt: f.PurchasedAt,
	}
}
