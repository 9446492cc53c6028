package service

import (
	"context"
	"time"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

var (
	ErrNotFound         = domain.ErrNotFound
	ErrInvalidInput     = domain.ErrInvalidInput
	ErrCapacityExceeded = domain.ErrCapacityExceeded
	ErrSeatTaken        = domain.ErrSeatTaken
	ErrAlreadyUsed      = domain.ErrAlreadyUsed
	ErrConflict         = domain.ErrConflict
)

type EventRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateDinner(ctx context.Context, d domain.Dinner) (domain.Dinner, error)
	ListDinners(ctx context.Context, from time.Time, limit int) ([]domain.Dinner, error)
	GetDinner(ctx context.Context, id uint) (domain.Dinner, error)
	LockDinner(ctx context.Context, id uint) (domain.Dinner, error)
	ListTables(ctx context.Context, dinnerID uint) ([]domain.Table, error)
	GetTable(ctx context.Context, id uint) (domain.Table, error)
	LockTable(ctx context.Context, id uint) (domain.Table, error)
	SaveDinnerEntry(ctx context.Context, d domain.Dinner, t domain.Table, entry domain.DinnerEntry) (domain.DinnerEntry, error)

	CreateRaffle(ctx context.Context, r domain.Raffle) (domain.Raffle, error)
	ListRaffles(ctx context.Context, from time.Time, limit int) ([]domain.Raffle, error)
	GetRaffle(ctx context.Context, id uint) (domain.Raffle, error)
	LockRaffle(ctx context.Context, id uint) (domain.Raffle, error)
	MaxRaffleTicketNumber(ctx context.Context, raffleID uint) (int, error)
	SaveRaffleTicket(ctx context.Context, r domain.Raffle, ticket domain.RaffleTicket) (domain.RaffleTicket, error)

	CreateWalk(ctx context.Context, w domain.Walk) (domain.Walk, error)
	ListWalks(ctx context.Context, from time.Time, limit int) ([]domain.Walk, error)
	GetWalk(ctx context.Context, id uint) (domain.Walk, error)
	LockWalk(ctx context.Context, id uint) (domain.Walk, int, error)
	SaveWalkBib(ctx context.Context, w domain.Walk, bib domain.WalkBib) (domain.WalkBib, error)

	CreateConcert(ctx context.Context, c domain.Concert) (domain.Concert, error)
	ListConcerts(ctx context.Context, from time.Time, limit int) ([]domain.Concert, error)
	GetConcert(ctx context.Context, id uint) (domain.Concert, error)
	LockConcert(ctx context.Context, id uint) (domain.Concert, error)
	SeatTaken(ctx context.Context, concertID uint, row, seat int) (bool, error)
	OccupiedSeats(ctx context.Context, concertID uint) ([]domain.SeatPosition, error)
	SaveConcertEntry(ctx context.Context, c domain.Concert, entry domain.ConcertEntry) (domain.ConcertEntry, error)

	LockTicket(ctx context.Context, reference string) (domain.TicketRecord, error)
	MarkTicketUsed(ctx context.Context, record domain.TicketRecord) error
}

// Publisher forwards issued tickets to downstream consumers.
type Publisher interface {
	PublishTicketIssued(ctx context.Context, msg domain.TicketIssued) error
}

// Broadcaster pushes allocation notices to live subscribers.
type Broadcaster interface {
	Broadcast(notice domain.AllocationNotice)
}

// ListingCache keeps rendered event listings between allocations.
type ListingCache interface {
	Fetch(ctx context.Context, key string, dst interface{}) bool
	Store(ctx context.Context, key string, value interface{})
	Invalidate(ctx context.Context)
}

type noopPublisher struct{}

func (noopPublisher) PublishTicketIssued(context.Context, domain.TicketIssued) error { return nil }

type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast(domain.AllocationNotice) {}

type noopCache struct{}

func (noopCache) Fetch(context.Context, string, interface{}) bool { return false }
func (noopCache) Store(context.Context, string, interface{})      {}
func (noopCache) Invalidate(context.Context)                      {}
