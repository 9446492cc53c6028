package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charity-events/fundraiser-api/internal/clock"
	"github.com/charity-events/fundraiser-api/internal/domain"
)

// AllocationService hands out seats, raffle numbers, bibs and concert
// entries. Every allocation locks the owning event row for the duration
// of its transaction, so allocations on one event are serialized while
// different events proceed in parallel.
type AllocationService struct {
	repo      EventRepository
	clock     clock.Clock
	publisher Publisher
	feed      Broadcaster
	cache     ListingCache
	newRef    func() string
}

type AllocationOption func(*AllocationService)

func WithClock(c clock.Clock) AllocationOption {
	return func(s *AllocationService) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithPublisher(p Publisher) AllocationOption {
	return func(s *AllocationService) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithBroadcaster(b Broadcaster) AllocationOption {
	return func(s *AllocationService) {
		if b != nil {
			s.feed = b
		}
	}
}

func WithListingCache(c ListingCache) AllocationOption {
	return func(s *AllocationService) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithReferences replaces the ticket reference generator.
func WithReferences(fn func() string) AllocationOption {
	return func(s *AllocationService) {
		s.newRef = fn
	}
}

func NewAllocationService(repo EventRepository, opts ...AllocationOption) *AllocationService {
	s := &AllocationService{
		repo:      repo,
		clock:     clock.NewSystem(),
		publisher: noopPublisher{},
		feed:      noopBroadcaster{},
		cache:     noopCache{},
		newRef:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AllocationService) newTicket(p domain.Purchaser) domain.Ticket {
	return domain.Ticket{
		Reference:   s.newRef(),
		Purchaser:   p,
		PurchasedAt: s.clock.Now(),
	}
}

func checkPurchaser(p domain.Purchaser) (domain.Purchaser, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.Purchaser{}, err
	}
	return p, nil
}

// AllocateDinnerSeat seats the purchaser at the given table and credits the
// dinner with one cover.
func (s *AllocationService) AllocateDinnerSeat(ctx context.Context, tableID uint, p domain.Purchaser) (domain.DinnerEntry, error) {
	p, err := checkPurchaser(p)
	if err != nil {
		return domain.DinnerEntry{}, err
	}

	var (
		dinner domain.Dinner
		table  domain.Table
		entry  domain.DinnerEntry
	)
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.repo.GetTable(ctx, tableID)
		if err != nil {
			return fmt.Errorf("s.repo.GetTable -> %w", err)
		}

		// Lock order: dinner, then table.
		dinner, err = s.repo.LockDinner(ctx, t.DinnerID)
		if err != nil {
			return fmt.Errorf("s.repo.LockDinner -> %w", err)
		}
		table, err = s.repo.LockTable(ctx, tableID)
		if err != nil {
			return fmt.Errorf("s.repo.LockTable -> %w", err)
		}

		if err := dinner.Seat(&table); err != nil {
			return err
		}

		entry, err = s.repo.SaveDinnerEntry(ctx, dinner, table, domain.DinnerEntry{Ticket: s.newTicket(p)})
		if err != nil {
			return fmt.Errorf("s.repo.SaveDinnerEntry -> %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DinnerEntry{}, err
	}

	s.announce(ctx, allocation{
		kind:      domain.KindDinner,
		eventID:   dinner.ID,
		slot:      fmt.Sprintf("table %d", table.Number),
		ticket:    entry.Ticket,
		amount:    dinner.PricePerPerson,
		raised:    dinner.Raised,
		remaining: table.SeatsAvailable(dinner.SeatsPerTable),
	})
	return entry, nil
}

// AllocateRaffleTicket sells the next raffle number.
func (s *AllocationService) AllocateRaffleTicket(ctx context.Context, raffleID uint, p domain.Purchaser) (domain.RaffleTicket, error) {
	p, err := checkPurchaser(p)
	if err != nil {
		return domain.RaffleTicket{}, err
	}

	var (
		raffle domain.Raffle
		ticket domain.RaffleTicket
	)
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		raffle, err = s.repo.LockRaffle(ctx, raffleID)
		if err != nil {
			return fmt.Errorf("s.repo.LockRaffle -> %w", err)
		}

		if err := raffle.Sell(); err != nil {
			return err
		}

		max, err := s.repo.MaxRaffleTicketNumber(ctx, raffle.ID)
		if err != nil {
			return fmt.Errorf("s.repo.MaxRaffleTicketNumber -> %w", err)
		}

		ticket, err = s.repo.SaveRaffleTicket(ctx, raffle, domain.RaffleTicket{
			Ticket: s.newTicket(p),
			Number: domain.NextNumber(max),
		})
		if err != nil {
			return fmt.Errorf("s.repo.SaveRaffleTicket -> %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.RaffleTicket{}, err
	}

	s.announce(ctx, allocation{
		kind:      domain.KindRaffle,
		eventID:   raffle.ID,
		slot:      fmt.Sprintf("ticket %d", ticket.Number),
		ticket:    ticket.Ticket,
		amount:    raffle.PricePerTicket,
		raised:    raffle.Raised,
		remaining: raffle.TicketsAvailable(),
	})
	return ticket, nil
}

// AllocateWalkBib registers a participant under the next bib number.
func (s *AllocationService) AllocateWalkBib(ctx context.Context, walkID uint, p domain.Purchaser, shirtSize string) (domain.WalkBib, error) {
	p, err := checkPurchaser(p)
	if err != nil {
		return domain.WalkBib{}, err
	}
	size, err := domain.ParseShirtSize(shirtSize)
	if err != nil {
		return domain.WalkBib{}, err
	}

	var (
		walk domain.Walk
		bib  domain.WalkBib
	)
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		w, maxNumber, err := s.repo.LockWalk(ctx, walkID)
		if err != nil {
			return fmt.Errorf("s.repo.LockWalk -> %w", err)
		}
		walk = w

		if err := walk.Register(); err != nil {
			return err
		}

		bib, err = s.repo.SaveWalkBib(ctx, walk, domain.WalkBib{
			Ticket:    s.newTicket(p),
			Number:    domain.NextNumber(maxNumber),
			ShirtSize: size,
		})
		if err != nil {
			return fmt.Errorf("s.repo.SaveWalkBib -> %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.WalkBib{}, err
	}

	s.announce(ctx, allocation{
		kind:      domain.KindWalk,
		eventID:   walk.ID,
		slot:      fmt.Sprintf("bib %d", bib.Number),
		ticket:    bib.Ticket,
		amount:    walk.RegistrationPrice,
		raised:    walk.Raised,
		remaining: walk.SlotsAvailable(),
	})
	return bib, nil
}

// AllocateConcertSeat books a specific seat. Seats outside the hall grid are
// rejected as invalid input.
func (s *AllocationService) AllocateConcertSeat(ctx context.Context, concertID uint, p domain.Purchaser, row, seat int) (domain.ConcertEntry, error) {
	p, err := checkPurchaser(p)
	if err != nil {
		return domain.ConcertEntry{}, err
	}

	var (
		concert domain.Concert
		entry   domain.ConcertEntry
	)
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		concert, err = s.repo.LockConcert(ctx, concertID)
		if err != nil {
			return fmt.Errorf("s.repo.LockConcert -> %w", err)
		}

		if err := concert.CheckSeat(row, seat); err != nil {
			return err
		}
		taken, err := s.repo.SeatTaken(ctx, concert.ID, row, seat)
		if err != nil {
			return fmt.Errorf("s.repo.SeatTaken -> %w", err)
		}
		if err := concert.Admit(row, seat, taken, concert.Sold); err != nil {
			return err
		}

		entry, err = s.repo.SaveConcertEntry(ctx, concert, domain.ConcertEntry{
			Ticket: s.newTicket(p),
			Row:    row,
			Seat:   seat,
		})
		if err != nil {
			return fmt.Errorf("s.repo.SaveConcertEntry -> %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ConcertEntry{}, err
	}

	s.announce(ctx, allocation{
		kind:      domain.KindConcert,
		eventID:   concert.ID,
		slot:      fmt.Sprintf("row %d seat %d", row, seat),
		ticket:    entry.Ticket,
		amount:    concert.TicketPrice,
		raised:    concert.Raised,
		remaining: concert.EntriesAvailable(),
	})
	return entry, nil
}

type allocation struct {
	kind      domain.EventKind
	eventID   uint
	slot      string
	ticket    domain.Ticket
	amount    domain.Cents
	raised    domain.Cents
	remaining int
}

// announce runs once the allocation is committed. Failures here are logged
// and never undo the allocation.
func (s *AllocationService) announce(ctx context.Context, a allocation) {
	zap.L().Info("ticket allocated",
		zap.String("kind", string(a.kind)),
		zap.Uint("event_id", a.eventID),
		zap.String("slot", a.slot),
		zap.String("reference", a.ticket.Reference),
		zap.Stringer("raised", a.raised),
	)

	s.cache.Invalidate(ctx)

	err := s.publisher.PublishTicketIssued(ctx, domain.TicketIssued{
		Reference:   a.ticket.Reference,
		Kind:        a.kind,
		EventID:     a.eventID,
		Slot:        a.slot,
		Name:        a.ticket.Purchaser.Name,
		Email:       a.ticket.Purchaser.Email,
		Amount:      a.amount,
		Raised:      a.raised,
		PurchasedAt: a.ticket.PurchasedAt,
	})
	if err != nil {
		zap.L().Warn("failed to publish issued ticket",
			zap.String("reference", a.ticket.Reference),
			zap.Error(err),
		)
	}

	s.feed.Broadcast(domain.AllocationNotice{
		Kind:      a.kind,
		EventID:   a.eventID,
		Slot:      a.slot,
		Raised:    a.raised,
		Remaining: a.remaining,
		At:        s.clock.Now(),
	})
}
