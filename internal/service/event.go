package service

import (
	"context"
	"fmt"

	"github.com/charity-events/fundraiser-api/internal/clock"
	"github.com/charity-events/fundraiser-api/internal/domain"
)

// OverviewSize is how many upcoming events of each kind the overview shows.
const OverviewSize = 3

const (
	keyOverview = "overview"
	keyDinners  = "dinners"
	keyRaffles  = "raffles"
	keyWalks    = "walks"
	keyConcerts = "concerts"
)

// ListingKeys are the cache keys written by EventService.
var ListingKeys = []string{keyOverview, keyDinners, keyRaffles, keyWalks, keyConcerts}

type EventService struct {
	repo  EventRepository
	clock clock.Clock
	cache ListingCache
}

func NewEventService(repo EventRepository, c clock.Clock, cache ListingCache) *EventService {
	if c == nil {
		c = clock.NewSystem()
	}
	if cache == nil {
		cache = noopCache{}
	}

	return &EventService{
		repo:  repo,
		clock: c,
		cache: cache,
	}
}

// Overview returns a few upcoming events of every kind.
func (s *EventService) Overview(ctx context.Context) (domain.Overview, error) {
	var overview domain.Overview
	if s.cache.Fetch(ctx, keyOverview, &overview) {
		return overview, nil
	}

	var err error
	now := s.clock.Now()
	if overview.Dinners, err = s.repo.ListDinners(ctx, now, OverviewSize); err != nil {
		return domain.Overview{}, fmt.Errorf("s.repo.ListDinners -> %w", err)
	}
	if overview.Raffles, err = s.repo.ListRaffles(ctx, now, OverviewSize); err != nil {
		return domain.Overview{}, fmt.Errorf("s.repo.ListRaffles -> %w", err)
	}
	if overview.Walks, err = s.repo.ListWalks(ctx, now, OverviewSize); err != nil {
		return domain.Overview{}, fmt.Errorf("s.repo.ListWalks -> %w", err)
	}
	if overview.Concerts, err = s.repo.ListConcerts(ctx, now, OverviewSize); err != nil {
		return domain.Overview{}, fmt.Errorf("s.repo.ListConcerts -> %w", err)
	}

	s.cache.Store(ctx, keyOverview, overview)
	return overview, nil
}

func (s *EventService) ListDinners(ctx context.Context) ([]domain.Dinner, error) {
	var dinners []domain.Dinner
	if s.cache.Fetch(ctx, keyDinners, &dinners) {
		return dinners, nil
	}

	dinners, err := s.repo.ListDinners(ctx, s.clock.Now(), 0)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListDinners -> %w", err)
	}

	s.cache.Store(ctx, keyDinners, dinners)
	return dinners, nil
}

func (s *EventService) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	var raffles []domain.Raffle
	if s.cache.Fetch(ctx, keyRaffles, &raffles) {
		return raffles, nil
	}

	raffles, err := s.repo.ListRaffles(ctx, s.clock.Now(), 0)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRaffles -> %w", err)
	}

	s.cache.Store(ctx, keyRaffles, raffles)
	return raffles, nil
}

func (s *EventService) ListWalks(ctx context.Context) ([]domain.Walk, error) {
	var walks []domain.Walk
	if s.cache.Fetch(ctx, keyWalks, &walks) {
		return walks, nil
	}

	walks, err := s.repo.ListWalks(ctx, s.clock.Now(), 0)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListWalks -> %w", err)
	}

	s.cache.Store(ctx, keyWalks, walks)
	return walks, nil
}

func (s *EventService) ListConcerts(ctx context.Context) ([]domain.Concert, error) {
	var concerts []domain.Concert
	if s.cache.Fetch(ctx, keyConcerts, &concerts) {
		return concerts, nil
	}

	concerts, err := s.repo.ListConcerts(ctx, s.clock.Now(), 0)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListConcerts -> %w", err)
	}

	s.cache.Store(ctx, keyConcerts, concerts)
	return concerts, nil
}

func (s *EventService) GetDinner(ctx context.Context, id uint) (domain.Dinner, error) {
	dinner, err := s.repo.GetDinner(ctx, id)
	if err != nil {
		return domain.Dinner{}, fmt.Errorf("s.repo.GetDinner -> %w", err)
	}

	return dinner, nil
}

// Tables returns the dinner with its tables. With onlyAvailable set, full
// tables are left out.
func (s *EventService) Tables(ctx context.Context, dinnerID uint, onlyAvailable bool) (domain.Dinner, error) {
	dinner, err := s.repo.GetDinner(ctx, dinnerID)
	if err != nil {
		return domain.Dinner{}, fmt.Errorf("s.repo.GetDinner -> %w", err)
	}

	if onlyAvailable {
		dinner.Tables = dinner.AvailableTables()
	}
	return dinner, nil
}

func (s *EventService) GetRaffle(ctx context.Context, id uint) (domain.Raffle, error) {
	raffle, err := s.repo.GetRaffle(ctx, id)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.repo.GetRaffle -> %w", err)
	}

	return raffle, nil
}

func (s *EventService) GetWalk(ctx context.Context, id uint) (domain.Walk, error) {
	walk, err := s.repo.GetWalk(ctx, id)
	if err != nil {
		return domain.Walk{}, fmt.Errorf("s.repo.GetWalk -> %w", err)
	}

	return walk, nil
}

func (s *EventService) GetConcert(ctx context.Context, id uint) (domain.Concert, error) {
	concert, err := s.repo.GetConcert(ctx, id)
	if err != nil {
		return domain.Concert{}, fmt.Errorf("s.repo.GetConcert -> %w", err)
	}

	return concert, nil
}

func (s *EventService) OccupiedSeats(ctx context.Context, concertID uint) ([]domain.SeatPosition, error) {
	seats, err := s.repo.OccupiedSeats(ctx, concertID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.OccupiedSeats -> %w", err)
	}

	return seats, nil
}

func (s *EventService) ShirtSizes() []domain.ShirtSizeOption {
	return domain.ShirtSizes()
}

func (s *EventService) CreateDinner(ctx context.Context, d domain.Dinner) (domain.Dinner, error) {
	d.Raised = 0
	created, err := s.repo.CreateDinner(ctx, d)
	if err != nil {
		return domain.Dinner{}, fmt.Errorf("s.repo.CreateDinner -> %w", err)
	}

	s.cache.Invalidate(ctx)
	return created, nil
}

func (s *EventService) CreateRaffle(ctx context.Context, r domain.Raffle) (domain.Raffle, error) {
	r.Raised = 0
	r.TicketsSold = 0
	if r.MaxTickets == 0 {
		r.MaxTickets = domain.DefaultMaxRaffleTickets
	}

	created, err := s.repo.CreateRaffle(ctx, r)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.repo.CreateRaffle -> %w", err)
	}

	s.cache.Invalidate(ctx)
	return created, nil
}

func (s *EventService) CreateWalk(ctx context.Context, w domain.Walk) (domain.Walk, error) {
	w.Raised = 0
	if w.MaxParticipants == 0 {
		w.MaxParticipants = domain.DefaultMaxWalkParticipants
	}

	created, err := s.repo.CreateWalk(ctx, w)
	if err != nil {
		return domain.Walk{}, fmt.Errorf("s.repo.CreateWalk -> %w", err)
	}

	s.cache.Invalidate(ctx)
	return created, nil
}

func (s *EventService) CreateConcert(ctx context.Context, c domain.Concert) (domain.Concert, error) {
	c.Raised = 0
	created, err := s.repo.CreateConcert(ctx, c)
	if err != nil {
		return domain.Concert{}, fmt.Errorf("s.repo.CreateConcert -> %w", err)
	}

	s.cache.Invalidate(ctx)
	return created, nil
}
