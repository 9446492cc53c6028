package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) Overview(ctx context.Context) (domain.Overview, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Overview), args.Error(1)
}

func (m *mockEventService) ListDinners(ctx context.Context) ([]domain.Dinner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Dinner), args.Error(1)
}

func (m *mockEventService) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Raffle), args.Error(1)
}

func (m *mockEventService) ListWalks(ctx context.Context) ([]domain.Walk, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Walk), args.Error(1)
}

func (m *mockEventService) ListConcerts(ctx context.Context) ([]domain.Concert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Concert), args.Error(1)
}

func (m *mockEventService) GetDinner(ctx context.Context, id uint) (domain.Dinner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Dinner), args.Error(1)
}

func (m *mockEventService) Tables(ctx context.Context, dinnerID uint, onlyAvailable bool) (domain.Dinner, error) {
	args := m.Called(ctx, dinnerID, onlyAvailable)
	return args.Get(0).(domain.Dinner), args.Error(1)
}

func (m *mockEventService) GetRaffle(ctx context.Context, id uint) (domain.Raffle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Raffle), args.Error(1)
}

func (m *mockEventService) GetWalk(ctx context.Context, id uint) (domain.Walk, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Walk), args.Error(1)
}

func (m *mockEventService) GetConcert(ctx context.Context, id uint) (domain.Concert, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Concert), args.Error(1)
}

func (m *mockEventService) OccupiedSeats(ctx context.Context, concertID uint) ([]domain.SeatPosition, error) {
	args := m.Called(ctx, concertID)
	return args.Get(0).([]domain.SeatPosition), args.Error(1)
}

func (m *mockEventService) ShirtSizes() []domain.ShirtSizeOption {
	args := m.Called()
	return args.Get(0).([]domain.ShirtSizeOption)
}

func (m *mockEventService) CreateDinner(ctx context.Context, d domain.Dinner) (domain.Dinner, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Dinner), args.Error(1)
}

func (m *mockEventService) CreateRaffle(ctx context.Context, r domain.Raffle) (domain.Raffle, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.Raffle), args.Error(1)
}

func (m *mockEventService) CreateWalk(ctx context.Context, w domain.Walk) (domain.Walk, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(domain.Walk), args.Error(1)
}

func (m *mockEventService) CreateConcert(ctx context.Context, c domain.Concert) (domain.Concert, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Concert), args.Error(1)
}

type mockAllocationService struct {
	mock.Mock
}

func (m *mockAllocationService) AllocateDinnerSeat(ctx context.Context, tableID uint, p domain.Purchaser) (domain.DinnerEntry, error) {
	args := m.Called(ctx, tableID, p)
	return args.Get(0).(domain.DinnerEntry), args.Error(1)
}

func (m *mockAllocationService) AllocateRaffleTicket(ctx context.Context, raffleID uint, p domain.Purchaser) (domain.RaffleTicket, error) {
	args := m.Called(ctx, raffleID, p)
	return args.Get(0).(domain.RaffleTicket), args.Error(1)
}

func (m *mockAllocationService) AllocateWalkBib(ctx context.Context, walkID uint, p domain.Purchaser, shirtSize string) (domain.WalkBib, error) {
	args := m.Called(ctx, walkID, p, shirtSize)
	return args.Get(0).(domain.WalkBib), args.Error(1)
}

func (m *mockAllocationService) AllocateConcertSeat(ctx context.Context, concertID uint, p domain.Purchaser, row, seat int) (domain.ConcertEntry, error) {
	args := m.Called(ctx, concertID, p, row, seat)
	return args.Get(0).(domain.ConcertEntry), args.Error(1)
}

type mockTicketService struct {
	mock.Mock
}

func (m *mockTicketService) Redeem(ctx context.Context, reference string) (domain.TicketRecord, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(domain.TicketRecord), args.Error(1)
}
