package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charity-events/fundraiser-api/internal/clock"
	"github.com/charity-events/fundraiser-api/internal/domain"
)

// memoryCache round-trips values through JSON like the redis cache does.
type memoryCache struct {
	values      map[string][]byte
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Fetch(_ context.Context, key string, dst interface{}) bool {
	raw, ok := c.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *memoryCache) Store(_ context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err == nil {
		c.values[key] = raw
	}
}

func (c *memoryCache) Invalidate(context.Context) {
	c.invalidated++
	c.values = map[string][]byte{}
}

func TestEventService_Overview(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, clock.NewFixed(testNow), nil)
	ctx := context.Background()

	for i := -2; i < 5; i++ {
		_, err := svc.CreateRaffle(ctx, domain.Raffle{Event: domain.Event{Date: testNow.Add(time.Duration(i) * 24 * time.Hour)}})
		require.NoError(t, err)
	}
	_, err := svc.CreateDinner(ctx, domain.Dinner{Event: domain.Event{Date: testNow.Add(time.Hour)}, NumTables: 2, SeatsPerTable: 4})
	require.NoError(t, err)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Raffles, OverviewSize)
	assert.Equal(t, testNow.Add(4*24*time.Hour), overview.Raffles[0].Date)
	assert.Equal(t, testNow.Add(2*24*time.Hour), overview.Raffles[2].Date)
	require.Len(t, overview.Dinners, 1)
	assert.Len(t, overview.Dinners[0].Tables, 2)
	assert.Empty(t, overview.Walks)
	assert.Empty(t, overview.Concerts)
}

func TestEventService_ListsSkipPastEvents(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, clock.NewFixed(testNow), nil)
	ctx := context.Background()

	_, err := svc.CreateWalk(ctx, domain.Walk{Event: domain.Event{Date: testNow.Add(-time.Hour)}})
	require.NoError(t, err)
	upcoming, err := svc.CreateWalk(ctx, domain.Walk{Event: domain.Event{Date: testNow}})
	require.NoError(t, err)

	walks, err := svc.ListWalks(ctx)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, upcoming.ID, walks[0].ID)
}

func TestEventService_CreateDefaults(t *testing.T) {
	svc := NewEventService(newFakeRepo(), clock.NewFixed(testNow), nil)
	ctx := context.Background()

	raffle, err := svc.CreateRaffle(ctx, domain.Raffle{Event: domain.Event{Raised: 999}, TicketsSold: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxRaffleTickets, raffle.MaxTickets)
	assert.Equal(t, 0, raffle.TicketsSold)
	assert.Equal(t, domain.Cents(0), raffle.Raised)

	walk, err := svc.CreateWalk(ctx, domain.Walk{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxWalkParticipants, walk.MaxParticipants)

	dinner, err := svc.CreateDinner(ctx, domain.Dinner{NumTables: 3, SeatsPerTable: 6})
	require.NoError(t, err)
	require.Len(t, dinner.Tables, 3)
	assert.Equal(t, 3, dinner.Tables[2].Number)
}

func TestEventService_Tables(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, clock.NewFixed(testNow), nil)
	alloc := NewAllocationService(repo)
	ctx := context.Background()

	dinner, err := svc.CreateDinner(ctx, domain.Dinner{NumTables: 2, SeatsPerTable: 1, PricePerPerson: 1000})
	require.NoError(t, err)
	_, err = alloc.AllocateDinnerSeat(ctx, dinner.Tables[0].ID, ana)
	require.NoError(t, err)

	all, err := svc.Tables(ctx, dinner.ID, false)
	require.NoError(t, err)
	assert.Len(t, all.Tables, 2)
	assert.Equal(t, 1, all.SeatsPerTable)

	available, err := svc.Tables(ctx, dinner.ID, true)
	require.NoError(t, err)
	require.Len(t, available.Tables, 1)
	assert.Equal(t, 2, available.Tables[0].Number)

	_, err = svc.Tables(ctx, 9999, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_ConcertDetails(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEventService(repo, clock.NewFixed(testNow), nil)
	alloc := NewAllocationService(repo)
	ctx := context.Background()

	concert, err := svc.CreateConcert(ctx, domain.Concert{MaxAttendees: 50, NumRows: 5, SeatsPerRow: 10, TicketPrice: 1500})
	require.NoError(t, err)
	_, err = alloc.AllocateConcertSeat(ctx, concert.ID, ana, 3, 4)
	require.NoError(t, err)
	_, err = alloc.AllocateConcertSeat(ctx, concert.ID, ana, 1, 9)
	require.NoError(t, err)

	got, err := svc.GetConcert(ctx, concert.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, got.EntriesAvailable())

	seats, err := svc.OccupiedSeats(ctx, concert.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.SeatPosition{{Row: 1, Seat: 9}, {Row: 3, Seat: 4}}, seats)

	_, err = svc.OccupiedSeats(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_ListingCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newMemoryCache()
	svc := NewEventService(repo, clock.NewFixed(testNow), cache)
	alloc := NewAllocationService(repo, WithListingCache(cache))
	ctx := context.Background()

	raffle, err := svc.CreateRaffle(ctx, domain.Raffle{Event: domain.Event{Date: testNow.Add(time.Hour)}, MaxTickets: 5, PricePerTicket: 500})
	require.NoError(t, err)

	raffles, err := svc.ListRaffles(ctx)
	require.NoError(t, err)
	require.Len(t, raffles, 1)
	assert.Contains(t, cache.values, keyRaffles)

	// Served from the cache while nothing changes.
	repo.raffles[raffle.ID] = domain.Raffle{Event: domain.Event{ID: raffle.ID, Date: testNow.Add(time.Hour), Location: "changed"}, MaxTickets: 5}
	raffles, err = svc.ListRaffles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", raffles[0].Location)

	_, err = alloc.AllocateRaffleTicket(ctx, raffle.ID, ana)
	require.NoError(t, err)
	assert.NotContains(t, cache.values, keyRaffles)

	raffles, err = svc.ListRaffles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "changed", raffles[0].Location)
	assert.Equal(t, 1, raffles[0].TicketsSold)
}

func TestEventService_ShirtSizes(t *testing.T) {
	svc := NewEventService(newFakeRepo(), nil, nil)
	sizes := svc.ShirtSizes()
	require.Len(t, sizes, 7)
	assert.Equal(t, domain.ShirtXXL, sizes[6].Code)
}
