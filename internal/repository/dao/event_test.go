package dao

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func fields(date time.Time) EventFields {
	return EventFields{Date: date, Location: "Town hall", TargetCents: 100000}
}

func ticketFields(name string) TicketFields {
	return TicketFields{Reference: uuid.NewString(), Name: name, PurchasedAt: now}
}

func TestDinnerTables(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	dinner, err := d.CreateDinner(ctx, Dinner{
		EventFields:         fields(now.Add(24 * time.Hour)),
		NumTables:           3,
		SeatsPerTable:       2,
		PricePerPersonCents: 2000,
		Tables:              []DinnerTable{{Number: 1}, {Number: 2}, {Number: 3}},
	})
	require.NoError(t, err)
	require.NotZero(t, dinner.ID)

	got, err := d.GetDinner(ctx, dinner.ID)
	require.NoError(t, err)
	require.Len(t, got.Tables, 3)
	for i, table := range got.Tables {
		assert.Equal(t, i+1, table.Number)
		assert.Equal(t, 0, table.Assignments)
	}

	tables, err := d.ListTables(ctx, dinner.ID)
	require.NoError(t, err)
	assert.Len(t, tables, 3)

	_, err = d.GetDinner(ctx, dinner.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = d.ListTables(ctx, dinner.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	entry, err := d.InsertDinnerEntry(ctx, DinnerEntry{TicketFields: ticketFields("Ana"), TableID: tables[0].ID}, 1, 2000)
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)

	table, err := d.GetTable(ctx, tables[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Assignments)

	got, err = d.GetDinner(ctx, dinner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), got.RaisedCents)
}

func TestListUpcoming(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	for _, offset := range []time.Duration{-48 * time.Hour, 24 * time.Hour, 72 * time.Hour, 48 * time.Hour} {
		_, err := d.CreateRaffle(ctx, Raffle{EventFields: fields(now.Add(offset)), MaxTickets: 10, PricePerTicketCents: 500})
		require.NoError(t, err)
	}

	raffles, err := d.ListRaffles(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, raffles, 3)
	assert.True(t, raffles[0].Date.Equal(now.Add(72*time.Hour)))
	assert.True(t, raffles[1].Date.Equal(now.Add(48*time.Hour)))
	assert.True(t, raffles[2].Date.Equal(now.Add(24*time.Hour)))

	raffles, err = d.ListRaffles(ctx, now, 2)
	require.NoError(t, err)
	assert.Len(t, raffles, 2)
}

func TestRaffleTickets(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	raffle, err := d.CreateRaffle(ctx, Raffle{EventFields: fields(now), MaxTickets: 5, PricePerTicketCents: 500})
	require.NoError(t, err)

	max, err := d.MaxRaffleTicketNumber(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	_, err = d.InsertRaffleTicket(ctx, RaffleTicket{TicketFields: ticketFields("Ana"), RaffleID: raffle.ID, Number: 1}, 1, 500)
	require.NoError(t, err)

	max, err = d.MaxRaffleTicketNumber(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, max)

	_, err = d.InsertRaffleTicket(ctx, RaffleTicket{TicketFields: ticketFields("Luis"), RaffleID: raffle.ID, Number: 1}, 2, 1000)
	assert.ErrorIs(t, err, ErrDuplicate)

	// The failed insert must not have touched the counters.
	got, err := d.GetRaffle(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TicketsSold)
	assert.Equal(t, int64(500), got.RaisedCents)
}

func TestWalkBibs(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	walk, err := d.CreateWalk(ctx, Walk{EventFields: fields(now), MaxParticipants: 10, RegistrationPriceCents: 1200})
	require.NoError(t, err)
	other, err := d.CreateWalk(ctx, Walk{EventFields: fields(now), MaxParticipants: 10, RegistrationPriceCents: 1200})
	require.NoError(t, err)

	stats, err := d.WalkBibStats(ctx, walk.ID)
	require.NoError(t, err)
	assert.Equal(t, BibStats{}, stats)

	for i, name := range []string{"Ana", "Luis"} {
		_, err = d.InsertWalkBib(ctx, WalkBib{TicketFields: ticketFields(name), WalkID: walk.ID, Number: i + 1, ShirtSize: "M"}, int64(1200*(i+1)))
		require.NoError(t, err)
	}

	stats, err = d.WalkBibStats(ctx, walk.ID)
	require.NoError(t, err)
	assert.Equal(t, BibStats{Count: 2, MaxNumber: 2}, stats)

	counts, err := d.CountBibs(ctx, []uint{walk.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[walk.ID])
	assert.Equal(t, 0, counts[other.ID])
}

func TestConcertSeats(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	concert, err := d.CreateConcert(ctx, Concert{EventFields: fields(now), MaxAttendees: 10, NumRows: 5, SeatsPerRow: 5, TicketPriceCents: 1500})
	require.NoError(t, err)

	_, err = d.InsertConcertEntry(ctx, ConcertEntry{TicketFields: ticketFields("Ana"), ConcertID: concert.ID, Row: 2, Seat: 3}, 1500)
	require.NoError(t, err)
	_, err = d.InsertConcertEntry(ctx, ConcertEntry{TicketFields: ticketFields("Luis"), ConcertID: concert.ID, Row: 1, Seat: 4}, 3000)
	require.NoError(t, err)

	taken, err := d.SeatTaken(ctx, concert.ID, 2, 3)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = d.SeatTaken(ctx, concert.ID, 3, 2)
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = d.InsertConcertEntry(ctx, ConcertEntry{TicketFields: ticketFields("Eva"), ConcertID: concert.ID, Row: 2, Seat: 3}, 4500)
	assert.ErrorIs(t, err, ErrSeatTaken)

	seats, err := d.OccupiedSeats(ctx, concert.ID)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, [2]int{1, 4}, [2]int{seats[0].Row, seats[0].Seat})
	assert.Equal(t, [2]int{2, 3}, [2]int{seats[1].Row, seats[1].Seat})

	counts, err := d.CountEntries(ctx, []uint{concert.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[concert.ID])

	got, err := d.GetConcert(ctx, concert.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), got.RaisedCents)
}

func TestLockTicketAndMarkUsed(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	dinner, err := d.CreateDinner(ctx, Dinner{
		EventFields:   fields(now),
		NumTables:     1,
		SeatsPerTable: 4,
		Tables:        []DinnerTable{{Number: 1}},
	})
	require.NoError(t, err)
	entry, err := d.InsertDinnerEntry(ctx, DinnerEntry{TicketFields: ticketFields("Ana"), TableID: dinner.Tables[0].ID}, 1, 0)
	require.NoError(t, err)

	err = d.WithTx(ctx, func(ctx context.Context) error {
		row, err := d.LockTicket(ctx, entry.Reference)
		if err != nil {
			return err
		}
		assert.Equal(t, KindDinner, row.Kind)
		assert.Equal(t, dinner.ID, row.EventID)
		assert.False(t, row.Used)

		return d.MarkTicketUsed(ctx, row.Kind, row.ID)
	})
	require.NoError(t, err)

	row, err := d.LockTicket(ctx, entry.Reference)
	require.NoError(t, err)
	assert.True(t, row.Used)

	_, err = d.LockTicket(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	raffle, err := d.CreateRaffle(ctx, Raffle{EventFields: fields(now), MaxTickets: 5, PricePerTicketCents: 500})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = d.WithTx(ctx, func(ctx context.Context) error {
		if _, err := d.InsertRaffleTicket(ctx, RaffleTicket{TicketFields: ticketFields("Ana"), RaffleID: raffle.ID, Number: 1}, 1, 500); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	max, err := d.MaxRaffleTicketNumber(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, max)
}

func TestLockRaffleSerializesSales(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	const capacity = 5
	raffle, err := d.CreateRaffle(ctx, Raffle{EventFields: fields(now), MaxTickets: capacity, PricePerTicketCents: 500})
	require.NoError(t, err)

	errFull := errors.New("full")
	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- d.WithTx(ctx, func(ctx context.Context) error {
				r, err := d.LockRaffle(ctx, raffle.ID)
				if err != nil {
					return err
				}
				if r.TicketsSold >= r.MaxTickets {
					return errFull
				}
				max, err := d.MaxRaffleTicketNumber(ctx, r.ID)
				if err != nil {
					return err
				}
				_, err = d.InsertRaffleTicket(ctx, RaffleTicket{TicketFields: ticketFields("Ana"), RaffleID: r.ID, Number: max + 1},
					r.TicketsSold+1, r.RaisedCents+r.PricePerTicketCents)
				return err
			})
		}()
	}
	wg.Wait()
	close(results)

	sold := 0
	for err := range results {
		if err == nil {
			sold++
			continue
		}
		assert.ErrorIs(t, err, errFull)
	}
	assert.Equal(t, capacity, sold)

	var numbers []int
	require.NoError(t, testDB.Model(&RaffleTicket{}).Where("raffle_id = ?", raffle.ID).Pluck("number", &numbers).Error)
	sort.Ints(numbers)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers)

	got, err := d.GetRaffle(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, got.TicketsSold)
	assert.Equal(t, int64(capacity*500), got.RaisedCents)
}
