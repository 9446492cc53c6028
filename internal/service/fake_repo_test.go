package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

// fakeRepo is an in-memory EventRepository. WithTx holds a single mutex,
// which serializes transactions the same way the row locks do.
type fakeRepo struct {
	txMu sync.Mutex
	mu   sync.Mutex

	nextID uint

	dinners  map[uint]domain.Dinner
	tables   map[uint]domain.Table
	entries  []domain.DinnerEntry
	raffles  map[uint]domain.Raffle
	tickets  []domain.RaffleTicket
	walks    map[uint]domain.Walk
	bibs     []domain.WalkBib
	concerts map[uint]domain.Concert
	seats    []domain.ConcertEntry
	used     map[string]bool

	// saveErr, when set, is returned by every Save* call.
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		dinners:  map[uint]domain.Dinner{},
		tables:   map[uint]domain.Table{},
		raffles:  map[uint]domain.Raffle{},
		walks:    map[uint]domain.Walk{},
		concerts: map[uint]domain.Concert{},
		used:     map[string]bool{},
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func notFound(what string, id uint) error {
	return fmt.Errorf("%w: %s %d", domain.ErrNotFound, what, id)
}

func (f *fakeRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()
	return fn(ctx)
}

func upcomingOnly[T any](items []T, date func(T) time.Time, from time.Time, limit int) []T {
	var out []T
	for _, it := range items {
		if !date(it).Before(from) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return date(out[i]).After(date(out[j])) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeRepo) CreateDinner(_ context.Context, d domain.Dinner) (domain.Dinner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d.ID = f.id()
	d.Tables = d.NewTables()
	for i := range d.Tables {
		d.Tables[i].ID = f.id()
		f.tables[d.Tables[i].ID] = d.Tables[i]
	}
	stored := d
	stored.Tables = nil
	f.dinners[d.ID] = stored
	return d, nil
}

func (f *fakeRepo) withTables(d domain.Dinner) domain.Dinner {
	d.Tables = nil
	for _, t := range f.tables {
		if t.DinnerID == d.ID {
			d.Tables = append(d.Tables, t)
		}
	}
	sort.Slice(d.Tables, func(i, j int) bool { return d.Tables[i].Number < d.Tables[j].Number })
	return d
}

func (f *fakeRepo) ListDinners(_ context.Context, from time.Time, limit int) ([]domain.Dinner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []domain.Dinner
	for _, d := range f.dinners {
		all = append(all, f.withTables(d))
	}
	return upcomingOnly(all, func(d domain.Dinner) time.Time { return d.Date }, from, limit), nil
}

func (f *fakeRepo) GetDinner(_ context.Context, id uint) (domain.Dinner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.dinners[id]
	if !ok {
		return domain.Dinner{}, notFound("dinner", id)
	}
	return f.withTables(d), nil
}

func (f *fakeRepo) LockDinner(_ context.Context, id uint) (domain.Dinner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.dinners[id]
	if !ok {
		return domain.Dinner{}, notFound("dinner", id)
	}
	return d, nil
}

func (f *fakeRepo) ListTables(ctx context.Context, dinnerID uint) ([]domain.Table, error) {
	d, err := f.GetDinner(ctx, dinnerID)
	if err != nil {
		return nil, err
	}
	return d.Tables, nil
}

func (f *fakeRepo) GetTable(_ context.Context, id uint) (domain.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.tables[id]
	if !ok {
		return domain.Table{}, notFound("table", id)
	}
	return t, nil
}

func (f *fakeRepo) LockTable(ctx context.Context, id uint) (domain.Table, error) {
	return f.GetTable(ctx, id)
}

func (f *fakeRepo) SaveDinnerEntry(_ context.Context, d domain.Dinner, t domain.Table, entry domain.DinnerEntry) (domain.DinnerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return domain.DinnerEntry{}, f.saveErr
	}

	entry.ID = f.id()
	entry.TableID = t.ID
	entry.TableNumber = t.Number
	f.entries = append(f.entries, entry)
	f.tables[t.ID] = t
	stored := f.dinners[d.ID]
	stored.Raised = d.Raised
	f.dinners[d.ID] = stored
	return entry, nil
}

func (f *fakeRepo) CreateRaffle(_ context.Context, r domain.Raffle) (domain.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r.ID = f.id()
	f.raffles[r.ID] = r
	return r, nil
}

func (f *fakeRepo) ListRaffles(_ context.Context, from time.Time, limit int) ([]domain.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []domain.Raffle
	for _, r := range f.raffles {
		all = append(all, r)
	}
	return upcomingOnly(all, func(r domain.Raffle) time.Time { return r.Date }, from, limit), nil
}

func (f *fakeRepo) GetRaffle(_ context.Context, id uint) (domain.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.raffles[id]
	if !ok {
		return domain.Raffle{}, notFound("raffle", id)
	}
	return r, nil
}

func (f *fakeRepo) LockRaffle(ctx context.Context, id uint) (domain.Raffle, error) {
	return f.GetRaffle(ctx, id)
}

func (f *fakeRepo) MaxRaffleTicketNumber(_ context.Context, raffleID uint) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	max := 0
	for _, t := range f.tickets {
		if t.RaffleID == raffleID && t.Number > max {
			max = t.Number
		}
	}
	return max, nil
}

func (f *fakeRepo) SaveRaffleTicket(_ context.Context, r domain.Raffle, ticket domain.RaffleTicket) (domain.RaffleTicket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return domain.RaffleTicket{}, f.saveErr
	}
	for _, t := range f.tickets {
		if t.RaffleID == r.ID && t.Number == ticket.Number {
			return domain.RaffleTicket{}, domain.ErrConflict
		}
	}

	ticket.ID = f.id()
	ticket.RaffleID = r.ID
	f.tickets = append(f.tickets, ticket)
	f.raffles[r.ID] = r
	return ticket, nil
}

func (f *fakeRepo) CreateWalk(_ context.Context, w domain.Walk) (domain.Walk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.ID = f.id()
	f.walks[w.ID] = w
	return w, nil
}

func (f *fakeRepo) countBibs(walkID uint) (count, max int) {
	for _, b := range f.bibs {
		if b.WalkID == walkID {
			count++
			if b.Number > max {
				max = b.Number
			}
		}
	}
	return count, max
}

func (f *fakeRepo) ListWalks(_ context.Context, from time.Time, limit int) ([]domain.Walk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []domain.Walk
	for _, w := range f.walks {
		w.Registered, _ = f.countBibs(w.ID)
		all = append(all, w)
	}
	return upcomingOnly(all, func(w domain.Walk) time.Time { return w.Date }, from, limit), nil
}

func (f *fakeRepo) GetWalk(_ context.Context, id uint) (domain.Walk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.walks[id]
	if !ok {
		return domain.Walk{}, notFound("walk", id)
	}
	w.Registered, _ = f.countBibs(id)
	return w, nil
}

func (f *fakeRepo) LockWalk(_ context.Context, id uint) (domain.Walk, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.walks[id]
	if !ok {
		return domain.Walk{}, 0, notFound("walk", id)
	}
	count, max := f.countBibs(id)
	w.Registered = count
	return w, max, nil
}

func (f *fakeRepo) SaveWalkBib(_ context.Context, w domain.Walk, bib domain.WalkBib) (domain.WalkBib, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return domain.WalkBib{}, f.saveErr
	}

	bib.ID = f.id()
	bib.WalkID = w.ID
	f.bibs = append(f.bibs, bib)
	stored := f.walks[w.ID]
	stored.Raised = w.Raised
	f.walks[w.ID] = stored
	return bib, nil
}

func (f *fakeRepo) CreateConcert(_ context.Context, c domain.Concert) (domain.Concert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c.ID = f.id()
	f.concerts[c.ID] = c
	return c, nil
}

func (f *fakeRepo) countSeats(concertID uint) int {
	n := 0
	for _, e := range f.seats {
		if e.ConcertID == concertID {
			n++
		}
	}
	return n
}

func (f *fakeRepo) ListConcerts(_ context.Context, from time.Time, limit int) ([]domain.Concert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []domain.Concert
	for _, c := range f.concerts {
		c.Sold = f.countSeats(c.ID)
		all = append(all, c)
	}
	return upcomingOnly(all, func(c domain.Concert) time.Time { return c.Date }, from, limit), nil
}

func (f *fakeRepo) GetConcert(_ context.Context, id uint) (domain.Concert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.concerts[id]
	if !ok {
		return domain.Concert{}, notFound("concert", id)
	}
	c.Sold = f.countSeats(id)
	return c, nil
}

func (f *fakeRepo) LockConcert(ctx context.Context, id uint) (domain.Concert, error) {
	return f.GetConcert(ctx, id)
}

func (f *fakeRepo) SeatTaken(_ context.Context, concertID uint, row, seat int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.seats {
		if e.ConcertID == concertID && e.Row == row && e.Seat == seat {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) OccupiedSeats(ctx context.Context, concertID uint) ([]domain.SeatPosition, error) {
	if _, err := f.GetConcert(ctx, concertID); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var seats []domain.SeatPosition
	for _, e := range f.seats {
		if e.ConcertID == concertID {
			seats = append(seats, domain.SeatPosition{Row: e.Row, Seat: e.Seat})
		}
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Seat < seats[j].Seat
	})
	return seats, nil
}

func (f *fakeRepo) SaveConcertEntry(_ context.Context, c domain.Concert, entry domain.ConcertEntry) (domain.ConcertEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return domain.ConcertEntry{}, f.saveErr
	}
	for _, e := range f.seats {
		if e.ConcertID == c.ID && e.Row == entry.Row && e.Seat == entry.Seat {
			return domain.ConcertEntry{}, domain.ErrSeatTaken
		}
	}

	entry.ID = f.id()
	entry.ConcertID = c.ID
	f.seats = append(f.seats, entry)
	stored := f.concerts[c.ID]
	stored.Raised = c.Raised
	f.concerts[c.ID] = stored
	return entry, nil
}

func (f *fakeRepo) LockTicket(_ context.Context, reference string) (domain.TicketRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record := func(kind domain.EventKind, eventID uint, t domain.Ticket) domain.TicketRecord {
		t.Used = f.used[t.Reference]
		return domain.TicketRecord{Kind: kind, EventID: eventID, Ticket: t}
	}
	for _, e := range f.entries {
		if e.Reference == reference {
			return record(domain.KindDinner, f.tables[e.TableID].DinnerID, e.Ticket), nil
		}
	}
	for _, t := range f.tickets {
		if t.Reference == reference {
			return record(domain.KindRaffle, t.RaffleID, t.Ticket), nil
		}
	}
	for _, b := range f.bibs {
		if b.Reference == reference {
			return record(domain.KindWalk, b.WalkID, b.Ticket), nil
		}
	}
	for _, e := range f.seats {
		if e.Reference == reference {
			return record(domain.KindConcert, e.ConcertID, e.Ticket), nil
		}
	}
	return domain.TicketRecord{}, fmt.Errorf("%w: ticket %s", domain.ErrNotFound, reference)
}

func (f *fakeRepo) MarkTicketUsed(_ context.Context, record domain.TicketRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.used[record.Reference] = true
	return nil
}
