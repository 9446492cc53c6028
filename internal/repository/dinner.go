package repository

import (
	"context"
	"time"

	"github.com/charity-events/fundraiser-api/internal/domain"
	"github.com/charity-events/fundraiser-api/internal/repository/dao"
)

func dinnerToDao(d domain.Dinner) dao.Dinner {
	tables := make([]dao.DinnerTable, len(d.Tables))
	for i, t := range d.Tables {
		tables[i] = dao.DinnerTable{ID: t.ID, DinnerID: t.DinnerID, Number: t.Number, Assignments: t.Assignments}
	}

	return dao.Dinner{
		ID:                  d.ID,
		EventFields:         eventToDao(d.Event),
		Menu:                d.Menu,
		NumTables:           d.NumTables,
		SeatsPerTable:       d.SeatsPerTable,
		PricePerPersonCents: int64(d.PricePerPerson),
		Tables:              tables,
	}
}

func dinnerToDomain(d dao.Dinner) domain.Dinner {
	var tables []domain.Table
	for _, t := range d.Tables {
		tables = append(tables, tableToDomain(t))
	}

	return domain.Dinner{
		Event:          eventToDomain(d.ID, d.EventFields),
		Menu:           d.Menu,
		NumTables:      d.NumTables,
		SeatsPerTable:  d.SeatsPerTable,
		PricePerPerson: domain.Cents(d.PricePerPersonCents),
		Tables:         tables,
	}
}

func tableToDomain(t dao.DinnerTable) domain.Table {
	return domain.Table{
		ID:          t.ID,
		DinnerID:    t.DinnerID,
		Number:      t.Number,
		Assignments: t.Assignments,
	}
}

// CreateDinner stores the dinner and lays out its tables in one go.
func (r *EventRepository) CreateDinner(ctx context.Context, d domain.Dinner) (domain.Dinner, error) {
	d.Tables = d.NewTables()
	created, err := r.dao.CreateDinner(ctx, dinnerToDao(d))
	if err != nil {
		return domain.Dinner{}, wrap("r.dao.CreateDinner", err)
	}

	return dinnerToDomain(created), nil
}

func (r *EventRepository) ListDinners(ctx context.Context, from time.Time, limit int) ([]domain.Dinner, error) {
	found, err := r.dao.ListDinners(ctx, from, limit)
	if err != nil {
		return nil, wrap("r.dao.ListDinners", err)
	}

	dinners := make([]domain.Dinner, len(found))
	for i, d := range found {
		dinners[i] = dinnerToDomain(d)
	}
	return dinners, nil
}

func (r *EventRepository) GetDinner(ctx context.Context, id uint) (domain.Dinner, error) {
	found, err := r.dao.GetDinner(ctx, id)
	if err != nil {
		return domain.Dinner{}, wrap("r.dao.GetDinner", err)
	}

	return dinnerToDomain(found), nil
}

func (r *EventRepository) LockDinner(ctx context.Context, id uint) (domain.Dinner, error) {
	found, err := r.dao.LockDinner(ctx, id)
	if err != nil {
		return domain.Dinner{}, wrap("r.dao.LockDinner", err)
	}

	return dinnerToDomain(found), nil
}

func (r *EventRepository) ListTables(ctx context.Context, dinnerID uint) ([]domain.Table, error) {
	found, err := r.dao.ListTables(ctx, dinnerID)
	if err != nil {
		return nil, wrap("r.dao.ListTables", err)
	}

	tables := make([]domain.Table, len(found))
	for i, t := range found {
		tables[i] = tableToDomain(t)
	}
	return tables, nil
}

func (r *EventRepository) GetTable(ctx context.Context, id uint) (domain.Table, error) {
	found, err := r.dao.GetTable(ctx, id)
	if err != nil {
		return domain.Table{}, wrap("r.dao.GetTable", err)
	}

	return tableToDomain(found), nil
}

func (r *EventRepository) LockTable(ctx context.Context, id uint) (domain.Table, error) {
	found, err := r.dao.LockTable(ctx, id)
	if err != nil {
		return domain.Table{}, wrap("r.dao.LockTable", err)
	}

	return tableToDomain(found), nil
}

// SaveDinnerEntry stores the entry along with the table's assignments and
// the dinner's running total as they stand on t and d.
func (r *EventRepository) SaveDinnerEntry(ctx context.Context, d domain.Dinner, t domain.Table, entry domain.DinnerEntry) (domain.DinnerEntry, error) {
	saved, err := r.dao.InsertDinnerEntry(ctx, dao.DinnerEntry{
		TicketFields: ticketToDao(entry.Ticket),
		TableID:      t.ID,
	}, t.Assignments, int64(d.Raised))
	if err != nil {
		return domain.DinnerEntry{}, wrap("r.dao.InsertDinnerEntry", err)
	}

	return domain.DinnerEntry{
		Ticket:      ticketToDomain(saved.ID, saved.TicketFields),
		TableID:     t.ID,
		TableNumber: t.Number,
	}, nil
}
