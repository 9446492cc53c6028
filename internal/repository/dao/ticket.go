package dao

import (
	"context"
	"errors"
)

const (
	KindDinner  = "dinner"
	KindRaffle  = "raffle"
	KindWalk    = "walk"
	KindConcert = "concert"
)

// TicketRow is a ticket of any kind located by its reference.
type TicketRow struct {
	ID      uint
	Kind    string
	EventID uint
	TicketFields
}

type ticketSource struct {
	kind  string
	model func() interface{}
	row   func(v interface{}) TicketRow
}

var ticketSources = []ticketSource{
	{
		kind:  KindDinner,
		model: func() interface{} { return &DinnerEntry{} },
		row: func(v interface{}) TicketRow {
			e := v.(*DinnerEntry)
			return TicketRow{ID: e.ID, Kind: KindDinner, EventID: e.TableID, TicketFields: e.TicketFields}
		},
	},
	{
		kind:  KindRaffle,
		model: func() interface{} { return &RaffleTicket{} },
		row: func(v interface{}) TicketRow {
			t := v.(*RaffleTicket)
			return TicketRow{ID: t.ID, Kind: KindRaffle, EventID: t.RaffleID, TicketFields: t.TicketFields}
		},
	},
	{
		kind:  KindWalk,
		model: func() interface{} { return &WalkBib{} },
		row: func(v interface{}) TicketRow {
			b := v.(*WalkBib)
			return TicketRow{ID: b.ID, Kind: KindWalk, EventID: b.WalkID, TicketFields: b.TicketFields}
		},
	},
	{
		kind:  KindConcert,
		model: func() interface{} { return &ConcertEntry{} },
		row: func(v interface{}) TicketRow {
			e := v.(*ConcertEntry)
			return TicketRow{ID: e.ID, Kind: KindConcert, EventID: e.ConcertID, TicketFields: e.TicketFields}
		},
	},
}

// LockTicket finds the ticket with the given reference in any ticket table
// and locks its row.
func (d *EventDAO) LockTicket(ctx context.Context, reference string) (TicketRow, error) {
	for _, src := range ticketSources {
		model := src.model()
		err := translateError(d.forUpdate(ctx).Where("reference = ?", reference).First(model).Error)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return TicketRow{}, err
		}

		row := src.row(model)
		if row.Kind == KindDinner {
			// Dinner entries hang off a table, report the dinner instead.
			table, err := d.GetTable(ctx, row.EventID)
			if err != nil {
				return TicketRow{}, err
			}
			row.EventID = table.DinnerID
		}
		return row, nil
	}

	return TicketRow{}, ErrNotFound
}

func (d *EventDAO) MarkTicketUsed(ctx context.Context, kind string, id uint) error {
	for _, src := range ticketSources {
		if src.kind == kind {
			return d.updateColumns(ctx, src.model(), id, map[string]interface{}{"used": true})
		}
	}
	return ErrNotFound
}
