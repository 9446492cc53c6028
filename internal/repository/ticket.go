package repository

import (
	"context"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

func (r *EventRepository) LockTicket(ctx context.Context, reference string) (domain.TicketRecord, error) {
	row, err := r.dao.LockTicket(ctx, reference)
	if err != nil {
		return domain.TicketRecord{}, wrap("r.dao.LockTicket", err)
	}

	return domain.TicketRecord{
		Kind:    domain.EventKind(row.Kind),
		EventID: row.EventID,
		Ticket:  ticketToDomain(row.ID, row.TicketFields),
	}, nil
}

func (r *EventRepository) MarkTicketUsed(ctx context.Context, record domain.TicketRecord) error {
	if err := r.dao.MarkTicketUsed(ctx, string(record.Kind), record.ID); err != nil {
		return wrap("r.dao.MarkTicketUsed", err)
	}

	return nil
}
