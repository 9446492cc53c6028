package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

type TicketService struct {
	repo EventRepository
}

func NewTicketService(repo EventRepository) *TicketService {
	return &TicketService{
		repo: repo,
	}
}

// Redeem marks the ticket as used at the door. A ticket can be redeemed once.
func (s *TicketService) Redeem(ctx context.Context, reference string) (domain.TicketRecord, error) {
	if _, err := uuid.Parse(reference); err != nil {
		return domain.TicketRecord{}, fmt.Errorf("%w: malformed ticket reference %q", ErrInvalidInput, reference)
	}

	var record domain.TicketRecord
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.repo.LockTicket(ctx, reference)
		if err != nil {
			return fmt.Errorf("s.repo.LockTicket -> %w", err)
		}
		if record.Used {
			return fmt.Errorf("%w: %s", ErrAlreadyUsed, reference)
		}

		if err := s.repo.MarkTicketUsed(ctx, record); err != nil {
			return fmt.Errorf("s.repo.MarkTicketUsed -> %w", err)
		}
		record.Used = true
		return nil
	})
	if err != nil {
		return domain.TicketRecord{}, err
	}

	zap.L().Info("ticket redeemed",
		zap.String("kind", string(record.Kind)),
		zap.Uint("event_id", record.EventID),
		zap.String("reference", reference),
	)
	return record, nil
}
