package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

func TestTicketService_Redeem(t *testing.T) {
	repo := newFakeRepo()
	alloc := NewAllocationService(repo)
	svc := NewTicketService(repo)
	ctx := context.Background()

	walk, err := repo.CreateWalk(ctx, domain.Walk{MaxParticipants: 10, RegistrationPrice: 1000})
	require.NoError(t, err)
	bib, err := alloc.AllocateWalkBib(ctx, walk.ID, ana, "XL")
	require.NoError(t, err)

	record, err := svc.Redeem(ctx, bib.Reference)
	require.NoError(t, err)
	assert.Equal(t, domain.KindWalk, record.Kind)
	assert.Equal(t, walk.ID, record.EventID)
	assert.True(t, record.Used)

	_, err = svc.Redeem(ctx, bib.Reference)
	assert.ErrorIs(t, err, ErrAlreadyUsed)
}

func TestTicketService_RedeemUnknown(t *testing.T) {
	svc := NewTicketService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Redeem(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Redeem(ctx, "not-a-reference")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
