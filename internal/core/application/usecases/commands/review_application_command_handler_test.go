package commands_test

import (
	"testing"

	"thumathina/internal/core/application/usecases/commands"
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/core/ports"
	"thumathina/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewApplicationCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	applicant := kernel.NewUUID()
	reviewed := storedApplication(t, applicant)
	cmd, err := commands.NewReviewApplicationCommand(
		adminActor(t), reviewed.ID(), ports.DecisionApproved, "")
	require.NoError(t, err)

	store := new(MockEntityStore)
	store.On("ReviewApplication", ctx, reviewed.ID(), ports.DecisionApproved, "").
		Return(reviewed, nil).Once()

	cache := new(MockViewCache)
	var invalidated []ports.ScopeKey
	cache.On("Invalidate", mock.Anything).Run(func(args mock.Arguments) {
		invalidated = args.Get(0).([]ports.ScopeKey)
	}).Once()

	h := commands.NewReviewApplicationCommandHandler(store, cache)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, got.ID().IsEqual(reviewed.ID()))
	assert.Contains(t, invalidated, ports.ApplicationScope(kernel.RoleDriver, applicant))
	assert.Contains(t, invalidated, ports.PendingApplicationsScope())
	store.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestReviewApplicationCommandHandler_Handle_NonAdmin(t *testing.T) {
	cmd, err := commands.NewReviewApplicationCommand(
		applicantActor(t), kernel.NewUUID(), ports.DecisionApproved, "")
	require.NoError(t, err)

	store := new(MockEntityStore)
	cache := new(MockViewCache)

	h := commands.NewReviewApplicationCommandHandler(store, cache)
	_, err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	store.AssertNotCalled(t, "ReviewApplication", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestReviewApplicationCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	applicationID := kernel.NewUUID()
	cmd, err := commands.NewReviewApplicationCommand(
		adminActor(t), applicationID, ports.DecisionRejected, "blurred documents")
	require.NoError(t, err)

	store := new(MockEntityStore)
	store.On("ReviewApplication", ctx, applicationID, ports.DecisionRejected, "blurred documents").
		Return(nil, errs.NewInvalidStateError("application", "approved", "rejected")).Once()

	cache := new(MockViewCache)

	h := commands.NewReviewApplicationCommandHandler(store, cache)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	store.AssertExpectations(t)
}
