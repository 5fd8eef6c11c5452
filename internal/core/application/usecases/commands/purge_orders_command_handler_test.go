package commands_test

import (
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPurgeOrdersCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPurgeOrdersCommand(30 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, cmd.Retention())
}

func TestNewPurgeOrdersCommand_InvalidRetention(t *testing.T) {
	_, err := commands.NewPurgeOrdersCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewPurgeOrdersCommand(-time.Hour)
	require.Error(t, err)
}

func TestPurgeOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPurgeOrdersCommand(24 * time.Hour)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("PurgeDeletedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeOrdersCommandHandler(factory)
	purged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(3), purged)

	// the cutoff handed to the repository is retention in the past
	cutoff := repo.Calls[0].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), cutoff, time.Minute)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPurgeOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PurgeOrdersCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewPurgeOrdersCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPurgeOrdersCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPurgeOrdersCommand(24 * time.Hour)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("PurgeDeletedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("purge error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeOrdersCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
