package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

func TestCancelStaleOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(time.Hour)
	require.NoError(t, err)

	first, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)
	second, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllPendingBefore", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("Update", mock.Anything, first).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, second).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, cancelled)
	require.Equal(t, order.Cancelled, first.Status())
	require.Equal(t, order.Cancelled, second.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCancelStaleOrdersCommand_RejectsNonPositiveAge(t *testing.T) {
	_, err := commands.NewCancelStaleOrdersCommand(0)
	require.Error(t, err)

	_, err = commands.NewCancelStaleOrdersCommand(-time.Minute)
	require.Error(t, err)
}
