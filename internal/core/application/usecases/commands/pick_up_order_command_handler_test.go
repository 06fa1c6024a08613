package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/core/application/usecases/commands"
	"quickcommerce/internal/core/domain/model/order"
)

func TestPickUpOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := assignedOrder(t, 1001, 7)
	p := busyPartner(t, 7, 1001)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	orderRepo.On("Get", mock.Anything, int64(1001)).Return(o, nil).Once()
	partnerRepo.On("Get", mock.Anything, int64(7)).Return(p, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewPickUpOrderCommand(7, 1001)

	h := commands.NewPickUpOrderCommandHandler(factory, stubNotifier{})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PickedUp, o.Status())
	assert.NotNil(t, o.PickedUpAt())
	uow.AssertExpectations(t)
}

func TestPickUpOrderCommandHandler_Handle_WrongPartner(t *testing.T) {
	ctx := t.Context()
	o := assignedOrder(t, 1001, 7)
	other := busyPartner(t, 8, 999)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	orderRepo.On("Get", mock.Anything, int64(1001)).Return(o, nil).Once()
	partnerRepo.On("Get", mock.Anything, int64(8)).Return(other, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewPickUpOrderCommand(8, 1001)

	h := commands.NewPickUpOrderCommandHandler(factory, stubNotifier{})
	err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, commands.ErrOrderNotAssignedToPartner)
	assert.Equal(t, order.Assigned, o.Status())
}

func TestPickUpOrderCommandHandler_Handle_PendingOrderRejected(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, 1001)
	p := busyPartner(t, 7, 999)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	orderRepo.On("Get", mock.Anything, int64(1001)).Return(o, nil).Once()
	partnerRepo.On("Get", mock.Anything, int64(7)).Return(p, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewPickUpOrderCommand(7, 1001)

	h := commands.NewPickUpOrderCommandHandler(factory, stubNotifier{})
	err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, commands.ErrOrderNotAssignedToPartner)
}
