package commands_test

import (
	"context"
	"testing"

	"kitchenboard/internal/core/application/usecases/commands"
	"kitchenboard/internal/core/domain/model/order"
	"kitchenboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClearOrderRepository struct{ mock.Mock }

func (m *MockClearOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockClearOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockClearOrderRepository) Get(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockClearOrderRepository) GetAllReadyUncleared(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockClearOrderUoW struct{ mock.Mock }

func (m *MockClearOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClearOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClearOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClearOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockClearOrderUoWFactory struct{ mock.Mock }

func (m *MockClearOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func readyOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o := inProgressOrder(t, id, order.Details{})
	require.NoError(t, o.MarkReady(testTime(t)))
	return o
}

func TestClearOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearOrderCommand("ORD-001")
	require.NoError(t, err)

	testOrder := readyOrder(t, "ORD-001")

	repo := new(MockClearOrderRepository)
	uow := new(MockClearOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "ORD-001").Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClearOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, testOrder.IsCleared())
	require.Equal(t, order.Ready, testOrder.Status(), "clearing must not change the status")
	repo.AssertExpectations(t)
}

func TestClearOrderCommandHandler_Handle_AlreadyClearedIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearOrderCommand("ORD-001")
	require.NoError(t, err)

	testOrder := readyOrder(t, "ORD-001")
	require.NoError(t, testOrder.Clear(testTime(t)))

	repo := new(MockClearOrderRepository)
	uow := new(MockClearOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "ORD-001").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClearOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestClearOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearOrderCommand("ORD-001")
	require.NoError(t, err)

	testOrder, err := order.NewOrder("ORD-001", order.Details{}) // still Pending
	require.NoError(t, err)

	repo := new(MockClearOrderRepository)
	uow := new(MockClearOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "ORD-001").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClearOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.False(t, testOrder.IsCleared())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestClearAllReadyCommandHandler_Handle_ClearsEveryReadyOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearAllReadyCommand()
	require.NoError(t, err)

	first := readyOrder(t, "ORD-001")
	second := readyOrder(t, "ORD-002")

	repo := new(MockClearOrderRepository)
	uow := new(MockClearOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllReadyUncleared", ctx).Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClearOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearAllReadyCommandHandler(factory)
	cleared, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, cleared)
	require.True(t, first.IsCleared())
	require.True(t, second.IsCleared())
	repo.AssertExpectations(t)
}

func TestClearAllReadyCommandHandler_Handle_EmptyBoard(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearAllReadyCommand()
	require.NoError(t, err)

	repo := new(MockClearOrderRepository)
	uow := new(MockClearOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllReadyUncleared", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClearOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearAllReadyCommandHandler(factory)
	cleared, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 0, cleared)
	repo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
