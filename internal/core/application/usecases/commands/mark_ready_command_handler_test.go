package commands_test

import (
	"context"
	"errors"
	"testing"

	"kitchenboard/internal/core/application/usecases/commands"
	"kitchenboard/internal/core/domain/model/order"
	"kitchenboard/internal/core/ports"
	"kitchenboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMarkReadyOrderRepository struct{ mock.Mock }

func (m *MockMarkReadyOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockMarkReadyOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockMarkReadyOrderRepository) Get(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockMarkReadyOrderRepository) GetAllReadyUncleared(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockMarkReadyUoW struct{ mock.Mock }

func (m *MockMarkReadyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarkReadyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarkReadyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarkReadyUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockMarkReadyUoWFactory struct{ mock.Mock }

func (m *MockMarkReadyUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderReady(ctx context.Context, event ports.OrderReadyEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotifier) NotifyReprint(ctx context.Context, event ports.ReprintEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func inProgressOrder(t *testing.T, id string, details order.Details) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, details)
	require.NoError(t, err)
	require.NoError(t, o.StartCooking("Kwame", testTime(t)))
	return o
}

func TestMarkReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand("ORD-001")
	require.NoError(t, err)

	testOrder := inProgressOrder(t, "ORD-001", order.Details{
		CustomerName: "Ama",
		Phone:        "0241234567",
		Items:        "Jollof, Chicken",
	})

	repo := new(MockMarkReadyOrderRepository)
	uow := new(MockMarkReadyUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "ORD-001").Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyOrderReady", ctx, mock.AnythingOfType("ports.OrderReadyEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarkReadyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, notifier, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Ready, testOrder.Status())
	require.NotNil(t, testOrder.ReadyAt())

	event := notifier.Calls[0].Arguments[1].(ports.OrderReadyEvent)
	assert.Equal(t, "ORD-001", event.OrderID)
	assert.Equal(t, "Ama", event.CustomerName)
	assert.Equal(t, "0241234567", event.Phone)
	assert.Equal(t, "Jollof, Chicken", event.Items)
	assert.NotEmpty(t, event.ReadyAt)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestMarkReadyCommandHandler_Handle_WebhookFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand("ORD-001")
	require.NoError(t, err)

	testOrder := inProgressOrder(t, "ORD-001", order.Details{})

	repo := new(MockMarkReadyOrderRepository)
	uow := new(MockMarkReadyUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "ORD-001").Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyOrderReady", ctx, mock.AnythingOfType("ports.OrderReadyEvent")).
			Return(errors.New("webhook unreachable")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarkReadyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, notifier, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err, "the transition is authoritative even when the webhook fails")
	require.Equal(t, order.Ready, testOrder.Status())
}

func TestMarkReadyCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand("ORD-001")
	require.NoError(t, err)

	testOrder, err := order.NewOrder("ORD-001", order.Details{}) // still Pending
	require.NoError(t, err)

	repo := new(MockMarkReadyOrderRepository)
	uow := new(MockMarkReadyUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "ORD-001").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarkReadyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, notifier, testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "NotifyOrderReady", ctx, mock.Anything)
}

func TestMarkReadyCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkReadyCommand{} // not constructed properly

	factory := new(MockMarkReadyUoWFactory)
	notifier := new(MockNotifier)
	handler := commands.NewMarkReadyCommandHandler(factory, notifier, testLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkReadyCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
