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

type MockOrderFeed struct{ mock.Mock }

func (m *MockOrderFeed) Fetch(ctx context.Context) ([]ports.IntakeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.IntakeRecord), args.Error(1)
}

func TestImportOrdersCommandHandler_Handle_ImportsNewOrders(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewImportOrdersCommand()
	require.NoError(t, err)

	records := []ports.IntakeRecord{
		{OrderID: "ORD-001", Status: "Pending", Details: order.Details{CustomerName: "Ama"}},
		{OrderID: "ORD-002", Details: order.Details{CustomerName: "Kofi"}}, // blank status
	}

	feed := new(MockOrderFeed)
	repo := new(MockStartCookingOrderRepository)
	uow := new(MockStartCookingUoW)

	mock.InOrder(
		feed.On("Fetch", ctx).Return(records, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStartCookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewImportOrdersCommandHandler(factory, feed, testLogger())
	imported, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, imported)

	// A blank feed status imports as Pending.
	second := repo.Calls[1].Arguments[1].(*order.Order)
	require.Equal(t, order.Pending, second.Status())

	feed.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportOrdersCommandHandler_Handle_SkipsDuplicates(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewImportOrdersCommand()
	require.NoError(t, err)

	records := []ports.IntakeRecord{
		{OrderID: "ORD-001", Status: "Ready"},
		{OrderID: "ORD-002", Status: "Pending"},
	}

	feed := new(MockOrderFeed)
	repo := new(MockStartCookingOrderRepository)
	uow := new(MockStartCookingUoW)

	mock.InOrder(
		feed.On("Fetch", ctx).Return(records, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool { return o.ID() == "ORD-001" })).
			Return(ports.ErrDuplicateOrder).
			Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool { return o.ID() == "ORD-002" })).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStartCookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewImportOrdersCommandHandler(factory, feed, testLogger())
	imported, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, imported)
}

func TestImportOrdersCommandHandler_Handle_SkipsMalformedRecords(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewImportOrdersCommand()
	require.NoError(t, err)

	records := []ports.IntakeRecord{
		{OrderID: "", Status: "Pending"},            // no identifier
		{OrderID: "ORD-002", Status: "Exploded"},    // unknown status
		{OrderID: "ORD-003", Status: "In Progress"}, // fine
	}

	feed := new(MockOrderFeed)
	repo := new(MockStartCookingOrderRepository)
	uow := new(MockStartCookingUoW)

	mock.InOrder(
		feed.On("Fetch", ctx).Return(records, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool { return o.ID() == "ORD-003" })).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStartCookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewImportOrdersCommandHandler(factory, feed, testLogger())
	imported, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, imported)
	repo.AssertExpectations(t)
}

func TestImportOrdersCommandHandler_Handle_FeedError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewImportOrdersCommand()
	require.NoError(t, err)

	feed := new(MockOrderFeed)
	feed.On("Fetch", ctx).Return(nil, context.DeadlineExceeded).Once()

	factory := new(MockStartCookingUoWFactory)

	handler := commands.NewImportOrdersCommandHandler(factory, feed, testLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
