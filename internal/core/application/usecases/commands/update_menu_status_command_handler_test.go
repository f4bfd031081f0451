package commands_test

import (
	"context"
	"testing"

	"kitchenboard/internal/core/application/usecases/commands"
	"kitchenboard/internal/core/domain/model/menu"
	"kitchenboard/internal/core/ports"
	"kitchenboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) GetByName(ctx context.Context, name string) (*menu.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

func TestUpdateMenuStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMenuStatusCommand("French Fries", "Out of Stock", "Kwame")
	require.NoError(t, err)

	item, err := menu.NewItem("Sides", "French Fries")
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow := new(MockMenuUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(repo).Once(),
		repo.On("GetByName", ctx, "French Fries").Return(item, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*menu.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateMenuStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, menu.OutOfStock, item.Status())
	require.Equal(t, "Kwame", item.UpdatedBy())
	require.NotNil(t, item.UpdatedAt())
	repo.AssertExpectations(t)
}

func TestUpdateMenuStatusCommandHandler_Handle_ItemNotFound(t *testing.T) {
	// Write lookups are exact; "fries" does not resolve to "French Fries".
	ctx := t.Context()
	cmd, err := commands.NewUpdateMenuStatusCommand("fries", "Out of Stock", "Kwame")
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow := new(MockMenuUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(repo).Once(),
		repo.On("GetByName", ctx, "fries").Return(nil, errs.NewObjectNotFoundError("menuItem", "fries")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateMenuStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestNewUpdateMenuStatusCommand_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		status   string
		staff    string
		wantErr  error
	}{
		{"empty item name", "", "Available", "Kwame", commands.ErrItemNameIsRequired},
		{"empty staff", "Fries", "Available", "", commands.ErrStaffIsRequired},
		{"unknown status", "Fries", "Sold Out", "Kwame", errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewUpdateMenuStatusCommand(tt.itemName, tt.status, tt.staff)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
