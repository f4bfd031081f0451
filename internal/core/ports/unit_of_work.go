package ports

import "context"

// UnitOfWork coordinates a database transaction across the repositories.
// Command handlers obtain repositories from an active unit of work so that a
// business operation commits or rolls back atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	MenuRepository() MenuRepository
	SettingsRepository() SettingsRepository
}
