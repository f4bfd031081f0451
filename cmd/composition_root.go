package cmd

import (
	"log/slog"

	"kitchenboard/internal/adapters/out/postgres"
	"kitchenboard/internal/adapters/out/sheetfeed"
	"kitchenboard/internal/adapters/out/webhook"
	"kitchenboard/internal/core/application/usecases/commands"
	"kitchenboard/internal/core/application/usecases/queries"
	"kitchenboard/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.OrderNotifier
	feed       ports.OrderFeed
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration and an
// open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   webhook.NewNotifier(config.OrderReadyWebhookURL, config.ReprintWebhookURL, logger),
		feed:       sheetfeed.NewFeed(config.OrderFeedURL),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartCookingCommandHandler() commands.StartCookingCommandHandler {
	return commands.NewStartCookingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateClearOrderCommandHandler() commands.ClearOrderCommandHandler {
	return commands.NewClearOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClearAllReadyCommandHandler() commands.ClearAllReadyCommandHandler {
	return commands.NewClearAllReadyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuStatusCommandHandler() commands.UpdateMenuStatusCommandHandler {
	return commands.NewUpdateMenuStatusCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateToggleKitchenStatusCommandHandler() commands.ToggleKitchenStatusCommandHandler {
	return commands.NewToggleKitchenStatusCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateReprintOrderCommandHandler() commands.ReprintOrderCommandHandler {
	return commands.NewReprintOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	return commands.NewImportOrdersCommandHandler(c.orderUoWFactory(), c.feed, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuStatusQueryHandler() queries.GetMenuStatusQueryHandler {
	return queries.NewGetMenuStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckItemAvailabilityQueryHandler() queries.CheckItemAvailabilityQueryHandler {
	return queries.NewCheckItemAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnavailableItemsQueryHandler() queries.GetUnavailableItemsQueryHandler {
	return queries.NewGetUnavailableItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableItemsByCategoryQueryHandler() queries.GetAvailableItemsByCategoryQueryHandler {
	return queries.NewGetAvailableItemsByCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenStatusQueryHandler() queries.GetKitchenStatusQueryHandler {
	return queries.NewGetKitchenStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardMetricsQueryHandler() queries.GetDashboardMetricsQueryHandler {
	return queries.NewGetDashboardMetricsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
