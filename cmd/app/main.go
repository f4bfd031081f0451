package main

import (
	"log/slog"
	"os"

	"kitchenboard/cmd"
	httpadapter "kitchenboard/internal/adapters/in/http"
	"kitchenboard/internal/adapters/out/postgres/menurepo"
	"kitchenboard/internal/adapters/out/postgres/orderrepo"
	"kitchenboard/internal/adapters/out/postgres/settingsrepo"
	"kitchenboard/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()

	logger := newLogger(config.AppEnv)
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&menurepo.MenuItemDTO{},
		&settingsrepo.SettingsDTO{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	compositionRoot := cmd.NewCompositionRoot(config, gormDB, logger)

	jobManager := jobs.NewJobManager(
		compositionRoot.CreateImportOrdersCommandHandler(),
		config.OrderFeedSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&compositionRoot, config.HTTPPort)
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf(".env file not found, relying on environment")
	}

	return cmd.Config{
		AppEnv:               goDotEnvVariable("APP_ENV"),
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		OrderReadyWebhookURL: goDotEnvVariable("ORDER_READY_WEBHOOK_URL"),
		ReprintWebhookURL:    goDotEnvVariable("REPRINT_WEBHOOK_URL"),
		OrderFeedURL:         goDotEnvVariable("ORDER_FEED_URL"),
		OrderFeedSchedule:    goDotEnvVariable("ORDER_FEED_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func newLogger(appEnv string) *slog.Logger {
	if appEnv == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func startWebServer(compositionRoot *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		compositionRoot.CreateStartCookingCommandHandler(),
		compositionRoot.CreateMarkReadyCommandHandler(),
		compositionRoot.CreateClearOrderCommandHandler(),
		compositionRoot.CreateClearAllReadyCommandHandler(),
		compositionRoot.CreateUpdateMenuStatusCommandHandler(),
		compositionRoot.CreateToggleKitchenStatusCommandHandler(),
		compositionRoot.CreateReprintOrderCommandHandler(),
		compositionRoot.CreateGetActiveOrdersQueryHandler(),
		compositionRoot.CreateGetReadyOrdersQueryHandler(),
		compositionRoot.CreateGetMenuStatusQueryHandler(),
		compositionRoot.CreateCheckItemAvailabilityQueryHandler(),
		compositionRoot.CreateGetUnavailableItemsQueryHandler(),
		compositionRoot.CreateGetAvailableItemsByCategoryQueryHandler(),
		compositionRoot.CreateGetKitchenStatusQueryHandler(),
		compositionRoot.CreateGetDashboardMetricsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start("0.0.0.0:" + port))
}
