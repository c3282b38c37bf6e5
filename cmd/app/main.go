package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		InventoryServiceURL: goDotEnvVariable("INVENTORY_SERVICE_URL"),
		ConfigServiceURL:    goDotEnvVariable("CONFIG_SERVICE_URL"),
		FacilityServiceURL:  goDotEnvVariable("FACILITY_SERVICE_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError lets repositories detect duplicate-key violations
	// through gorm.ErrDuplicatedKey.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.PackedItemDTO{},
		&shipmentrepo.RemovedItemDTO{},
		&shipmentrepo.ShortDateProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreatePackItemCommandHandler(),
		app.CreateUnpackItemCommandHandler(),
		app.CreateVerifyItemCommandHandler(),
		app.CreateCancelVerificationCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateCompleteShipmentCommandHandler(),
		app.CreateGetShipmentsQueryHandler(),
		app.CreateGetShipmentDetailsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
