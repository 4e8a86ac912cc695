package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"foodcourt/cmd"
	httpadapter "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/rabbitmq"
	"foodcourt/internal/adapters/out/userdir"
	"foodcourt/internal/generated/servers"
	"foodcourt/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB(configs)
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	directory, err := userdir.NewClient(configs.UserServiceURL)
	if err != nil {
		log.Fatalf("Failed to create user directory client: %v", err)
	}

	broker, err := rabbitmq.Dial(rabbitmq.Config{
		Host:     configs.RabbitHost,
		Port:     mustAtoi("RABBIT_PORT", configs.RabbitPort),
		User:     configs.RabbitUser,
		Password: configs.RabbitPassword,
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer broker.Close()

	notifier, err := rabbitmq.NewOrderStatusNotifier(broker)
	if err != nil {
		log.Fatalf("Failed to create order notifier: %v", err)
	}

	app := cmd.NewCompositionRoot(db, directory, notifier, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		mustParseDuration("STALE_ORDER_MAX_AGE", configs.StaleOrderMaxAge),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		UserServiceURL:   goDotEnvVariable("USER_SERVICE_URL"),
		RabbitHost:       goDotEnvVariable("RABBIT_HOST"),
		RabbitPort:       goDotEnvVariable("RABBIT_PORT"),
		RabbitUser:       goDotEnvVariable("RABBIT_USER"),
		RabbitPassword:   goDotEnvVariable("RABBIT_PASSWORD"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		StaleOrderMaxAge: goDotEnvVariable("STALE_ORDER_MAX_AGE"),
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustAtoi(key, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("%s must be a number: %v", key, err)
	}
	return n
}

func mustParseDuration(key, value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("%s must be a duration: %v", key, err)
	}
	return d
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateMarkOrderReadyCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateDishCommandHandler(),
		app.CreateUpdateDishCommandHandler(),
		app.CreateSetDishActiveCommandHandler(),
		app.CreateCreateRestaurantCommandHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
	)

	api := e.Group("", httpadapter.ActorMiddleware([]byte(configs.JWTSecret)))
	servers.RegisterHandlers(api, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
