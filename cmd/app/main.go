package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordermanagement/cmd"
	httpadapter "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/postgres/customerrepo"
	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/adapters/out/postgres/productrepo"
	"ordermanagement/internal/adapters/out/postgres/userrepo"
	"ordermanagement/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderCronSchedule,
		configs.StaleOrderMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		JWTTTL:                 goDotEnvDuration("JWT_TTL"),
		StaleOrderMaxAge:       goDotEnvDuration("STALE_ORDER_MAX_AGE"),
		StaleOrderCronSchedule: goDotEnvVariable("STALE_ORDER_CRON_SCHEDULE"),
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

func goDotEnvDuration(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder: app.CreateCreateOrderCommandHandler(),
		UpdateOrder: app.CreateUpdateOrderCommandHandler(),
		DeleteOrder: app.CreateDeleteOrderCommandHandler(),

		CreateCustomer: app.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: app.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer: app.CreateDeleteCustomerCommandHandler(),

		CreateProduct: app.CreateCreateProductCommandHandler(),
		UpdateProduct: app.CreateUpdateProductCommandHandler(),
		DeleteProduct: app.CreateDeleteProductCommandHandler(),

		CreateUser: app.CreateCreateUserCommandHandler(),
		UpdateUser: app.CreateUpdateUserCommandHandler(),
		DeleteUser: app.CreateDeleteUserCommandHandler(),

		Login: app.CreateLoginCommandHandler(),

		GetOrderByID:    app.CreateGetOrderByIDQueryHandler(),
		GetAllOrders:    app.CreateGetAllOrdersQueryHandler(),
		GetCustomerByID: app.CreateGetCustomerByIDQueryHandler(),
		GetAllCustomers: app.CreateGetAllCustomersQueryHandler(),
		GetProductByID:  app.CreateGetProductByIDQueryHandler(),
		GetAllProducts:  app.CreateGetAllProductsQueryHandler(),
		GetUserByID:     app.CreateGetUserByIDQueryHandler(),
		GetAllUsers:     app.CreateGetAllUsersQueryHandler(),
	})
	server.RegisterRoutes(e, app.TokenGenerator())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			e.Logger.Info("Shutting down the server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
