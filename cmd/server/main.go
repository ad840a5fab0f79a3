package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"mesaPos/internal/config"
	ordersusecase "mesaPos/internal/modules/orders/application/usecase"
	ordersinfra "mesaPos/internal/modules/orders/infrastructure"
	orderstransport "mesaPos/internal/modules/orders/interface"
	realtimeport "mesaPos/internal/modules/realtime/application/port"
	realtimeusecase "mesaPos/internal/modules/realtime/application/usecase"
	realtimeinfra "mesaPos/internal/modules/realtime/infrastructure"
	realtimetransport "mesaPos/internal/modules/realtime/interface"
	restaurantsusecase "mesaPos/internal/modules/restaurants/application/usecase"
	restaurantsinfra "mesaPos/internal/modules/restaurants/infrastructure"
	restaurantstransport "mesaPos/internal/modules/restaurants/interface"
	usersinfra "mesaPos/internal/modules/users/infrastructure"
	"mesaPos/internal/platform/broker"
	"mesaPos/internal/platform/database"
	"mesaPos/internal/shared/auth"
	"mesaPos/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database.URL())
	if err != nil {
		slog.Error("database connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	if err := database.RunMigrations(ctx, pool, "./migrations"); err != nil {
		slog.Error("migrations failed", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Broadcast fan-out: websocket hub always, Kafka mirror when configured.
	hub := realtimeinfra.NewHub()
	sinks := []realtimeport.Broadcaster{hub}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := broker.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
		defer kafkaPublisher.Close()
		sinks = append(sinks, kafkaPublisher)
	}
	publisher := realtimeusecase.NewFanoutPublisher(sinks...)
	broker.StartRelay(ctx, hub, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.RelayTopics)

	// Repositories
	usersRepo := usersinfra.NewPostgresRepository(pool)
	ordersRepo := ordersinfra.NewPostgresRepository(pool)
	restaurantsRepo := restaurantsinfra.NewPostgresRepository(pool)
	menuCache := restaurantsinfra.NewRedisMenuCache(redisClient, cfg.Redis.MenuTTL)

	// Use cases
	createOrderUC := ordersusecase.NewCreateOrderUseCase(ordersRepo, usersRepo, restaurantsRepo, ordersinfra.NewMenuCatalog(pool), publisher)
	getOrderUC := ordersusecase.NewGetOrderUseCase(ordersRepo)
	updateOrderStatusUC := ordersusecase.NewUpdateOrderStatusUseCase(ordersRepo, publisher)

	createRestaurantUC := restaurantsusecase.NewCreateRestaurantUseCase(restaurantsRepo, usersRepo)
	browseUC := restaurantsusecase.NewBrowseUseCase(restaurantsRepo)
	getRestaurantUC := restaurantsusecase.NewGetRestaurantUseCase(restaurantsRepo)
	detailUC := restaurantsusecase.NewGetRestaurantDetailUseCase(restaurantsRepo)
	updateDetailsUC := restaurantsusecase.NewUpdateRestaurantDetailsUseCase(restaurantsRepo)
	updateRestaurantStatusUC := restaurantsusecase.NewUpdateRestaurantStatusUseCase(restaurantsRepo, publisher)
	menuUC := restaurantsusecase.NewGetMenuUseCase(restaurantsRepo, menuCache)

	// JWT validator guarding the order surface; empty secret disables auth.
	var validator auth.TokenValidator
	if cfg.Security.JWTSecret != "" {
		validator = auth.NewJWTValidator(cfg.Security.JWTSecret)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	var orderAuth, orderWrite echo.MiddlewareFunc
	if validator != nil {
		orderAuth = auth.Middleware(validator)
		orderWrite = auth.RequireScope("orders:readwrite")
	}
	orderstransport.NewHandler(createOrderUC, getOrderUC, updateOrderStatusUC).
		Register(e, orderAuth, orderWrite)
	restaurantstransport.NewHandler(createRestaurantUC, browseUC, getRestaurantUC, detailUC, updateDetailsUC, updateRestaurantStatusUC, menuUC).
		Register(e)

	e.GET("/ws/events", realtimetransport.NewEventsHandler(hub, validator, cfg.Websocket.SendBuffer))
	e.GET("/health", func(c echo.Context) error {
		pingCtx, pingCancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer pingCancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown error", slog.Any("error", err))
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
