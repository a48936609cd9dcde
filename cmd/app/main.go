package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"travelagency/api"
	"travelagency/config"
	"travelagency/internal/bootstrap"
	"travelagency/internal/cache"
	"travelagency/internal/kafka"
	"travelagency/internal/mapper"
	"travelagency/internal/repository"
	"travelagency/internal/service/flights"
	"travelagency/internal/service/passengers"
	"travelagency/internal/service/reservations"
	"travelagency/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		zlog.Fatalw("connect postgres", "error", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	flightMapper := mapper.NewFlightMapper()
	passengerMapper := mapper.NewPassengerMapper()
	reservationMapper := mapper.NewReservationMapper(flightMapper, passengerMapper)

	flightService := flights.NewFlightService(flightRepo, flightMapper, redisCache)
	passengerService := passengers.NewPassengerService(passengerRepo, passengerMapper)
	reservationService := reservations.NewReservationService(
		reservationRepo,
		flightRepo,
		passengerRepo,
		reservationMapper,
		producer,
		cfg.Kafka.ReservationsTopic,
		logger.Component(zlog, "reservations"),
		reservations.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	router := api.NewRouter(
		zlog,
		api.NewFlightHandler(flightService),
		api.NewPassengerHandler(passengerService),
		api.NewReservationHandler(reservationService),
		cfg.HTTP.SwaggerDir,
	)

	if err := bootstrap.Run(ctx, cfg.HTTP.Address, router, zlog); err != nil {
		zlog.Fatalw("server error", "error", err)
	}
}
