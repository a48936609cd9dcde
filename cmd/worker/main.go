package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	kafkaGo "github.com/segmentio/kafka-go"

	"travelagency/config"
	"travelagency/internal/email"
	"travelagency/internal/kafka"
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(logger.Component(zlog, "email"))

	zlog.Infow("notification worker started", "topic", cfg.Kafka.NotificationsTopic, "group", cfg.Kafka.GroupID)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.ReservationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			zlog.Warnw("decode event failed", "error", err)
			return nil
		}
		return sender.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		zlog.Fatalw("consumer stopped", "error", err)
	}
	zlog.Infow("notification worker stopped")
}
