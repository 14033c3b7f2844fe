package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cahuala/ordersApi/agg-svc/internal/service"
	"github.com/cahuala/ordersApi/agg-svc/internal/storage"
	"github.com/cahuala/ordersApi/config"
	"github.com/cahuala/ordersApi/logger"
)

func main() {
	cfg := config.Load("")
	if !cfg.KafkaEnabled() {
		log.Fatal("KAFKA_BROKER is required")
	}

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), logger.NewLogger("agg-svc"))
	consumer.Start(ctx)
}
