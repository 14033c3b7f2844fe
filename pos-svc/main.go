package main

import (
	"context"
	"log"

	"github.com/cahuala/ordersApi/config"
	"github.com/cahuala/ordersApi/logger"
	httpapi "github.com/cahuala/ordersApi/pos-svc/internal/api/http"
	"github.com/cahuala/ordersApi/pos-svc/internal/service"
	"github.com/cahuala/ordersApi/pos-svc/internal/storage"
)

func main() {
	cfg := config.Load("8081")
	appLog := logger.NewLogger("pos-svc")

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	var publisher service.EventPublisher
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, pos events are disabled")
	}

	handler := httpapi.NewHandler(newServices(storage.NewPostgresRepository(db), publisher, cfg, appLog), appLog)

	appLog.Info("startup", "", "pos-svc configured: "+cfg.String())
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}

func newServices(repo *storage.PostgresRepository, publisher service.EventPublisher, cfg *config.Config, appLog *logger.Logger) httpapi.Services {
	prices := service.NewPriceService(repo, repo, repo)
	return httpapi.Services{
		Categories: service.NewCategoryService(repo),
		Foods:      service.NewFoodService(repo),
		Sizes:      service.NewSizeService(repo),
		Addons:     service.NewAddonService(repo),
		SizeFoods:  service.NewSizeFoodService(repo, repo, repo),
		AddonFoods: service.NewAddonFoodService(repo, repo, repo),
		Prices:     prices,
		Tables:     service.NewTableService(repo),
		Sessions: service.NewTableSessionService(repo, repo,
			service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, publisher, appLog),
		Orders: service.NewOrderService(repo, repo, repo, prices, publisher, appLog),
	}
}
