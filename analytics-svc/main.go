package main

import (
	httpapi "github.com/cahuala/ordersApi/analytics-svc/internal/api/http"
	"github.com/cahuala/ordersApi/analytics-svc/internal/service"
	"github.com/cahuala/ordersApi/config"
	"github.com/cahuala/ordersApi/logger"
)

func main() {
	cfg := config.Load("8083")

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	analytics := service.NewAnalyticsService(db, rdb)
	handler := httpapi.NewHandler(analytics, logger.NewLogger("analytics-svc"))

	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
