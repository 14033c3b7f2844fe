package main

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/cahuala/ordersApi/api-gateway/internal/gateway"
	"github.com/cahuala/ordersApi/config"
	"github.com/cahuala/ordersApi/logger"
)

func main() {
	cfg := config.Load("8080")

	gw := gateway.NewGateway(gateway.Config{
		POSSvcURL:       cfg.POSSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
	}, &http.Client{Timeout: 30 * time.Second}, logger.NewLogger("api-gateway"))

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	handler := c.Handler(r)

	log.Printf("API Gateway starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
