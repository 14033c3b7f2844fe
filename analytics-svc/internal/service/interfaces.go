package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopToday(ctx context.Context, limit int) ([]domain.FoodSales, error)
	TopAllTime(ctx context.Context, limit int) ([]domain.FoodSales, error)
	SessionBill(ctx context.Context, sessionID uuid.UUID) (*domain.SessionBill, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
