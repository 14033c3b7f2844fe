package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/cahuala/ordersApi/agg-svc/internal/domain"
	"github.com/cahuala/ordersApi/agg-svc/internal/storage"
)

type StoreInterface interface {
	ApplySale(ctx context.Context, sale domain.Sale) error
	SessionBill(ctx context.Context, sessionID uuid.UUID) (domain.Bill, error)
	CloseBill(ctx context.Context, sessionID uuid.UUID, bill domain.Bill) error
	ReopenBill(ctx context.Context, sessionID uuid.UUID) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
