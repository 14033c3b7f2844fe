package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/logger"
	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

// OrderService is the order ledger. Prices are snapshotted on create and
// never recomputed afterwards.
type OrderService struct {
	repo     OrderRepository
	foods    FoodRepository
	sessions TableSessionRepository
	prices   *PriceService
	events   eventSink
}

func NewOrderService(
	repo OrderRepository,
	foods FoodRepository,
	sessions TableSessionRepository,
	prices *PriceService,
	publisher EventPublisher,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		repo:     repo,
		foods:    foods,
		sessions: sessions,
		prices:   prices,
		events:   newEventSink(publisher, log),
	}
}

func (s *OrderService) Create(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	food, err := s.foods.GetFood(ctx, in.FoodID)
	if err != nil {
		return nil, notFound(err, domain.MsgFoodNotFound)
	}
	session, err := s.sessions.GetTableSession(ctx, in.TableSessionID)
	if err != nil {
		return nil, notFound(err, domain.MsgSessionNotFound)
	}
	if session.Status == domain.SessionPaid {
		return nil, domain.ErrSessionPaid
	}

	order := &domain.Order{
		ID:             uuid.New(),
		FoodID:         food.ID,
		Quantity:       in.Quantity,
		TableSessionID: session.ID,
	}
	if in.Price != nil {
		order.Price = *in.Price
	} else {
		quote, err := s.prices.quote(ctx, food, in.SizeID, in.AddonIDs)
		if err != nil {
			return nil, err
		}
		order.Price = quote.UnitPrice
	}

	// the store re-checks the session status in the same statement
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	s.events.order(ctx, domain.EventOrderCreated, order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter, params pagination.Params) (pagination.Page[domain.Order], error) {
	items, total, err := s.repo.ListOrders(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.Order]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgOrderNotFound)
	}
	return order, nil
}

// Update rewrites a line item. Downstream aggregates see it as the old line
// being removed and the new one being placed.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, patch domain.OrderPatch) (*domain.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireUnpaid(ctx, order.TableSessionID, order.TableSession); err != nil {
		return nil, err
	}
	previous := *order

	if patch.FoodID != nil && *patch.FoodID != order.FoodID {
		if _, err := s.foods.GetFood(ctx, *patch.FoodID); err != nil {
			return nil, notFound(err, domain.MsgFoodNotFound)
		}
		order.FoodID = *patch.FoodID
		order.Food = nil
	}
	if patch.TableSessionID != nil && *patch.TableSessionID != order.TableSessionID {
		if err := s.requireUnpaid(ctx, *patch.TableSessionID, nil); err != nil {
			return nil, err
		}
		order.TableSessionID = *patch.TableSessionID
		order.TableSession = nil
	}
	if patch.Quantity != nil {
		order.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		order.Price = *patch.Price
	}
	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, notFound(err, domain.MsgOrderNotFound)
	}
	s.events.order(ctx, domain.EventOrderDeleted, &previous)
	s.events.order(ctx, domain.EventOrderCreated, order)
	return order, nil
}

// requireUnpaid loads the session unless the caller already has it joined.
func (s *OrderService) requireUnpaid(ctx context.Context, id uuid.UUID, session *domain.TableSession) error {
	if session == nil || session.ID != id {
		found, err := s.sessions.GetTableSession(ctx, id)
		if err != nil {
			return notFound(err, domain.MsgSessionNotFound)
		}
		session = found
	}
	if session.Status == domain.SessionPaid {
		return domain.ErrSessionPaid
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	rows, err := s.repo.DeleteOrder(ctx, id)
	if err := deleted(rows, err, domain.MsgOrderNotFound); err != nil {
		return err
	}
	s.events.order(ctx, domain.EventOrderDeleted, order)
	return nil
}
