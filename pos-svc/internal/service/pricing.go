package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pricing"
)

// PriceService loads the rows a price depends on and hands them to the
// pure resolver.
type PriceService struct {
	foods      FoodRepository
	sizeFoods  SizeFoodRepository
	addonFoods AddonFoodRepository
}

func NewPriceService(foods FoodRepository, sizeFoods SizeFoodRepository, addonFoods AddonFoodRepository) *PriceService {
	return &PriceService{foods: foods, sizeFoods: sizeFoods, addonFoods: addonFoods}
}

func (s *PriceService) Quote(ctx context.Context, req domain.PriceRequest) (*domain.PriceQuote, error) {
	food, err := s.foods.GetFood(ctx, req.FoodID)
	if err != nil {
		return nil, notFound(err, domain.MsgFoodNotFound)
	}

	quote, err := s.quote(ctx, food, req.SizeID, req.AddonIDs)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// quote is shared with the order ledger, which already holds the food.
func (s *PriceService) quote(ctx context.Context, food *domain.Food, sizeID *uuid.UUID, addonIDs []uuid.UUID) (domain.PriceQuote, error) {
	var size *domain.SizeFood
	if sizeID != nil {
		row, err := s.sizeFoods.FindSizeFood(ctx, food.ID, *sizeID)
		switch {
		case err == nil:
			size = row
		case errors.Is(err, domain.ErrNotFound):
			// no override for this size: base price applies
		default:
			return domain.PriceQuote{}, fmt.Errorf("find size override: %w", err)
		}
	}

	var addons []domain.AddonFood
	if ids := uniqueIDs(addonIDs); len(ids) > 0 {
		rows, err := s.addonFoods.FindAddonFoods(ctx, food.ID, ids)
		if err != nil {
			return domain.PriceQuote{}, fmt.Errorf("find addon prices: %w", err)
		}
		addons = rows
	}

	return pricing.Breakdown(*food, size, addons), nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
