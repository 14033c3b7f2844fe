package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
)

// Resolve computes the unit price of a food for a size override and a set of
// addon rows. A nil size or an empty addon set falls back to food.Price.
// Rows that belong to another food are ignored, and an addon listed twice
// is charged once.
func Resolve(food domain.Food, size *domain.SizeFood, addons []domain.AddonFood) decimal.Decimal {
	return Breakdown(food, size, addons).UnitPrice
}

func Breakdown(food domain.Food, size *domain.SizeFood, addons []domain.AddonFood) domain.PriceQuote {
	quote := domain.PriceQuote{
		FoodID:    food.ID,
		AddonIDs:  []uuid.UUID{},
		BasePrice: food.Price,
		Addons:    []domain.AddonCharge{},
	}

	unit := food.Price
	if size != nil && size.FoodID == food.ID {
		sizeID, sizePrice := size.SizeID, size.Price
		quote.SizeID = &sizeID
		quote.SizePrice = &sizePrice
		unit = sizePrice
	}

	seen := make(map[uuid.UUID]bool, len(addons))
	for _, addon := range addons {
		if addon.FoodID != food.ID || seen[addon.AddonID] {
			continue
		}
		seen[addon.AddonID] = true
		quote.AddonIDs = append(quote.AddonIDs, addon.AddonID)
		quote.Addons = append(quote.Addons, domain.AddonCharge{AddonID: addon.AddonID, Price: addon.Price})
		unit = unit.Add(addon.Price)
	}

	quote.UnitPrice = unit
	return quote
}
