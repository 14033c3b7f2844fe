package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

type SizeFoodService struct {
	repo  SizeFoodRepository
	foods FoodRepository
	sizes SizeRepository
}

func NewSizeFoodService(repo SizeFoodRepository, foods FoodRepository, sizes SizeRepository) *SizeFoodService {
	return &SizeFoodService{repo: repo, foods: foods, sizes: sizes}
}

func (s *SizeFoodService) checkRefs(ctx context.Context, foodID, sizeID uuid.UUID) error {
	if _, err := s.foods.GetFood(ctx, foodID); err != nil {
		return notFound(err, domain.MsgFoodNotFound)
	}
	if _, err := s.sizes.GetSize(ctx, sizeID); err != nil {
		return notFound(err, domain.MsgSizeNotFound)
	}
	return nil
}

func (s *SizeFoodService) Create(ctx context.Context, in domain.SizeFoodInput) (*domain.SizeFood, error) {
	if err := s.checkRefs(ctx, in.FoodID, in.SizeID); err != nil {
		return nil, err
	}
	sizeFood := &domain.SizeFood{
		ID:     uuid.New(),
		SizeID: in.SizeID,
		FoodID: in.FoodID,
		Price:  in.Price,
	}
	if err := s.repo.CreateSizeFood(ctx, sizeFood); err != nil {
		return nil, err
	}
	return sizeFood, nil
}

func (s *SizeFoodService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.SizeFood], error) {
	items, total, err := s.repo.ListSizeFoods(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.SizeFood]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *SizeFoodService) Get(ctx context.Context, id uuid.UUID) (*domain.SizeFood, error) {
	sizeFood, err := s.repo.GetSizeFood(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgSizeFoodNotFound)
	}
	return sizeFood, nil
}

func (s *SizeFoodService) Update(ctx context.Context, id uuid.UUID, patch domain.SizeFoodPatch) (*domain.SizeFood, error) {
	sizeFood, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FoodID != nil || patch.SizeID != nil {
		if patch.FoodID != nil {
			sizeFood.FoodID = *patch.FoodID
		}
		if patch.SizeID != nil {
			sizeFood.SizeID = *patch.SizeID
		}
		if err := s.checkRefs(ctx, sizeFood.FoodID, sizeFood.SizeID); err != nil {
			return nil, err
		}
		// expansions no longer describe the stored row
		sizeFood.Food, sizeFood.Size = nil, nil
	}
	if patch.Price != nil {
		sizeFood.Price = *patch.Price
	}
	if err := s.repo.UpdateSizeFood(ctx, sizeFood); err != nil {
		return nil, notFound(err, domain.MsgSizeFoodNotFound)
	}
	return sizeFood, nil
}

func (s *SizeFoodService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteSizeFood(ctx, id)
	return deleted(rows, err, domain.MsgSizeFoodNotFound)
}

type AddonFoodService struct {
	repo   AddonFoodRepository
	foods  FoodRepository
	addons AddonRepository
}

func NewAddonFoodService(repo AddonFoodRepository, foods FoodRepository, addons AddonRepository) *AddonFoodService {
	return &AddonFoodService{repo: repo, foods: foods, addons: addons}
}

func (s *AddonFoodService) checkRefs(ctx context.Context, foodID, addonID uuid.UUID) error {
	if _, err := s.foods.GetFood(ctx, foodID); err != nil {
		return notFound(err, domain.MsgFoodNotFound)
	}
	if _, err := s.addons.GetAddon(ctx, addonID); err != nil {
		return notFound(err, domain.MsgAddonNotFound)
	}
	return nil
}

func (s *AddonFoodService) Create(ctx context.Context, in domain.AddonFoodInput) (*domain.AddonFood, error) {
	if err := s.checkRefs(ctx, in.FoodID, in.AddonID); err != nil {
		return nil, err
	}
	addonFood := &domain.AddonFood{
		ID:      uuid.New(),
		AddonID: in.AddonID,
		FoodID:  in.FoodID,
		Price:   in.Price,
	}
	if err := s.repo.CreateAddonFood(ctx, addonFood); err != nil {
		return nil, err
	}
	return addonFood, nil
}

func (s *AddonFoodService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.AddonFood], error) {
	items, total, err := s.repo.ListAddonFoods(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.AddonFood]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *AddonFoodService) Get(ctx context.Context, id uuid.UUID) (*domain.AddonFood, error) {
	addonFood, err := s.repo.GetAddonFood(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgAddonFoodNotFound)
	}
	return addonFood, nil
}

func (s *AddonFoodService) Update(ctx context.Context, id uuid.UUID, patch domain.AddonFoodPatch) (*domain.AddonFood, error) {
	addonFood, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FoodID != nil || patch.AddonID != nil {
		if patch.FoodID != nil {
			addonFood.FoodID = *patch.FoodID
		}
		if patch.AddonID != nil {
			addonFood.AddonID = *patch.AddonID
		}
		if err := s.checkRefs(ctx, addonFood.FoodID, addonFood.AddonID); err != nil {
			return nil, err
		}
		addonFood.Food, addonFood.Addon = nil, nil
	}
	if patch.Price != nil {
		addonFood.Price = *patch.Price
	}
	if err := s.repo.UpdateAddonFood(ctx, addonFood); err != nil {
		return nil, notFound(err, domain.MsgAddonFoodNotFound)
	}
	return addonFood, nil
}

func (s *AddonFoodService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteAddonFood(ctx, id)
	return deleted(rows, err, domain.MsgAddonFoodNotFound)
}
