package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

// notFound swaps the repository sentinel for the resource's NotFound error.
func notFound(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(message)
	}
	return err
}

func deleted(rows int64, err error, message string) error {
	if err != nil {
		return notFound(err, message)
	}
	if rows == 0 {
		return domain.NotFound(message)
	}
	return nil
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		ID:     uuid.New(),
		Icon:   in.Icon,
		Text:   in.Text,
		Type:   in.Type,
		Active: in.Active,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Category], error) {
	items, total, err := s.repo.ListCategories(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.Category]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgCategoryNotFound)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, patch domain.CategoryPatch) (*domain.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Icon != nil {
		category.Icon = *patch.Icon
	}
	if patch.Text != nil {
		category.Text = *patch.Text
	}
	if patch.Type != nil {
		category.Type = *patch.Type
	}
	if patch.Active != nil {
		category.Active = *patch.Active
	}
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, notFound(err, domain.MsgCategoryNotFound)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteCategory(ctx, id)
	return deleted(rows, err, domain.MsgCategoryNotFound)
}

type FoodService struct {
	repo FoodRepository
}

func NewFoodService(repo FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

func (s *FoodService) Create(ctx context.Context, in domain.FoodInput) (*domain.Food, error) {
	food := &domain.Food{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Type:        in.Type,
	}
	if err := s.repo.CreateFood(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Food], error) {
	items, total, err := s.repo.ListFoods(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.Food]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *FoodService) Get(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	food, err := s.repo.GetFood(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgFoodNotFound)
	}
	return food, nil
}

func (s *FoodService) Update(ctx context.Context, id uuid.UUID, patch domain.FoodPatch) (*domain.Food, error) {
	food, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		food.Title = *patch.Title
	}
	if patch.Description != nil {
		food.Description = *patch.Description
	}
	if patch.Price != nil {
		food.Price = *patch.Price
	}
	if patch.Image != nil {
		food.Image = *patch.Image
	}
	if patch.Type != nil {
		food.Type = *patch.Type
	}
	if err := s.repo.UpdateFood(ctx, food); err != nil {
		return nil, notFound(err, domain.MsgFoodNotFound)
	}
	return food, nil
}

func (s *FoodService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteFood(ctx, id)
	return deleted(rows, err, domain.MsgFoodNotFound)
}

type SizeService struct {
	repo SizeRepository
}

func NewSizeService(repo SizeRepository) *SizeService {
	return &SizeService{repo: repo}
}

func (s *SizeService) Create(ctx context.Context, in domain.SizeInput) (*domain.Size, error) {
	size := &domain.Size{ID: uuid.New(), Text: in.Text}
	if err := s.repo.CreateSize(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

func (s *SizeService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Size], error) {
	items, total, err := s.repo.ListSizes(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.Size]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *SizeService) Get(ctx context.Context, id uuid.UUID) (*domain.Size, error) {
	size, err := s.repo.GetSize(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgSizeNotFound)
	}
	return size, nil
}

func (s *SizeService) Update(ctx context.Context, id uuid.UUID, patch domain.SizePatch) (*domain.Size, error) {
	size, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Text != nil {
		size.Text = *patch.Text
	}
	if err := s.repo.UpdateSize(ctx, size); err != nil {
		return nil, notFound(err, domain.MsgSizeNotFound)
	}
	return size, nil
}

func (s *SizeService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteSize(ctx, id)
	return deleted(rows, err, domain.MsgSizeNotFound)
}

type AddonService struct {
	repo AddonRepository
}

func NewAddonService(repo AddonRepository) *AddonService {
	return &AddonService{repo: repo}
}

func (s *AddonService) Create(ctx context.Context, in domain.AddonInput) (*domain.Addon, error) {
	addon := &domain.Addon{ID: uuid.New(), Text: in.Text}
	if err := s.repo.CreateAddon(ctx, addon); err != nil {
		return nil, err
	}
	return addon, nil
}

func (s *AddonService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Addon], error) {
	items, total, err := s.repo.ListAddons(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.Addon]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *AddonService) Get(ctx context.Context, id uuid.UUID) (*domain.Addon, error) {
	addon, err := s.repo.GetAddon(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgAddonNotFound)
	}
	return addon, nil
}

func (s *AddonService) Update(ctx context.Context, id uuid.UUID, patch domain.AddonPatch) (*domain.Addon, error) {
	addon, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Text != nil {
		addon.Text = *patch.Text
	}
	if err := s.repo.UpdateAddon(ctx, addon); err != nil {
		return nil, notFound(err, domain.MsgAddonNotFound)
	}
	return addon, nil
}

func (s *AddonService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteAddon(ctx, id)
	return deleted(rows, err, domain.MsgAddonNotFound)
}
