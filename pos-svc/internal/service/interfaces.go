package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
	"github.com/cahuala/ordersApi/pos-svc/internal/storage"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	ListCategories(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Category, int, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error)
}

type FoodRepository interface {
	CreateFood(ctx context.Context, food *domain.Food) error
	ListFoods(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Food, int, error)
	GetFood(ctx context.Context, id uuid.UUID) (*domain.Food, error)
	UpdateFood(ctx context.Context, food *domain.Food) error
	DeleteFood(ctx context.Context, id uuid.UUID) (int64, error)
}

type SizeRepository interface {
	CreateSize(ctx context.Context, size *domain.Size) error
	ListSizes(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Size, int, error)
	GetSize(ctx context.Context, id uuid.UUID) (*domain.Size, error)
	UpdateSize(ctx context.Context, size *domain.Size) error
	DeleteSize(ctx context.Context, id uuid.UUID) (int64, error)
}

type AddonRepository interface {
	CreateAddon(ctx context.Context, addon *domain.Addon) error
	ListAddons(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Addon, int, error)
	GetAddon(ctx context.Context, id uuid.UUID) (*domain.Addon, error)
	UpdateAddon(ctx context.Context, addon *domain.Addon) error
	DeleteAddon(ctx context.Context, id uuid.UUID) (int64, error)
}

type SizeFoodRepository interface {
	CreateSizeFood(ctx context.Context, sizeFood *domain.SizeFood) error
	ListSizeFoods(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.SizeFood, int, error)
	GetSizeFood(ctx context.Context, id uuid.UUID) (*domain.SizeFood, error)
	FindSizeFood(ctx context.Context, foodID, sizeID uuid.UUID) (*domain.SizeFood, error)
	UpdateSizeFood(ctx context.Context, sizeFood *domain.SizeFood) error
	DeleteSizeFood(ctx context.Context, id uuid.UUID) (int64, error)
}

type AddonFoodRepository interface {
	CreateAddonFood(ctx context.Context, addonFood *domain.AddonFood) error
	ListAddonFoods(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.AddonFood, int, error)
	GetAddonFood(ctx context.Context, id uuid.UUID) (*domain.AddonFood, error)
	FindAddonFoods(ctx context.Context, foodID uuid.UUID, addonIDs []uuid.UUID) ([]domain.AddonFood, error)
	UpdateAddonFood(ctx context.Context, addonFood *domain.AddonFood) error
	DeleteAddonFood(ctx context.Context, id uuid.UUID) (int64, error)
}

type TableRepository interface {
	CreateTable(ctx context.Context, table *domain.Table) error
	ListTables(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Table, int, error)
	GetTable(ctx context.Context, id uuid.UUID) (*domain.Table, error)
	UpdateTable(ctx context.Context, table *domain.Table) error
	DeleteTable(ctx context.Context, id uuid.UUID) (int64, error)
}

type TableSessionRepository interface {
	CreateTableSession(ctx context.Context, session *domain.TableSession) error
	ListTableSessions(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.TableSession, int, error)
	GetTableSession(ctx context.Context, id uuid.UUID) (*domain.TableSession, error)
	// UpdateTableSession only applies when the stored version still equals
	// expectedVersion; otherwise it returns domain.ErrSessionVersion.
	UpdateTableSession(ctx context.Context, session *domain.TableSession, expectedVersion int) error
	SetTableSessionStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (*domain.TableSession, error)
	DeleteTableSession(ctx context.Context, id uuid.UUID) (int64, error)
}

type OrderRepository interface {
	// CreateOrder refuses to insert into a paid session and returns
	// domain.ErrSessionPaid instead.
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context, filter domain.OrderFilter, window pagination.Window) ([]domain.Order, int, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Category], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FoodServiceInterface interface {
	Create(ctx context.Context, in domain.FoodInput) (*domain.Food, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Food], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Food, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.FoodPatch) (*domain.Food, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SizeServiceInterface interface {
	Create(ctx context.Context, in domain.SizeInput) (*domain.Size, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Size], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Size, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.SizePatch) (*domain.Size, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AddonServiceInterface interface {
	Create(ctx context.Context, in domain.AddonInput) (*domain.Addon, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Addon], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Addon, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.AddonPatch) (*domain.Addon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SizeFoodServiceInterface interface {
	Create(ctx context.Context, in domain.SizeFoodInput) (*domain.SizeFood, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.SizeFood], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SizeFood, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.SizeFoodPatch) (*domain.SizeFood, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AddonFoodServiceInterface interface {
	Create(ctx context.Context, in domain.AddonFoodInput) (*domain.AddonFood, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.AddonFood], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AddonFood, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.AddonFoodPatch) (*domain.AddonFood, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PriceServiceInterface interface {
	Quote(ctx context.Context, req domain.PriceRequest) (*domain.PriceQuote, error)
}

type TableServiceInterface interface {
	Create(ctx context.Context, in domain.TableInput) (*domain.Table, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Table], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Table, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TablePatch) (*domain.Table, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TableSessionServiceInterface interface {
	Create(ctx context.Context, in domain.TableSessionInput) (*domain.TableSession, error)
	List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.TableSession], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.TableSession, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TableSessionPatch) (*domain.TableSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Open(ctx context.Context, id uuid.UUID) (*domain.TableSession, error)
	Close(ctx context.Context, id uuid.UUID) (*domain.TableSession, error)
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter, params pagination.Params) (pagination.Page[domain.Order], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	_ CategoryServiceInterface     = (*CategoryService)(nil)
	_ FoodServiceInterface         = (*FoodService)(nil)
	_ SizeServiceInterface         = (*SizeService)(nil)
	_ AddonServiceInterface        = (*AddonService)(nil)
	_ SizeFoodServiceInterface     = (*SizeFoodService)(nil)
	_ AddonFoodServiceInterface    = (*AddonFoodService)(nil)
	_ PriceServiceInterface        = (*PriceService)(nil)
	_ TableServiceInterface        = (*TableService)(nil)
	_ TableSessionServiceInterface = (*TableSessionService)(nil)
	_ OrderServiceInterface        = (*OrderService)(nil)

	_ CategoryRepository     = (*storage.PostgresRepository)(nil)
	_ FoodRepository         = (*storage.PostgresRepository)(nil)
	_ SizeRepository         = (*storage.PostgresRepository)(nil)
	_ AddonRepository        = (*storage.PostgresRepository)(nil)
	_ SizeFoodRepository     = (*storage.PostgresRepository)(nil)
	_ AddonFoodRepository    = (*storage.PostgresRepository)(nil)
	_ TableRepository        = (*storage.PostgresRepository)(nil)
	_ TableSessionRepository = (*storage.PostgresRepository)(nil)
	_ OrderRepository        = (*storage.PostgresRepository)(nil)
	_ EventPublisher         = (*storage.KafkaPublisher)(nil)
)
