package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/mocks"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
	"github.com/cahuala/ordersApi/pos-svc/internal/service"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestGetReportsResourceNotFound(t *testing.T) {
	id := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name    string
		get     func(t *testing.T) error
		message string
	}{
		{
			name: "category",
			get: func(t *testing.T) error {
				repo := mocks.NewCategoryRepository(t)
				repo.On("GetCategory", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewCategoryService(repo).Get(ctx, id)
				return err
			},
			message: "Categoria não encontrada",
		},
		{
			name: "food",
			get: func(t *testing.T) error {
				repo := mocks.NewFoodRepository(t)
				repo.On("GetFood", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewFoodService(repo).Get(ctx, id)
				return err
			},
			message: "Produto não encontrado",
		},
		{
			name: "size",
			get: func(t *testing.T) error {
				repo := mocks.NewSizeRepository(t)
				repo.On("GetSize", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewSizeService(repo).Get(ctx, id)
				return err
			},
			message: "Tamanho não encontrado",
		},
		{
			name: "addon",
			get: func(t *testing.T) error {
				repo := mocks.NewAddonRepository(t)
				repo.On("GetAddon", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewAddonService(repo).Get(ctx, id)
				return err
			},
			message: "Extra não encontrada",
		},
		{
			name: "size food",
			get: func(t *testing.T) error {
				repo := mocks.NewSizeFoodRepository(t)
				repo.On("GetSizeFood", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewSizeFoodService(repo, nil, nil).Get(ctx, id)
				return err
			},
			message: "Tamanho não encontrado",
		},
		{
			name: "addon food",
			get: func(t *testing.T) error {
				repo := mocks.NewAddonFoodRepository(t)
				repo.On("GetAddonFood", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewAddonFoodService(repo, nil, nil).Get(ctx, id)
				return err
			},
			message: "Adicional não encontrado",
		},
		{
			name: "table",
			get: func(t *testing.T) error {
				repo := mocks.NewTableRepository(t)
				repo.On("GetTable", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewTableService(repo).Get(ctx, id)
				return err
			},
			message: "Mesa não encontrada",
		},
		{
			name: "table session",
			get: func(t *testing.T) error {
				repo := mocks.NewTableSessionRepository(t)
				repo.On("GetTableSession", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewTableSessionService(repo, nil, nil, nil, nil).Get(ctx, id)
				return err
			},
			message: "Sessão não encontrada",
		},
		{
			name: "order",
			get: func(t *testing.T) error {
				repo := mocks.NewOrderRepository(t)
				repo.On("GetOrder", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
				_, err := service.NewOrderService(repo, nil, nil, nil, nil, nil).Get(ctx, id)
				return err
			},
			message: "Pedido não encontrado",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			requireAppError(t, testCase.get(t), 404, testCase.message)
		})
	}
}

func TestFoodService_Create(t *testing.T) {
	repo := mocks.NewFoodRepository(t)
	svc := service.NewFoodService(repo)

	repo.On("CreateFood", mock.Anything, mock.MatchedBy(func(f *domain.Food) bool {
		return f.ID != uuid.Nil && f.Title == "Cheeseburger" && f.Image == ""
	})).Return(nil).Once()

	food, err := svc.Create(context.Background(), domain.FoodInput{
		Title: "Cheeseburger", Description: "A juicy grilled burger", Price: price("25"), Type: "meal",
	})

	require.NoError(t, err)
	assert.Equal(t, "Cheeseburger", food.Title)
	assert.True(t, food.Price.Equal(price("25")))
}

func TestFoodService_UpdateKeepsOmittedFields(t *testing.T) {
	repo := mocks.NewFoodRepository(t)
	svc := service.NewFoodService(repo)
	id := uuid.New()
	stored := &domain.Food{ID: id, Title: "Cheeseburger", Description: "A juicy grilled burger", Price: price("25"), Image: "burger.png", Type: "meal"}
	newPrice := price("27.5")

	repo.On("GetFood", mock.Anything, id).Return(stored, nil).Once()
	repo.On("UpdateFood", mock.Anything, mock.AnythingOfType("*domain.Food")).Return(nil).Once()

	food, err := svc.Update(context.Background(), id, domain.FoodPatch{Price: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, "burger.png", food.Image)
	assert.Equal(t, "Cheeseburger", food.Title)
	assert.True(t, food.Price.Equal(newPrice))
}

func TestCategoryService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		repoErr  error
		wantErr  error
		notFound bool
	}{
		{name: "deleted", rows: 1},
		{name: "missing", rows: 0, notFound: true},
		{name: "still referenced", repoErr: domain.ErrReferenceInUse, wantErr: domain.ErrReferenceInUse},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCategoryRepository(t)
			svc := service.NewCategoryService(repo)
			id := uuid.New()

			repo.On("DeleteCategory", mock.Anything, id).Return(testCase.rows, testCase.repoErr).Once()

			err := svc.Delete(context.Background(), id)

			switch {
			case testCase.notFound:
				requireAppError(t, err, 404, domain.MsgCategoryNotFound)
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryService_ListBuildsPage(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	svc := service.NewCategoryService(repo)
	filter := domain.TextFilter{Contains: "drink"}
	params := pagination.Params{Page: 2, PerPage: 5}

	repo.On("ListCategories", mock.Anything, filter, pagination.Window{Skip: 5, Take: 5}).
		Return([]domain.Category{{Text: "Drinks"}}, 6, nil).Once()

	page, err := svc.List(context.Background(), filter, params)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, pagination.Meta{Page: 2, PerPage: 5, TotalRecords: 6, TotalPages: 2}, page.Pagination)
}

func TestSizeFoodService_CreateChecksReferences(t *testing.T) {
	repo := mocks.NewSizeFoodRepository(t)
	foods := mocks.NewFoodRepository(t)
	sizes := mocks.NewSizeRepository(t)
	svc := service.NewSizeFoodService(repo, foods, sizes)
	foodID, sizeID := uuid.New(), uuid.New()

	foods.On("GetFood", mock.Anything, foodID).Return(&domain.Food{ID: foodID}, nil).Once()
	sizes.On("GetSize", mock.Anything, sizeID).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Create(context.Background(), domain.SizeFoodInput{FoodID: foodID, SizeID: sizeID, Price: price("30")})

	requireAppError(t, err, 404, domain.MsgSizeNotFound)
	repo.AssertNotCalled(t, "CreateSizeFood", mock.Anything, mock.Anything)
}

func TestPriceService_Quote(t *testing.T) {
	foodID, sizeID, cheese, bacon := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	food := &domain.Food{ID: foodID, Price: price("25")}

	tests := []struct {
		name      string
		req       domain.PriceRequest
		setup     func(sizeFoods *mocks.SizeFoodRepository, addonFoods *mocks.AddonFoodRepository)
		wantPrice string
	}{
		{
			name:      "base price",
			req:       domain.PriceRequest{FoodID: foodID},
			setup:     func(*mocks.SizeFoodRepository, *mocks.AddonFoodRepository) {},
			wantPrice: "25",
		},
		{
			name: "size without override falls back to base",
			req:  domain.PriceRequest{FoodID: foodID, SizeID: &sizeID},
			setup: func(sizeFoods *mocks.SizeFoodRepository, _ *mocks.AddonFoodRepository) {
				sizeFoods.On("FindSizeFood", mock.Anything, foodID, sizeID).Return(nil, domain.ErrNotFound).Once()
			},
			wantPrice: "25",
		},
		{
			name: "size override plus addons, duplicates charged once",
			req:  domain.PriceRequest{FoodID: foodID, SizeID: &sizeID, AddonIDs: []uuid.UUID{cheese, bacon, cheese}},
			setup: func(sizeFoods *mocks.SizeFoodRepository, addonFoods *mocks.AddonFoodRepository) {
				sizeFoods.On("FindSizeFood", mock.Anything, foodID, sizeID).
					Return(&domain.SizeFood{FoodID: foodID, SizeID: sizeID, Price: price("30")}, nil).Once()
				addonFoods.On("FindAddonFoods", mock.Anything, foodID, []uuid.UUID{cheese, bacon}).
					Return([]domain.AddonFood{
						{FoodID: foodID, AddonID: cheese, Price: price("3")},
						{FoodID: foodID, AddonID: bacon, Price: price("2")},
					}, nil).Once()
			},
			wantPrice: "35",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			foods := mocks.NewFoodRepository(t)
			sizeFoods := mocks.NewSizeFoodRepository(t)
			addonFoods := mocks.NewAddonFoodRepository(t)
			svc := service.NewPriceService(foods, sizeFoods, addonFoods)

			foods.On("GetFood", mock.Anything, foodID).Return(food, nil).Once()
			testCase.setup(sizeFoods, addonFoods)

			quote, err := svc.Quote(context.Background(), testCase.req)

			require.NoError(t, err)
			assert.True(t, quote.UnitPrice.Equal(price(testCase.wantPrice)), "got %s", quote.UnitPrice)
			assert.True(t, quote.BasePrice.Equal(price("25")))
		})
	}
}

func TestTableSessionService_CreateRequiresTable(t *testing.T) {
	repo := mocks.NewTableSessionRepository(t)
	tables := mocks.NewTableRepository(t)
	svc := service.NewTableSessionService(repo, tables, nil, nil, nil)
	tableID := uuid.New()

	tables.On("GetTable", mock.Anything, tableID).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Create(context.Background(), domain.TableSessionInput{TableNo: tableID, Pax: 2, Status: domain.SessionUnpaid})

	requireAppError(t, err, 404, "Mesa não encontrada")
}

func TestTableSessionService_CloseIsIdempotent(t *testing.T) {
	repo := mocks.NewTableSessionRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewTableSessionService(repo, nil, nil, publisher, nil)
	id := uuid.New()
	paid := &domain.TableSession{ID: id, TableNo: uuid.New(), Pax: 4, Status: domain.SessionPaid, Total: decimal.Zero}

	repo.On("SetTableSessionStatus", mock.Anything, id, domain.SessionPaid).Return(paid, nil).Twice()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventSessionClosed && e.TableSessionID == id
	})).Return(nil).Twice()

	for i := 0; i < 2; i++ {
		session, err := svc.Close(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionPaid, session.Status)
	}
}

func TestTableSessionService_OpenAfterClose(t *testing.T) {
	repo := mocks.NewTableSessionRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewTableSessionService(repo, nil, nil, publisher, nil)
	id, tableID := uuid.New(), uuid.New()
	paid := &domain.TableSession{ID: id, TableNo: tableID, Pax: 4, Status: domain.SessionPaid, Total: price("40")}
	unpaid := &domain.TableSession{ID: id, TableNo: tableID, Pax: 4, Status: domain.SessionUnpaid, Total: price("40")}

	repo.On("SetTableSessionStatus", mock.Anything, id, domain.SessionPaid).Return(paid, nil).Once()
	repo.On("SetTableSessionStatus", mock.Anything, id, domain.SessionUnpaid).Return(unpaid, nil).Once()
	closed := publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventSessionClosed && e.TableSessionID == id
	})).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventSessionOpened && e.TableSessionID == id &&
			e.TableID != nil && *e.TableID == tableID && e.Total.Equal(price("40"))
	})).Return(nil).Once().NotBefore(closed)

	_, err := svc.Close(context.Background(), id)
	require.NoError(t, err)

	session, err := svc.Open(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.SessionUnpaid, session.Status)
}

func TestTableSessionService_OpenMissingSession(t *testing.T) {
	repo := mocks.NewTableSessionRepository(t)
	svc := service.NewTableSessionService(repo, nil, nil, nil, nil)
	id := uuid.New()

	repo.On("SetTableSessionStatus", mock.Anything, id, domain.SessionUnpaid).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Open(context.Background(), id)

	requireAppError(t, err, 404, "Sessão não encontrada")
}

func TestTableSessionService_UpdateVersionMismatch(t *testing.T) {
	repo := mocks.NewTableSessionRepository(t)
	svc := service.NewTableSessionService(repo, nil, nil, nil, nil)
	id := uuid.New()
	stale := 1

	repo.On("GetTableSession", mock.Anything, id).
		Return(&domain.TableSession{ID: id, Pax: 2, Status: domain.SessionUnpaid, Version: 3}, nil).Once()

	_, err := svc.Update(context.Background(), id, domain.TableSessionPatch{Version: &stale})

	assert.ErrorIs(t, err, domain.ErrSessionVersion)
	repo.AssertNotCalled(t, "UpdateTableSession", mock.Anything, mock.Anything, mock.Anything)
}

func TestTableSessionService_QRCode(t *testing.T) {
	repo := mocks.NewTableSessionRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewTableSessionService(repo, nil, qr, nil, nil)
	id := uuid.New()

	repo.On("GetTableSession", mock.Anything, id).Return(&domain.TableSession{ID: id}, nil).Once()
	qr.On("Generate", id).Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

type orderDeps struct {
	orders     *mocks.OrderRepository
	foods      *mocks.FoodRepository
	sessions   *mocks.TableSessionRepository
	sizeFoods  *mocks.SizeFoodRepository
	addonFoods *mocks.AddonFoodRepository
	publisher  *mocks.EventPublisher
	svc        *service.OrderService
}

func newOrderDeps(t *testing.T) orderDeps {
	d := orderDeps{
		orders:     mocks.NewOrderRepository(t),
		foods:      mocks.NewFoodRepository(t),
		sessions:   mocks.NewTableSessionRepository(t),
		sizeFoods:  mocks.NewSizeFoodRepository(t),
		addonFoods: mocks.NewAddonFoodRepository(t),
		publisher:  mocks.NewEventPublisher(t),
	}
	prices := service.NewPriceService(d.foods, d.sizeFoods, d.addonFoods)
	d.svc = service.NewOrderService(d.orders, d.foods, d.sessions, prices, d.publisher, nil)
	return d
}

func TestOrderService_CreateResolvesPrice(t *testing.T) {
	d := newOrderDeps(t)
	foodID, sessionID, sizeID, cheese := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	d.foods.On("GetFood", mock.Anything, foodID).Return(&domain.Food{ID: foodID, Price: price("25")}, nil).Once()
	d.sessions.On("GetTableSession", mock.Anything, sessionID).
		Return(&domain.TableSession{ID: sessionID, Status: domain.SessionUnpaid}, nil).Once()
	d.sizeFoods.On("FindSizeFood", mock.Anything, foodID, sizeID).
		Return(&domain.SizeFood{FoodID: foodID, SizeID: sizeID, Price: price("30")}, nil).Once()
	d.addonFoods.On("FindAddonFoods", mock.Anything, foodID, []uuid.UUID{cheese}).
		Return([]domain.AddonFood{{FoodID: foodID, AddonID: cheese, Price: price("3")}}, nil).Once()
	d.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Price.Equal(price("33")) && o.Quantity == 2
	})).Return(nil).Once()
	d.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderCreated && e.Quantity == 2
	})).Return(nil).Once()

	order, err := d.svc.Create(context.Background(), domain.OrderInput{
		FoodID: foodID, Quantity: 2, TableSessionID: sessionID, SizeID: &sizeID, AddonIDs: []uuid.UUID{cheese},
	})

	require.NoError(t, err)
	assert.True(t, order.Price.Equal(price("33")))
	assert.True(t, order.Subtotal().Equal(price("66")))
}

func TestOrderService_CreateKeepsGivenPrice(t *testing.T) {
	d := newOrderDeps(t)
	foodID, sessionID := uuid.New(), uuid.New()
	given := price("12.5")

	d.foods.On("GetFood", mock.Anything, foodID).Return(&domain.Food{ID: foodID, Price: price("25")}, nil).Once()
	d.sessions.On("GetTableSession", mock.Anything, sessionID).
		Return(&domain.TableSession{ID: sessionID, Status: domain.SessionUnpaid}, nil).Once()
	d.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	d.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	order, err := d.svc.Create(context.Background(), domain.OrderInput{
		FoodID: foodID, Quantity: 1, Price: &given, TableSessionID: sessionID,
	})

	require.NoError(t, err, "publish failures must not fail the order")
	assert.True(t, order.Price.Equal(given))
}

func TestOrderService_CreateRejections(t *testing.T) {
	foodID, sessionID := uuid.New(), uuid.New()
	in := domain.OrderInput{FoodID: foodID, Quantity: 1, TableSessionID: sessionID}

	tests := []struct {
		name  string
		setup func(d orderDeps)
		check func(t *testing.T, err error)
	}{
		{
			name: "missing food",
			setup: func(d orderDeps) {
				d.foods.On("GetFood", mock.Anything, foodID).Return(nil, domain.ErrNotFound).Once()
			},
			check: func(t *testing.T, err error) { requireAppError(t, err, 404, "Produto não encontrado") },
		},
		{
			name: "missing session",
			setup: func(d orderDeps) {
				d.foods.On("GetFood", mock.Anything, foodID).Return(&domain.Food{ID: foodID, Price: price("5")}, nil).Once()
				d.sessions.On("GetTableSession", mock.Anything, sessionID).Return(nil, domain.ErrNotFound).Once()
			},
			check: func(t *testing.T, err error) { requireAppError(t, err, 404, "Sessão não encontrada") },
		},
		{
			name: "paid session",
			setup: func(d orderDeps) {
				d.foods.On("GetFood", mock.Anything, foodID).Return(&domain.Food{ID: foodID, Price: price("5")}, nil).Once()
				d.sessions.On("GetTableSession", mock.Anything, sessionID).
					Return(&domain.TableSession{ID: sessionID, Status: domain.SessionPaid}, nil).Once()
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrSessionPaid) },
		},
		{
			name: "session closed between check and insert",
			setup: func(d orderDeps) {
				d.foods.On("GetFood", mock.Anything, foodID).Return(&domain.Food{ID: foodID, Price: price("5")}, nil).Once()
				d.sessions.On("GetTableSession", mock.Anything, sessionID).
					Return(&domain.TableSession{ID: sessionID, Status: domain.SessionUnpaid}, nil).Once()
				d.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(domain.ErrSessionPaid).Once()
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrSessionPaid) },
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := newOrderDeps(t)
			testCase.setup(d)

			_, err := d.svc.Create(context.Background(), in)

			testCase.check(t, err)
			d.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_DeletePublishesEvent(t *testing.T) {
	d := newOrderDeps(t)
	id := uuid.New()
	order := &domain.Order{ID: id, FoodID: uuid.New(), Quantity: 3, Price: price("4"), TableSessionID: uuid.New()}

	d.orders.On("GetOrder", mock.Anything, id).Return(order, nil).Once()
	d.orders.On("DeleteOrder", mock.Anything, id).Return(int64(1), nil).Once()
	d.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderDeleted && *e.OrderID == id
	})).Return(nil).Once()

	require.NoError(t, d.svc.Delete(context.Background(), id))
}

func TestOrderService_PublishHasDeadline(t *testing.T) {
	d := newOrderDeps(t)
	id := uuid.New()
	order := &domain.Order{ID: id, FoodID: uuid.New(), Quantity: 1, Price: price("4"), TableSessionID: uuid.New()}

	d.orders.On("GetOrder", mock.Anything, id).Return(order, nil).Once()
	d.orders.On("DeleteOrder", mock.Anything, id).Return(int64(1), nil).Once()
	d.publisher.On("Publish", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= 5*time.Second
	}), mock.Anything).Return(nil).Once()

	require.NoError(t, d.svc.Delete(context.Background(), id))
}

func TestOrderService_UpdatePublishesReplacement(t *testing.T) {
	d := newOrderDeps(t)
	id, from, to := uuid.New(), uuid.New(), uuid.New()
	order := &domain.Order{
		ID: id, FoodID: uuid.New(), Quantity: 1, Price: price("10"), TableSessionID: from,
		TableSession: &domain.TableSession{ID: from, Status: domain.SessionUnpaid},
	}
	quantity := 3

	d.orders.On("GetOrder", mock.Anything, id).Return(order, nil).Once()
	d.sessions.On("GetTableSession", mock.Anything, to).
		Return(&domain.TableSession{ID: to, Status: domain.SessionUnpaid}, nil).Once()
	d.orders.On("UpdateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Quantity == 3 && o.TableSessionID == to
	})).Return(nil).Once()
	removed := d.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderDeleted && e.TableSessionID == from && e.Quantity == 1
	})).Return(nil).Once()
	d.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderCreated && e.TableSessionID == to && e.Quantity == 3
	})).Return(nil).Once().NotBefore(removed)

	updated, err := d.svc.Update(context.Background(), id, domain.OrderPatch{Quantity: &quantity, TableSessionID: &to})

	require.NoError(t, err)
	assert.Equal(t, to, updated.TableSessionID)
	assert.Nil(t, updated.TableSession)
}

func TestOrderService_UpdateRejectsPaidSessions(t *testing.T) {
	id, current, target := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name  string
		setup func(d orderDeps) domain.OrderPatch
	}{
		{
			name: "order already on a paid bill",
			setup: func(d orderDeps) domain.OrderPatch {
				d.orders.On("GetOrder", mock.Anything, id).Return(&domain.Order{
					ID: id, Quantity: 1, Price: price("5"), TableSessionID: current,
					TableSession: &domain.TableSession{ID: current, Status: domain.SessionPaid},
				}, nil).Once()
				quantity := 2
				return domain.OrderPatch{Quantity: &quantity}
			},
		},
		{
			name: "moving onto a paid bill",
			setup: func(d orderDeps) domain.OrderPatch {
				d.orders.On("GetOrder", mock.Anything, id).Return(&domain.Order{
					ID: id, Quantity: 1, Price: price("5"), TableSessionID: current,
				}, nil).Once()
				d.sessions.On("GetTableSession", mock.Anything, current).
					Return(&domain.TableSession{ID: current, Status: domain.SessionUnpaid}, nil).Once()
				d.sessions.On("GetTableSession", mock.Anything, target).
					Return(&domain.TableSession{ID: target, Status: domain.SessionPaid}, nil).Once()
				return domain.OrderPatch{TableSessionID: &target}
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := newOrderDeps(t)
			patch := testCase.setup(d)

			_, err := d.svc.Update(context.Background(), id, patch)

			assert.ErrorIs(t, err, domain.ErrSessionPaid)
			d.orders.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
			d.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}
