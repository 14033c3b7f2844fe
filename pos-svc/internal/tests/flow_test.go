package tests

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cahuala/ordersApi/logger"
	httpapi "github.com/cahuala/ordersApi/pos-svc/internal/api/http"
	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/mocks"
	"github.com/cahuala/ordersApi/pos-svc/internal/service"
)

func eventOfType(eventType domain.EventType) interface{} {
	return mock.MatchedBy(func(event domain.Event) bool { return event.Type == eventType })
}

// A table is seated, an order is taken, the bill is closed and the order
// stays as it was billed.
func TestTableServiceFlow(t *testing.T) {
	foods := mocks.NewFoodRepository(t)
	tables := mocks.NewTableRepository(t)
	sessions := mocks.NewTableSessionRepository(t)
	orders := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	log := logger.New("pos-svc", io.Discard)

	prices := service.NewPriceService(foods, mocks.NewSizeFoodRepository(t), mocks.NewAddonFoodRepository(t))
	handler := httpapi.NewHandler(httpapi.Services{
		Foods:    service.NewFoodService(foods),
		Prices:   prices,
		Tables:   service.NewTableService(tables),
		Sessions: service.NewTableSessionService(sessions, tables, mocks.NewQRGenerator(t), publisher, log),
		Orders:   service.NewOrderService(orders, foods, sessions, prices, publisher, log),

		Categories: service.NewCategoryService(mocks.NewCategoryRepository(t)),
		Sizes:      service.NewSizeService(mocks.NewSizeRepository(t)),
		Addons:     service.NewAddonService(mocks.NewAddonRepository(t)),
		SizeFoods:  service.NewSizeFoodService(mocks.NewSizeFoodRepository(t), foods, mocks.NewSizeRepository(t)),
		AddonFoods: service.NewAddonFoodService(mocks.NewAddonFoodRepository(t), foods, mocks.NewAddonRepository(t)),
	}, log)
	router := httpapi.NewRouter(handler)

	send := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	var table *domain.Table
	tables.On("CreateTable", mock.Anything, mock.AnythingOfType("*domain.Table")).
		Run(func(args mock.Arguments) { table = args.Get(1).(*domain.Table) }).
		Return(nil).Once()

	w := send(http.MethodPost, "/tables", `{"name":"Mesa 1","totalPax":4}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, table)

	var session *domain.TableSession
	tables.On("GetTable", mock.Anything, table.ID).Return(table, nil).Once()
	sessions.On("CreateTableSession", mock.Anything, mock.AnythingOfType("*domain.TableSession")).
		Run(func(args mock.Arguments) { session = args.Get(1).(*domain.TableSession) }).
		Return(nil).Once()

	w = send(http.MethodPost, "/tables-sessions", `{"tableNo":"`+table.ID.String()+`","pax":2}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "unpaid", body["status"])
	assert.Equal(t, float64(0), body["total"])

	food := &domain.Food{ID: uuid.New(), Title: "Bitoque", Price: price("12.50"), Type: "meal"}
	var order *domain.Order
	foods.On("GetFood", mock.Anything, food.ID).Return(food, nil)
	sessions.On("GetTableSession", mock.Anything, session.ID).Return(session, nil).Once()
	orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) { order = args.Get(1).(*domain.Order) }).
		Return(nil).Once()
	publisher.On("Publish", mock.Anything, eventOfType(domain.EventOrderCreated)).Return(nil).Once()

	orderBody := `{"foodId":"` + food.ID.String() + `","quantity":2,"tableSessionId":"` + session.ID.String() + `"}`
	w = send(http.MethodPost, "/orders", orderBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 12.5, decodeBody(t, w)["price"])

	paid := *session
	paid.Status = domain.SessionPaid
	paid.Version = session.Version + 1
	sessions.On("SetTableSessionStatus", mock.Anything, session.ID, domain.SessionPaid).Return(&paid, nil).Once()
	publisher.On("Publish", mock.Anything, eventOfType(domain.EventSessionClosed)).Return(nil).Once()

	w = send(http.MethodPost, "/tables-sessions/close/"+session.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "paid", decodeBody(t, w)["status"])

	sessions.On("GetTableSession", mock.Anything, session.ID).Return(&paid, nil).Once()

	w = send(http.MethodPost, "/orders", orderBody)
	assert.Equal(t, http.StatusConflict, w.Code)

	orders.On("GetOrder", mock.Anything, order.ID).Return(order, nil).Once()

	w = send(http.MethodGet, "/orders/"+order.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, 12.5, got["price"])
	assert.Equal(t, float64(2), got["quantity"])
}
