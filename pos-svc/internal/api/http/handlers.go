package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/cahuala/ordersApi/logger"
	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/service"
	"github.com/cahuala/ordersApi/pos-svc/internal/validation"
)

type Services struct {
	Categories service.CategoryServiceInterface
	Foods      service.FoodServiceInterface
	Sizes      service.SizeServiceInterface
	Addons     service.AddonServiceInterface
	SizeFoods  service.SizeFoodServiceInterface
	AddonFoods service.AddonFoodServiceInterface
	Prices     service.PriceServiceInterface
	Tables     service.TableServiceInterface
	Sessions   service.TableSessionServiceInterface
	Orders     service.OrderServiceInterface
}

type Handler struct {
	Services
	log *logger.Logger
}

func NewHandler(services Services, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewLogger("pos-svc")
	}
	return &Handler{Services: services, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/categories", createHandler(h, validation.CreateCategory, h.Categories.Create)).Methods("POST")
	r.HandleFunc("/categories", listHandler(h, "categories", "text", h.Categories.List)).Methods("GET")
	r.HandleFunc("/categories/{id}", idHandler(h, h.Categories.Get)).Methods("GET")
	r.HandleFunc("/categories/{id}", updateHandler(h, validation.UpdateCategory, h.Categories.Update)).Methods("PUT")
	r.HandleFunc("/categories/{id}", deleteHandler(h, h.Categories.Delete)).Methods("DELETE")

	r.HandleFunc("/foods", createHandler(h, validation.CreateFood, h.Foods.Create)).Methods("POST")
	r.HandleFunc("/foods", listHandler(h, "foods", "title", h.Foods.List)).Methods("GET")
	r.HandleFunc("/foods/{id}", idHandler(h, h.Foods.Get)).Methods("GET")
	r.HandleFunc("/foods/{id}", updateHandler(h, validation.UpdateFood, h.Foods.Update)).Methods("PUT")
	r.HandleFunc("/foods/{id}", deleteHandler(h, h.Foods.Delete)).Methods("DELETE")
	r.HandleFunc("/foods/{id}/price", h.getFoodPrice).Methods("GET")

	r.HandleFunc("/sizes", createHandler(h, validation.CreateSize, h.Sizes.Create)).Methods("POST")
	r.HandleFunc("/sizes", listHandler(h, "sizes", "text", h.Sizes.List)).Methods("GET")
	r.HandleFunc("/sizes/{id}", idHandler(h, h.Sizes.Get)).Methods("GET")
	r.HandleFunc("/sizes/{id}", updateHandler(h, validation.UpdateSize, h.Sizes.Update)).Methods("PUT")
	r.HandleFunc("/sizes/{id}", deleteHandler(h, h.Sizes.Delete)).Methods("DELETE")

	r.HandleFunc("/addons", createHandler(h, validation.CreateAddon, h.Addons.Create)).Methods("POST")
	r.HandleFunc("/addons", listHandler(h, "addons", "text", h.Addons.List)).Methods("GET")
	r.HandleFunc("/addons/{id}", idHandler(h, h.Addons.Get)).Methods("GET")
	r.HandleFunc("/addons/{id}", updateHandler(h, validation.UpdateAddon, h.Addons.Update)).Methods("PUT")
	r.HandleFunc("/addons/{id}", deleteHandler(h, h.Addons.Delete)).Methods("DELETE")

	r.HandleFunc("/size-foods", createHandler(h, validation.CreateSizeFood, h.SizeFoods.Create)).Methods("POST")
	r.HandleFunc("/size-foods", listHandler(h, "sizeFoods", "title", h.SizeFoods.List)).Methods("GET")
	r.HandleFunc("/size-foods/{id}", idHandler(h, h.SizeFoods.Get)).Methods("GET")
	r.HandleFunc("/size-foods/{id}", updateHandler(h, validation.UpdateSizeFood, h.SizeFoods.Update)).Methods("PUT")
	r.HandleFunc("/size-foods/{id}", deleteHandler(h, h.SizeFoods.Delete)).Methods("DELETE")

	r.HandleFunc("/addon-foods", createHandler(h, validation.CreateAddonFood, h.AddonFoods.Create)).Methods("POST")
	r.HandleFunc("/addon-foods", listHandler(h, "addonFoods", "title", h.AddonFoods.List)).Methods("GET")
	r.HandleFunc("/addon-foods/{id}", idHandler(h, h.AddonFoods.Get)).Methods("GET")
	r.HandleFunc("/addon-foods/{id}", updateHandler(h, validation.UpdateAddonFood, h.AddonFoods.Update)).Methods("PUT")
	r.HandleFunc("/addon-foods/{id}", deleteHandler(h, h.AddonFoods.Delete)).Methods("DELETE")

	r.HandleFunc("/tables", createHandler(h, validation.CreateTable, h.Tables.Create)).Methods("POST")
	r.HandleFunc("/tables", listHandler(h, "tables", "name", h.Tables.List)).Methods("GET")
	r.HandleFunc("/tables/{id}", idHandler(h, h.Tables.Get)).Methods("GET")
	r.HandleFunc("/tables/{id}", updateHandler(h, validation.UpdateTable, h.Tables.Update)).Methods("PUT")
	r.HandleFunc("/tables/{id}", deleteHandler(h, h.Tables.Delete)).Methods("DELETE")

	r.HandleFunc("/tables-sessions", createHandler(h, validation.CreateTableSession, h.Sessions.Create)).Methods("POST")
	r.HandleFunc("/tables-sessions", listHandler(h, "tableSessions", "title", h.Sessions.List)).Methods("GET")
	r.HandleFunc("/tables-sessions/close/{id}", idHandler(h, h.Sessions.Close)).Methods("POST")
	r.HandleFunc("/tables-sessions/open/{id}", idHandler(h, h.Sessions.Open)).Methods("POST")
	r.HandleFunc("/tables-sessions/{id}", idHandler(h, h.Sessions.Get)).Methods("GET")
	r.HandleFunc("/tables-sessions/{id}", updateHandler(h, validation.UpdateTableSession, h.Sessions.Update)).Methods("PUT")
	r.HandleFunc("/tables-sessions/{id}", deleteHandler(h, h.Sessions.Delete)).Methods("DELETE")
	r.HandleFunc("/tables-sessions/{id}/qrcode", h.getSessionQRCode).Methods("GET")

	r.HandleFunc("/orders", createHandler(h, validation.CreateOrder, h.Orders.Create)).Methods("POST")
	r.HandleFunc("/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", idHandler(h, h.Orders.Get)).Methods("GET")
	r.HandleFunc("/orders/{id}", updateHandler(h, validation.UpdateOrder, h.Orders.Update)).Methods("PUT")
	r.HandleFunc("/orders/{id}", deleteHandler(h, h.Orders.Delete)).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	text, params, err := validation.List(listQuery(r, "title"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	filter := domain.OrderFilter{FoodTitle: text.Contains}
	if raw := strings.TrimSpace(r.URL.Query().Get("tableSessionId")); raw != "" {
		id, err := validation.ID(raw)
		if err != nil {
			h.writeError(w, r, domain.NewValidationError("tableSessionId", "O ID da mesa deve ser um UUID válido"))
			return
		}
		filter.TableSessionID = &id
	}

	page, err := h.Orders.List(r.Context(), filter, params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page.Envelope("orders"))
}

func (h *Handler) getFoodPrice(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := validation.Price(mux.Vars(r)["id"], validation.PriceQuery{
		SizeID:   strings.TrimSpace(values.Get("sizeId")),
		AddonIDs: values["addonId"],
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	quote, err := h.Prices.Quote(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *Handler) getSessionQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := h.Sessions.QRCode(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
