package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cahuala/ordersApi/analytics-svc/internal/domain"
	"github.com/cahuala/ordersApi/analytics-svc/internal/service"
	"github.com/cahuala/ordersApi/logger"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type Handler struct {
	Analytics service.AnalyticsInterface
	log       *logger.Logger
	now       func() time.Time
}

func NewHandler(svc service.AnalyticsInterface, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewLogger("analytics-svc")
	}
	return &Handler{Analytics: svc, log: log, now: time.Now}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/top-alltime", h.getTopAllTime).Methods("GET")
	r.HandleFunc("/api/analytics/sessions/{id}/bill", h.getSessionBill).Methods("GET")
}

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Status: status, Message: message})
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, action string, err error) {
	h.log.Error(action, r.Header.Get("X-Request-ID"), "analytics query failed", err)
	writeError(w, http.StatusInternalServerError, "Erro interno do servidor")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, false
	}
	return limit, true
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit deve ser um inteiro entre 1 e 50")
		return
	}
	foods, err := h.Analytics.TopToday(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, "top_today", err)
		return
	}
	writeJSON(w, http.StatusOK, domain.TopFoods{Date: domain.Day(h.now()), Foods: nonNil(foods)})
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit deve ser um inteiro entre 1 e 50")
		return
	}
	foods, err := h.Analytics.TopAllTime(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, "top_alltime", err)
		return
	}
	writeJSON(w, http.StatusOK, domain.TopFoods{Foods: nonNil(foods)})
}

func (h *Handler) getSessionBill(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "O ID deve ser um UUID válido")
		return
	}
	bill, err := h.Analytics.SessionBill(r.Context(), id)
	if errors.Is(err, domain.ErrBillNotFound) {
		writeError(w, http.StatusNotFound, "Conta da sessão não encontrada")
		return
	}
	if err != nil {
		h.internalError(w, r, "session_bill", err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func nonNil(foods []domain.FoodSales) []domain.FoodSales {
	if foods == nil {
		return []domain.FoodSales{}
	}
	return foods
}
