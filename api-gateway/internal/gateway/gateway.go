package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cahuala/ordersApi/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	POSSvcURL       string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    *logger.Logger
}

func NewGateway(config Config, client HTTPClient, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.NewLogger("api-gateway")
	}
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards r to targetURL+path and copies the upstream
// response back unchanged.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL, path string) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	url := targetURL + path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	g.log.Debug("proxy", requestID, r.Method+" "+r.URL.Path+" -> "+url)

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.log.Error("proxy", requestID, "failed to create request", err)
		writeError(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error("proxy", requestID, "upstream unavailable", err, slog.String("target", targetURL))
		writeError(w, http.StatusBadGateway, "Serviço indisponível")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Error("proxy", requestID, "failed to copy response", err)
	}
}

// RouteHandler sends analytics paths to analytics-svc untouched and every
// other /api path to pos-svc without the /api prefix.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case strings.HasPrefix(path, "/api/analytics/"):
		g.ProxyRequest(w, r, g.config.AnalyticsSvcURL, path)
	case strings.HasPrefix(path, "/api/"):
		g.ProxyRequest(w, r, g.config.POSSvcURL, strings.TrimPrefix(path, "/api"))
	default:
		writeError(w, http.StatusNotFound, "Rota não encontrada")
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"status": status, "message": message})
}
