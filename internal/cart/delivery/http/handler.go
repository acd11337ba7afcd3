package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lisbeauty/storefront/internal/cart/usecase/command"
	"github.com/lisbeauty/storefront/internal/cart/usecase/query"
)

// CartHandler handles HTTP requests for the cart
type CartHandler struct {
	addHandler         *command.AddItemHandler
	removeHandler      *command.RemoveItemHandler
	setQuantityHandler *command.SetQuantityHandler
	clearHandler       *command.ClearCartHandler

	getHandler *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	setQuantityHandler *command.SetQuantityHandler,
	clearHandler *command.ClearCartHandler,
	getHandler *query.GetCartHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to the cart service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		addHandler:         addHandler,
		removeHandler:      removeHandler,
		setQuantityHandler: setQuantityHandler,
		clearHandler:       clearHandler,
		getHandler:         getHandler,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.getHandler.Handle(query.GetCartQuery{}))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"produtoId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items, err := h.addHandler.Handle(command.AddItemCommand{ProductID: req.ProductID})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// SetQuantity handles PUT /cart/items/{id}
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Quantity int `json:"quantidade"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items, err := h.setQuantityHandler.Handle(command.SetQuantityCommand{
		ProductID: vars["id"],
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	items, err := h.removeHandler.Handle(command.RemoveItemCommand{ProductID: vars["id"]})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(command.ClearCartCommand{}); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

func (h *CartHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *CartHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/cart/items", h.metricsMiddleware("/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/cart/items/{id}", h.SetQuantity)).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
}
