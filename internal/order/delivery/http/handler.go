package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	adminhttp "github.com/lisbeauty/storefront/internal/admin/delivery/http"
	"github.com/lisbeauty/storefront/internal/order/domain"
	"github.com/lisbeauty/storefront/internal/order/usecase/command"
	"github.com/lisbeauty/storefront/internal/order/usecase/query"
)

// OrderHandler handles HTTP requests for orders and customers
type OrderHandler struct {
	checkoutHandler     *command.CheckoutHandler
	updateStatusHandler *command.UpdateStatusHandler

	listOrdersHandler    *query.ListOrdersHandler
	listCustomersHandler *query.ListCustomersHandler
	dashboardHandler     *query.GetDashboardHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	checkoutHandler *command.CheckoutHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	listOrdersHandler *query.ListOrdersHandler,
	listCustomersHandler *query.ListCustomersHandler,
	dashboardHandler *query.GetDashboardHandler,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_requests_total",
			Help: "Total number of requests to the order service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_service_orders_placed_total",
			Help: "Total number of orders recorded through checkout",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &OrderHandler{
		checkoutHandler:      checkoutHandler,
		updateStatusHandler:  updateStatusHandler,
		listOrdersHandler:    listOrdersHandler,
		listCustomersHandler: listCustomersHandler,
		dashboardHandler:     dashboardHandler,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		ordersPlaced:         ordersPlaced,
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

func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Checkout handles POST /checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"nome"`
		Email   string `json:"email"`
		Phone   string `json:"telefone"`
		Address string `json:"endereco"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CheckoutCommand{
		CustomerName: req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	}

	orders, err := h.checkoutHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.ordersPlaced.Add(float64(len(orders)))
	h.respondJSON(w, http.StatusCreated, orders)
}

// ListOrders handles GET /admin/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := query.ListOrdersQuery{
		Status: domain.Status(r.URL.Query().Get("status")),
	}

	h.respondJSON(w, http.StatusOK, h.listOrdersHandler.Handle(q))
}

// UpdateStatus handles PUT /admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateStatusCommand{
		OrderID: vars["id"],
		Status:  domain.Status(req.Status),
	}

	order, err := h.updateStatusHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// ListCustomers handles GET /admin/customers
func (h *OrderHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := query.ListCustomersQuery{
		ActiveOnly: r.URL.Query().Get("ativos") == "true",
	}

	h.respondJSON(w, http.StatusOK, h.listCustomersHandler.Handle(q))
}

// GetDashboard handles GET /admin/dashboard
func (h *OrderHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats := h.dashboardHandler.Handle(query.GetDashboardQuery{Now: time.Now()})
	h.respondJSON(w, http.StatusOK, stats)
}

func (h *OrderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *OrderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/checkout", h.metricsMiddleware("/checkout", h.Checkout)).Methods("POST")

	// Admin routes
	router.HandleFunc("/admin/orders", h.metricsMiddleware("/admin/orders", adminhttp.AuthMiddleware(h.ListOrders))).Methods("GET")
	router.HandleFunc("/admin/orders/{id}/status", h.metricsMiddleware("/admin/orders/{id}/status", adminhttp.AuthMiddleware(h.UpdateStatus))).Methods("PUT")
	router.HandleFunc("/admin/customers", h.metricsMiddleware("/admin/customers", adminhttp.AuthMiddleware(h.ListCustomers))).Methods("GET")
	router.HandleFunc("/admin/dashboard", h.metricsMiddleware("/admin/dashboard", adminhttp.AuthMiddleware(h.GetDashboard))).Methods("GET")
}
