package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	adminhttp "github.com/lisbeauty/storefront/internal/admin/delivery/http"
	"github.com/lisbeauty/storefront/internal/catalog/domain"
	"github.com/lisbeauty/storefront/internal/catalog/usecase/command"
	"github.com/lisbeauty/storefront/internal/catalog/usecase/query"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	createHandler       *command.CreateProductHandler
	updateHandler       *command.UpdateProductHandler
	deleteHandler       *command.DeleteProductHandler
	duplicateHandler    *command.DuplicateProductHandler
	toggleActiveHandler *command.ToggleActiveHandler
	recordViewHandler   *command.RecordViewHandler

	listHandler          *query.ListProductsHandler
	getHandler           *query.GetProductHandler
	subcategoriesHandler *query.ListSubcategoriesHandler
	statsHandler         *query.GetStatsHandler

	repo           domain.ProductRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	activeProducts prometheus.Gauge
}

// NewProductHandler creates a new catalog handler
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	createHandler := command.NewCreateProductHandler(repo)
	updateHandler := command.NewUpdateProductHandler(repo)
	deleteHandler := command.NewDeleteProductHandler(repo)
	duplicateHandler := command.NewDuplicateProductHandler(repo)
	toggleActiveHandler := command.NewToggleActiveHandler(repo)
	recordViewHandler := command.NewRecordViewHandler(repo)

	listHandler := query.NewListProductsHandler(repo)
	getHandler := query.NewGetProductHandler(repo)
	subcategoriesHandler := query.NewListSubcategoriesHandler(repo)
	statsHandler := query.NewGetStatsHandler(repo)

	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to the catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	activeProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_active_products",
			Help: "Number of active products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(activeProducts)

	return &ProductHandler{
		createHandler:        createHandler,
		updateHandler:        updateHandler,
		deleteHandler:        deleteHandler,
		duplicateHandler:     duplicateHandler,
		toggleActiveHandler:  toggleActiveHandler,
		recordViewHandler:    recordViewHandler,
		listHandler:          listHandler,
		getHandler:           getHandler,
		subcategoriesHandler: subcategoriesHandler,
		statsHandler:         statsHandler,
		repo:                 repo,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		activeProducts:       activeProducts,
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

func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// productRequest is the JSON body shared by create and update.
type productRequest struct {
	Name        string   `json:"nome"`
	Description string   `json:"descricao"`
	Price       int64    `json:"preco"`
	Image       string   `json:"imagem"`
	Category    string   `json:"categoria"`
	Subcategory string   `json:"subcategoria"`
	Tags        []string `json:"tags"`
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var maxPrice int64
	if v := params.Get("precoMax"); v != "" {
		maxPrice, _ = strconv.ParseInt(v, 10, 64)
	}

	q := query.ListProductsQuery{
		Filter: domain.Filter{
			Search:      params.Get("busca"),
			Category:    params.Get("categoria"),
			Subcategory: params.Get("subcategoria"),
			MaxPrice:    maxPrice,
			ActiveOnly:  params.Get("todos") != "true",
			Sort:        params.Get("ordenar"),
		},
	}

	h.respondJSON(w, http.StatusOK, h.listHandler.Handle(q))
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: vars["id"]})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// RecordView handles POST /products/{id}/view
func (h *ProductHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.recordViewHandler.Handle(r.Context(), command.RecordViewCommand{ID: vars["id"]})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// ListSubcategories handles GET /categories/{category}/subcategories
func (h *ProductHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	subcategories := h.subcategoriesHandler.Handle(query.ListSubcategoriesQuery{Category: vars["category"]})
	h.respondJSON(w, http.StatusOK, subcategories)
}

// --- ADMIN ENDPOINTS ---

// CreateProduct handles POST /admin/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Tags:        req.Tags,
	}

	product, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateActiveProductsMetric()
	h.respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateProductCommand{
		ID:          vars["id"],
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Tags:        req.Tags,
	}

	product, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: vars["id"]}); err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.updateActiveProductsMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// DuplicateProduct handles POST /admin/products/{id}/duplicate
func (h *ProductHandler) DuplicateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.duplicateHandler.Handle(r.Context(), command.DuplicateProductCommand{ID: vars["id"]})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.updateActiveProductsMetric()
	h.respondJSON(w, http.StatusCreated, product)
}

// ToggleActive handles PUT /admin/products/{id}/active
func (h *ProductHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.toggleActiveHandler.Handle(r.Context(), command.ToggleActiveCommand{ID: vars["id"]})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.updateActiveProductsMetric()
	h.respondJSON(w, http.StatusOK, product)
}

// GetStats handles GET /admin/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.statsHandler.Handle(query.GetStatsQuery{}))
}

func (h *ProductHandler) updateActiveProductsMetric() {
	h.activeProducts.Set(float64(h.repo.CountActive()))
}

func (h *ProductHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *ProductHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all catalog routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/products", h.metricsMiddleware("/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/products/{id}", h.metricsMiddleware("/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/products/{id}/view", h.metricsMiddleware("/products/{id}/view", h.RecordView)).Methods("POST")
	router.HandleFunc("/categories/{category}/subcategories", h.metricsMiddleware("/categories/{category}/subcategories", h.ListSubcategories)).Methods("GET")

	// Admin routes
	router.HandleFunc("/admin/products", h.metricsMiddleware("/admin/products", adminhttp.AuthMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/admin/products/stats", h.metricsMiddleware("/admin/products/stats", adminhttp.AuthMiddleware(h.GetStats))).Methods("GET")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", adminhttp.AuthMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", adminhttp.AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/admin/products/{id}/duplicate", h.metricsMiddleware("/admin/products/{id}/duplicate", adminhttp.AuthMiddleware(h.DuplicateProduct))).Methods("POST")
	router.HandleFunc("/admin/products/{id}/active", h.metricsMiddleware("/admin/products/{id}/active", adminhttp.AuthMiddleware(h.ToggleActive))).Methods("PUT")
}
