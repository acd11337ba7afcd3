package favorites

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler handles HTTP requests for favorites
type Handler struct {
	service *Service

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewHandler creates a new favorites handler
func NewHandler(service *Service) *Handler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_service_requests_total",
			Help: "Total number of requests to the favorites service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "favorites_service_request_duration_seconds",
			Help:    "Duration of favorites service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &Handler{
		service:        service,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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

func (h *Handler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// List handles GET /favorites
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.List())
}

// Toggle handles POST /favorites/{id}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	favorited, err := h.service.Toggle(vars["id"])
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all favorites routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/favorites", h.metricsMiddleware("/favorites", h.List)).Methods("GET")
	router.HandleFunc("/favorites/{id}/toggle", h.metricsMiddleware("/favorites/{id}/toggle", h.Toggle)).Methods("POST")
}
