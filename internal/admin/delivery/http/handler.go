package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lisbeauty/storefront/internal/admin/usecase/command"
	"github.com/lisbeauty/storefront/internal/admin/usecase/query"
)

// AdminHandler handles HTTP requests for the admin account surface
type AdminHandler struct {
	loginHandler    *command.LoginHandler
	registerHandler *command.RegisterHandler
	logoutHandler   *command.LogoutHandler

	sessionHandler *query.GetSessionHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	loginHandler *command.LoginHandler,
	registerHandler *command.RegisterHandler,
	logoutHandler *command.LogoutHandler,
	sessionHandler *query.GetSessionHandler,
) *AdminHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_service_requests_total",
			Help: "Total number of requests to the admin service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_service_request_duration_seconds",
			Help:    "Duration of admin service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &AdminHandler{
		loginHandler:    loginHandler,
		registerHandler: registerHandler,
		logoutHandler:   logoutHandler,
		sessionHandler:  sessionHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
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

func (h *AdminHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Login handles POST /auth/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Remember bool   `json:"rememberMe"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.Remember,
	}

	response, err := h.loginHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, response)
}

// Register handles POST /auth/register
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		AccessCode      string `json:"accessCode"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.RegisterCommand{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AccessCode:      req.AccessCode,
	}

	account, err := h.registerHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Never echo the password hash back.
	account.Password = ""
	h.respondJSON(w, http.StatusCreated, account)
}

// Logout handles POST /auth/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.logoutHandler.Handle(command.LogoutCommand{})
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// GetSession handles GET /auth/session
func (h *AdminHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionHandler.Handle(query.GetSessionQuery{})
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, session)
}

func (h *AdminHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *AdminHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all admin account routes
func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/logout", h.metricsMiddleware("/auth/logout", AuthMiddleware(h.Logout))).Methods("POST")
	router.HandleFunc("/auth/session", h.metricsMiddleware("/auth/session", h.GetSession)).Methods("GET")
}
