package export

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	adminhttp "github.com/lisbeauty/storefront/internal/admin/delivery/http"
	catalog "github.com/lisbeauty/storefront/internal/catalog/domain"
	order "github.com/lisbeauty/storefront/internal/order/domain"
)

// Handler serves admin file downloads.
type Handler struct {
	products catalog.ProductRepository
	orders   order.OrderRepository
}

// NewHandler creates a new export handler
func NewHandler(products catalog.ProductRepository, orders order.OrderRepository) *Handler {
	return &Handler{products: products, orders: orders}
}

// ExportProducts handles GET /admin/export/products?formato=csv|json
func (h *Handler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("formato")
	if format == "" {
		format = "json"
	}

	products := h.products.FindAll()
	now := time.Now()

	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case "json":
		data, err = ProductsJSON(products)
		contentType = "application/json"
	case "csv":
		data, err = ProductsCSV(products)
		contentType = "text/csv"
	default:
		h.respondError(w, http.StatusBadRequest, "unsupported format")
		return
	}
	if err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.sendFile(w, contentType, Filename("produtos", format, now), data)
}

// ExportOrders handles GET /admin/export/orders
func (h *Handler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	data, err := OrdersCSV(h.orders.FindAll())
	if err != nil {
		h.respondError(w, http.StatusConflict, err.Error())
		return
	}

	h.sendFile(w, "text/csv", Filename("encomendas", "csv", time.Now()), data)
}

func (h *Handler) sendFile(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RegisterRoutes registers the export routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/admin/export/products", adminhttp.AdminMiddleware(h.ExportProducts)).Methods("GET")
	router.HandleFunc("/admin/export/orders", adminhttp.AdminMiddleware(h.ExportOrders)).Methods("GET")
}
