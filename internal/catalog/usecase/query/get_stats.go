package query

import (
	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// CatalogStats mirrors the admin panel counters.
type CatalogStats struct {
	Total    int `json:"total"`
	Active   int `json:"ativos"`
	Inactive int `json:"inativos"`
}

// GetStatsQuery represents the query for catalog statistics
type GetStatsQuery struct{}

// GetStatsHandler handles catalog statistics query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(GetStatsQuery) CatalogStats {
	total := h.repo.Count()
	active := h.repo.CountActive()
	return CatalogStats{
		Total:    total,
		Active:   active,
		Inactive: total - active,
	}
}
