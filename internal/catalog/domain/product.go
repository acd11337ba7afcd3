package domain

import (
	"context"
	"time"
)

// Product represents one sellable catalog entry. Prices are integer minor
// currency units (centavos), never floats. The JSON field names match the
// stored records of the legacy dataset so existing data loads unchanged.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	Price       int64     `json:"preco"`
	Image       string    `json:"imagem"`
	Category    string    `json:"categoria"`
	Subcategory string    `json:"subcategoria"`
	Tags        []string  `json:"tags"`
	Clicks      int       `json:"clicks"`
	CreatedAt   time.Time `json:"criadoEm"`
	UpdatedAt   time.Time `json:"atualizadoEm"`
	Active      bool      `json:"ativo"`
}

// IsNew reports whether the product was created within the last seven days.
func (p *Product) IsNew(now time.Time) bool {
	return now.Sub(p.CreatedAt) <= 7*24*time.Hour
}

// ProductRepository defines the contract for catalog data access. The whole
// list is replaced and re-saved on every mutation; there is no
// optimistic-concurrency check, so concurrent writers outside this process
// are last-write-wins.
type ProductRepository interface {
	FindAll() []Product
	FindByID(id string) (*Product, bool)
	Create(product *Product) error
	Update(product *Product) error
	Delete(id string) error
	Count() int
	CountActive() int
}

// ContextProductRepository is implemented by repositories that record
// per-request telemetry. Command handlers dispatch to these variants when
// the repository provides them, so mutations carry the caller's trace.
type ContextProductRepository interface {
	CreateWithContext(ctx context.Context, product *Product) error
	FindByIDWithContext(ctx context.Context, id string) (*Product, bool)
	UpdateWithContext(ctx context.Context, product *Product) error
	DeleteWithContext(ctx context.Context, id string) error
}
