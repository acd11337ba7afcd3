// Package export serializes the current catalog and order lists for file
// download. Exports reflect in-memory state at call time and carry no other
// invariants; an empty collection is rejected instead of producing an empty
// file.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	catalog "github.com/lisbeauty/storefront/internal/catalog/domain"
	order "github.com/lisbeauty/storefront/internal/order/domain"
)

// ErrNothingToExport is returned when the collection is empty.
var ErrNothingToExport = errors.New("nothing to export")

// formatMinor renders minor currency units as a decimal string (e.g. 50000
// -> "500.00").
func formatMinor(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}

// ProductsJSON serializes the catalog as pretty-printed JSON.
func ProductsJSON(products []catalog.Product) ([]byte, error) {
	if len(products) == 0 {
		return nil, ErrNothingToExport
	}
	return json.MarshalIndent(products, "", "  ")
}

// ProductsCSV serializes the catalog as delimited text.
func ProductsCSV(products []catalog.Product) ([]byte, error) {
	if len(products) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "nome", "categoria", "subcategoria", "preco", "clicks", "ativo", "criadoEm", "tags"})
	for _, p := range products {
		w.Write([]string{
			p.ID,
			p.Name,
			p.Category,
			p.Subcategory,
			formatMinor(p.Price),
			fmt.Sprintf("%d", p.Clicks),
			fmt.Sprintf("%t", p.Active),
			p.CreatedAt.Format(time.RFC3339),
			strings.Join(p.Tags, ";"),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// OrdersCSV serializes the order list as delimited text.
func OrdersCSV(orders []order.Order) ([]byte, error) {
	if len(orders) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "cliente", "produto", "valor", "status", "data", "telefone"})
	for _, o := range orders {
		w.Write([]string{
			o.ID,
			o.Customer,
			o.Product,
			formatMinor(o.Value),
			string(o.Status),
			o.CreatedAt.Format(time.RFC3339),
			o.Phone,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds the dated download name, e.g.
// produtos_lisbeauty_2025-01-15.csv.
func Filename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_lisbeauty_%s.%s", prefix, now.Format("2006-01-02"), ext)
}
