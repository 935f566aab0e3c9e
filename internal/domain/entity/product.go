package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory categoría usada para mostrar productos sin categoría.
const DefaultCategory = "Uncategorized"

// Product representa un SKU del inventario. SupplierID es opcional;
// si está presente debe referenciar un Supplier existente.
type Product struct {
	ID         int64
	Name       string
	Category   string
	Quantity   int
	MinStock   int
	Price      decimal.Decimal
	SupplierID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// SupplierName viene del JOIN en listados; no se persiste en products.
	SupplierName string
}

// IsLowStock indica si el producto está bajo el umbral configurado.
// La comparación es estricta: Quantity == MinStock no es stock bajo.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.MinStock
}

// DisplayCategory devuelve la categoría o el valor por defecto si está vacía.
func (p *Product) DisplayCategory() string {
	if p.Category == "" {
		return DefaultCategory
	}
	return p.Category
}
