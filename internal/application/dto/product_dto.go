package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. SupplierID se ignora
// cuando el principal es supplier (se fuerza el suyo).
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Category   string          `json:"category" validate:"omitempty,max=100"`
	Quantity   int             `json:"quantity" validate:"min=0"`
	MinStock   int             `json:"min_stock" validate:"min=0"`
	Price      decimal.Decimal `json:"price"`
	SupplierID *int64          `json:"supplier_id"`
}

// UpdateProductRequest entrada para actualización parcial. Campos nil no se
// tocan. SupplierID se descarta en silencio cuando el principal es supplier.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category   *string          `json:"category" validate:"omitempty,max=100"`
	Quantity   *int             `json:"quantity" validate:"omitempty,min=0"`
	MinStock   *int             `json:"min_stock" validate:"omitempty,min=0"`
	Price      *decimal.Decimal `json:"price"`
	SupplierID *int64           `json:"supplier_id"`
}

// ProductResponse salida de un producto con el nombre del proveedor del JOIN.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	MinStock     int             `json:"min_stock"`
	Price        decimal.Decimal `json:"price"`
	SupplierID   *int64          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
