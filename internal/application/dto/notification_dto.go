package dto

import "time"

// NotificationResponse salida de una notificación con nombres denormalizados.
type NotificationResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	SupplierID   *int64    `json:"supplier_id"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
	ProductName  string    `json:"product_name,omitempty"`
	SupplierName string    `json:"supplier_name,omitempty"`
}
