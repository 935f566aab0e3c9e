package entity

import "time"

// Notification es un aviso de stock bajo correlacionado a un producto y,
// denormalizado, a su proveedor. Las filas las inserta un productor externo
// cuando la cantidad de un producto cruza bajo su umbral; este servicio
// solo las lee y las marca como leídas.
type Notification struct {
	ID         int64
	ProductID  int64
	SupplierID *int64
	Message    string
	IsRead     bool
	CreatedAt  time.Time

	// Nombres denormalizados del JOIN para listados.
	ProductName  string
	SupplierName string
}
