package entity

import "time"

// Supplier representa un proveedor. Puede tener cero o una cuenta de
// usuario asociada (login de proveedor) que lo referencia por SupplierID.
type Supplier struct {
	ID        int64
	Name      string
	Contact   string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
