package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner    = "owner"
	RoleSupplier = "supplier"
)

// User representa una cuenta del sistema. Un usuario con rol supplier
// está atado a exactamente un Supplier vía SupplierID; para rol owner
// SupplierID siempre es nil.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	DisplayName  string
	Role         string // owner, supplier
	SupplierID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
