package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor. Si Username y
// Password vienen ambos, se crea además la cuenta de usuario asociada en la
// misma transacción (alta compuesta, atómica).
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Contact     string `json:"contact" validate:"omitempty,max=200"`
	Address     string `json:"address" validate:"omitempty,max=500"`
	Username    string `json:"username" validate:"omitempty,min=3,max=50"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	DisplayName string `json:"display_name" validate:"omitempty,max=200"`
}

// UpdateSupplierRequest entrada para actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Contact *string `json:"contact" validate:"omitempty,max=200"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
