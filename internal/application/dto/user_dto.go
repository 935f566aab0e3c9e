package dto

// LoginRequest entrada para login: username + password.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse snapshot del usuario autenticado (sin credencial).
type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	SupplierID  *int64 `json:"supplier_id"`
}

// LoginResponse salida de login: token firmado con el snapshot + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para cambio de contraseña. Confirm debe
// coincidir con NewPassword; se valida antes de tocar el store.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	Confirm         string `json:"confirm" validate:"required,eqfield=NewPassword"`
}
