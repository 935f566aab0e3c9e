package authz

import "github.com/jhoicas/ims-api/internal/domain/entity"

// Principal es la identidad que hace una petición: un usuario autenticado
// (snapshot capturado en login) o anónimo. El valor cero es anónimo.
type Principal struct {
	UserID      int64
	Username    string
	DisplayName string
	Role        string // entity.RoleOwner | entity.RoleSupplier; vacío si anónimo
	SupplierID  *int64 // presente solo cuando Role == supplier
}

// Anonymous devuelve el principal anónimo.
func Anonymous() Principal {
	return Principal{}
}

// FromUser captura el snapshot de un usuario autenticado. Los cambios
// posteriores sobre la fila de users no afectan a este snapshot hasta
// el siguiente login.
func FromUser(u *entity.User) Principal {
	return Principal{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		SupplierID:  u.SupplierID,
	}
}

// IsAnonymous indica si no hay usuario autenticado.
func (p Principal) IsAnonymous() bool { return p.Role == "" }

// IsOwner indica rol owner (acceso sin restricciones).
func (p Principal) IsOwner() bool { return p.Role == entity.RoleOwner }

// IsSupplier indica rol supplier (visibilidad acotada a su proveedor).
func (p Principal) IsSupplier() bool { return p.Role == entity.RoleSupplier }

// supplierID devuelve el id del proveedor atado, o 0 si no aplica.
func (p Principal) supplierID() int64 {
	if p.SupplierID == nil {
		return 0
	}
	return *p.SupplierID
}
