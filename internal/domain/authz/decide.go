package authz

import "github.com/jhoicas/ims-api/internal/domain"

// Action es la operación solicitada sobre un recurso.
type Action string

// Acciones soportadas.
const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionList     Action = "list"
	ActionMarkRead Action = "mark_read"
)

// Resource es el tipo de recurso sobre el que se decide.
type Resource string

// Recursos soportados.
const (
	ResourceProduct       Resource = "product"
	ResourceSupplier      Resource = "supplier"
	ResourceNotification  Resource = "notification"
	ResourceOwnCredential Resource = "own_credential"
)

// Request describe una acción solicitada. Para update/delete el caller debe
// cargar antes la fila persistida y pasar su supplier_id en TargetSupplierID
// (leer-luego-decidir: la prueba de propiedad necesita el snapshot actual).
type Request struct {
	Action   Action
	Resource Resource

	// TargetSupplierID: supplier_id de la fila existente (update/delete).
	TargetSupplierID *int64
	// TargetUserID: id del usuario objetivo (own_credential).
	TargetUserID int64
}

// Decision es el resultado de Decide. Cuando Allow es false, Err lleva el
// error de dominio correspondiente. Para lecturas permitidas, SupplierScope
// (si no es nil) es el filtro de visibilidad que el store debe aplicar.
type Decision struct {
	Allow bool
	Err   error

	// SupplierScope filtro `supplier_id = S` para list/read/mark_read.
	SupplierScope *int64
	// ForceSupplierID override de campo en create de producto como supplier:
	// el supplier_id enviado se ignora y se usa este valor.
	ForceSupplierID *int64
	// StripSupplierID en update de producto como supplier: el campo
	// supplier_id del payload se descarta en silencio, no se rechaza.
	StripSupplierID bool
}

func allow() Decision         { return Decision{Allow: true} }
func deny(err error) Decision { return Decision{Allow: false, Err: err} }

func allowScoped(s int64) Decision {
	sc := s
	return Decision{Allow: true, SupplierScope: &sc}
}

// Decide es la única autoridad de autorización: dado un principal y una
// petición, decide permitir/denegar y el filtro de visibilidad a aplicar.
// Las reglas se evalúan en orden y la primera que aplica gana; la denegación
// prevalece sobre cualquier regla posterior.
func Decide(p Principal, req Request) Decision {
	if p.IsOwner() {
		return allow()
	}

	if p.IsAnonymous() {
		// Catálogo público: solo lectura de productos y proveedores.
		if (req.Action == ActionList || req.Action == ActionRead) &&
			(req.Resource == ResourceProduct || req.Resource == ResourceSupplier) {
			return allow()
		}
		return deny(domain.ErrUnauthorized)
	}

	// Principal supplier, atado a S.
	s := p.supplierID()
	switch req.Resource {
	case ResourceProduct:
		switch req.Action {
		case ActionList, ActionRead:
			return allowScoped(s)
		case ActionCreate:
			d := allow()
			forced := s
			d.ForceSupplierID = &forced
			return d
		case ActionUpdate, ActionDelete:
			if req.TargetSupplierID == nil || *req.TargetSupplierID != s {
				return deny(domain.ErrForbidden)
			}
			d := allow()
			d.StripSupplierID = req.Action == ActionUpdate
			return d
		}
	case ResourceSupplier:
		// Los proveedores ven el catálogo de proveedores pero no lo mutan.
		if req.Action == ActionList || req.Action == ActionRead {
			return allow()
		}
		return deny(domain.ErrForbidden)
	case ResourceNotification:
		switch req.Action {
		case ActionList, ActionRead, ActionMarkRead:
			return allowScoped(s)
		}
	case ResourceOwnCredential:
		if req.Action == ActionUpdate {
			if req.TargetUserID != p.UserID {
				return deny(domain.ErrForbidden)
			}
			return allow()
		}
	}
	return deny(domain.ErrForbidden)
}
