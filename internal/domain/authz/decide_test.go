package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/authz"
	"github.com/jhoicas/ims-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func ownerPrincipal() authz.Principal {
	return authz.Principal{UserID: 1, Role: entity.RoleOwner}
}

func supplierPrincipal(supplierID int64) authz.Principal {
	return authz.Principal{UserID: 2, Role: entity.RoleSupplier, SupplierID: &supplierID}
}

func int64ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Principal anónimo: solo catálogo público
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_AnonimoPuedeLeerCatalogo(t *testing.T) {
	for _, res := range []authz.Resource{authz.ResourceProduct, authz.ResourceSupplier} {
		for _, act := range []authz.Action{authz.ActionList, authz.ActionRead} {
			d := authz.Decide(authz.Anonymous(), authz.Request{Action: act, Resource: res})
			assert.True(t, d.Allow, "anónimo debe poder %s sobre %s", act, res)
			assert.Nil(t, d.SupplierScope, "el catálogo anónimo no lleva filtro")
		}
	}
}

func TestDecide_AnonimoBloqueadoEnTodoLoDemas(t *testing.T) {
	cases := []authz.Request{
		{Action: authz.ActionCreate, Resource: authz.ResourceProduct},
		{Action: authz.ActionUpdate, Resource: authz.ResourceProduct, TargetSupplierID: int64ptr(1)},
		{Action: authz.ActionDelete, Resource: authz.ResourceProduct, TargetSupplierID: int64ptr(1)},
		{Action: authz.ActionCreate, Resource: authz.ResourceSupplier},
		{Action: authz.ActionList, Resource: authz.ResourceNotification},
		{Action: authz.ActionMarkRead, Resource: authz.ResourceNotification},
		{Action: authz.ActionUpdate, Resource: authz.ResourceOwnCredential},
	}
	for _, req := range cases {
		d := authz.Decide(authz.Anonymous(), req)
		require.False(t, d.Allow, "anónimo no debe poder %s sobre %s", req.Action, req.Resource)
		assert.ErrorIs(t, d.Err, domain.ErrUnauthorized,
			"la denegación anónima es falta de autenticación, no de permisos")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Owner: sin restricciones
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_OwnerSinRestricciones(t *testing.T) {
	owner := ownerPrincipal()
	cases := []authz.Request{
		{Action: authz.ActionList, Resource: authz.ResourceProduct},
		{Action: authz.ActionCreate, Resource: authz.ResourceProduct},
		{Action: authz.ActionUpdate, Resource: authz.ResourceProduct, TargetSupplierID: int64ptr(99)},
		{Action: authz.ActionDelete, Resource: authz.ResourceProduct, TargetSupplierID: nil},
		{Action: authz.ActionCreate, Resource: authz.ResourceSupplier},
		{Action: authz.ActionDelete, Resource: authz.ResourceSupplier},
		{Action: authz.ActionList, Resource: authz.ResourceNotification},
		{Action: authz.ActionMarkRead, Resource: authz.ResourceNotification},
	}
	for _, req := range cases {
		d := authz.Decide(owner, req)
		require.True(t, d.Allow, "owner debe poder %s sobre %s", req.Action, req.Resource)
		assert.Nil(t, d.SupplierScope, "owner lista sin filtro")
		assert.Nil(t, d.ForceSupplierID)
		assert.False(t, d.StripSupplierID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Supplier: visibilidad y mutaciones acotadas a su proveedor
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_SupplierListaProductosConFiltro(t *testing.T) {
	d := authz.Decide(supplierPrincipal(7), authz.Request{Action: authz.ActionList, Resource: authz.ResourceProduct})
	require.True(t, d.Allow)
	require.NotNil(t, d.SupplierScope, "el listado de supplier debe llevar filtro")
	assert.Equal(t, int64(7), *d.SupplierScope)
}

func TestDecide_SupplierCreaProductoConSupplierForzado(t *testing.T) {
	d := authz.Decide(supplierPrincipal(7), authz.Request{Action: authz.ActionCreate, Resource: authz.ResourceProduct})
	require.True(t, d.Allow)
	require.NotNil(t, d.ForceSupplierID, "el create de supplier fuerza su supplier_id")
	assert.Equal(t, int64(7), *d.ForceSupplierID)
}

func TestDecide_SupplierActualizaSoloLoSuyo(t *testing.T) {
	p := supplierPrincipal(7)

	propio := authz.Decide(p, authz.Request{
		Action: authz.ActionUpdate, Resource: authz.ResourceProduct, TargetSupplierID: int64ptr(7),
	})
	require.True(t, propio.Allow, "producto propio debe poder actualizarse")
	assert.True(t, propio.StripSupplierID, "el supplier_id del payload se descarta en update")

	ajeno := authz.Decide(p, authz.Request{
		Action: authz.ActionUpdate, Resource: authz.ResourceProduct, TargetSupplierID: int64ptr(8),
	})
	require.False(t, ajeno.Allow)
	assert.ErrorIs(t, ajeno.Err, domain.ErrForbidden)

	sinProveedor := authz.Decide(p, authz.Request{
		Action: authz.ActionUpdate, Resource: authz.ResourceProduct, TargetSupplierID: nil,
	})
	require.False(t, sinProveedor.Allow, "producto sin proveedor no es de nadie")
	assert.ErrorIs(t, sinProveedor.Err, domain.ErrForbidden)
}

func TestDecide_SupplierBorraSoloLoSuyo(t *testing.T) {
	p := supplierPrincipal(7)

	propio := authz.Decide(p, authz.Request{
		Action: authz.ActionDelete, Resource: authz.ResourceProduct, TargetSupplierID: int64ptr(7),
	})
	assert.True(t, propio.Allow)
	assert.False(t, propio.StripSupplierID, "strip solo aplica a update")

	ajeno := authz.Decide(p, authz.Request{
		Action: authz.ActionDelete, Resource: authz.ResourceProduct, TargetSupplierID: int64ptr(3),
	})
	require.False(t, ajeno.Allow)
	assert.ErrorIs(t, ajeno.Err, domain.ErrForbidden)
}

func TestDecide_SupplierNoMutaProveedores(t *testing.T) {
	p := supplierPrincipal(7)
	for _, act := range []authz.Action{authz.ActionCreate, authz.ActionUpdate, authz.ActionDelete} {
		d := authz.Decide(p, authz.Request{Action: act, Resource: authz.ResourceSupplier})
		require.False(t, d.Allow, "supplier no debe poder %s proveedores", act)
		assert.ErrorIs(t, d.Err, domain.ErrForbidden)
	}
}

func TestDecide_SupplierLeeCatalogoDeProveedores(t *testing.T) {
	d := authz.Decide(supplierPrincipal(7), authz.Request{Action: authz.ActionList, Resource: authz.ResourceSupplier})
	assert.True(t, d.Allow)
}

func TestDecide_SupplierNotificacionesConFiltro(t *testing.T) {
	p := supplierPrincipal(7)
	for _, act := range []authz.Action{authz.ActionList, authz.ActionRead, authz.ActionMarkRead} {
		d := authz.Decide(p, authz.Request{Action: act, Resource: authz.ResourceNotification})
		require.True(t, d.Allow, "supplier debe poder %s notificaciones", act)
		require.NotNil(t, d.SupplierScope)
		assert.Equal(t, int64(7), *d.SupplierScope)
	}
}

func TestDecide_CredencialSoloPropia(t *testing.T) {
	p := supplierPrincipal(7) // UserID 2

	propia := authz.Decide(p, authz.Request{
		Action: authz.ActionUpdate, Resource: authz.ResourceOwnCredential, TargetUserID: 2,
	})
	assert.True(t, propia.Allow)

	ajena := authz.Decide(p, authz.Request{
		Action: authz.ActionUpdate, Resource: authz.ResourceOwnCredential, TargetUserID: 5,
	})
	require.False(t, ajena.Allow)
	assert.ErrorIs(t, ajena.Err, domain.ErrForbidden)
}
