package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ims-api/internal/application/dto"
	"github.com/jhoicas/ims-api/internal/application/usecase"
	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/authz"
	"github.com/jhoicas/ims-api/internal/domain/entity"
)

type supplierFixture struct {
	suppliers *fakeSupplierRepo
	users     *fakeUserRepo
	uc        *usecase.SupplierUseCase
}

func newSupplierFixture() *supplierFixture {
	suppliers := newFakeSupplierRepo()
	users := newFakeUserRepo()
	tx := &fakeTxRunner{suppliers: suppliers, users: users}
	return &supplierFixture{
		suppliers: suppliers,
		users:     users,
		uc:        usecase.NewSupplierUseCase(suppliers, tx),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Solo owner muta proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierCreate_SoloOwner(t *testing.T) {
	f := newSupplierFixture()

	_, err := f.uc.Create(context.Background(), supplier(10, 1), dto.CreateSupplierRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Create(context.Background(), authz.Anonymous(), dto.CreateSupplierRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := f.uc.Create(context.Background(), owner(), dto.CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
	assert.NotZero(t, out.ID)
}

func TestSupplierUpdateDelete_SupplierProhibido(t *testing.T) {
	f := newSupplierFixture()
	out, err := f.uc.Create(context.Background(), owner(), dto.CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = f.uc.Update(supplier(10, out.ID), out.ID, dto.UpdateSupplierRequest{Name: strptr("x")})
	assert.ErrorIs(t, err, domain.ErrForbidden, "ni siquiera sobre su propio proveedor")

	err = f.uc.Delete(supplier(10, out.ID), out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSupplierList_PublicoParaTodos(t *testing.T) {
	f := newSupplierFixture()
	_, err := f.uc.Create(context.Background(), owner(), dto.CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)

	for _, p := range []authz.Principal{authz.Anonymous(), supplier(10, 99), owner()} {
		list, err := f.uc.List(p)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta compuesta proveedor + cuenta: atómica
// ──────────────────────────────────────────────────────────────────────────────

// Con username y password, una sola operación crea proveedor y usuario; la
// cuenta queda con rol supplier atada al proveedor recién creado.
func TestSupplierCreate_CompuestaCreaAmbos(t *testing.T) {
	f := newSupplierFixture()

	out, err := f.uc.Create(context.Background(), owner(), dto.CreateSupplierRequest{
		Name:     "Acme",
		Username: "acme1",
		Password: "pw1secret",
	})
	require.NoError(t, err)

	user, err := f.users.GetByUsername("acme1")
	require.NoError(t, err)
	require.NotNil(t, user, "la cuenta de usuario debe existir")
	assert.Equal(t, entity.RoleSupplier, user.Role)
	require.NotNil(t, user.SupplierID)
	assert.Equal(t, out.ID, *user.SupplierID)
	assert.Equal(t, "acme1", user.DisplayName, "display name por defecto = username")

	// La credencial se guarda hasheada, nunca en claro
	assert.NotEqual(t, "pw1secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1secret")))
}

// Si el insert del usuario falla (p.ej. username duplicado), el proveedor
// tampoco debe quedar: o ambas filas o ninguna.
func TestSupplierCreate_CompuestaRollbackTotal(t *testing.T) {
	f := newSupplierFixture()
	f.users.failCreate = errors.New("insert user: conexión perdida")

	_, err := f.uc.Create(context.Background(), owner(), dto.CreateSupplierRequest{
		Name:     "Acme",
		Username: "acme1",
		Password: "pw1secret",
	})
	require.Error(t, err)

	list, lerr := f.suppliers.List()
	require.NoError(t, lerr)
	assert.Empty(t, list, "el proveedor no debe persistir si la cuenta falló")
}

func TestSupplierCreate_SinCredencialesNoCreaUsuario(t *testing.T) {
	f := newSupplierFixture()

	// Username sin password: alta simple, sin cuenta
	_, err := f.uc.Create(context.Background(), owner(), dto.CreateSupplierRequest{
		Name:     "Acme",
		Username: "acme1",
	})
	require.NoError(t, err)
	assert.Empty(t, f.users.users)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete con referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierDelete_ConReferenciasRechazado(t *testing.T) {
	f := newSupplierFixture()
	out, err := f.uc.Create(context.Background(), owner(), dto.CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)
	f.suppliers.referenced[out.ID] = true

	err = f.uc.Delete(owner(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	s, gerr := f.suppliers.GetByID(out.ID)
	require.NoError(t, gerr)
	assert.NotNil(t, s, "el proveedor debe seguir existiendo")
}

func TestSupplierDelete_Inexistente(t *testing.T) {
	f := newSupplierFixture()
	err := f.uc.Delete(owner(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
