package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/entity"
	"github.com/jhoicas/ims-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, para probar los casos de
// uso sin PostgreSQL. Reproducen el contrato observable de los adaptadores
// reales: filtro por supplier_id aplicado "en el store", filas afectadas en
// los updates condicionales y violaciones de unicidad/FK como errores de
// dominio.

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) list(filter func(*entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.products {
		if filter(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func matchesSupplier(p *entity.Product, supplierID *int64) bool {
	if supplierID == nil {
		return true
	}
	return p.SupplierID != nil && *p.SupplierID == *supplierID
}

func (r *fakeProductRepo) List(supplierID *int64) ([]*entity.Product, error) {
	return r.list(func(p *entity.Product) bool { return matchesSupplier(p, supplierID) }), nil
}

func (r *fakeProductRepo) ListLowStock(supplierID *int64) ([]*entity.Product, error) {
	return r.list(func(p *entity.Product) bool {
		return p.IsLowStock() && matchesSupplier(p, supplierID)
	}), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores y usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
	nextID    int64
	// referenced simula las FKs RESTRICT de products/users hacia suppliers.
	referenced map[int64]bool
	failCreate error
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		suppliers:  make(map[int64]*entity.Supplier),
		nextID:     1,
		referenced: make(map[int64]bool),
	}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.suppliers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Delete(id int64) (bool, error) {
	if r.referenced[id] {
		return false, domain.ErrConflict
	}
	if _, ok := r.suppliers[id]; !ok {
		return false, nil
	}
	delete(r.suppliers, id)
	return true, nil
}

type fakeUserRepo struct {
	users      map[int64]*entity.User
	nextID     int64
	failCreate error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

// fakeTxRunner reproduce la semántica todo-o-nada: ejecuta el callback sobre
// copias y solo vuelca los cambios a los repos reales si no hubo error.
type fakeTxRunner struct {
	suppliers *fakeSupplierRepo
	users     *fakeUserRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	userRepo repository.UserRepository,
) error) error {
	stagedSuppliers := &fakeSupplierRepo{
		suppliers:  cloneSuppliers(t.suppliers.suppliers),
		nextID:     t.suppliers.nextID,
		referenced: t.suppliers.referenced,
		failCreate: t.suppliers.failCreate,
	}
	stagedUsers := &fakeUserRepo{
		users:      cloneUsers(t.users.users),
		nextID:     t.users.nextID,
		failCreate: t.users.failCreate,
	}
	if err := fn(stagedSuppliers, stagedUsers); err != nil {
		return err // rollback: los repos reales quedan intactos
	}
	t.suppliers.suppliers = stagedSuppliers.suppliers
	t.suppliers.nextID = stagedSuppliers.nextID
	t.users.users = stagedUsers.users
	t.users.nextID = stagedUsers.nextID
	return nil
}

func cloneSuppliers(m map[int64]*entity.Supplier) map[int64]*entity.Supplier {
	out := make(map[int64]*entity.Supplier, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

func cloneUsers(m map[int64]*entity.User) map[int64]*entity.User {
	out := make(map[int64]*entity.User, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

type fakeNotificationRepo struct {
	notifications map[int64]*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[int64]*entity.Notification)}
}

func (r *fakeNotificationRepo) List(supplierID *int64) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if supplierID != nil && (n.SupplierID == nil || *n.SupplierID != *supplierID) {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(id int64, supplierID *int64) (bool, error) {
	n, ok := r.notifications[id]
	if !ok {
		return false, nil
	}
	if supplierID != nil && (n.SupplierID == nil || *n.SupplierID != *supplierID) {
		// mismo resultado que inexistente: cero filas afectadas
		return false, nil
	}
	n.IsRead = true
	return true, nil
}
