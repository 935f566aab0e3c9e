package repository

import "github.com/jhoicas/ims-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Delete devuelve domain.ErrConflict si quedan productos o usuarios que
// referencian al proveedor (RESTRICT en el store).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) (bool, error)
}
