package repository

import "github.com/jhoicas/ims-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// supplierID nil en los listados significa sin filtro de visibilidad;
// no nil significa `supplier_id = S` aplicado en el store, no en memoria.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List(supplierID *int64) ([]*entity.Product, error)
	ListLowStock(supplierID *int64) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) (bool, error)
}
