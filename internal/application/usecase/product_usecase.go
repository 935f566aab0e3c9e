package usecase

import (
	"time"

	"github.com/jhoicas/ims-api/internal/application/dto"
	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/authz"
	"github.com/jhoicas/ims-api/internal/domain/entity"
	"github.com/jhoicas/ims-api/internal/domain/repository"
)

// ProductUseCase operaciones de inventario sobre productos. Cada operación
// resuelve primero la decisión de autorización y solo después toca el store;
// en update/delete se lee la fila actual antes de decidir, porque la prueba
// de propiedad necesita el supplier_id persistido (leer-luego-decidir).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Para un principal supplier el supplier_id enviado
// se ignora y se fuerza el suyo, venga lo que venga en el payload.
func (uc *ProductUseCase) Create(p authz.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionCreate, Resource: authz.ResourceProduct})
	if !d.Allow {
		return nil, d.Err
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	supplierID := in.SupplierID
	if d.ForceSupplierID != nil {
		supplierID = d.ForceSupplierID
	}
	now := time.Now()
	product := &entity.Product{
		Name:       in.Name,
		Category:   in.Category,
		Quantity:   in.Quantity,
		MinStock:   in.MinStock,
		Price:      in.Price,
		SupplierID: supplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto. El filtro de visibilidad del supplier también
// aplica a la lectura puntual: un producto ajeno responde como inexistente.
func (uc *ProductUseCase) GetByID(p authz.Principal, id int64) (*dto.ProductResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionRead, Resource: authz.ResourceProduct})
	if !d.Allow {
		return nil, d.Err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if d.SupplierScope != nil && (product.SupplierID == nil || *product.SupplierID != *d.SupplierScope) {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con el filtro de visibilidad empujado al store.
func (uc *ProductUseCase) List(p authz.Principal) ([]dto.ProductResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionList, Resource: authz.ResourceProduct})
	if !d.Allow {
		return nil, d.Err
	}
	list, err := uc.repo.List(d.SupplierScope)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListLowStock lista productos con quantity < min_stock, mismo scoping que List.
func (uc *ProductUseCase) ListLowStock(p authz.Principal) ([]dto.ProductResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionList, Resource: authz.ResourceProduct})
	if !d.Allow {
		return nil, d.Err
	}
	list, err := uc.repo.ListLowStock(d.SupplierScope)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update actualiza los campos presentes del payload. El supplier_id se
// descarta en silencio cuando el principal es supplier (no se rechaza).
func (uc *ProductUseCase) Update(p authz.Principal, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	d := authz.Decide(p, authz.Request{
		Action:           authz.ActionUpdate,
		Resource:         authz.ResourceProduct,
		TargetSupplierID: product.SupplierID,
	})
	if !d.Allow {
		return nil, d.Err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.SupplierID != nil && !d.StripSupplierID {
		product.SupplierID = in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto, con la misma prueba de propiedad que Update.
func (uc *ProductUseCase) Delete(p authz.Principal, id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	d := authz.Decide(p, authz.Request{
		Action:           authz.ActionDelete,
		Resource:         authz.ResourceProduct,
		TargetSupplierID: product.SupplierID,
	})
	if !d.Allow {
		return d.Err
	}
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.DisplayCategory(),
		Quantity:     p.Quantity,
		MinStock:     p.MinStock,
		Price:        p.Price,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
