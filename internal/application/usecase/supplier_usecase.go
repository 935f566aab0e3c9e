package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ims-api/internal/application/dto"
	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/authz"
	"github.com/jhoicas/ims-api/internal/domain/entity"
	"github.com/jhoicas/ims-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// SupplierUseCase operaciones sobre proveedores. Las mutaciones son solo de
// owner; la lectura es pública (catálogo).
type SupplierUseCase struct {
	repo repository.SupplierRepository
	tx   SupplierTxRunner
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, tx SupplierTxRunner) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, tx: tx}
}

// Create crea un proveedor. Si el payload trae username Y password, el alta
// es compuesta: proveedor + cuenta de usuario asociada en una transacción;
// cualquier fallo revierte ambas inserciones.
func (uc *SupplierUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionCreate, Resource: authz.ResourceSupplier})
	if !d.Allow {
		return nil, d.Err
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:      in.Name,
		Contact:   in.Contact,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.Username == "" || in.Password == "" {
		if err := uc.repo.Create(supplier); err != nil {
			return nil, err
		}
		return toSupplierResponse(supplier), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	displayName := in.DisplayName
	if displayName == "" {
		displayName = in.Username
	}
	err = uc.tx.Run(ctx, func(supplierRepo repository.SupplierRepository, userRepo repository.UserRepository) error {
		if err := supplierRepo.Create(supplier); err != nil {
			return err
		}
		user := &entity.User{
			Username:     in.Username,
			PasswordHash: string(hash),
			DisplayName:  displayName,
			Role:         entity.RoleSupplier,
			SupplierID:   &supplier.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(p authz.Principal, id int64) (*dto.SupplierResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionRead, Resource: authz.ResourceSupplier})
	if !d.Allow {
		return nil, d.Err
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores.
func (uc *SupplierUseCase) List(p authz.Principal) ([]dto.SupplierResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionList, Resource: authz.ResourceSupplier})
	if !d.Allow {
		return nil, d.Err
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update actualiza los campos presentes de un proveedor (solo owner).
func (uc *SupplierUseCase) Update(p authz.Principal, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionUpdate, Resource: authz.ResourceSupplier})
	if !d.Allow {
		return nil, d.Err
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Contact != nil {
		supplier.Contact = *in.Contact
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor (solo owner). Si aún tiene productos o
// usuarios que lo referencian, el store rechaza con ErrConflict.
func (uc *SupplierUseCase) Delete(p authz.Principal, id int64) error {
	d := authz.Decide(p, authz.Request{Action: authz.ActionDelete, Resource: authz.ResourceSupplier})
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

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
