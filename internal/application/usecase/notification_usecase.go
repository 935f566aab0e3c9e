package usecase

import (
	"github.com/jhoicas/ims-api/internal/application/dto"
	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/authz"
	"github.com/jhoicas/ims-api/internal/domain/entity"
	"github.com/jhoicas/ims-api/internal/domain/repository"
)

// NotificationUseCase lectura y mark-read de notificaciones de stock bajo.
// La creación de filas corre por cuenta del productor externo.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List lista notificaciones con el mismo scoping por proveedor que productos.
func (uc *NotificationUseCase) List(p authz.Principal) ([]dto.NotificationResponse, error) {
	d := authz.Decide(p, authz.Request{Action: authz.ActionList, Resource: authz.ResourceNotification})
	if !d.Allow {
		return nil, d.Err
	}
	list, err := uc.repo.List(d.SupplierScope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return items, nil
}

// MarkRead marca una notificación como leída mediante un update condicional
// con el scope del principal. Cero filas afectadas no distingue entre
// "no existe" y "no es suya": ambas responden ErrNotFound a propósito,
// para no filtrar cuál fue. Re-marcar una ya leída no es error.
func (uc *NotificationUseCase) MarkRead(p authz.Principal, id int64) error {
	d := authz.Decide(p, authz.Request{Action: authz.ActionMarkRead, Resource: authz.ResourceNotification})
	if !d.Allow {
		return d.Err
	}
	ok, err := uc.repo.MarkRead(id, d.SupplierScope)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:           n.ID,
		ProductID:    n.ProductID,
		SupplierID:   n.SupplierID,
		Message:      n.Message,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
		ProductName:  n.ProductName,
		SupplierName: n.SupplierName,
	}
}
