package repository

import "github.com/jhoicas/ims-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
// La creación de filas corre por cuenta de un productor externo de cambios
// de stock; aquí solo lectura y mark-read.
//
// MarkRead con supplierID no nil es un update condicional
// (WHERE id = $1 AND supplier_id = $2): cero filas afectadas no distingue
// entre "no existe" y "no es suyo", y el caller debe tratar ambos igual.
type NotificationRepository interface {
	List(supplierID *int64) ([]*entity.Notification, error)
	MarkRead(id int64, supplierID *int64) (bool, error)
}
