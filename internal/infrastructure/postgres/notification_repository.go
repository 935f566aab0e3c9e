package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ims-api/internal/domain/entity"
	"github.com/jhoicas/ims-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
// Las filas las inserta el productor externo de cambios de stock.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// List lista notificaciones con nombres de producto y proveedor, más recientes
// primero. supplierID no nil aplica el filtro de visibilidad en el store.
func (r *NotificationRepo) List(supplierID *int64) ([]*entity.Notification, error) {
	query := `
		SELECT n.id, n.product_id, n.supplier_id, n.message, n.is_read, n.created_at,
			COALESCE(p.name, '') AS product_name, COALESCE(s.name, '') AS supplier_name
		FROM notifications n
		LEFT JOIN products p ON n.product_id = p.id
		LEFT JOIN suppliers s ON n.supplier_id = s.id
		WHERE $1::bigint IS NULL OR n.supplier_id = $1
		ORDER BY n.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.ProductID, &n.SupplierID, &n.Message, &n.IsRead,
			&n.CreatedAt, &n.ProductName, &n.SupplierName); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída. Con supplierID no nil el update
// es condicional (id Y supplier_id); cero filas afectadas no distingue entre
// inexistente y ajena, y se devuelve false en ambos casos. Re-marcar una
// notificación ya leída afecta la fila de nuevo, así que es idempotente.
func (r *NotificationRepo) MarkRead(id int64, supplierID *int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = TRUE
		 WHERE id = $1 AND ($2::bigint IS NULL OR supplier_id = $2)`,
		id, supplierID,
	)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
