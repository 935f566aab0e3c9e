package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/entity"
	"github.com/jhoicas/ims-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.name, p.category, p.quantity, p.min_stock, p.price, p.supplier_id,
		p.created_at, p.updated_at, COALESCE(s.name, '') AS supplier_name`

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, quantity, min_stock, price, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Category, product.Quantity, product.MinStock,
		product.Price, product.SupplierID, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput // supplier_id no referencia un proveedor existente
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre del proveedor.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Quantity, &p.MinStock, &p.Price, &p.SupplierID,
		&p.CreatedAt, &p.UpdatedAt, &p.SupplierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos ordenados por id descendente. supplierID no nil aplica
// el filtro de visibilidad en el store (`supplier_id = S`), no en memoria.
func (r *ProductRepo) List(supplierID *int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE $1::bigint IS NULL OR p.supplier_id = $1
		ORDER BY p.id DESC`
	return r.queryProducts(query, supplierID)
}

// ListLowStock lista productos con quantity < min_stock (comparación estricta),
// con el mismo filtro opcional por proveedor.
func (r *ProductRepo) ListLowStock(supplierID *int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.quantity < p.min_stock AND ($1::bigint IS NULL OR p.supplier_id = $1)
		ORDER BY p.id DESC`
	return r.queryProducts(query, supplierID)
}

func (r *ProductRepo) queryProducts(query string, supplierID *int64) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.MinStock, &p.Price,
			&p.SupplierID, &p.CreatedAt, &p.UpdatedAt, &p.SupplierName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables de un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, quantity = $4, min_stock = $5, price = $6, supplier_id = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Quantity, product.MinStock,
		product.Price, product.SupplierID, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Devuelve false si la fila no existía.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
