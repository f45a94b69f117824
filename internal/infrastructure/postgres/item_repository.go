package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, sku, item_name, uom, min_lvl, max_lvl, reorder_qty,
		warehouse, location, opening_stock, current_stock, price, vendors,
		status, added_on, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un item nuevo. La unicidad del sku la garantiza la
// constraint de la tabla (ErrDuplicate en violación).
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SKU, item.ItemName, item.UOM, item.MinLvl, item.MaxLvl,
		item.ReorderQty, item.Warehouse, item.Location, item.OpeningStock,
		item.CurrentStock, item.Price, item.Vendors, item.Status,
		item.AddedOn, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetBySKU obtiene un item por código. Devuelve nil si no existe.
func (r *ItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, sku), "get item")
}

// GetBySKUForUpdate obtiene el item y bloquea la fila (SELECT FOR UPDATE).
// Serializa las escrituras concurrentes sobre el mismo sku.
func (r *ItemRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE sku = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, sku), "get item for update")
}

// List lista items aplicando el filtro opcional.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.SKU != "" {
		query += fmt.Sprintf(" AND sku = $%d", pos)
		args = append(args, filter.SKU)
		pos++
	}
	if filter.Warehouse != "" {
		query += fmt.Sprintf(" AND warehouse = $%d", pos)
		args = append(args, filter.Warehouse)
		pos++
	}
	if filter.ItemName != "" {
		query += fmt.Sprintf(" AND item_name ILIKE $%d", pos)
		args = append(args, "%"+filter.ItemName+"%")
		pos++
	}
	if filter.UOM != "" {
		query += fmt.Sprintf(" AND uom = $%d", pos)
		args = append(args, filter.UOM)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	query += " ORDER BY sku"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza los campos de presentación. El saldo no se toca aquí.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET item_name = $2, uom = $3, min_lvl = $4, max_lvl = $5, reorder_qty = $6,
		    warehouse = $7, location = $8, price = $9, vendors = $10, updated_at = $11
		WHERE sku = $1`
	tag, err := r.q.Exec(ctx, query,
		item.SKU, item.ItemName, item.UOM, item.MinLvl, item.MaxLvl, item.ReorderQty,
		item.Warehouse, item.Location, item.Price, item.Vendors, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus cambia el estado Active/Inactive.
func (r *ItemRepo) SetStatus(ctx context.Context, sku, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE items SET status = $2, updated_at = now() WHERE sku = $1`, sku, status)
	if err != nil {
		return fmt.Errorf("set item status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el nuevo saldo. Solo lo llama el motor de
// movimientos dentro de la transacción que tomó el lock de fila.
func (r *ItemRepo) UpdateStock(ctx context.Context, sku string, newStock int64) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE items SET current_stock = $2, updated_at = now() WHERE sku = $1`, sku, newStock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el total de items registrados.
func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var it entity.Item
	if err := scanItem(row, &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func scanItem(row pgx.Row, it *entity.Item) error {
	return row.Scan(
		&it.ID, &it.SKU, &it.ItemName, &it.UOM, &it.MinLvl, &it.MaxLvl,
		&it.ReorderQty, &it.Warehouse, &it.Location, &it.OpeningStock,
		&it.CurrentStock, &it.Price, &it.Vendors, &it.Status,
		&it.AddedOn, &it.CreatedAt, &it.UpdatedAt,
	)
}
