package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/repository"

	"github.com/lib/pq"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (name, category_id, quantity_total, is_rent, unit, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, it.Name, it.CategoryID, it.QuantityTotal, it.IsRent, it.Unit, it.Notes, time.Now()).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT i.id, i.name, i.category_id, COALESCE(c.name, ''), i.quantity_total, i.is_rent, COALESCE(i.unit, ''), COALESCE(i.notes, ''), i.created_on, i.updated_on
	          FROM items i LEFT JOIN categories c ON c.id = i.category_id
	          WHERE i.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.Name, &it.CategoryID, &it.CategoryName, &it.QuantityTotal, &it.IsRent, &it.Unit, &it.Notes, &it.CreatedOn, &it.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name=$1, category_id=$2, quantity_total=$3, is_rent=$4, unit=$5, notes=$6, updated_on=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query, it.Name, it.CategoryID, it.QuantityTotal, it.IsRent, it.Unit, it.Notes, time.Now(), it.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("item %d: %w", it.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context, categoryID int32, page, pageSize int32) ([]domain.Item, int32, error) {
	query := `SELECT i.id, i.name, i.category_id, COALESCE(c.name, ''), i.quantity_total, i.is_rent, COALESCE(i.unit, ''), COALESCE(i.notes, ''), i.created_on, i.updated_on
	          FROM items i LEFT JOIN categories c ON c.id = i.category_id`

	args := []interface{}{}
	argIdx := 1
	if categoryID != 0 {
		query += fmt.Sprintf(" WHERE i.category_id = $%d", argIdx)
		args = append(args, categoryID)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY i.name ASC"
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * pageSize
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, pageSize, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *itemRepository) ListByIDs(ctx context.Context, ids []int32) ([]domain.Item, error) {
	query := `SELECT i.id, i.name, i.category_id, COALESCE(c.name, ''), i.quantity_total, i.is_rent, COALESCE(i.unit, ''), COALESCE(i.notes, ''), i.created_on, i.updated_on
	          FROM items i LEFT JOIN categories c ON c.id = i.category_id
	          WHERE i.id = ANY($1) ORDER BY i.name ASC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.CategoryName, &it.QuantityTotal, &it.IsRent, &it.Unit, &it.Notes, &it.CreatedOn, &it.UpdatedOn); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
