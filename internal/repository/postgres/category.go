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

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (name, color, sort_order, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.Name, c.Color, c.SortOrder, time.Now()).Scan(&c.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("category name %q: %w", c.Name, domain.ErrConflict)
	}
	return err
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name, COALESCE(color, ''), sort_order, created_on FROM categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Color, &c.SortOrder, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, COALESCE(color, ''), sort_order, created_on FROM categories ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.SortOrder, &c.CreatedOn); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query := `UPDATE categories SET name=$1, color=$2, sort_order=$3 WHERE id=$4`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.Color, c.SortOrder, c.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("category name %q: %w", c.Name, domain.ErrConflict)
	}
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("category %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
