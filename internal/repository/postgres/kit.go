package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/repository"
)

type kitRepository struct {
	db *sql.DB
}

func NewKitRepository(db *sql.DB) repository.KitRepository {
	return &kitRepository{db: db}
}

func (r *kitRepository) Create(ctx context.Context, k *domain.Kit) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO kits (name, notes, created_on, updated_on) VALUES ($1, $2, $3, $3) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, k.Name, k.Notes, now).Scan(&k.ID); err != nil {
		return err
	}
	if err := insertKitItems(ctx, tx, k.ID, k.Items); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *kitRepository) GetByID(ctx context.Context, id int32) (*domain.Kit, error) {
	k := &domain.Kit{}
	query := `SELECT id, name, COALESCE(notes, ''), created_on, updated_on FROM kits WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&k.ID, &k.Name, &k.Notes, &k.CreatedOn, &k.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("kit %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}
	k.Items = items
	return k, nil
}

func (r *kitRepository) List(ctx context.Context) ([]domain.Kit, error) {
	query := `SELECT id, name, COALESCE(notes, ''), created_on, updated_on FROM kits ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kits []domain.Kit
	for rows.Next() {
		var k domain.Kit
		if err := rows.Scan(&k.ID, &k.Name, &k.Notes, &k.CreatedOn, &k.UpdatedOn); err != nil {
			return nil, err
		}
		kits = append(kits, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range kits {
		items, err := r.getItems(ctx, kits[i].ID)
		if err != nil {
			return nil, err
		}
		kits[i].Items = items
	}
	return kits, nil
}

func (r *kitRepository) Update(ctx context.Context, k *domain.Kit) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE kits SET name=$1, notes=$2, updated_on=$3 WHERE id=$4`
	result, err := tx.ExecContext(ctx, query, k.Name, k.Notes, time.Now(), k.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("kit %d: %w", k.ID, domain.ErrNotFound)
	}

	// The line set is replaced wholesale, never merged.
	if _, err := tx.ExecContext(ctx, `DELETE FROM kit_items WHERE kit_id = $1`, k.ID); err != nil {
		return err
	}
	if err := insertKitItems(ctx, tx, k.ID, k.Items); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *kitRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM kit_items WHERE kit_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM kits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("kit %d: %w", id, domain.ErrNotFound)
	}
	return tx.Commit()
}

func (r *kitRepository) getItems(ctx context.Context, kitID int32) ([]domain.KitItem, error) {
	query := `SELECT ki.item_id, i.name, ki.quantity, ki.position
	          FROM kit_items ki JOIN items i ON i.id = ki.item_id
	          WHERE ki.kit_id = $1 ORDER BY ki.position ASC`
	rows, err := r.db.QueryContext(ctx, query, kitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.KitItem
	for rows.Next() {
		var ki domain.KitItem
		if err := rows.Scan(&ki.ItemID, &ki.ItemName, &ki.Quantity, &ki.Position); err != nil {
			return nil, err
		}
		items = append(items, ki)
	}
	return items, rows.Err()
}

func insertKitItems(ctx context.Context, tx *sql.Tx, kitID int32, items []domain.KitItem) error {
	query := `INSERT INTO kit_items (kit_id, item_id, quantity, position) VALUES ($1, $2, $3, $4)`
	for i, ki := range items {
		if _, err := tx.ExecContext(ctx, query, kitID, ki.ItemID, ki.Quantity, int32(i)); err != nil {
			return err
		}
	}
	return nil
}
