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

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `r.id, r.item_id, i.name, r.quantity, r.start_date, r.end_date, r.event_id, COALESCE(e.title, ''), r.kit_id, COALESCE(r.group_id, ''), COALESCE(r.notes, ''), r.created_by, r.created_on, r.updated_on`

const reservationJoins = ` FROM reservations r
	          JOIN items i ON i.id = r.item_id
	          LEFT JOIN events e ON e.id = r.event_id`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	now := time.Now()
	query := `INSERT INTO reservations (item_id, quantity, start_date, end_date, event_id, kit_id, group_id, notes, created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`
	res.CreatedOn = now
	res.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, res.ItemID, res.Quantity, res.StartDate, res.EndDate, res.EventID, res.KitID, nullString(res.GroupID), res.Notes, res.CreatedBy, now).Scan(&res.ID)
}

// CreateChecked closes the check-then-insert race: the overlap sum and the
// insert happen inside one guarded section so two concurrent writers cannot
// both pass a stale availability check. Rented items are never blocked.
func (r *reservationRepository) CreateChecked(ctx context.Context, res *domain.Reservation, mode domain.GuardMode) error {
	tx, err := r.beginGuarded(ctx, res.ItemID, mode)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkCapacity(ctx, tx, res, 0); err != nil {
		return err
	}

	now := time.Now()
	query := `INSERT INTO reservations (item_id, quantity, start_date, end_date, event_id, kit_id, group_id, notes, created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, res.ItemID, res.Quantity, res.StartDate, res.EndDate, res.EventID, res.KitID, nullString(res.GroupID), res.Notes, res.CreatedBy, now).Scan(&res.ID); err != nil {
		return err
	}
	res.CreatedOn = now
	res.UpdatedOn = now
	return tx.Commit()
}

// UpdateChecked re-validates a date-range or quantity change exactly like a
// fresh insert, excluding the row being updated from the overlap sum.
func (r *reservationRepository) UpdateChecked(ctx context.Context, res *domain.Reservation, mode domain.GuardMode) error {
	tx, err := r.beginGuarded(ctx, res.ItemID, mode)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkCapacity(ctx, tx, res, res.ID); err != nil {
		return err
	}

	query := `UPDATE reservations SET quantity=$1, start_date=$2, end_date=$3, event_id=$4, notes=$5, updated_on=$6 WHERE id=$7`
	result, err := tx.ExecContext(ctx, query, res.Quantity, res.StartDate, res.EndDate, res.EventID, res.Notes, time.Now(), res.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("reservation %d: %w", res.ID, domain.ErrNotFound)
	}
	return tx.Commit()
}

// CreateGroup inserts all legs of a kit expansion in one transaction. Every
// leg gets the same creation timestamp; a failed leg rolls back the rest so
// readers never observe a partially expanded kit reservation.
func (r *reservationRepository) CreateGroup(ctx context.Context, group []*domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO reservations (item_id, quantity, start_date, end_date, event_id, kit_id, group_id, notes, created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`
	for _, res := range group {
		if err := tx.QueryRowContext(ctx, query, res.ItemID, res.Quantity, res.StartDate, res.EndDate, res.EventID, res.KitID, nullString(res.GroupID), res.Notes, res.CreatedBy, now).Scan(&res.ID); err != nil {
			return err
		}
		res.CreatedOn = now
		res.UpdatedOn = now
	}
	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + reservationJoins + ` WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.ItemID, &res.ItemName, &res.Quantity, &res.StartDate, &res.EndDate, &res.EventID, &res.EventTitle, &res.KitID, &res.GroupID, &res.Notes, &res.CreatedBy, &res.CreatedOn, &res.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + ` WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if f.ItemID != 0 {
		query += fmt.Sprintf(" AND r.item_id = $%d", argIdx)
		args = append(args, f.ItemID)
		argIdx++
	}
	if f.EventID != 0 {
		query += fmt.Sprintf(" AND r.event_id = $%d", argIdx)
		args = append(args, f.EventID)
		argIdx++
	}
	if f.KitID != 0 {
		query += fmt.Sprintf(" AND r.kit_id = $%d", argIdx)
		args = append(args, f.KitID)
		argIdx++
	}
	if !f.Start.IsZero() && !f.End.IsZero() {
		query += fmt.Sprintf(" AND r.start_date < $%d AND r.end_date > $%d", argIdx, argIdx+1)
		args = append(args, f.End, f.Start)
		argIdx += 2
	}
	query += " ORDER BY r.start_date ASC, r.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListOverlapping returns the rows overlapping the half-open range
// [start, end). Ranges touching at an endpoint are not overlapping.
func (r *reservationRepository) ListOverlapping(ctx context.Context, itemID int32, start, end time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + `
	          WHERE r.item_id = $1 AND r.start_date < $3 AND r.end_date > $2
	          ORDER BY r.start_date ASC, r.id ASC`
	rows, err := r.db.QueryContext(ctx, query, itemID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) CountFromDate(ctx context.Context, itemID int32, from time.Time) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM reservations WHERE item_id = $1 AND end_date > $2`
	err := r.db.QueryRowContext(ctx, query, itemID, from).Scan(&count)
	return count, err
}

func (r *reservationRepository) CountFromDateByKit(ctx context.Context, kitID int32, from time.Time) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM reservations WHERE kit_id = $1 AND end_date > $2`
	err := r.db.QueryRowContext(ctx, query, kitID, from).Scan(&count)
	return count, err
}

// GetRentalUsage aggregates the ledger per rented item. Safe to run while
// reservations are being written; the scorer tolerates a moving ledger.
func (r *reservationRepository) GetRentalUsage(ctx context.Context, now time.Time) ([]domain.ItemUsage, error) {
	query := `SELECT i.id, i.name,
	                 COUNT(r.id),
	                 COUNT(r.id) FILTER (WHERE r.start_date >= $1::date - 30),
	                 COUNT(r.id) FILTER (WHERE r.start_date >= $1::date - 90),
	                 COALESCE(SUM(r.end_date - r.start_date), 0)
	          FROM items i
	          LEFT JOIN reservations r ON r.item_id = i.id
	          WHERE i.is_rent = TRUE
	          GROUP BY i.id, i.name
	          ORDER BY i.name ASC`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []domain.ItemUsage
	for rows.Next() {
		var u domain.ItemUsage
		if err := rows.Scan(&u.ItemID, &u.ItemName, &u.TotalReservations, &u.Last30Days, &u.Last90Days, &u.TotalDays); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// beginGuarded opens the transaction that protects a check-then-insert
// sequence. GuardTransaction uses serializable isolation; GuardItemLock
// takes a per-item advisory lock released at commit/rollback.
func (r *reservationRepository) beginGuarded(ctx context.Context, itemID int32, mode domain.GuardMode) (*sql.Tx, error) {
	opts := &sql.TxOptions{}
	if mode == domain.GuardTransaction {
		opts.Isolation = sql.LevelSerializable
	}
	tx, err := r.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	if mode == domain.GuardItemLock {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(itemID)); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	return tx, nil
}

// checkCapacity enforces quantity_total for owned items inside the guarded
// transaction. excludeID > 0 leaves that row out of the sum (updates).
func checkCapacity(ctx context.Context, tx *sql.Tx, res *domain.Reservation, excludeID int32) error {
	var total int32
	var isRent bool
	err := tx.QueryRowContext(ctx, `SELECT quantity_total, is_rent FROM items WHERE id = $1`, res.ItemID).Scan(&total, &isRent)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("item %d: %w", res.ItemID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if isRent {
		// Rented items are not capacity bounded; the caller can rent more.
		return nil
	}

	query := `SELECT COALESCE(SUM(quantity), 0) FROM reservations WHERE item_id = $1 AND start_date < $2 AND end_date > $3`
	args := []interface{}{res.ItemID, res.EndDate, res.StartDate}
	if excludeID > 0 {
		query += ` AND id <> $4`
		args = append(args, excludeID)
	}
	var reserved int32
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&reserved); err != nil {
		return err
	}
	if total-reserved < res.Quantity {
		return fmt.Errorf("item %d has %d of %d units free for %s to %s: %w",
			res.ItemID, total-reserved, total,
			res.StartDate.Format("2006-01-02"), res.EndDate.Format("2006-01-02"),
			domain.ErrInsufficientQuantity)
	}
	return nil
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.ItemID, &res.ItemName, &res.Quantity, &res.StartDate, &res.EndDate, &res.EventID, &res.EventTitle, &res.KitID, &res.GroupID, &res.Notes, &res.CreatedBy, &res.CreatedOn, &res.UpdatedOn); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
