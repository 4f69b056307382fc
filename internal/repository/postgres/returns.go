package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/engine"
	"safawala-crm-backend/internal/repository"
)

type returnsRepository struct {
	db *sql.DB
}

func NewReturnsRepository(db *sql.DB) repository.ReturnsRepository {
	return &returnsRepository{db: db}
}

const lostDamagedColumns = `id, booking_id, product_id, kind, quantity, charge_per_unit, total_charge, reason, reversed, created_on`

func (r *returnsRepository) ApplyReturnTx(ctx context.Context, bookingID string, stocks map[string]domain.Stock, entries []domain.LostDamagedEntry, audits []domain.FinancialTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for productID, s := range stocks {
		if err := writeStock(ctx, tx, productID, s, now); err != nil {
			return err
		}
	}
	for i := range entries {
		e := &entries[i]
		err := tx.QueryRowContext(ctx,
			`INSERT INTO lost_damaged_entries (booking_id, product_id, kind, quantity, charge_per_unit, total_charge, reason, reversed, created_on)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8) RETURNING id`,
			e.BookingID, e.ProductID, e.Kind, e.Quantity, e.ChargePerUnit, e.TotalCharge, e.Reason, now).Scan(&e.ID)
		if err != nil {
			return err
		}
	}
	for i := range audits {
		if err := insertTransaction(ctx, tx, &audits[i], now); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3`,
		domain.BookingStatusReturned, now, bookingID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *returnsRepository) GetLostDamagedEntry(ctx context.Context, id string) (*domain.LostDamagedEntry, error) {
	e := &domain.LostDamagedEntry{}
	query := `SELECT ` + lostDamagedColumns + ` FROM lost_damaged_entries WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.BookingID, &e.ProductID, &e.Kind, &e.Quantity,
		&e.ChargePerUnit, &e.TotalCharge, &e.Reason, &e.Reversed, &e.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lost/damaged entry %s: %w", id, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *returnsRepository) ListLostDamagedByBooking(ctx context.Context, bookingID string) ([]domain.LostDamagedEntry, error) {
	query := `SELECT ` + lostDamagedColumns + ` FROM lost_damaged_entries WHERE booking_id = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LostDamagedEntry
	for rows.Next() {
		var e domain.LostDamagedEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.ProductID, &e.Kind, &e.Quantity,
			&e.ChargePerUnit, &e.TotalCharge, &e.Reason, &e.Reversed, &e.CreatedOn); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *returnsRepository) ReverseLostDamagedTx(ctx context.Context, entryID string, productID string, stock domain.Stock, offset domain.FinancialTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE lost_damaged_entries SET reversed = true WHERE id = $1 AND NOT reversed`, entryID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("lost/damaged entry %s not reversible: %w", entryID, engine.ErrNotFound)
	}
	if err := writeStock(ctx, tx, productID, stock, now); err != nil {
		return err
	}
	if err := insertTransaction(ctx, tx, &offset, now); err != nil {
		return err
	}
	return tx.Commit()
}

func writeStock(ctx context.Context, tx *sql.Tx, productID string, s domain.Stock, now time.Time) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_total=$1, stock_available=$2, stock_booked=$3, stock_damaged=$4, stock_in_laundry=$5, updated_on=$6 WHERE id=$7`,
		s.Total, s.Available, s.Booked, s.Damaged, s.InLaundry, now, productID)
	return err
}

func insertTransaction(ctx context.Context, tx *sql.Tx, t *domain.FinancialTransaction, now time.Time) error {
	return tx.QueryRowContext(ctx,
		`INSERT INTO financial_transactions (booking_id, amount, type, subtype, reference_number, description, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		t.BookingID, t.Amount, t.Type, t.Subtype, t.ReferenceNumber, t.Description, now).Scan(&t.ID)
}
