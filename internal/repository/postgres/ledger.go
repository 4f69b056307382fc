package postgres

import (
	"context"
	"database/sql"
	"time"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

const transactionColumns = `id, booking_id, amount, type, subtype, reference_number, description, created_on`

func (r *ledgerRepository) CreateTransaction(ctx context.Context, t *domain.FinancialTransaction) error {
	query := `INSERT INTO financial_transactions (booking_id, amount, type, subtype, reference_number, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		t.BookingID, t.Amount, t.Type, t.Subtype, t.ReferenceNumber, t.Description, time.Now()).Scan(&t.ID)
}

func (r *ledgerRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.FinancialTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM financial_transactions WHERE booking_id = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.FinancialTransaction
	for rows.Next() {
		var t domain.FinancialTransaction
		if err := rows.Scan(&t.ID, &t.BookingID, &t.Amount, &t.Type, &t.Subtype,
			&t.ReferenceNumber, &t.Description, &t.CreatedOn); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
