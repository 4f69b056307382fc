package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/engine"
)

func TestReturnsRepository_ApplyReturnTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReturnsRepository(db)
	ctx := context.Background()

	bookingID := "bk-1"
	stocks := map[string]domain.Stock{
		"prod-1": {Total: 48, Available: 30, Booked: 12, Damaged: 4, InLaundry: 2},
	}
	entries := []domain.LostDamagedEntry{
		{BookingID: bookingID, ProductID: "prod-1", Kind: domain.LostDamagedKindLost, Quantity: 2, ChargePerUnit: decimal.NewFromInt(2000), TotalCharge: decimal.NewFromInt(4000)},
	}
	audits := []domain.FinancialTransaction{
		{BookingID: &bookingID, Amount: decimal.NewFromInt(4000), Type: domain.TransactionTypeIncome, Subtype: domain.TransactionSubtypeLostDamagedAudit, ReferenceNumber: "BK-1001"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock_total").
		WithArgs(48, 30, 12, 4, 2, sqlmock.AnyArg(), "prod-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO lost_damaged_entries").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ld-1"))
	mock.ExpectQuery("INSERT INTO financial_transactions").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ft-1"))
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(domain.BookingStatusReturned, sqlmock.AnyArg(), bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.ApplyReturnTx(ctx, bookingID, stocks, entries, audits)
	assert.NoError(t, err)
	assert.Equal(t, "ld-1", entries[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReturnsRepository_ReverseLostDamagedTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReturnsRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		offset := domain.FinancialTransaction{
			Amount:  decimal.NewFromInt(4000),
			Type:    domain.TransactionTypeExpense,
			Subtype: domain.TransactionSubtypeReversal,
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE lost_damaged_entries SET reversed").
			WithArgs("ld-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE products SET stock_total").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO financial_transactions").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ft-2"))
		mock.ExpectCommit()

		err := repo.ReverseLostDamagedTx(ctx, "ld-1", "prod-1", domain.Stock{Total: 50, Available: 32}, offset)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyReversed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE lost_damaged_entries SET reversed").
			WithArgs("ld-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.ReverseLostDamagedTx(ctx, "ld-1", "prod-1", domain.Stock{}, domain.FinancialTransaction{})
		assert.ErrorIs(t, err, engine.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
