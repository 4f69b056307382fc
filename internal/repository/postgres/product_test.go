package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"safawala-crm-backend/internal/engine"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "name", "category_id", "stock_total", "stock_available", "stock_booked", "stock_damaged", "stock_in_laundry", "reorder_level", "damage_fee", "lost_fee", "security_deposit", "is_active", "created_on", "updated_on"})
}

func TestProductRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := productRows().
			AddRow("prod-1", "SAFA-RED", "Red Safa", "cat-1", 50, 30, 15, 3, 2, 10, "500", "2000", "5000", true, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs("prod-1").
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, "prod-1")
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, 30, p.Stock.Available)
		assert.Equal(t, 15, p.Stock.Booked)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(productRows())

		p, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, p)
		assert.ErrorIs(t, err, engine.ErrNotFound)
	})
}

func TestProductRepository_ListBelowReorderLevel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	rows := productRows().
		AddRow("prod-2", "SAFA-GOLD", "Gold Safa", "cat-1", 20, 2, 18, 0, 0, 5, "500", "2000", "5000", true, time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM products WHERE is_active AND stock_available <= reorder_level").
		WillReturnRows(rows)

	products, err := repo.ListBelowReorderLevel(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "SAFA-GOLD", products[0].Code)
}
