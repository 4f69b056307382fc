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

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, code, name, category_id, stock_total, stock_available, stock_booked, stock_damaged, stock_in_laundry, reorder_level, damage_fee, lost_fee, security_deposit, is_active, created_on, updated_on`

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (code, name, category_id, stock_total, stock_available, stock_booked, stock_damaged, stock_in_laundry, reorder_level, damage_fee, lost_fee, security_deposit, is_active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.Code, p.Name, p.CategoryID,
		p.Stock.Total, p.Stock.Available, p.Stock.Booked, p.Stock.Damaged, p.Stock.InLaundry,
		p.ReorderLevel, p.DamageFee, p.LostFee, p.SecurityDeposit, p.IsActive, time.Now()).Scan(&p.ID)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.CategoryID,
		&p.Stock.Total, &p.Stock.Available, &p.Stock.Booked, &p.Stock.Damaged, &p.Stock.InLaundry,
		&p.ReorderLevel, &p.DamageFee, &p.LostFee, &p.SecurityDeposit, &p.IsActive, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET code=$1, name=$2, category_id=$3, stock_total=$4, stock_available=$5, stock_booked=$6, stock_damaged=$7, stock_in_laundry=$8, reorder_level=$9, damage_fee=$10, lost_fee=$11, security_deposit=$12, is_active=$13, updated_on=$14 WHERE id=$15`
	_, err := r.db.ExecContext(ctx, query, p.Code, p.Name, p.CategoryID,
		p.Stock.Total, p.Stock.Available, p.Stock.Booked, p.Stock.Damaged, p.Stock.InLaundry,
		p.ReorderLevel, p.DamageFee, p.LostFee, p.SecurityDeposit, p.IsActive, time.Now(), p.ID)
	return err
}

func (r *productRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products WHERE is_active`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.CategoryID,
			&p.Stock.Total, &p.Stock.Available, &p.Stock.Booked, &p.Stock.Damaged, &p.Stock.InLaundry,
			&p.ReorderLevel, &p.DamageFee, &p.LostFee, &p.SecurityDeposit, &p.IsActive, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, count, rows.Err()
}

func (r *productRepository) ListBelowReorderLevel(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active AND stock_available <= reorder_level ORDER BY stock_available ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.CategoryID,
			&p.Stock.Total, &p.Stock.Available, &p.Stock.Booked, &p.Stock.Damaged, &p.Stock.InLaundry,
			&p.ReorderLevel, &p.DamageFee, &p.LostFee, &p.SecurityDeposit, &p.IsActive, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
