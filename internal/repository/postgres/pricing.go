package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/engine"
	"safawala-crm-backend/internal/repository"
)

type pricingRepository struct {
	db *sql.DB
}

func NewPricingRepository(db *sql.DB) repository.PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name, description, security_deposit FROM package_categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.SecurityDeposit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %s: %w", id, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

const variantColumns = `id, category_id, name, base_price, extra_unit_price, missing_unit_penalty, security_deposit, inclusions, is_active, display_order`

func (r *pricingRepository) GetVariant(ctx context.Context, id string) (*domain.PackageVariant, error) {
	v := &domain.PackageVariant{}
	query := `SELECT ` + variantColumns + ` FROM package_variants WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.CategoryID, &v.Name, &v.BasePrice, &v.ExtraUnitPrice, &v.MissingUnitPenalty,
		&v.SecurityDeposit, pq.Array(&v.Inclusions), &v.IsActive, &v.DisplayOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("variant %s: %w", id, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *pricingRepository) GetLevel(ctx context.Context, id string) (*domain.VariantLevel, error) {
	l := &domain.VariantLevel{}
	query := `SELECT id, variant_id, name, additional_price FROM variant_levels WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.VariantID, &l.Name, &l.AdditionalPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("level %s: %w", id, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *pricingRepository) ListLevels(ctx context.Context, variantID string) ([]domain.VariantLevel, error) {
	query := `SELECT id, variant_id, name, additional_price FROM variant_levels WHERE variant_id = $1 ORDER BY additional_price ASC`
	rows, err := r.db.QueryContext(ctx, query, variantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []domain.VariantLevel
	for rows.Next() {
		var l domain.VariantLevel
		if err := rows.Scan(&l.ID, &l.VariantID, &l.Name, &l.AdditionalPrice); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (r *pricingRepository) ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error) {
	query := `SELECT id, min_km, max_km, additional_price, is_active FROM distance_pricing_tiers ORDER BY min_km ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.DistanceTier
	for rows.Next() {
		var t domain.DistanceTier
		if err := rows.Scan(&t.ID, &t.MinKm, &t.MaxKm, &t.AdditionalPrice, &t.IsActive); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}
