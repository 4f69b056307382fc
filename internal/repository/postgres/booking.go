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

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, booking_number, customer_id, customer_name, status, event_date, delivery_date, return_date, venue_address, distance_km, discount_type, discount_value, coupon_code, coupon_discount, tax_amount, security_deposit, subtotal_amount, total_amount, amount_paid, pending_amount, notes, created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (booking_number, customer_id, customer_name, status, event_date, delivery_date, return_date, venue_address, distance_km, discount_type, discount_value, coupon_code, coupon_discount, tax_amount, security_deposit, subtotal_amount, total_amount, amount_paid, pending_amount, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		b.BookingNumber, b.CustomerID, b.CustomerName, b.Status, b.EventDate, b.DeliveryDate, b.ReturnDate,
		b.VenueAddress, b.DistanceKm, b.DiscountType, b.DiscountValue, b.CouponCode, b.CouponDiscount,
		b.TaxAmount, b.SecurityDeposit, b.SubtotalAmount, b.TotalAmount, b.AmountPaid, b.PendingAmount,
		b.Notes, time.Now()).Scan(&b.ID); err != nil {
		return err
	}
	for i := range b.Items {
		if err := insertBookingItem(ctx, r.db, b.ID, &b.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertBookingItem(ctx context.Context, ex execer, bookingID string, it *domain.BookingItem) error {
	query := `INSERT INTO booking_items (booking_id, product_id, variant_id, level_id, quantity, extra_units, missing_units, unit_price, total_price)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	it.BookingID = bookingID
	return ex.QueryRowContext(ctx, query, bookingID,
		nullStr(it.ProductID), nullStr(it.VariantID), nullStr(it.LevelID),
		it.Quantity, it.ExtraUnits, it.MissingUnits, it.UnitPrice, it.TotalPrice).Scan(&it.ID)
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.BookingNumber, &b.CustomerID, &b.CustomerName, &b.Status,
		&b.EventDate, &b.DeliveryDate, &b.ReturnDate, &b.VenueAddress, &b.DistanceKm,
		&b.DiscountType, &b.DiscountValue, &b.CouponCode, &b.CouponDiscount,
		&b.TaxAmount, &b.SecurityDeposit, &b.SubtotalAmount, &b.TotalAmount,
		&b.AmountPaid, &b.PendingAmount, &b.Notes, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Items = items
	return b, nil
}

func (r *bookingRepository) listItems(ctx context.Context, bookingID string) ([]domain.BookingItem, error) {
	query := `SELECT id, booking_id, COALESCE(product_id, ''), COALESCE(variant_id, ''), COALESCE(level_id, ''), quantity, extra_units, missing_units, unit_price, total_price
	          FROM booking_items WHERE booking_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.BookingItem
	for rows.Next() {
		var it domain.BookingItem
		if err := rows.Scan(&it.ID, &it.BookingID, &it.ProductID, &it.VariantID, &it.LevelID,
			&it.Quantity, &it.ExtraUnits, &it.MissingUnits, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("booking %s: %w", id, engine.ErrNotFound)
	}
	return nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Booking, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE customer_id = $1`, customerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, customerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) ListDeliveredPastReturnDate(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 AND return_date < $2 ORDER BY return_date`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusDelivered, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListQuotesOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 AND created_on < $2 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusQuote, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.BookingNumber, &b.CustomerID, &b.CustomerName, &b.Status,
			&b.EventDate, &b.DeliveryDate, &b.ReturnDate, &b.VenueAddress, &b.DistanceKm,
			&b.DiscountType, &b.DiscountValue, &b.CouponCode, &b.CouponDiscount,
			&b.TaxAmount, &b.SecurityDeposit, &b.SubtotalAmount, &b.TotalAmount,
			&b.AmountPaid, &b.PendingAmount, &b.Notes, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListClaimsByProduct(ctx context.Context, productID string) ([]domain.BookingClaim, error) {
	query := `SELECT b.id, b.booking_number, b.status, b.delivery_date, b.return_date, bi.quantity, b.customer_name, COALESCE(b.return_status, '')
	          FROM bookings b JOIN booking_items bi ON bi.booking_id = b.id
	          WHERE bi.product_id = $1 ORDER BY b.delivery_date`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []domain.BookingClaim
	for rows.Next() {
		var c domain.BookingClaim
		if err := rows.Scan(&c.BookingID, &c.BookingNumber, &c.Status, &c.DeliveryDate, &c.ReturnDate,
			&c.Quantity, &c.CustomerName, &c.ReturnStatus); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// ConfirmTx holds the booking's stock claim inside one transaction. The
// conditional UPDATE re-validates the availability formula at commit time;
// an earlier advisory check may have raced with another booking.
func (r *bookingRepository) ConfirmTx(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, it := range b.Items {
		if it.ProductID == "" {
			continue
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET stock_available = stock_available - $1, stock_booked = stock_booked + $1, updated_on = $2
			 WHERE id = $3 AND stock_available >= $1`,
			it.Quantity, time.Now(), it.ProductID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("product %s needs %d units: %w", it.ProductID, it.Quantity, engine.ErrInsufficientStock)
		}
	}

	query := `INSERT INTO bookings (booking_number, customer_id, customer_name, status, event_date, delivery_date, return_date, venue_address, distance_km, discount_type, discount_value, coupon_code, coupon_discount, tax_amount, security_deposit, subtotal_amount, total_amount, amount_paid, pending_amount, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21) RETURNING id`
	if err := tx.QueryRowContext(ctx, query,
		b.BookingNumber, b.CustomerID, b.CustomerName, b.Status, b.EventDate, b.DeliveryDate, b.ReturnDate,
		b.VenueAddress, b.DistanceKm, b.DiscountType, b.DiscountValue, b.CouponCode, b.CouponDiscount,
		b.TaxAmount, b.SecurityDeposit, b.SubtotalAmount, b.TotalAmount, b.AmountPaid, b.PendingAmount,
		b.Notes, time.Now()).Scan(&b.ID); err != nil {
		return err
	}
	for i := range b.Items {
		if err := insertBookingItem(ctx, tx, b.ID, &b.Items[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ReleaseTx cancels a booking and hands its claimed units back to available
// stock in the same transaction.
func (r *bookingRepository) ReleaseTx(ctx context.Context, bookingID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var prior domain.BookingStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, bookingID).Scan(&prior)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("booking %s: %w", bookingID, engine.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if prior != domain.BookingStatusQuote && prior != domain.BookingStatusConfirmed {
		return fmt.Errorf("%w: booking %s in status %s cannot be cancelled", engine.ErrValidation, bookingID, prior)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3`,
		domain.BookingStatusCancelled, time.Now(), bookingID); err != nil {
		return err
	}

	// Quotes never held stock; only confirmed bookings hand units back.
	if prior == domain.BookingStatusConfirmed {
		_, err = tx.ExecContext(ctx,
			`UPDATE products p SET stock_available = p.stock_available + bi.quantity,
			        stock_booked = GREATEST(0, p.stock_booked - bi.quantity)
			 FROM booking_items bi
			 WHERE bi.booking_id = $1 AND bi.product_id = p.id`, bookingID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
