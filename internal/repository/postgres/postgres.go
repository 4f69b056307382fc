package postgres

import (
	"database/sql"

	"safawala-crm-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProductRepository
	repository.BookingRepository
	repository.PricingRepository
	repository.LedgerRepository
	repository.ReturnsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		ProductRepository: NewProductRepository(db),
		BookingRepository: NewBookingRepository(db),
		PricingRepository: NewPricingRepository(db),
		LedgerRepository:  NewLedgerRepository(db),
		ReturnsRepository: NewReturnsRepository(db),
	}
}
