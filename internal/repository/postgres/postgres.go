package postgres

import (
	"database/sql"

	"warehouse-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ItemRepository
	repository.CategoryRepository
	repository.KitRepository
	repository.ReservationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ItemRepository:        NewItemRepository(db),
		CategoryRepository:    NewCategoryRepository(db),
		KitRepository:         NewKitRepository(db),
		ReservationRepository: NewReservationRepository(db),
	}
}
