package services

import "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"

// Store interfaces keep the booking engine storage-agnostic; the SQL
// implementations live in internal/repositories.

type BookingStore interface {
	List() ([]domain.Booking, error)
	GetByID(id string) (domain.Booking, error)
	Upsert(b domain.Booking) error
	Delete(id string) error
}

type CarStore interface {
	List() ([]domain.Car, error)
	GetByID(id string) (domain.Car, error)
}

type DriverStore interface {
	List() ([]domain.Driver, error)
	GetByID(id string) (domain.Driver, error)
}

type HighSeasonStore interface {
	List() ([]domain.HighSeason, error)
}

type TransactionStore interface {
	Create(t domain.Transaction) error
}

type SettingsStore interface {
	Get() (domain.AppSettings, error)
}
