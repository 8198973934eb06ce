package repositories

import (
	"testing"
	"time"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingRowColumns = []string{
	"id", "created_at",
	"car_id", "driver_id", "customer_id",
	"customer_name", "customer_phone",
	"start_date", "end_date", "actual_return_date",
	"package_type", "destination",
	"base_price", "driver_fee", "high_season_fee", "delivery_fee", "overtime_fee",
	"total_price", "amount_paid", "notes",
	"security_deposit_type", "security_deposit_value",
	"security_deposit_description", "security_deposit_image",
	"status", "payment_status", "checklist",
}

func TestBookingRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	start := time.Date(2026, 8, 5, 8, 0, 0, 0, time.Local)
	end := start.Add(24 * time.Hour)
	checklist := `{"odometer":12000,"fuelLevel":"Full","speedometerImage":"img"}`

	mock.ExpectQuery("FROM bookings WHERE id=").WithArgs("1754013600000").
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
			"1754013600000", int64(1754013600000),
			"car-1", "drv-1", "",
			"Budi", "0812",
			start, end, nil,
			"24 Jam", "Dalam Kota",
			int64(300000), int64(100000), int64(0), int64(0), int64(0),
			int64(400000), int64(150000), "",
			"", int64(0),
			"", "",
			"Booked", "Partial", checklist,
		))

	repo := BookingRepository{DB: db}
	b, err := repo.GetByID("1754013600000")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if b.CarID != "car-1" || b.DriverID != "drv-1" {
		t.Fatalf("unexpected booking %+v", b)
	}
	if b.TotalPrice != 400000 || b.AmountPaid != 150000 {
		t.Fatalf("money fields wrong: total=%d paid=%d", b.TotalPrice, b.AmountPaid)
	}
	if b.Status != domain.StatusBooked || b.PaymentStatus != domain.PaymentPartial {
		t.Fatalf("status fields wrong: %s/%s", b.Status, b.PaymentStatus)
	}
	if b.ActualReturnDate != nil {
		t.Fatalf("actual return should be nil")
	}
	if b.Checklist == nil || b.Checklist.Odometer != 12000 {
		t.Fatalf("checklist not decoded: %+v", b.Checklist)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryUpsertAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	start := time.Date(2026, 8, 5, 8, 0, 0, 0, time.Local)
	b := domain.Booking{
		ID:            "1754013600000",
		CreatedAt:     1754013600000,
		CarID:         "car-1",
		CustomerName:  "Budi",
		StartDate:     start,
		EndDate:       start.Add(24 * time.Hour),
		BasePrice:     300000,
		TotalPrice:    300000,
		Status:        domain.StatusBooked,
		PaymentStatus: domain.PaymentUnpaid,
	}

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := BookingRepository{DB: db}
	if err := repo.Upsert(b); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	mock.ExpectExec("DELETE FROM bookings").WithArgs("1754013600000").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete("1754013600000"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	// deleting an unknown id surfaces sql.ErrNoRows
	mock.ExpectExec("DELETE FROM bookings").WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete("missing"); err == nil {
		t.Fatalf("expected error for missing id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
