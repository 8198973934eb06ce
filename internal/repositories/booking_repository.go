package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	intdb "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/db"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

// BookingRepository wraps DB access for the bookings collection.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id, created_at,
	car_id, COALESCE(driver_id,''), COALESCE(customer_id,''),
	COALESCE(customer_name,''), COALESCE(customer_phone,''),
	start_date, end_date, actual_return_date,
	COALESCE(package_type,''), COALESCE(destination,''),
	base_price, driver_fee, high_season_fee, delivery_fee, overtime_fee,
	total_price, amount_paid, COALESCE(notes,''),
	COALESCE(security_deposit_type,''), security_deposit_value,
	COALESCE(security_deposit_description,''), COALESCE(security_deposit_image,''),
	COALESCE(status,'Booked'), COALESCE(payment_status,'Unpaid'),
	checklist`

func scanBooking(scan func(dest ...any) error) (domain.Booking, error) {
	var b domain.Booking
	var actualReturn sql.NullTime
	var checklist sql.NullString
	if err := scan(
		&b.ID, &b.CreatedAt,
		&b.CarID, &b.DriverID, &b.CustomerID,
		&b.CustomerName, &b.CustomerPhone,
		&b.StartDate, &b.EndDate, &actualReturn,
		&b.PackageType, &b.Destination,
		&b.BasePrice, &b.DriverFee, &b.HighSeasonFee, &b.DeliveryFee, &b.OvertimeFee,
		&b.TotalPrice, &b.AmountPaid, &b.Notes,
		&b.SecurityDepositType, &b.SecurityDepositValue,
		&b.SecurityDepositDescription, &b.SecurityDepositImage,
		&b.Status, &b.PaymentStatus,
		&checklist,
	); err != nil {
		return domain.Booking{}, err
	}
	if actualReturn.Valid {
		t := actualReturn.Time
		b.ActualReturnDate = &t
	}
	if checklist.Valid && checklist.String != "" {
		var cl domain.VehicleChecklist
		if err := json.Unmarshal([]byte(checklist.String), &cl); err == nil {
			b.Checklist = &cl
		}
	}
	return b, nil
}

// List returns all bookings, newest first.
func (r BookingRepository) List() ([]domain.Booking, error) {
	rows, err := r.db().Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) GetByID(id string) (domain.Booking, error) {
	if id == "" {
		return domain.Booking{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	return scanBooking(row.Scan)
}

// Upsert replaces the booking by id, inserting when new.
func (r BookingRepository) Upsert(b domain.Booking) error {
	var checklist any
	if b.Checklist != nil {
		raw, err := json.Marshal(b.Checklist)
		if err != nil {
			return err
		}
		checklist = string(raw)
	}

	var actualReturn any
	if b.ActualReturnDate != nil {
		actualReturn = b.ActualReturnDate.In(time.Local)
	}

	_, err := r.db().Exec(`
		INSERT INTO bookings (
			id, created_at, car_id, driver_id, customer_id,
			customer_name, customer_phone,
			start_date, end_date, actual_return_date,
			package_type, destination,
			base_price, driver_fee, high_season_fee, delivery_fee, overtime_fee,
			total_price, amount_paid, notes,
			security_deposit_type, security_deposit_value,
			security_deposit_description, security_deposit_image,
			status, payment_status, checklist
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			car_id=VALUES(car_id), driver_id=VALUES(driver_id), customer_id=VALUES(customer_id),
			customer_name=VALUES(customer_name), customer_phone=VALUES(customer_phone),
			start_date=VALUES(start_date), end_date=VALUES(end_date),
			actual_return_date=VALUES(actual_return_date),
			package_type=VALUES(package_type), destination=VALUES(destination),
			base_price=VALUES(base_price), driver_fee=VALUES(driver_fee),
			high_season_fee=VALUES(high_season_fee), delivery_fee=VALUES(delivery_fee),
			overtime_fee=VALUES(overtime_fee), total_price=VALUES(total_price),
			amount_paid=VALUES(amount_paid), notes=VALUES(notes),
			security_deposit_type=VALUES(security_deposit_type),
			security_deposit_value=VALUES(security_deposit_value),
			security_deposit_description=VALUES(security_deposit_description),
			security_deposit_image=VALUES(security_deposit_image),
			status=VALUES(status), payment_status=VALUES(payment_status),
			checklist=VALUES(checklist)`,
		b.ID, b.CreatedAt, b.CarID, b.DriverID, b.CustomerID,
		b.CustomerName, b.CustomerPhone,
		b.StartDate.In(time.Local), b.EndDate.In(time.Local), actualReturn,
		b.PackageType, b.Destination,
		b.BasePrice, b.DriverFee, b.HighSeasonFee, b.DeliveryFee, b.OvertimeFee,
		b.TotalPrice, b.AmountPaid, b.Notes,
		b.SecurityDepositType, b.SecurityDepositValue,
		b.SecurityDepositDescription, intdb.NullIfEmpty(b.SecurityDepositImage),
		string(b.Status), string(b.PaymentStatus), checklist,
	)
	return err
}

// Delete removes the booking permanently. No tombstone is kept.
func (r BookingRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
