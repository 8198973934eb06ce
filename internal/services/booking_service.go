package services

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/utils"

	"github.com/google/uuid"
)

// BookingService owns the booking save/checklist/complete/delete flow.
type BookingService struct {
	Bookings     BookingStore
	Cars         CarStore
	Drivers      DriverStore
	HighSeasons  HighSeasonStore
	Transactions TransactionStore
	Settings     SettingsStore
	RequestID    string

	// Overridable in tests.
	Now   func() time.Time
	NewID func() string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s BookingService) newBookingID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return strconv.FormatInt(s.now().UnixMilli(), 10)
}

// BookingForm is the submitted booking form state.
type BookingForm struct {
	CarID         string
	DriverID      string
	CustomerID    string
	CustomerName  string
	CustomerPhone string

	StartDate        time.Time
	EndDate          time.Time
	ActualReturnDate *time.Time

	PackageType string
	Destination string

	DeliveryFee      int64
	OvertimeFee      int64
	BaseRateOverride *int64
	AmountPaid       string // lenient: malformed input counts as 0
	ReceiptImage     string
	Notes            string

	SecurityDepositType        string
	SecurityDepositValue       int64
	SecurityDepositDescription string
	SecurityDepositImage       string
}

// SaveResult reports the persisted booking plus the income transaction
// emitted when the paid amount increased.
type SaveResult struct {
	Booking     domain.Booking
	Transaction *domain.Transaction
	Message     string
}

func (s BookingService) validateWindow(f BookingForm) error {
	if strings.TrimSpace(f.CarID) == "" {
		return domain.ValidationError{Field: "carId", Msg: "mobil wajib dipilih"}
	}
	if strings.TrimSpace(f.CustomerName) == "" {
		return domain.ValidationError{Field: "customerName", Msg: "nama pelanggan wajib diisi"}
	}
	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return domain.ValidationError{Field: "dates", Msg: "tanggal sewa wajib diisi"}
	}
	if !f.EndDate.After(f.StartDate) {
		return domain.ValidationError{Field: "endDate", Msg: "tanggal selesai harus setelah tanggal mulai"}
	}
	return nil
}

// CheckAvailability gates the car and, when requested, the driver against
// every existing non-cancelled booking.
func (s BookingService) CheckAvailability(carID, driverID string, start, end time.Time, excludeBookingID string) error {
	bookings, err := s.Bookings.List()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !domain.IsAvailable(bookings, carID, start, end, domain.ResourceCar, excludeBookingID) {
		return domain.ConflictError{Resource: "mobil", Msg: "sudah dibooking pada rentang tanggal tersebut"}
	}
	if driverID != "" && !domain.IsAvailable(bookings, driverID, start, end, domain.ResourceDriver, excludeBookingID) {
		return domain.ConflictError{Resource: "sopir", Msg: "sudah bertugas pada rentang tanggal tersebut"}
	}
	return nil
}

// Quote prices a form without persisting anything.
func (s BookingService) Quote(f BookingForm) (domain.PriceBreakdown, error) {
	if err := s.validateWindow(f); err != nil {
		return domain.PriceBreakdown{}, err
	}

	car, err := s.Cars.GetByID(f.CarID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.PriceBreakdown{}, domain.NotFoundError{Resource: "mobil", Err: err}
		}
		return domain.PriceBreakdown{}, domain.InternalError{Err: err}
	}

	var driver *domain.Driver
	if f.DriverID != "" {
		d, err := s.Drivers.GetByID(f.DriverID)
		if err != nil {
			if err == sql.ErrNoRows {
				return domain.PriceBreakdown{}, domain.NotFoundError{Resource: "sopir", Err: err}
			}
			return domain.PriceBreakdown{}, domain.InternalError{Err: err}
		}
		driver = &d
	}

	highSeasons, err := s.HighSeasons.List()
	if err != nil {
		return domain.PriceBreakdown{}, domain.InternalError{Err: err}
	}

	pkg := f.PackageType
	if pkg == "" {
		if settings, err := s.Settings.Get(); err == nil {
			pkg = settings.DefaultPackage()
		}
	}

	return domain.ComputePricing(car, driver, f.StartDate, f.EndDate, pkg, highSeasons, f.DeliveryFee, f.OvertimeFee, f.BaseRateOverride), nil
}

// SaveBooking runs the full save contract: validate, gate availability,
// price, derive statuses, preserve checklist/createdAt on edit, upsert,
// and emit one income transaction for any increase in paid amount.
func (s BookingService) SaveBooking(f BookingForm, editingID string) (SaveResult, error) {
	if err := s.validateWindow(f); err != nil {
		return SaveResult{}, err
	}
	if err := s.CheckAvailability(f.CarID, f.DriverID, f.StartDate, f.EndDate, editingID); err != nil {
		return SaveResult{}, err
	}

	pricing, err := s.Quote(f)
	if err != nil {
		return SaveResult{}, err
	}

	var existing domain.Booking
	var hasExisting bool
	if editingID != "" {
		existing, err = s.Bookings.GetByID(editingID)
		if err != nil {
			if err == sql.ErrNoRows {
				return SaveResult{}, domain.NotFoundError{Resource: "booking", Err: err}
			}
			return SaveResult{}, domain.InternalError{Err: err}
		}
		hasExisting = true
	}

	amountPaid := utils.ParseAmount(f.AmountPaid)
	status := domain.DeriveStatus(f.ActualReturnDate != nil, existing.Status)

	pkg := f.PackageType
	if pkg == "" {
		if settings, err := s.Settings.Get(); err == nil {
			pkg = settings.DefaultPackage()
		}
	}

	b := domain.Booking{
		ID:            editingID,
		CreatedAt:     s.now().UnixMilli(),
		CarID:         f.CarID,
		DriverID:      f.DriverID,
		CustomerID:    f.CustomerID,
		CustomerName:  strings.TrimSpace(f.CustomerName),
		CustomerPhone: strings.TrimSpace(f.CustomerPhone),

		StartDate:        f.StartDate,
		EndDate:          f.EndDate,
		ActualReturnDate: f.ActualReturnDate,

		PackageType: pkg,
		Destination: f.Destination,

		BasePrice:     pricing.BasePrice,
		DriverFee:     pricing.DriverFee,
		HighSeasonFee: pricing.HighSeasonFee,
		DeliveryFee:   pricing.DeliveryFee,
		OvertimeFee:   pricing.OvertimeFee,
		TotalPrice:    pricing.TotalPrice,
		AmountPaid:    amountPaid,
		Notes:         f.Notes,

		SecurityDepositType:        f.SecurityDepositType,
		SecurityDepositValue:       f.SecurityDepositValue,
		SecurityDepositDescription: f.SecurityDepositDescription,
		SecurityDepositImage:       f.SecurityDepositImage,

		Status:        status,
		PaymentStatus: domain.DerivePaymentStatus(amountPaid, pricing.TotalPrice),
	}

	var prevPaid int64
	if hasExisting {
		// Checklist and creation time survive edits untouched.
		b.Checklist = existing.Checklist
		b.CreatedAt = existing.CreatedAt
		prevPaid = existing.AmountPaid
	} else {
		b.ID = s.newBookingID()
	}

	if err := s.Bookings.Upsert(b); err != nil {
		return SaveResult{}, domain.InternalError{Err: err}
	}

	var tx *domain.Transaction
	if delta := amountPaid - prevPaid; delta > 0 {
		t := domain.Transaction{
			ID:           uuid.NewString(),
			Date:         s.now(),
			Amount:       delta,
			Type:         domain.TxIncome,
			Category:     "Pembayaran Sewa",
			Description:  fmt.Sprintf("Pembayaran booking %s - %s", b.ID, b.CustomerName),
			BookingID:    b.ID,
			ReceiptImage: f.ReceiptImage,
			Status:       domain.TxPaid,
		}
		if err := s.Transactions.Create(t); err != nil {
			return SaveResult{}, domain.InternalError{Err: err}
		}
		tx = &t
	}

	utils.LogEvent(s.RequestID, "booking", "save",
		fmt.Sprintf("id=%s status=%s payment=%s total=%d", b.ID, b.Status, b.PaymentStatus, b.TotalPrice))

	return SaveResult{
		Booking:     b,
		Transaction: tx,
		Message:     fmt.Sprintf("Booking berhasil disimpan (status: %s)", b.Status),
	}, nil
}

// ChecklistForm is the vehicle handover form captured at pickup.
type ChecklistForm struct {
	Odometer         int
	FuelLevel        string
	SpeedometerImage string
	FrontImage       string
	BackImage        string
	LeftImage        string
	RightImage       string
	Notes            string
	CheckedBy        string
}

// SaveChecklist attaches the handover checklist. A Booked booking flips to
// Active; any other status is left unchanged. Pricing and payment fields
// are never touched here.
func (s BookingService) SaveChecklist(bookingID string, f ChecklistForm) (domain.Booking, error) {
	if strings.TrimSpace(f.SpeedometerImage) == "" {
		return domain.Booking{}, domain.ValidationError{Field: "speedometerImage", Msg: "foto speedometer wajib diunggah"}
	}
	if f.Odometer < 0 {
		return domain.Booking{}, domain.ValidationError{Field: "odometer", Msg: "odometer tidak valid"}
	}

	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return domain.Booking{}, domain.InternalError{Err: err}
	}

	b.Checklist = &domain.VehicleChecklist{
		Odometer:         f.Odometer,
		FuelLevel:        domain.FuelLevel(f.FuelLevel),
		SpeedometerImage: f.SpeedometerImage,
		FrontImage:       f.FrontImage,
		BackImage:        f.BackImage,
		LeftImage:        f.LeftImage,
		RightImage:       f.RightImage,
		Notes:            f.Notes,
		CheckedAt:        s.now().UnixMilli(),
		CheckedBy:        f.CheckedBy,
	}
	if b.Status == domain.StatusBooked {
		b.Status = domain.StatusActive
	}

	if err := s.Bookings.Upsert(b); err != nil {
		return domain.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "checklist",
		fmt.Sprintf("id=%s status=%s checked_by=%s", b.ID, b.Status, f.CheckedBy))
	return b, nil
}

// CompleteBooking stamps the actual return at now and re-derives statuses,
// the shortcut equivalent of re-submitting the edit form with a return date.
func (s BookingService) CompleteBooking(bookingID string) (domain.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return domain.Booking{}, domain.InternalError{Err: err}
	}

	now := s.now()
	b.ActualReturnDate = &now
	b.Status = domain.DeriveStatus(true, b.Status)
	b.PaymentStatus = domain.DerivePaymentStatus(b.AmountPaid, b.TotalPrice)

	if err := s.Bookings.Upsert(b); err != nil {
		return domain.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "complete", "id="+b.ID)
	return b, nil
}

// DeleteBooking hard-deletes with no tombstone. Role gating happens at the
// router; this layer only removes the record.
func (s BookingService) DeleteBooking(bookingID string) error {
	if err := s.Bookings.Delete(bookingID); err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "booking", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "delete", "id="+bookingID)
	return nil
}
