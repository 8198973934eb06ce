package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type fakeBookingStore struct {
	items map[string]domain.Booking
}

func (f *fakeBookingStore) List() ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range f.items {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingStore) GetByID(id string) (domain.Booking, error) {
	b, ok := f.items[id]
	if !ok {
		return domain.Booking{}, sql.ErrNoRows
	}
	return b, nil
}

func (f *fakeBookingStore) Upsert(b domain.Booking) error {
	if f.items == nil {
		f.items = map[string]domain.Booking{}
	}
	f.items[b.ID] = b
	return nil
}

func (f *fakeBookingStore) Delete(id string) error {
	if _, ok := f.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

type fakeCarStore struct{ cars map[string]domain.Car }

func (f fakeCarStore) List() ([]domain.Car, error) {
	out := []domain.Car{}
	for _, c := range f.cars {
		out = append(out, c)
	}
	return out, nil
}

func (f fakeCarStore) GetByID(id string) (domain.Car, error) {
	c, ok := f.cars[id]
	if !ok {
		return domain.Car{}, sql.ErrNoRows
	}
	return c, nil
}

type fakeDriverStore struct{ drivers map[string]domain.Driver }

func (f fakeDriverStore) List() ([]domain.Driver, error) { return nil, nil }

func (f fakeDriverStore) GetByID(id string) (domain.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return domain.Driver{}, sql.ErrNoRows
	}
	return d, nil
}

type fakeHighSeasonStore struct{ seasons []domain.HighSeason }

func (f fakeHighSeasonStore) List() ([]domain.HighSeason, error) { return f.seasons, nil }

type fakeTransactionStore struct{ created []domain.Transaction }

func (f *fakeTransactionStore) Create(t domain.Transaction) error {
	f.created = append(f.created, t)
	return nil
}

type fakeSettingsStore struct{ settings domain.AppSettings }

func (f fakeSettingsStore) Get() (domain.AppSettings, error) { return f.settings, nil }

func testService() (BookingService, *fakeBookingStore, *fakeTransactionStore) {
	bookings := &fakeBookingStore{items: map[string]domain.Booking{}}
	txs := &fakeTransactionStore{}
	svc := BookingService{
		Bookings: bookings,
		Cars: fakeCarStore{cars: map[string]domain.Car{
			"car-1": {ID: "car-1", Name: "Avanza", Price24h: 300000},
		}},
		Drivers: fakeDriverStore{drivers: map[string]domain.Driver{
			"drv-1": {ID: "drv-1", Name: "Pak Budi", DailyRate: 100000},
		}},
		HighSeasons:  fakeHighSeasonStore{},
		Transactions: txs,
		Settings:     fakeSettingsStore{settings: domain.AppSettings{RentalPackages: []string{"24 Jam"}}},
		Now:          func() time.Time { return time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local) },
		NewID:        func() string { return "1754013600000" },
	}
	return svc, bookings, txs
}

func window(startDay, endDay int) (time.Time, time.Time) {
	return time.Date(2026, 8, startDay, 8, 0, 0, 0, time.Local),
		time.Date(2026, 8, endDay, 8, 0, 0, 0, time.Local)
}

func TestSaveBookingNewEmitsIncomeTransaction(t *testing.T) {
	svc, bookings, txs := testService()
	start, end := window(5, 6)

	res, err := svc.SaveBooking(BookingForm{
		CarID:        "car-1",
		CustomerName: "Budi",
		StartDate:    start,
		EndDate:      end,
		AmountPaid:   "Rp 150.000",
	}, "")
	if err != nil {
		t.Fatalf("save error: %v", err)
	}
	if res.Booking.ID != "1754013600000" {
		t.Fatalf("unexpected booking id %q", res.Booking.ID)
	}
	if res.Booking.TotalPrice != 300000 {
		t.Fatalf("total got %d, want 300000", res.Booking.TotalPrice)
	}
	if res.Booking.AmountPaid != 150000 {
		t.Fatalf("amount paid got %d, want 150000", res.Booking.AmountPaid)
	}
	if res.Booking.PaymentStatus != domain.PaymentPartial {
		t.Fatalf("payment status got %s, want Partial", res.Booking.PaymentStatus)
	}
	if res.Booking.Status != domain.StatusBooked {
		t.Fatalf("status got %s, want Booked", res.Booking.Status)
	}
	if len(txs.created) != 1 {
		t.Fatalf("expected 1 income transaction, got %d", len(txs.created))
	}
	tx := txs.created[0]
	if tx.Amount != 150000 || tx.Type != domain.TxIncome || tx.Category != "Pembayaran Sewa" {
		t.Fatalf("unexpected transaction %+v", tx)
	}
	if tx.BookingID != res.Booking.ID {
		t.Fatalf("transaction not linked to booking")
	}
	if _, ok := bookings.items[res.Booking.ID]; !ok {
		t.Fatalf("booking not persisted")
	}
}

func TestSaveBookingEditEmitsOnlyDelta(t *testing.T) {
	svc, _, txs := testService()
	start, end := window(5, 6)

	res, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
		AmountPaid: "100000",
	}, "")
	if err != nil {
		t.Fatalf("initial save error: %v", err)
	}

	res2, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
		AmountPaid: "150000",
	}, res.Booking.ID)
	if err != nil {
		t.Fatalf("edit save error: %v", err)
	}
	if len(txs.created) != 2 {
		t.Fatalf("expected 2 transactions total, got %d", len(txs.created))
	}
	if txs.created[1].Amount != 50000 {
		t.Fatalf("delta got %d, want 50000", txs.created[1].Amount)
	}
	if res2.Booking.CreatedAt != res.Booking.CreatedAt {
		t.Fatalf("createdAt must survive edits")
	}

	// lowering the paid amount must not emit anything
	if _, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
		AmountPaid: "50000",
	}, res.Booking.ID); err != nil {
		t.Fatalf("decrease save error: %v", err)
	}
	if len(txs.created) != 2 {
		t.Fatalf("decrease must not create a transaction, got %d total", len(txs.created))
	}
}

func TestSaveBookingAvailabilityConflict(t *testing.T) {
	svc, _, _ := testService()
	start, end := window(5, 8)

	if _, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
		AmountPaid: "0",
	}, ""); err != nil {
		t.Fatalf("first save error: %v", err)
	}

	overlapStart, overlapEnd := window(6, 7)
	_, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Siti",
		StartDate: overlapStart, EndDate: overlapEnd,
	}, "")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// back-to-back booking starting at the first one's end is fine
	nextStart, nextEnd := window(8, 9)
	if _, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Siti",
		StartDate: nextStart, EndDate: nextEnd,
	}, ""); err != nil {
		t.Fatalf("back-to-back save error: %v", err)
	}
}

func TestSaveBookingEditExcludesItself(t *testing.T) {
	svc, _, _ := testService()
	start, end := window(5, 8)

	res, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
	}, "")
	if err != nil {
		t.Fatalf("save error: %v", err)
	}

	// re-saving the same window under edit must not conflict with itself
	if _, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
	}, res.Booking.ID); err != nil {
		t.Fatalf("self-overlapping edit should pass, got %v", err)
	}
}

func TestSaveBookingValidation(t *testing.T) {
	svc, _, _ := testService()
	start, end := window(5, 6)

	_, err := svc.SaveBooking(BookingForm{CustomerName: "Budi", StartDate: start, EndDate: end}, "")
	if !domain.IsValidation(err) {
		t.Fatalf("missing car should be a validation error, got %v", err)
	}
	_, err = svc.SaveBooking(BookingForm{CarID: "car-1", StartDate: start, EndDate: end}, "")
	if !domain.IsValidation(err) {
		t.Fatalf("missing customer name should be a validation error, got %v", err)
	}
	_, err = svc.SaveBooking(BookingForm{CarID: "car-1", CustomerName: "Budi", StartDate: end, EndDate: start}, "")
	if !domain.IsValidation(err) {
		t.Fatalf("inverted window should be a validation error, got %v", err)
	}
}

func TestQuoteUsesDriverAndDefaultPackage(t *testing.T) {
	svc, _, _ := testService()
	start, end := window(5, 6)

	p, err := svc.Quote(BookingForm{
		CarID: "car-1", DriverID: "drv-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
	})
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}
	if p.DriverFee != 100000 {
		t.Fatalf("driver fee got %d, want 100000", p.DriverFee)
	}
	if p.TotalPrice != 400000 {
		t.Fatalf("total got %d, want 400000", p.TotalPrice)
	}

	_, err = svc.Quote(BookingForm{
		CarID: "car-x", CustomerName: "Budi",
		StartDate: start, EndDate: end,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("unknown car should be not found, got %v", err)
	}
}

func TestSaveChecklistFlipsBookedToActive(t *testing.T) {
	svc, bookings, _ := testService()
	start, end := window(5, 6)

	res, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end, AmountPaid: "300000",
	}, "")
	if err != nil {
		t.Fatalf("save error: %v", err)
	}

	// missing speedometer photo is rejected without touching status
	_, err = svc.SaveChecklist(res.Booking.ID, ChecklistForm{Odometer: 12000})
	if !domain.IsValidation(err) {
		t.Fatalf("missing speedometer image should be a validation error, got %v", err)
	}
	if bookings.items[res.Booking.ID].Status != domain.StatusBooked {
		t.Fatalf("rejected checklist must not mutate status")
	}

	b, err := svc.SaveChecklist(res.Booking.ID, ChecklistForm{
		Odometer:         12000,
		FuelLevel:        "Full",
		SpeedometerImage: "data:image/jpeg;base64,xxx",
		CheckedBy:        "admin",
	})
	if err != nil {
		t.Fatalf("checklist error: %v", err)
	}
	if b.Status != domain.StatusActive {
		t.Fatalf("status got %s, want Active", b.Status)
	}
	if b.Checklist == nil || b.Checklist.Odometer != 12000 {
		t.Fatalf("checklist not stored: %+v", b.Checklist)
	}
	if b.AmountPaid != 300000 || b.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("checklist must not touch payment fields")
	}

	// second checklist on an Active booking leaves status alone
	b2, err := svc.SaveChecklist(res.Booking.ID, ChecklistForm{
		Odometer:         12001,
		SpeedometerImage: "data:image/jpeg;base64,yyy",
	})
	if err != nil {
		t.Fatalf("second checklist error: %v", err)
	}
	if b2.Status != domain.StatusActive {
		t.Fatalf("active booking should stay Active, got %s", b2.Status)
	}
}

func TestCompleteBookingStampsReturn(t *testing.T) {
	svc, _, _ := testService()
	start, end := window(5, 6)

	res, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end, AmountPaid: "300000",
	}, "")
	if err != nil {
		t.Fatalf("save error: %v", err)
	}

	b, err := svc.CompleteBooking(res.Booking.ID)
	if err != nil {
		t.Fatalf("complete error: %v", err)
	}
	if b.Status != domain.StatusCompleted {
		t.Fatalf("status got %s, want Completed", b.Status)
	}
	if b.ActualReturnDate == nil || !b.ActualReturnDate.Equal(svc.Now()) {
		t.Fatalf("actual return not stamped at now")
	}

	if _, err := svc.CompleteBooking("no-such-id"); !domain.IsNotFound(err) {
		t.Fatalf("unknown booking should be not found, got %v", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	svc, bookings, _ := testService()
	start, end := window(5, 6)

	res, err := svc.SaveBooking(BookingForm{
		CarID: "car-1", CustomerName: "Budi",
		StartDate: start, EndDate: end,
	}, "")
	if err != nil {
		t.Fatalf("save error: %v", err)
	}

	if err := svc.DeleteBooking(res.Booking.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, ok := bookings.items[res.Booking.ID]; ok {
		t.Fatalf("booking still present after delete")
	}
	if err := svc.DeleteBooking(res.Booking.ID); !domain.IsNotFound(err) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
}
