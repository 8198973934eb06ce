package domain

type BookingStatus string

const (
	StatusBooked    BookingStatus = "Booked"
	StatusActive    BookingStatus = "Active"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

// DeriveStatus recomputes booking status on save. An actual return wins from
// any non-terminal state; otherwise an already-active booking stays active.
func DeriveStatus(hasActualReturn bool, previous BookingStatus) BookingStatus {
	if hasActualReturn {
		return StatusCompleted
	}
	if previous == StatusActive {
		return StatusActive
	}
	return StatusBooked
}

// DerivePaymentStatus is a pure function of (amountPaid, totalPrice),
// recomputed on every save and never sticky.
func DerivePaymentStatus(amountPaid, totalPrice int64) PaymentStatus {
	switch {
	case amountPaid >= totalPrice:
		return PaymentPaid
	case amountPaid > 0:
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}
