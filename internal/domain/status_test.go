package domain

import "testing"

func TestDeriveStatus(t *testing.T) {
	if got := DeriveStatus(false, ""); got != StatusBooked {
		t.Fatalf("new booking should be Booked, got %s", got)
	}
	if got := DeriveStatus(false, StatusBooked); got != StatusBooked {
		t.Fatalf("booked stays Booked, got %s", got)
	}
	// Active is sticky until an actual return lands
	if got := DeriveStatus(false, StatusActive); got != StatusActive {
		t.Fatalf("active stays Active, got %s", got)
	}
	if got := DeriveStatus(true, StatusActive); got != StatusCompleted {
		t.Fatalf("actual return should complete, got %s", got)
	}
	if got := DeriveStatus(true, StatusBooked); got != StatusCompleted {
		t.Fatalf("actual return wins even from Booked, got %s", got)
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	cases := []struct {
		paid, total int64
		want        PaymentStatus
	}{
		{0, 300000, PaymentUnpaid},
		{1, 300000, PaymentPartial},
		{150000, 300000, PaymentPartial},
		{299999, 300000, PaymentPartial},
		{300000, 300000, PaymentPaid},
		{350000, 300000, PaymentPaid},
		{0, 0, PaymentPaid},
	}
	for _, tc := range cases {
		if got := DerivePaymentStatus(tc.paid, tc.total); got != tc.want {
			t.Fatalf("paid=%d total=%d: got %s, want %s", tc.paid, tc.total, got, tc.want)
		}
	}
}
