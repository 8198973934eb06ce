package services

import (
	"strings"
	"testing"
	"time"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

func docLoader(bookingID string) (bookingDocData, error) {
	start := time.Date(2026, 8, 5, 8, 0, 0, 0, time.Local)
	return bookingDocData{
		Booking: domain.Booking{
			ID:            bookingID,
			CustomerName:  "Budi Santoso",
			CustomerPhone: "0812345678",
			PackageType:   "24 Jam",
			Destination:   "Dalam Kota",
			StartDate:     start,
			EndDate:       start.Add(24 * time.Hour),
			BasePrice:     300000,
			DriverFee:     100000,
			TotalPrice:    400000,
			AmountPaid:    150000,
			PaymentStatus: domain.PaymentPartial,
		},
		CarName:     "Avanza",
		CarPlate:    "DK 1234 AB",
		DriverName:  "Pak Budi",
		CompanyName: "Sewa Kendaraan",
	}, nil
}

func TestDocsServiceGeneratePDFs(t *testing.T) {
	svc := DocsService{Loader: docLoader}

	pdf, filename, err := svc.GenerateInvoice("1754013600000")
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
	if !strings.HasPrefix(filename, "INVOICE_1754013600000_") {
		t.Fatalf("unexpected invoice filename %q", filename)
	}

	receipt, rcName, err := svc.GenerateReceipt("1754013600000")
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(receipt) == 0 || rcName == "" {
		t.Fatalf("GenerateReceipt returned empty data")
	}
}

func TestDocsServiceWhatsAppMessage(t *testing.T) {
	svc := DocsService{Loader: docLoader}

	msg, err := svc.GenerateWhatsAppMessage("1754013600000")
	if err != nil {
		t.Fatalf("GenerateWhatsAppMessage returned error: %v", err)
	}
	for _, want := range []string{"Budi Santoso", "Avanza", "DK 1234 AB", "Rp400.000", "Rp150.000", "Sisa"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}
