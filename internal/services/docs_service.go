package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF invoice & kwitansi serta teks konfirmasi WhatsApp.
type DocsService struct {
	Bookings  BookingStore
	Cars      CarStore
	Drivers   DriverStore
	Settings  SettingsStore
	RequestID string
	Loader    func(bookingID string) (bookingDocData, error)
}

type bookingDocData struct {
	Booking     domain.Booking
	CarName     string
	CarPlate    string
	DriverName  string
	CompanyName string
	CompanyAddr string
	Footer      string
}

func (s DocsService) loadBookingDocData(bookingID string) (bookingDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	var out bookingDocData
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}
	out.Booking = b

	if car, err := s.Cars.GetByID(b.CarID); err == nil {
		out.CarName = car.Name
		out.CarPlate = car.Plate
	}
	if b.DriverID != "" {
		if d, err := s.Drivers.GetByID(b.DriverID); err == nil {
			out.DriverName = d.Name
		}
	}
	if settings, err := s.Settings.Get(); err == nil {
		out.CompanyName = settings.CompanyName
		out.CompanyAddr = settings.CompanyAddress
		out.Footer = settings.InvoiceFooter
	}
	if out.CompanyName == "" {
		out.CompanyName = "Sewa Kendaraan"
	}
	return out, nil
}

func (s DocsService) GenerateInvoice(bookingID string) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "booking_id="+bookingID)
	return buildInvoicePDF(data)
}

func (s DocsService) GenerateReceipt(bookingID string) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", "booking_id="+bookingID)
	return buildReceiptPDF(data)
}

// GenerateWhatsAppMessage builds the plain-text booking confirmation the
// admin forwards to the customer.
func (s DocsService) GenerateWhatsAppMessage(bookingID string) (string, error) {
	d, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return "", err
	}
	b := d.Booking

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s - Konfirmasi Booking*\n\n", d.CompanyName)
	fmt.Fprintf(&sb, "Halo %s,\n", safe(b.CustomerName, "-"))
	fmt.Fprintf(&sb, "Booking Anda sudah kami catat:\n\n")
	fmt.Fprintf(&sb, "Mobil     : %s (%s)\n", safe(d.CarName, "-"), safe(d.CarPlate, "-"))
	if d.DriverName != "" {
		fmt.Fprintf(&sb, "Sopir     : %s\n", d.DriverName)
	}
	fmt.Fprintf(&sb, "Paket     : %s (%s)\n", safe(b.PackageType, "-"), safe(b.Destination, "-"))
	fmt.Fprintf(&sb, "Mulai     : %s\n", utils.FormatDateTime(b.StartDate))
	fmt.Fprintf(&sb, "Selesai   : %s\n", utils.FormatDateTime(b.EndDate))
	fmt.Fprintf(&sb, "Total     : %s\n", utils.FormatRupiah(b.TotalPrice))
	fmt.Fprintf(&sb, "Dibayar   : %s\n", utils.FormatRupiah(b.AmountPaid))
	if sisa := b.TotalPrice - b.AmountPaid; sisa > 0 {
		fmt.Fprintf(&sb, "Sisa      : %s\n", utils.FormatRupiah(sisa))
	}
	fmt.Fprintf(&sb, "\nTerima kasih.")

	utils.LogEvent(s.RequestID, "docs", "generate_whatsapp", "booking_id="+bookingID)
	return sb.String(), nil
}

func buildInvoicePDF(d bookingDocData) ([]byte, string, error) {
	b := d.Booking

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, d.CompanyName)
	pdf.Ln(6)
	if d.CompanyAddr != "" {
		pdf.Cell(0, 6, d.CompanyAddr)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "No Invoice  : INV-"+b.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Tanggal     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Ditagihkan kepada:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Nama   : %s", safe(b.CustomerName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("No HP  : %s", safe(b.CustomerPhone, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	desc := fmt.Sprintf("Sewa %s (%s), paket %s, %s s/d %s",
		safe(d.CarName, "-"), safe(d.CarPlate, "-"), safe(b.PackageType, "-"),
		utils.FormatDateTime(b.StartDate), utils.FormatDateTime(b.EndDate))
	pdf.MultiCell(0, 6, desc, "", "", false)
	pdf.Ln(2)

	lines := []struct {
		label  string
		amount int64
	}{
		{"Harga sewa", b.BasePrice},
		{"Jasa sopir", b.DriverFee},
		{"High season", b.HighSeasonFee},
		{"Antar/jemput", b.DeliveryFee},
		{"Overtime", b.OvertimeFee},
	}
	for _, l := range lines {
		if l.amount == 0 {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("%-14s: %s", l.label, utils.FormatRupiah(l.amount)))
		pdf.Ln(6)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total    : "+utils.FormatRupiah(b.TotalPrice))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Dibayar  : "+utils.FormatRupiah(b.AmountPaid))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Sisa     : "+utils.FormatRupiah(b.TotalPrice-b.AmountPaid))
	pdf.Ln(12)

	if d.Footer != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, d.Footer, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", b.ID, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(d bookingDocData) ([]byte, string, error) {
	b := d.Booking

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Kwitansi", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "KWITANSI")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	rows := []string{
		fmt.Sprintf("No Kwitansi      : KWT-%s", b.ID),
		fmt.Sprintf("Telah terima dari: %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Jumlah           : %s", utils.FormatRupiah(b.AmountPaid)),
		fmt.Sprintf("Untuk pembayaran : Sewa %s (%s)", safe(d.CarName, "-"), safe(b.PackageType, "-")),
		fmt.Sprintf("Periode          : %s s/d %s", utils.FormatDateTime(b.StartDate), utils.FormatDateTime(b.EndDate)),
		fmt.Sprintf("Status pembayaran: %s", b.PaymentStatus),
		fmt.Sprintf("Tanggal          : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, r := range rows {
		pdf.Cell(0, 7, r)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Kwitansi ini adalah bukti pembayaran yang sah.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("KWITANSI_%s_%s.pdf", b.ID, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "x"
	}
	repl := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return repl.Replace(s)
}
