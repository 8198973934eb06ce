package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/utils"
)

type ReportsService struct {
	TransactionRepo repositories.TransactionRepository
	BookingRepo     repositories.BookingRepository
	CarRepo         repositories.CarRepository
}

type FinanceReport struct {
	Month             int                  `json:"month"`
	Year              int                  `json:"year"`
	TotalIncome       int64                `json:"totalIncome"`
	TotalExpense      int64                `json:"totalExpense"`
	Net               int64                `json:"net"`
	PendingAmount     int64                `json:"pendingAmount"`
	IncomeByCategory  map[string]int64     `json:"incomeByCategory"`
	ExpenseByCategory map[string]int64     `json:"expenseByCategory"`
	Transactions      []domain.Transaction `json:"transactions"`
}

// GetFinanceReport aggregates transactions for the given month/year.
// Pending transactions are reported separately and excluded from totals.
func (s ReportsService) GetFinanceReport(month, year int) (FinanceReport, error) {
	txs, err := s.TransactionRepo.List(repositories.TransactionFilter{Month: month, Year: year})
	if err != nil {
		return FinanceReport{}, domain.InternalError{Err: err}
	}

	report := FinanceReport{
		Month:             month,
		Year:              year,
		IncomeByCategory:  map[string]int64{},
		ExpenseByCategory: map[string]int64{},
		Transactions:      txs,
	}
	for _, t := range txs {
		if t.Status == domain.TxPending {
			report.PendingAmount += t.Amount
			continue
		}
		switch t.Type {
		case domain.TxExpense:
			report.TotalExpense += t.Amount
			report.ExpenseByCategory[t.Category] += t.Amount
		default:
			report.TotalIncome += t.Amount
			report.IncomeByCategory[t.Category] += t.Amount
		}
	}
	report.Net = report.TotalIncome - report.TotalExpense
	return report, nil
}

type FleetReportRow struct {
	CarID      string `json:"carId"`
	Name       string `json:"name"`
	Plate      string `json:"plate"`
	Bookings   int    `json:"bookings"`
	DaysRented int    `json:"daysRented"`
	Revenue    int64  `json:"revenue"`
}

// GetFleetReport summarizes non-cancelled bookings per car.
func (s ReportsService) GetFleetReport() ([]FleetReportRow, error) {
	cars, err := s.CarRepo.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	bookings, err := s.BookingRepo.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}

	byCar := map[string]*FleetReportRow{}
	rows := make([]FleetReportRow, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, FleetReportRow{CarID: c.ID, Name: c.Name, Plate: c.Plate})
	}
	for i := range rows {
		byCar[rows[i].CarID] = &rows[i]
	}

	for _, b := range bookings {
		row, ok := byCar[b.CarID]
		if !ok || b.Status == domain.StatusCancelled {
			continue
		}
		row.Bookings++
		row.DaysRented += domain.DurationDays(b.StartDate, b.EndDate)
		row.Revenue += b.TotalPrice
	}
	return rows, nil
}

// ExportFinanceCSV renders the month's transactions as CSV.
func (s ReportsService) ExportFinanceCSV(month, year int) ([]byte, string, error) {
	report, err := s.GetFinanceReport(month, year)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"tanggal", "tipe", "kategori", "deskripsi", "jumlah", "status", "booking_id"})
	for _, t := range report.Transactions {
		_ = w.Write([]string{
			utils.FormatDateTime(t.Date),
			string(t.Type),
			t.Category,
			t.Description,
			strconv.FormatInt(t.Amount, 10),
			string(t.Status),
			t.BookingID,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	filename := "laporan_keuangan_" + strconv.Itoa(year) + "-" + strconv.Itoa(month) + ".csv"
	return buf.Bytes(), filename, nil
}
