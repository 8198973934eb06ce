package services

import (
	"strings"
	"testing"
	"time"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var transactionRowColumns = []string{
	"id", "date", "amount", "type", "category", "description",
	"booking_id", "receipt_image", "status", "related_id",
}

func TestFinanceReportTotalsExcludePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	date := time.Date(2026, 8, 10, 10, 0, 0, 0, time.Local)
	mock.ExpectQuery("FROM transactions").WithArgs(8, 2026).
		WillReturnRows(sqlmock.NewRows(transactionRowColumns).
			AddRow("t1", date, int64(400000), "Income", "Pembayaran Sewa", "", "b1", "", "Paid", "").
			AddRow("t2", date, int64(150000), "Expense", "BBM", "", "", "", "Paid", "").
			AddRow("t3", date, int64(75000), "Expense", "Servis", "", "", "", "Pending", ""))

	svc := ReportsService{TransactionRepo: repositories.TransactionRepository{DB: db}}
	report, err := svc.GetFinanceReport(8, 2026)
	if err != nil {
		t.Fatalf("GetFinanceReport error: %v", err)
	}
	if report.TotalIncome != 400000 {
		t.Fatalf("income got %d, want 400000", report.TotalIncome)
	}
	if report.TotalExpense != 150000 {
		t.Fatalf("expense got %d, want 150000", report.TotalExpense)
	}
	if report.Net != 250000 {
		t.Fatalf("net got %d, want 250000", report.Net)
	}
	if report.PendingAmount != 75000 {
		t.Fatalf("pending got %d, want 75000", report.PendingAmount)
	}
	if report.IncomeByCategory["Pembayaran Sewa"] != 400000 {
		t.Fatalf("income by category wrong: %+v", report.IncomeByCategory)
	}
	if _, ok := report.ExpenseByCategory["Servis"]; ok {
		t.Fatalf("pending expense must not appear in totals")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExportFinanceCSV(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	date := time.Date(2026, 8, 10, 10, 0, 0, 0, time.Local)
	mock.ExpectQuery("FROM transactions").WithArgs(8, 2026).
		WillReturnRows(sqlmock.NewRows(transactionRowColumns).
			AddRow("t1", date, int64(400000), "Income", "Pembayaran Sewa", "DP Budi", "b1", "", "Paid", ""))

	svc := ReportsService{TransactionRepo: repositories.TransactionRepository{DB: db}}
	data, filename, err := svc.ExportFinanceCSV(8, 2026)
	if err != nil {
		t.Fatalf("ExportFinanceCSV error: %v", err)
	}
	if filename != "laporan_keuangan_2026-8.csv" {
		t.Fatalf("unexpected filename %q", filename)
	}
	body := string(data)
	if !strings.Contains(body, "Pembayaran Sewa") || !strings.Contains(body, "400000") {
		t.Fatalf("csv missing expected content:\n%s", body)
	}
	if !strings.HasPrefix(body, "tanggal,tipe,kategori") {
		t.Fatalf("csv missing header:\n%s", body)
	}
}
