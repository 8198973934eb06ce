package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	intdb "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/db"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type TransactionRepository struct {
	DB *sql.DB
}

func (r TransactionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TransactionFilter narrows List results. Zero values mean "no filter".
type TransactionFilter struct {
	Month     int // 1-12
	Year      int
	Type      string
	Category  string
	BookingID string
}

const transactionColumns = `
	id, date, amount, type, COALESCE(category,''), COALESCE(description,''),
	COALESCE(booking_id,''), COALESCE(receipt_image,''), COALESCE(status,'Paid'),
	COALESCE(related_id,'')`

func (r TransactionRepository) List(f TransactionFilter) ([]domain.Transaction, error) {
	where := []string{}
	args := []any{}
	if f.Month >= 1 && f.Month <= 12 {
		where = append(where, "MONTH(date)=?")
		args = append(args, f.Month)
	}
	if f.Year > 0 {
		where = append(where, "YEAR(date)=?")
		args = append(args, f.Year)
	}
	if t := strings.TrimSpace(f.Type); t != "" {
		where = append(where, "type=?")
		args = append(args, t)
	}
	if cat := strings.TrimSpace(f.Category); cat != "" {
		where = append(where, "category=?")
		args = append(args, cat)
	}
	if bid := strings.TrimSpace(f.BookingID); bid != "" {
		where = append(where, "booking_id=?")
		args = append(args, bid)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID, &t.Date, &t.Amount, &t.Type, &t.Category, &t.Description,
			&t.BookingID, &t.ReceiptImage, &t.Status, &t.RelatedID,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TransactionRepository) GetByID(id string) (domain.Transaction, error) {
	if id == "" {
		return domain.Transaction{}, sql.ErrNoRows
	}
	var t domain.Transaction
	err := r.db().QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id=? LIMIT 1`, id).
		Scan(&t.ID, &t.Date, &t.Amount, &t.Type, &t.Category, &t.Description,
			&t.BookingID, &t.ReceiptImage, &t.Status, &t.RelatedID)
	return t, err
}

func (r TransactionRepository) Create(t domain.Transaction) error {
	_, err := r.db().Exec(`
		INSERT INTO transactions (id, date, amount, type, category, description, booking_id, receipt_image, status, related_id)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		t.ID, t.Date.In(time.Local), t.Amount, string(t.Type), t.Category, t.Description,
		t.BookingID, intdb.NullIfEmpty(t.ReceiptImage), string(t.Status), t.RelatedID,
	)
	return err
}

// UpdateStatus flips approval status on pending transactions.
func (r TransactionRepository) UpdateStatus(id string, status domain.TransactionStatus) error {
	res, err := r.db().Exec(`UPDATE transactions SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r TransactionRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM transactions WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
