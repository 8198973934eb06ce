package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const customerColumns = `id, name, COALESCE(phone,''), COALESCE(id_card_number,''), COALESCE(address,'')`

// List returns customers, optionally filtered by name/phone substring.
func (r CustomerRepository) List(q string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += ` WHERE name LIKE ? OR phone LIKE ?`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY name`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IDCardNumber, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CustomerRepository) GetByID(id string) (domain.Customer, error) {
	if id == "" {
		return domain.Customer{}, sql.ErrNoRows
	}
	var c domain.Customer
	err := r.db().QueryRow(`SELECT `+customerColumns+` FROM customers WHERE id=? LIMIT 1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.IDCardNumber, &c.Address)
	return c, err
}

func (r CustomerRepository) Upsert(c domain.Customer) error {
	_, err := r.db().Exec(`
		INSERT INTO customers (id, name, phone, id_card_number, address)
		VALUES (?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), phone=VALUES(phone),
			id_card_number=VALUES(id_card_number), address=VALUES(address)`,
		c.ID, c.Name, c.Phone, c.IDCardNumber, c.Address,
	)
	return err
}

func (r CustomerRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM customers WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
