package repositories

import (
	"database/sql"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const driverColumns = `id, name, COALESCE(phone,''), COALESCE(image,''), daily_rate`

func (r DriverRepository) List() ([]domain.Driver, error) {
	rows, err := r.db().Query(`SELECT ` + driverColumns + ` FROM drivers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Driver{}
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.Image, &d.DailyRate); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DriverRepository) GetByID(id string) (domain.Driver, error) {
	if id == "" {
		return domain.Driver{}, sql.ErrNoRows
	}
	var d domain.Driver
	err := r.db().QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE id=? LIMIT 1`, id).
		Scan(&d.ID, &d.Name, &d.Phone, &d.Image, &d.DailyRate)
	return d, err
}

func (r DriverRepository) Upsert(d domain.Driver) error {
	_, err := r.db().Exec(`
		INSERT INTO drivers (id, name, phone, image, daily_rate)
		VALUES (?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), phone=VALUES(phone), image=VALUES(image),
			daily_rate=VALUES(daily_rate)`,
		d.ID, d.Name, d.Phone, d.Image, d.DailyRate,
	)
	return err
}

func (r DriverRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM drivers WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
