package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type CarRepository struct {
	DB *sql.DB
}

func (r CarRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanCar(scan func(dest ...any) error) (domain.Car, error) {
	var c domain.Car
	var pricing sql.NullString
	if err := scan(
		&c.ID, &c.Name, &c.Plate, &c.Type, &c.Image,
		&c.Status, &c.Price24h, &pricing, &c.PartnerID,
	); err != nil {
		return domain.Car{}, err
	}
	if pricing.Valid && pricing.String != "" {
		_ = json.Unmarshal([]byte(pricing.String), &c.Pricing)
	}
	return c, nil
}

const carColumns = `
	id, name, COALESCE(plate,''), COALESCE(type,''), COALESCE(image,''),
	COALESCE(status,'Available'), price_24h, pricing, COALESCE(partner_id,'')`

func (r CarRepository) List() ([]domain.Car, error) {
	rows, err := r.db().Query(`SELECT ` + carColumns + ` FROM cars ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Car{}
	for rows.Next() {
		c, err := scanCar(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CarRepository) GetByID(id string) (domain.Car, error) {
	if id == "" {
		return domain.Car{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(`SELECT `+carColumns+` FROM cars WHERE id=? LIMIT 1`, id)
	return scanCar(row.Scan)
}

func (r CarRepository) Upsert(c domain.Car) error {
	var pricing any
	if len(c.Pricing) > 0 {
		raw, err := json.Marshal(c.Pricing)
		if err != nil {
			return err
		}
		pricing = string(raw)
	}
	_, err := r.db().Exec(`
		INSERT INTO cars (id, name, plate, type, image, status, price_24h, pricing, partner_id)
		VALUES (?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), plate=VALUES(plate), type=VALUES(type),
			image=VALUES(image), status=VALUES(status), price_24h=VALUES(price_24h),
			pricing=VALUES(pricing), partner_id=VALUES(partner_id)`,
		c.ID, c.Name, c.Plate, c.Type, c.Image,
		string(c.Status), c.Price24h, pricing, c.PartnerID,
	)
	return err
}

func (r CarRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM cars WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
