package repositories

import (
	"database/sql"
	"time"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type HighSeasonRepository struct {
	DB *sql.DB
}

func (r HighSeasonRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r HighSeasonRepository) List() ([]domain.HighSeason, error) {
	rows, err := r.db().Query(`SELECT id, start_date, end_date, price_increase FROM high_seasons ORDER BY start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.HighSeason{}
	for rows.Next() {
		var hs domain.HighSeason
		if err := rows.Scan(&hs.ID, &hs.StartDate, &hs.EndDate, &hs.PriceIncrease); err != nil {
			return nil, err
		}
		out = append(out, hs)
	}
	return out, rows.Err()
}

func (r HighSeasonRepository) GetByID(id string) (domain.HighSeason, error) {
	if id == "" {
		return domain.HighSeason{}, sql.ErrNoRows
	}
	var hs domain.HighSeason
	err := r.db().QueryRow(`SELECT id, start_date, end_date, price_increase FROM high_seasons WHERE id=? LIMIT 1`, id).
		Scan(&hs.ID, &hs.StartDate, &hs.EndDate, &hs.PriceIncrease)
	return hs, err
}

func (r HighSeasonRepository) Upsert(hs domain.HighSeason) error {
	_, err := r.db().Exec(`
		INSERT INTO high_seasons (id, start_date, end_date, price_increase)
		VALUES (?,?,?,?)
		ON DUPLICATE KEY UPDATE
			start_date=VALUES(start_date), end_date=VALUES(end_date),
			price_increase=VALUES(price_increase)`,
		hs.ID, hs.StartDate.In(time.Local), hs.EndDate.In(time.Local), hs.PriceIncrease,
	)
	return err
}

func (r HighSeasonRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM high_seasons WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
