package repositories

import (
	"database/sql"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type PartnerRepository struct {
	DB *sql.DB
}

func (r PartnerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const partnerColumns = `id, name, COALESCE(phone,''), COALESCE(bank_account,''), revenue_share_percent, COALESCE(notes,'')`

func (r PartnerRepository) List() ([]domain.Partner, error) {
	rows, err := r.db().Query(`SELECT ` + partnerColumns + ` FROM partners ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Partner{}
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.BankAccount, &p.RevenueSharePercent, &p.Notes); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PartnerRepository) GetByID(id string) (domain.Partner, error) {
	if id == "" {
		return domain.Partner{}, sql.ErrNoRows
	}
	var p domain.Partner
	err := r.db().QueryRow(`SELECT `+partnerColumns+` FROM partners WHERE id=? LIMIT 1`, id).
		Scan(&p.ID, &p.Name, &p.Phone, &p.BankAccount, &p.RevenueSharePercent, &p.Notes)
	return p, err
}

func (r PartnerRepository) Upsert(p domain.Partner) error {
	_, err := r.db().Exec(`
		INSERT INTO partners (id, name, phone, bank_account, revenue_share_percent, notes)
		VALUES (?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), phone=VALUES(phone), bank_account=VALUES(bank_account),
			revenue_share_percent=VALUES(revenue_share_percent), notes=VALUES(notes)`,
		p.ID, p.Name, p.Phone, p.BankAccount, p.RevenueSharePercent, p.Notes,
	)
	return err
}

func (r PartnerRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM partners WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
