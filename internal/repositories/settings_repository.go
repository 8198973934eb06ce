package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

// SettingsRepository stores app settings as a single JSON document row.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var defaultSettings = domain.AppSettings{
	RentalPackages: []string{"12 Jam", "24 Jam"},
}

// Get returns stored settings, falling back to defaults when absent.
func (r SettingsRepository) Get() (domain.AppSettings, error) {
	var raw string
	err := r.db().QueryRow(`SELECT data FROM app_settings WHERE id=1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return defaultSettings, nil
	}
	if err != nil {
		return domain.AppSettings{}, err
	}

	var s domain.AppSettings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return defaultSettings, nil
	}
	if len(s.RentalPackages) == 0 {
		s.RentalPackages = defaultSettings.RentalPackages
	}
	return s, nil
}

func (r SettingsRepository) Save(s domain.AppSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db().Exec(`
		INSERT INTO app_settings (id, data) VALUES (1, ?)
		ON DUPLICATE KEY UPDATE data=VALUES(data)`, string(raw))
	return err
}
