package repositories

import (
	"database/sql"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin resolves a user by email or username, returning the bcrypt hash.
func (r UserRepository) GetByLogin(login string) (domain.User, string, error) {
	var u domain.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, name, username, email, COALESCE(phone,''), password_hash, role, status
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, login, login).
		Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash, &u.Role, &u.Status)
	return u, hash, err
}

func (r UserRepository) CountByEmailOrUsername(email, username string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`, email, username).Scan(&n)
	return n, err
}

func (r UserRepository) Create(u domain.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())`,
		u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
