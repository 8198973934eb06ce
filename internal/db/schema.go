package db

import "database/sql"

// QueryRower is satisfied by *sql.DB and *sql.Tx.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// HasTable checks information_schema for the table in the current database.
func HasTable(q QueryRower, table string) bool {
	if q == nil {
		return false
	}
	var name string
	err := q.QueryRow(`
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ? LIMIT 1`, table).Scan(&name)
	return err == nil && name != ""
}

// HasColumn checks information_schema for a column on the table.
func HasColumn(q QueryRower, table, column string) bool {
	if q == nil {
		return false
	}
	var name string
	err := q.QueryRow(`
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ? AND column_name = ? LIMIT 1`, table, column).Scan(&name)
	return err == nil && name != ""
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(100) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'admin',
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_email (email),
		UNIQUE KEY uniq_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS partners (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(100) NOT NULL DEFAULT '',
		bank_account VARCHAR(255) NOT NULL DEFAULT '',
		revenue_share_percent BIGINT NOT NULL DEFAULT 0,
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS cars (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		plate VARCHAR(50) NOT NULL DEFAULT '',
		type VARCHAR(100) NOT NULL DEFAULT '',
		image TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'Available',
		price_24h BIGINT NOT NULL DEFAULT 0,
		pricing TEXT,
		partner_id VARCHAR(64) NOT NULL DEFAULT '',
		KEY idx_partner (partner_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS drivers (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(100) NOT NULL DEFAULT '',
		image TEXT,
		daily_rate BIGINT NOT NULL DEFAULT 0
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(100) NOT NULL DEFAULT '',
		id_card_number VARCHAR(100) NOT NULL DEFAULT '',
		address TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS high_seasons (
		id VARCHAR(64) PRIMARY KEY,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		price_increase BIGINT NOT NULL DEFAULT 0
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR(64) PRIMARY KEY,
		created_at BIGINT NOT NULL DEFAULT 0,
		car_id VARCHAR(64) NOT NULL,
		driver_id VARCHAR(64) NOT NULL DEFAULT '',
		customer_id VARCHAR(64) NOT NULL DEFAULT '',
		customer_name VARCHAR(255) NOT NULL DEFAULT '',
		customer_phone VARCHAR(100) NOT NULL DEFAULT '',
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		actual_return_date DATETIME NULL,
		package_type VARCHAR(100) NOT NULL DEFAULT '',
		destination VARCHAR(100) NOT NULL DEFAULT '',
		base_price BIGINT NOT NULL DEFAULT 0,
		driver_fee BIGINT NOT NULL DEFAULT 0,
		high_season_fee BIGINT NOT NULL DEFAULT 0,
		delivery_fee BIGINT NOT NULL DEFAULT 0,
		overtime_fee BIGINT NOT NULL DEFAULT 0,
		total_price BIGINT NOT NULL DEFAULT 0,
		amount_paid BIGINT NOT NULL DEFAULT 0,
		notes TEXT,
		security_deposit_type VARCHAR(50) NOT NULL DEFAULT '',
		security_deposit_value BIGINT NOT NULL DEFAULT 0,
		security_deposit_description TEXT,
		security_deposit_image TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'Booked',
		payment_status VARCHAR(50) NOT NULL DEFAULT 'Unpaid',
		checklist TEXT,
		KEY idx_car (car_id),
		KEY idx_driver (driver_id),
		KEY idx_customer (customer_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR(64) PRIMARY KEY,
		date DATETIME NOT NULL,
		amount BIGINT NOT NULL DEFAULT 0,
		type VARCHAR(50) NOT NULL DEFAULT 'Income',
		category VARCHAR(100) NOT NULL DEFAULT '',
		description TEXT,
		booking_id VARCHAR(64) NOT NULL DEFAULT '',
		receipt_image TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'Paid',
		related_id VARCHAR(64) NOT NULL DEFAULT '',
		KEY idx_booking (booking_id),
		KEY idx_date (date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS app_settings (
		id TINYINT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates missing tables at startup.
func EnsureSchema(d *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := d.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
