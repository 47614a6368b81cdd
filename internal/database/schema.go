package database

import (
	"context"
	"database/sql"
)

// Calendar dates (checkin, checkout, birthdate, issue_date) are stored as
// ISO YYYY-MM-DD strings rather than DATE columns. The application
// normalizes every date to that form before it reaches the store, and a
// string column round-trips it without any driver-side time conversion.
// Money columns are DECIMAL(10,2), so totals never pass through binary
// floats at the storage boundary either.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS guests (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		document    VARCHAR(64)  NULL,
		birthdate   VARCHAR(10)  NULL,
		nationality VARCHAR(100) NULL,
		address     VARCHAR(255) NULL
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS staff (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		role       VARCHAR(100) NULL,
		department VARCHAR(100) NULL
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id     BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		number INT UNSIGNED NOT NULL,
		type   VARCHAR(100) NULL,
		rate   DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(50) NOT NULL DEFAULT 'available',
		UNIQUE KEY uq_rooms_number (number)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS services (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(255) NOT NULL DEFAULT '',
		description VARCHAR(255) NULL,
		unit_cost   DECIMAL(10,2) NOT NULL DEFAULT 0.00
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		checkin  VARCHAR(10) NOT NULL,
		checkout VARCHAR(10) NOT NULL,
		status   VARCHAR(50) NOT NULL DEFAULT '',
		guest_id BIGINT UNSIGNED NOT NULL,
		room_id  BIGINT UNSIGNED NOT NULL,
		staff_id BIGINT UNSIGNED NULL,
		CONSTRAINT fk_reservations_guest FOREIGN KEY (guest_id) REFERENCES guests(id),
		CONSTRAINT fk_reservations_room  FOREIGN KEY (room_id)  REFERENCES rooms(id),
		CONSTRAINT fk_reservations_staff FOREIGN KEY (staff_id) REFERENCES staff(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS reservation_services (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		reservation_id BIGINT UNSIGNED NOT NULL,
		service_id     BIGINT UNSIGNED NOT NULL,
		quantity       INT UNSIGNED NOT NULL DEFAULT 1,
		CONSTRAINT fk_resv_services_reservation FOREIGN KEY (reservation_id)
			REFERENCES reservations(id) ON DELETE CASCADE,
		CONSTRAINT fk_resv_services_service FOREIGN KEY (service_id)
			REFERENCES services(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		issue_date     VARCHAR(10) NOT NULL,
		total          DECIMAL(10,2) NOT NULL,
		reservation_id BIGINT UNSIGNED NOT NULL,
		CONSTRAINT fk_invoices_reservation FOREIGN KEY (reservation_id)
			REFERENCES reservations(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS accounts (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(20) NOT NULL DEFAULT 'RECEPTION',
		is_active     TINYINT(1) NOT NULL DEFAULT 1,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_accounts_email (email)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		account_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_refresh_tokens_hash (token_hash),
		CONSTRAINT fk_refresh_tokens_account FOREIGN KEY (account_id)
			REFERENCES accounts(id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
}

// Migrate applies the schema idempotently. It is called once at startup;
// the core components consume only the store's primitive operations and
// never touch DDL.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
