package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/c14220110/hms-console/config"
)

// DSN builds the driver DSN from config. parseTime is always on, and updates
// report matched rows so rewriting an unchanged record is not a miss.
func DSN(cfg *config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.ClientFoundRows = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

// Connect opens and pings a MariaDB connection pool.
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open mariadb: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mariadb: %w", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS patient (
		id VARCHAR(36) PRIMARY KEY,
		first_name VARCHAR(80) NOT NULL DEFAULT '',
		last_name VARCHAR(80) NOT NULL DEFAULT '',
		email VARCHAR(120) NOT NULL DEFAULT '',
		phone VARCHAR(40) NOT NULL DEFAULT '',
		gender VARCHAR(20) NOT NULL DEFAULT '',
		date_of_birth DATE NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS doctor (
		id VARCHAR(36) PRIMARY KEY,
		first_name VARCHAR(80) NOT NULL DEFAULT '',
		last_name VARCHAR(80) NOT NULL DEFAULT '',
		email VARCHAR(120) NOT NULL DEFAULT '',
		phone VARCHAR(40) NOT NULL DEFAULT '',
		specialization VARCHAR(80) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS appointment (
		id VARCHAR(36) PRIMARY KEY,
		date_time DATETIME NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Scheduled',
		notes TEXT NULL,
		patient_id VARCHAR(36) NULL,
		doctor_id VARCHAR(36) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_appointment_doctor (doctor_id),
		INDEX idx_appointment_patient (patient_id)
	)`,
	`CREATE TABLE IF NOT EXISTS doctor_shift (
		id VARCHAR(36) PRIMARY KEY,
		doctor_id VARCHAR(36) NOT NULL,
		start_time DATETIME NULL,
		end_time DATETIME NULL,
		shift_type VARCHAR(40) NOT NULL DEFAULT ''
	)`,
}

// Migrate creates the mirror tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
