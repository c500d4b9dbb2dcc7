package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalhadeouro/booking-api/internal/config"
	"github.com/navalhadeouro/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Service{},
		&models.Barber{},
		&models.BarberAbsence{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := ensureOverlapConstraint(db); err != nil {
		log.Fatalf("failed to enforce overlap constraint: %v", err)
	}

	seedAdmin(db, cfg)

	return db
}

// ensureOverlapConstraint installs the database-level guard against
// double booking: two active appointments for one barber may never
// hold overlapping ranges, even if the transactional pre-check is
// bypassed. ADD CONSTRAINT is not idempotent, so the constraint is
// looked up first and any real failure aborts startup.
func ensureOverlapConstraint(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	var exists bool
	err := db.Raw(
		`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap')`,
	).Scan(&exists).Error
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            barber_id WITH =,
            tstzrange(start_at, end_at) WITH &&
        )
        WHERE (is_active)
    `).Error
}

// seedAdmin provisions the configured admin account when none exists.
// Self-registration is disabled, so this is the only way in.
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash seed admin password: %v", err)
		return
	}

	admin := models.Admin{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin: %v", err)
	}
}
