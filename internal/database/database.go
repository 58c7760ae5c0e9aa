package database

import (
	"fmt"
	"time"

	"hospital-admin-backend/internal/config"
	"hospital-admin-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes the GORM database connection and migrates the schema.
func Connect(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get database instance")
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	log.Info().Str("database", cfg.Database.Database).Msg("connected to database")

	return db
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Inpatient{},
		&models.Prescription{},
		&models.Billing{},
		&models.Department{},
		&models.Staff{},
		&models.MedicalRecord{},
		&models.Medication{},
		&models.User{},
		&models.Session{},
	)
}
