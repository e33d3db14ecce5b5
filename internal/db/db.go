package db

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/saeedne/StatusReportProject/internal/config"
)

// New opens the sqlite database file named in the config and brings the
// schema up to date.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", cfg.DB.Path, err)
	}

	if err := RunMigrations(database); err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.DB.Path).Msg("database ready")
	return database, nil
}
