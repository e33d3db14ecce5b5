package db

import (
	"fmt"

	"gorm.io/gorm"
)

// contract_id on records and surveys is deliberately not declared as a
// foreign key: references are advisory and rows may point at contracts that
// were never created.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS contracts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		contract_name TEXT NOT NULL,
		employer_name TEXT NOT NULL,
		contractor_name TEXT NOT NULL,
		contract_date DATE NOT NULL,
		contract_number TEXT NOT NULL,
		initial_estimate REAL NOT NULL,
		contract_amount REAL NOT NULL,
		price_lists TEXT,
		chapters TEXT,
		calculation_type TEXT NOT NULL,
		adjustment_included BOOLEAN NOT NULL DEFAULT 0,
		survey_with_address BOOLEAN NOT NULL DEFAULT 0,
		delivery_date DATE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL,
		description TEXT NOT NULL,
		unit TEXT NOT NULL,
		yearly_volume REAL NOT NULL,
		repeats INTEGER NOT NULL,
		contract_duration INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		contract_id INTEGER,
		price_list_name TEXT,
		chapter_name TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS surveys (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		location TEXT NOT NULL,
		item_title TEXT NOT NULL,
		quantity REAL NOT NULL,
		unit TEXT NOT NULL,
		contract_id INTEGER
	);`,
	`CREATE INDEX IF NOT EXISTS idx_records_contract_id ON records (contract_id);`,
	`CREATE INDEX IF NOT EXISTS idx_surveys_contract_id ON surveys (contract_id);`,
}

func RunMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
