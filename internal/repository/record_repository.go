package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/saeedne/StatusReportProject/internal/model"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Create(ctx context.Context, record *model.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// BulkCreate inserts a whole import batch inside one transaction; either
// every row is persisted or none is.
func (r *RecordRepository) BulkCreate(ctx context.Context, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
}

// List returns all records in insertion order with their owning contract
// preloaded. A contract_id that matches no contract leaves the association
// nil rather than failing.
func (r *RecordRepository) List(ctx context.Context) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).Preload("Contract").Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
