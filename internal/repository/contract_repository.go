package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/saeedne/StatusReportProject/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *ContractRepository) List(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}
