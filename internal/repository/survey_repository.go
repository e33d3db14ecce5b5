package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/saeedne/StatusReportProject/internal/model"
)

type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *SurveyRepository) BulkCreate(ctx context.Context, surveys []model.Survey) error {
	if len(surveys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&surveys).Error
	})
}

func (r *SurveyRepository) List(ctx context.Context) ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.WithContext(ctx).Preload("Contract").Order("id ASC").Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}
