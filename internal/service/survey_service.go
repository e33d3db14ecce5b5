package service

import (
	"context"
	"fmt"
	"io"

	"github.com/saeedne/StatusReportProject/internal/excel"
	"github.com/saeedne/StatusReportProject/internal/model"
	"github.com/saeedne/StatusReportProject/internal/repository"
)

// SurveyExcelGenerator renders the survey import template.
type SurveyExcelGenerator interface {
	SurveyTemplate() ([]byte, error)
}

type SurveyService struct {
	surveys   *repository.SurveyRepository
	generator SurveyExcelGenerator
}

func NewSurveyService(surveys *repository.SurveyRepository, generator SurveyExcelGenerator) *SurveyService {
	return &SurveyService{surveys: surveys, generator: generator}
}

type CreateSurveyInput struct {
	Location   string
	ItemTitle  string
	Quantity   float64
	Unit       string
	ContractID *uint
}

type SurveyView struct {
	model.Survey
	ContractName string `json:"contract_name"`
}

func (s *SurveyService) Create(ctx context.Context, input CreateSurveyInput) (*model.Survey, error) {
	for name, value := range map[string]string{
		"location":   input.Location,
		"item_title": input.ItemTitle,
		"unit":       input.Unit,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
		}
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	survey := &model.Survey{
		Location:   input.Location,
		ItemTitle:  input.ItemTitle,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ContractID: input.ContractID,
	}
	if err := s.surveys.Create(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

func (s *SurveyService) ImportExcel(ctx context.Context, reader io.Reader, batch excel.SurveyBatch) (int, error) {
	surveys, err := excel.ParseSurveys(reader, batch)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.surveys.BulkCreate(ctx, surveys); err != nil {
		return 0, err
	}
	return len(surveys), nil
}

func (s *SurveyService) Template() (*FileResult, error) {
	content, err := s.generator.SurveyTemplate()
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: excel.SurveyTemplateFileName, Content: content}, nil
}

func (s *SurveyService) ListView(ctx context.Context) ([]SurveyView, error) {
	surveys, err := s.surveys.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]SurveyView, 0, len(surveys))
	for i := range surveys {
		views = append(views, SurveyView{
			Survey:       surveys[i],
			ContractName: surveys[i].ContractName(),
		})
	}
	return views, nil
}
