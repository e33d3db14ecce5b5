package service

import (
	"context"
	"fmt"
	"io"

	"github.com/saeedne/StatusReportProject/internal/excel"
	"github.com/saeedne/StatusReportProject/internal/model"
	"github.com/saeedne/StatusReportProject/internal/repository"
)

// RecordExcelGenerator renders stored records and the import template.
type RecordExcelGenerator interface {
	Records(records []model.Record) ([]byte, error)
	RecordTemplate() ([]byte, error)
}

type RecordService struct {
	records   *repository.RecordRepository
	generator RecordExcelGenerator
}

func NewRecordService(records *repository.RecordRepository, generator RecordExcelGenerator) *RecordService {
	return &RecordService{records: records, generator: generator}
}

type CreateRecordInput struct {
	Code             string
	Description      string
	Unit             string
	YearlyVolume     float64
	Repeats          int
	ContractDuration int
	UnitPrice        float64
	ContractID       *uint
	PriceListName    string
	ChapterName      string
}

// FileResult is a generated download: content plus the attachment name.
type FileResult struct {
	FileName string
	Content  []byte
}

// RecordView is one listing row with the contract reference resolved to a
// display name (empty when dangling).
type RecordView struct {
	model.Record
	ContractName string `json:"contract_name"`
}

func (s *RecordService) Create(ctx context.Context, input CreateRecordInput) (*model.Record, error) {
	for name, value := range map[string]string{
		"code":        input.Code,
		"description": input.Description,
		"unit":        input.Unit,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
		}
	}
	if input.YearlyVolume < 0 || input.Repeats < 0 || input.ContractDuration < 0 || input.UnitPrice < 0 {
		return nil, fmt.Errorf("%w: numeric fields must not be negative", ErrInvalidInput)
	}

	record := &model.Record{
		Code:             input.Code,
		Description:      input.Description,
		Unit:             input.Unit,
		YearlyVolume:     input.YearlyVolume,
		Repeats:          input.Repeats,
		ContractDuration: input.ContractDuration,
		UnitPrice:        input.UnitPrice,
		ContractID:       input.ContractID,
		PriceListName:    input.PriceListName,
		ChapterName:      input.ChapterName,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ImportExcel maps an uploaded workbook to records and persists the batch in
// one transaction. A single bad row leaves the store untouched.
func (s *RecordService) ImportExcel(ctx context.Context, reader io.Reader, batch excel.RecordBatch) (int, error) {
	records, err := excel.ParseRecords(reader, batch)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.records.BulkCreate(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *RecordService) Export(ctx context.Context) (*FileResult, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.generator.Records(records)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: excel.RecordsFileName, Content: content}, nil
}

func (s *RecordService) Template() (*FileResult, error) {
	content, err := s.generator.RecordTemplate()
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: excel.RecordTemplateFileName, Content: content}, nil
}

func (s *RecordService) ListView(ctx context.Context) ([]RecordView, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]RecordView, 0, len(records))
	for i := range records {
		views = append(views, RecordView{
			Record:       records[i],
			ContractName: records[i].ContractName(),
		})
	}
	return views, nil
}
