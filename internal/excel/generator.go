package excel

import (
	"github.com/xuri/excelize/v2"

	"github.com/saeedne/StatusReportProject/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Records renders every stored record into a single-sheet workbook. The
// contract name column is resolved through the preloaded association and
// stays empty for dangling references.
func (g *Generator) Records(records []model.Record) ([]byte, error) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	for i, header := range recordExportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i := range records {
		record := &records[i]
		row := i + 2
		values := []interface{}{
			record.Code,
			record.Description,
			record.Unit,
			record.YearlyVolume,
			record.Repeats,
			record.ContractDuration,
			record.UnitPrice,
			record.ContractName(),
			record.PriceListName,
			record.ChapterName,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "B", 45)
	_ = file.SetColWidth(sheet, "C", "G", 16)
	_ = file.SetColWidth(sheet, "H", "J", 28)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RecordTemplate is the record import schema with zero data rows.
func (g *Generator) RecordTemplate() ([]byte, error) {
	return g.template(recordImportColumns)
}

// SurveyTemplate is the survey import schema with zero data rows.
func (g *Generator) SurveyTemplate() ([]byte, error) {
	return g.template(surveyImportColumns)
}

func (g *Generator) template(columns []string) ([]byte, error) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	for i, header := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}
	last, _ := excelize.ColumnNumberToName(len(columns))
	_ = file.SetColWidth(sheet, "A", last, 22)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
