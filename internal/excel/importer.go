package excel

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/saeedne/StatusReportProject/internal/model"
)

// RecordBatch carries the out-of-band context stamped onto every imported
// record row; none of these are workbook columns.
type RecordBatch struct {
	ContractID    *uint
	PriceListName string
	ChapterName   string
}

// SurveyBatch carries the upload context for survey imports.
type SurveyBatch struct {
	ContractID *uint
}

// ParseRecords reads the first sheet of an xlsx workbook and maps every data
// row to a record. Any missing required column or unconvertible cell fails
// the whole batch; nothing partial is ever returned.
func ParseRecords(reader io.Reader, batch RecordBatch) ([]model.Record, error) {
	rows, err := sheetRows(reader)
	if err != nil {
		return nil, err
	}

	index, err := headerIndex(rows[0], recordImportColumns)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rowNum := i + 2

		yearlyVolume, err := parseFloat(cell(row, index[colRecordYearlyVol]))
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", rowNum, colRecordYearlyVol, err)
		}
		repeats, err := parseInt(cell(row, index[colRecordRepeats]))
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", rowNum, colRecordRepeats, err)
		}
		duration, err := parseInt(cell(row, index[colRecordDuration]))
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", rowNum, colRecordDuration, err)
		}
		unitPrice, err := parseFloat(cell(row, index[colRecordUnitPrice]))
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", rowNum, colRecordUnitPrice, err)
		}

		records = append(records, model.Record{
			Code:             cell(row, index[colRecordCode]),
			Description:      cell(row, index[colRecordDescription]),
			Unit:             cell(row, index[colRecordUnit]),
			YearlyVolume:     yearlyVolume,
			Repeats:          repeats,
			ContractDuration: duration,
			UnitPrice:        unitPrice,
			ContractID:       batch.ContractID,
			PriceListName:    batch.PriceListName,
			ChapterName:      batch.ChapterName,
		})
	}
	return records, nil
}

// ParseSurveys reads the first sheet of an xlsx workbook into survey rows
// under the same all-or-nothing contract as ParseRecords.
func ParseSurveys(reader io.Reader, batch SurveyBatch) ([]model.Survey, error) {
	rows, err := sheetRows(reader)
	if err != nil {
		return nil, err
	}

	index, err := headerIndex(rows[0], surveyImportColumns)
	if err != nil {
		return nil, err
	}

	var surveys []model.Survey
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rowNum := i + 2

		quantity, err := parseFloat(cell(row, index[colSurveyQuantity]))
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", rowNum, colSurveyQuantity, err)
		}

		surveys = append(surveys, model.Survey{
			Location:   cell(row, index[colSurveyLocation]),
			ItemTitle:  cell(row, index[colSurveyItemTitle]),
			Quantity:   quantity,
			Unit:       cell(row, index[colSurveyUnit]),
			ContractID: batch.ContractID,
		})
	}
	return surveys, nil
}

func sheetRows(reader io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}
	return rows, nil
}

// headerIndex maps required column names to their position in the header
// row. Lookup is by exact text match and order-independent.
func headerIndex(header []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("required column %q not found in header row", name)
		}
	}
	return index, nil
}

// cell tolerates rows shorter than the header: excelize trims trailing empty
// cells from GetRows output.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

func parseFloat(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", value)
	}
	return parsed, nil
}

// parseInt admits integral float text such as "3.0" because spreadsheet
// tools routinely reformat whole numbers that way.
func parseInt(value string) (int, error) {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed != math.Trunc(parsed) {
		return 0, fmt.Errorf("%q is not a whole number", value)
	}
	return int(parsed), nil
}
