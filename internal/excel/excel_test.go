package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/saeedne/StatusReportProject/internal/model"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, file.SetCellValue(sheet, cell, value))
		}
	}
	buf, err := file.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func recordHeader() []interface{} {
	return []interface{}{
		"کد فهرست بها", "شرح ردیف", "واحد", "حجم عملیات سالیانه",
		"تعداد تکرار", "مدت قرارداد", "قیمت واحد",
	}
}

func TestParseRecords(t *testing.T) {
	contractID := uint(1)
	reader := buildWorkbook(t, [][]interface{}{
		recordHeader(),
		{"010101", "خاکبرداری", "مترمکعب", 120.5, 2, 12, 15000.0},
		{"010102", "خاکریزی", "مترمکعب", 80.0, 1, 6, 9000.0},
	})

	records, err := ParseRecords(reader, RecordBatch{
		ContractID:    &contractID,
		PriceListName: "List A",
		ChapterName:   "Chapter 1",
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "010101", first.Code)
	assert.Equal(t, "خاکبرداری", first.Description)
	assert.Equal(t, "مترمکعب", first.Unit)
	assert.Equal(t, 120.5, first.YearlyVolume)
	assert.Equal(t, 2, first.Repeats)
	assert.Equal(t, 12, first.ContractDuration)
	assert.Equal(t, 15000.0, first.UnitPrice)
	require.NotNil(t, first.ContractID)
	assert.Equal(t, uint(1), *first.ContractID)
	assert.Equal(t, "List A", first.PriceListName)
	assert.Equal(t, "Chapter 1", first.ChapterName)
}

func TestParseRecordsColumnOrderIndependent(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{"قیمت واحد", "مدت قرارداد", "تعداد تکرار", "حجم عملیات سالیانه", "واحد", "شرح ردیف", "کد فهرست بها"},
		{500.0, 3, 1, 10.0, "متر", "شرح", "A1"},
	})

	records, err := ParseRecords(reader, RecordBatch{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A1", records[0].Code)
	assert.Equal(t, 500.0, records[0].UnitPrice)
	assert.Equal(t, 3, records[0].ContractDuration)
	assert.Nil(t, records[0].ContractID)
}

func TestParseRecordsMissingColumn(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{"کد فهرست بها", "شرح ردیف", "واحد"},
		{"A1", "شرح", "متر"},
	})

	_, err := ParseRecords(reader, RecordBatch{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "حجم عملیات سالیانه")
}

func TestParseRecordsBadNumericCell(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		recordHeader(),
		{"A1", "شرح", "متر", 10.0, 1, 12, 500.0},
		{"A2", "شرح", "متر", "ده", 1, 12, 500.0},
	})

	records, err := ParseRecords(reader, RecordBatch{})
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "row 3")
}

func TestParseRecordsSkipsBlankRows(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		recordHeader(),
		{"A1", "شرح", "متر", 10.0, 1, 12, 500.0},
		{"", "", "", "", "", "", ""},
		{"A2", "شرح", "متر", 20.0, 2, 6, 700.0},
	})

	records, err := ParseRecords(reader, RecordBatch{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseRecordsIntegralFloatText(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		recordHeader(),
		{"A1", "شرح", "متر", "10", "3.0", "12", "500"},
	})

	records, err := ParseRecords(reader, RecordBatch{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Repeats)

	reader = buildWorkbook(t, [][]interface{}{
		recordHeader(),
		{"A1", "شرح", "متر", "10", "3.5", "12", "500"},
	})
	_, err = ParseRecords(reader, RecordBatch{})
	require.Error(t, err)
}

func TestParseSurveys(t *testing.T) {
	contractID := uint(7)
	reader := buildWorkbook(t, [][]interface{}{
		{"محل", "عنوان موجودی متره", "مقدار", "واحد"},
		{"سایت شمالی", "لوله گذاری", 42.5, "متر"},
	})

	surveys, err := ParseSurveys(reader, SurveyBatch{ContractID: &contractID})
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, "سایت شمالی", surveys[0].Location)
	assert.Equal(t, "لوله گذاری", surveys[0].ItemTitle)
	assert.Equal(t, 42.5, surveys[0].Quantity)
	assert.Equal(t, "متر", surveys[0].Unit)
	require.NotNil(t, surveys[0].ContractID)
	assert.Equal(t, uint(7), *surveys[0].ContractID)
}

func TestParseRejectsNonWorkbook(t *testing.T) {
	_, err := ParseRecords(bytes.NewReader([]byte("not an xlsx")), RecordBatch{})
	require.Error(t, err)
}

func TestTemplateMatchesExportSchema(t *testing.T) {
	generator := NewGenerator()

	template, err := generator.RecordTemplate()
	require.NoError(t, err)
	export, err := generator.Records(nil)
	require.NoError(t, err)

	templateHeader := readHeader(t, template)
	exportHeader := readHeader(t, export)

	// The export header extends the template header; the shared prefix must
	// be identical so an exported file re-imports without remapping.
	require.GreaterOrEqual(t, len(exportHeader), len(templateHeader))
	assert.Equal(t, templateHeader, exportHeader[:len(templateHeader)])
	assert.Equal(t, recordImportColumns, templateHeader)
	assert.Equal(t, recordExportColumns, exportHeader)
}

func TestSurveyTemplateHeader(t *testing.T) {
	template, err := NewGenerator().SurveyTemplate()
	require.NoError(t, err)
	assert.Equal(t, surveyImportColumns, readHeader(t, template))
}

func TestExportReimportRoundTrip(t *testing.T) {
	contractID := uint(3)
	original := []model.Record{
		{
			Code: "010101", Description: "خاکبرداری", Unit: "مترمکعب",
			YearlyVolume: 120.5, Repeats: 2, ContractDuration: 12, UnitPrice: 15000,
			ContractID: &contractID, PriceListName: "List A", ChapterName: "Chapter 1",
		},
		{
			Code: "020304", Description: "بتن ریزی", Unit: "مترمکعب",
			YearlyVolume: 55.25, Repeats: 4, ContractDuration: 24, UnitPrice: 820000,
		},
	}

	content, err := NewGenerator().Records(original)
	require.NoError(t, err)

	reimported, err := ParseRecords(bytes.NewReader(content), RecordBatch{
		ContractID:    &contractID,
		PriceListName: "List A",
		ChapterName:   "Chapter 1",
	})
	require.NoError(t, err)
	require.Len(t, reimported, len(original))

	for i := range original {
		assert.Equal(t, original[i].Code, reimported[i].Code)
		assert.Equal(t, original[i].Description, reimported[i].Description)
		assert.Equal(t, original[i].Unit, reimported[i].Unit)
		assert.Equal(t, original[i].YearlyVolume, reimported[i].YearlyVolume)
		assert.Equal(t, original[i].Repeats, reimported[i].Repeats)
		assert.Equal(t, original[i].ContractDuration, reimported[i].ContractDuration)
		assert.Equal(t, original[i].UnitPrice, reimported[i].UnitPrice)
	}
}

func TestExportResolvesContractName(t *testing.T) {
	contractID := uint(999)
	records := []model.Record{
		{
			Code: "A1", Description: "شرح", Unit: "متر",
			YearlyVolume: 1, Repeats: 1, ContractDuration: 1, UnitPrice: 1,
			ContractID: &contractID,
			Contract:   &model.Contract{ContractName: "پیمان نمونه"},
		},
		{
			Code: "A2", Description: "شرح", Unit: "متر",
			YearlyVolume: 1, Repeats: 1, ContractDuration: 1, UnitPrice: 1,
		},
	}

	content, err := NewGenerator().Records(records)
	require.NoError(t, err)

	rows := readRows(t, content)
	require.Len(t, rows, 3)
	nameCol := indexOf(t, rows[0], "نام پیمان")
	assert.Equal(t, "پیمان نمونه", cell(rows[1], nameCol))
	assert.Equal(t, "", cell(rows[2], nameCol))
}

func readHeader(t *testing.T, content []byte) []string {
	t.Helper()
	rows := readRows(t, content)
	require.NotEmpty(t, rows)
	return rows[0]
}

func readRows(t *testing.T, content []byte) [][]string {
	t.Helper()
	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()
	rows, err := file.GetRows(file.GetSheetName(0))
	require.NoError(t, err)
	return rows
}

func indexOf(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, value := range header {
		if value == name {
			return i
		}
	}
	t.Fatalf("column %q not found in %v", name, header)
	return -1
}
