package excel

// Column headers are the sole schema contract of an uploaded workbook: the
// header row must contain every required name, in any order, spelled exactly
// as below. Export and template emit the same names in the same order so an
// exported file re-imports without remapping.

const (
	colRecordCode        = "کد فهرست بها"
	colRecordDescription = "شرح ردیف"
	colRecordUnit        = "واحد"
	colRecordYearlyVol   = "حجم عملیات سالیانه"
	colRecordRepeats     = "تعداد تکرار"
	colRecordDuration    = "مدت قرارداد"
	colRecordUnitPrice   = "قیمت واحد"

	colRecordContract  = "نام پیمان"
	colRecordPriceList = "فهرست بها"
	colRecordChapter   = "فصل"

	colSurveyLocation  = "محل"
	colSurveyItemTitle = "عنوان موجودی متره"
	colSurveyQuantity  = "مقدار"
	colSurveyUnit      = "واحد"
)

// recordImportColumns are required on import and form the template header.
var recordImportColumns = []string{
	colRecordCode,
	colRecordDescription,
	colRecordUnit,
	colRecordYearlyVol,
	colRecordRepeats,
	colRecordDuration,
	colRecordUnitPrice,
}

// recordExportColumns extend the template columns with fields derived from
// the stored record; extra columns are ignored on re-import.
var recordExportColumns = []string{
	colRecordCode,
	colRecordDescription,
	colRecordUnit,
	colRecordYearlyVol,
	colRecordRepeats,
	colRecordDuration,
	colRecordUnitPrice,
	colRecordContract,
	colRecordPriceList,
	colRecordChapter,
}

var surveyImportColumns = []string{
	colSurveyLocation,
	colSurveyItemTitle,
	colSurveyQuantity,
	colSurveyUnit,
}

// Download file names as shown to the user.
const (
	RecordsFileName        = "فهرست_بها.xlsx"
	RecordTemplateFileName = "فهرست_بها_نمونه.xlsx"
	SurveyTemplateFileName = "متره_نمونه.xlsx"
)
