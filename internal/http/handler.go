package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saeedne/StatusReportProject/internal/excel"
	"github.com/saeedne/StatusReportProject/internal/service"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	contracts *service.ContractService
	records   *service.RecordService
	surveys   *service.SurveyService
	log       zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	records *service.RecordService,
	surveys *service.SurveyService,
	log zerolog.Logger,
) *Handler {
	return &Handler{contracts: contracts, records: records, surveys: surveys, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.home)

	router.GET("/record_form", h.recordForm)
	router.POST("/record_form", h.createRecord)
	router.POST("/upload_records_excel", h.uploadRecordsExcel)
	router.GET("/download_records_excel", h.downloadRecordsExcel)
	router.GET("/download_excel_template", h.downloadRecordTemplate)

	router.GET("/contract_form", h.contractForm)
	router.POST("/contract_form", h.createContract)

	router.GET("/survey_form", h.surveyForm)
	router.POST("/survey_form", h.createSurvey)
	router.POST("/upload_surveys_excel", h.uploadSurveysExcel)
	router.GET("/download_survey_template", h.downloadSurveyTemplate)
}

func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "contracts registry", "status": "ok"})
}

// --- records ---

func (h *Handler) recordForm(c *gin.Context) {
	ctx := c.Request.Context()
	records, err := h.records.ListView(ctx)
	if err != nil {
		h.handleError(c, err, "An error occurred while loading records.")
		return
	}
	contracts, err := h.contracts.ListView(ctx)
	if err != nil {
		h.handleError(c, err, "An error occurred while loading records.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records, "contracts": contracts})
}

func (h *Handler) createRecord(c *gin.Context) {
	input, err := recordInputFromForm(c)
	if err != nil {
		h.handleError(c, err, "An error occurred while saving the record.")
		return
	}
	if _, err := h.records.Create(c.Request.Context(), input); err != nil {
		h.handleError(c, err, "An error occurred while saving the record.")
		return
	}
	c.Redirect(http.StatusFound, "/record_form")
}

func recordInputFromForm(c *gin.Context) (service.CreateRecordInput, error) {
	var input service.CreateRecordInput

	yearlyVolume, err := formFloat(c, "yearly_volume")
	if err != nil {
		return input, err
	}
	repeats, err := formInt(c, "repeats")
	if err != nil {
		return input, err
	}
	duration, err := formInt(c, "contract_duration")
	if err != nil {
		return input, err
	}
	unitPrice, err := formFloat(c, "unit_price")
	if err != nil {
		return input, err
	}
	contractID, err := optionalID(c.PostForm("contract_select"))
	if err != nil {
		return input, err
	}

	return service.CreateRecordInput{
		Code:             strings.TrimSpace(c.PostForm("code")),
		Description:      strings.TrimSpace(c.PostForm("description")),
		Unit:             strings.TrimSpace(c.PostForm("unit")),
		YearlyVolume:     yearlyVolume,
		Repeats:          repeats,
		ContractDuration: duration,
		UnitPrice:        unitPrice,
		ContractID:       contractID,
		PriceListName:    strings.TrimSpace(c.PostForm("price_list_select")),
		ChapterName:      strings.TrimSpace(c.PostForm("chapter_select")),
	}, nil
}

func (h *Handler) uploadRecordsExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.handleError(c, service.ErrNoFile, "")
		return
	}
	contractID, err := optionalID(c.PostForm("contract_id"))
	if err != nil {
		h.handleError(c, err, "An error occurred while processing the Excel file.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err, "An error occurred while processing the Excel file.")
		return
	}
	defer file.Close()

	batch := excel.RecordBatch{
		ContractID:    contractID,
		PriceListName: strings.TrimSpace(c.PostForm("price_list_name")),
		ChapterName:   strings.TrimSpace(c.PostForm("chapter_name")),
	}
	count, err := h.records.ImportExcel(c.Request.Context(), file, batch)
	if err != nil {
		h.handleError(c, err, "An error occurred while processing the Excel file.")
		return
	}

	h.log.Info().Int("rows", count).Msg("record batch imported")
	c.Redirect(http.StatusFound, "/record_form")
}

func (h *Handler) downloadRecordsExcel(c *gin.Context) {
	result, err := h.records.Export(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "An error occurred while exporting records.")
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) downloadRecordTemplate(c *gin.Context) {
	result, err := h.records.Template()
	if err != nil {
		h.handleError(c, err, "An error occurred while building the template.")
		return
	}
	h.sendFile(c, result)
}

// --- contracts ---

func (h *Handler) contractForm(c *gin.Context) {
	contracts, err := h.contracts.ListView(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "An error occurred while loading contracts.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

func (h *Handler) createContract(c *gin.Context) {
	input, err := contractInputFromForm(c)
	if err != nil {
		h.handleError(c, err, "An error occurred while saving the contract.")
		return
	}
	if _, err := h.contracts.Create(c.Request.Context(), input); err != nil {
		h.handleError(c, err, "An error occurred while saving the contract.")
		return
	}
	c.Redirect(http.StatusFound, "/contract_form")
}

func contractInputFromForm(c *gin.Context) (service.CreateContractInput, error) {
	var input service.CreateContractInput

	initialEstimate, err := formFloat(c, "initial_estimate")
	if err != nil {
		return input, err
	}
	contractAmount, err := formFloat(c, "contract_amount")
	if err != nil {
		return input, err
	}

	// Checkbox semantics: the key being present means true, whatever the
	// value; an unticked box never sends the key.
	_, adjustmentIncluded := c.GetPostForm("adjustment_included")
	_, surveyWithAddress := c.GetPostForm("survey_with_address")

	return service.CreateContractInput{
		ContractName:       strings.TrimSpace(c.PostForm("contract_name")),
		EmployerName:       strings.TrimSpace(c.PostForm("employer_name")),
		ContractorName:     strings.TrimSpace(c.PostForm("contractor_name")),
		ContractDate:       strings.TrimSpace(c.PostForm("contract_date")),
		ContractNumber:     strings.TrimSpace(c.PostForm("contract_number")),
		InitialEstimate:    initialEstimate,
		ContractAmount:     contractAmount,
		PriceListsJSON:     strings.TrimSpace(c.PostForm("price_lists_data")),
		CalculationType:    strings.TrimSpace(c.PostForm("calculation_type")),
		AdjustmentIncluded: adjustmentIncluded,
		SurveyWithAddress:  surveyWithAddress,
		DeliveryDate:       strings.TrimSpace(c.PostForm("delivery_date")),
	}, nil
}

// --- surveys ---

func (h *Handler) surveyForm(c *gin.Context) {
	ctx := c.Request.Context()
	surveys, err := h.surveys.ListView(ctx)
	if err != nil {
		h.handleError(c, err, "An error occurred while loading surveys.")
		return
	}
	contracts, err := h.contracts.ListView(ctx)
	if err != nil {
		h.handleError(c, err, "An error occurred while loading surveys.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"surveys": surveys, "contracts": contracts})
}

func (h *Handler) createSurvey(c *gin.Context) {
	quantity, err := formFloat(c, "quantity")
	if err != nil {
		h.handleError(c, err, "An error occurred while saving the survey record.")
		return
	}
	contractID, err := optionalID(c.PostForm("contract_select"))
	if err != nil {
		h.handleError(c, err, "An error occurred while saving the survey record.")
		return
	}

	input := service.CreateSurveyInput{
		Location:   strings.TrimSpace(c.PostForm("location")),
		ItemTitle:  strings.TrimSpace(c.PostForm("item_title")),
		Quantity:   quantity,
		Unit:       strings.TrimSpace(c.PostForm("unit")),
		ContractID: contractID,
	}
	if _, err := h.surveys.Create(c.Request.Context(), input); err != nil {
		h.handleError(c, err, "An error occurred while saving the survey record.")
		return
	}
	c.Redirect(http.StatusFound, "/survey_form")
}

func (h *Handler) uploadSurveysExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.handleError(c, service.ErrNoFile, "")
		return
	}
	contractID, err := optionalID(c.PostForm("contract_id"))
	if err != nil {
		h.handleError(c, err, "An error occurred while processing the Excel file.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err, "An error occurred while processing the Excel file.")
		return
	}
	defer file.Close()

	count, err := h.surveys.ImportExcel(c.Request.Context(), file, excel.SurveyBatch{ContractID: contractID})
	if err != nil {
		h.handleError(c, err, "An error occurred while processing the Excel file.")
		return
	}

	h.log.Info().Int("rows", count).Msg("survey batch imported")
	c.Redirect(http.StatusFound, "/survey_form")
}

func (h *Handler) downloadSurveyTemplate(c *gin.Context) {
	result, err := h.surveys.Template()
	if err != nil {
		h.handleError(c, err, "An error occurred while building the template.")
		return
	}
	h.sendFile(c, result)
}

// --- shared ---

func (h *Handler) sendFile(c *gin.Context, result *service.FileResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, excelContentType, result.Content)
}

// handleError is the single error boundary: a missing upload is the only
// failure surfaced as a bad request, everything else collapses to a generic
// server error so callers cannot tell invalid data from a rejected write.
func (h *Handler) handleError(c *gin.Context, err error, message string) {
	if errors.Is(err, service.ErrNoFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected."})
		return
	}
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	if message == "" {
		message = "An error occurred."
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func formFloat(c *gin.Context, name string) (float64, error) {
	value, ok := c.GetPostForm(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", service.ErrInvalidInput, name)
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", service.ErrInvalidInput, name)
	}
	return parsed, nil
}

func formInt(c *gin.Context, name string) (int, error) {
	value, ok := c.GetPostForm(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", service.ErrInvalidInput, name)
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", service.ErrInvalidInput, name)
	}
	return parsed, nil
}

// optionalID parses a contract reference. An empty field means no reference;
// a parseable id is accepted as-is without checking that the contract exists.
func optionalID(value string) (*uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: contract id is not a number", service.ErrInvalidInput)
	}
	id := uint(parsed)
	return &id, nil
}
