package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/saeedne/StatusReportProject/internal/jalali"
	"github.com/saeedne/StatusReportProject/internal/model"
	"github.com/saeedne/StatusReportProject/internal/repository"
)

type ContractService struct {
	contracts *repository.ContractRepository
}

func NewContractService(contracts *repository.ContractRepository) *ContractService {
	return &ContractService{contracts: contracts}
}

// CreateContractInput carries the coerced form fields; both dates are Jalali
// strings exactly as the user typed them.
type CreateContractInput struct {
	ContractName       string
	EmployerName       string
	ContractorName     string
	ContractDate       string
	ContractNumber     string
	InitialEstimate    float64
	ContractAmount     float64
	PriceListsJSON     string
	CalculationType    string
	AdjustmentIncluded bool
	SurveyWithAddress  bool
	DeliveryDate       string
}

// ContractView is the listing shape handed to the presentation layer: stored
// fields plus the decoded price lists and the dates converted back to Jalali.
type ContractView struct {
	model.Contract
	ContractDateJalali string            `json:"contract_date_jalali"`
	DeliveryDateJalali string            `json:"delivery_date_jalali"`
	PriceLists         []model.PriceList `json:"price_lists"`
}

func (s *ContractService) Create(ctx context.Context, input CreateContractInput) (*model.Contract, error) {
	for name, value := range map[string]string{
		"contract_name":   input.ContractName,
		"employer_name":   input.EmployerName,
		"contractor_name": input.ContractorName,
		"contract_number": input.ContractNumber,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
		}
	}

	contractDate, err := jalali.Parse(input.ContractDate)
	if err != nil {
		return nil, fmt.Errorf("%w: contract_date: %v", ErrInvalidInput, err)
	}
	deliveryDate, err := jalali.Parse(input.DeliveryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: delivery_date: %v", ErrInvalidInput, err)
	}

	priceLists, err := normalizePriceLists(input.PriceListsJSON)
	if err != nil {
		return nil, err
	}

	contract := &model.Contract{
		ContractName:       input.ContractName,
		EmployerName:       input.EmployerName,
		ContractorName:     input.ContractorName,
		ContractDate:       contractDate,
		ContractNumber:     input.ContractNumber,
		InitialEstimate:    input.InitialEstimate,
		ContractAmount:     input.ContractAmount,
		PriceLists:         priceLists,
		Chapters:           datatypes.JSON("{}"),
		CalculationType:    input.CalculationType,
		AdjustmentIncluded: input.AdjustmentIncluded,
		SurveyWithAddress:  input.SurveyWithAddress,
		DeliveryDate:       deliveryDate,
	}
	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) ListView(ctx context.Context) ([]ContractView, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ContractView, 0, len(contracts))
	for i := range contracts {
		contract := contracts[i]
		views = append(views, ContractView{
			Contract:           contract,
			ContractDateJalali: jalali.Format(contract.ContractDate),
			DeliveryDateJalali: jalali.Format(contract.DeliveryDate),
			PriceLists:         contract.DecodedPriceLists(),
		})
	}
	return views, nil
}

// normalizePriceLists re-encodes the submitted payload so a contract row can
// never carry price list data that fails to deserialize later. An empty
// submission persists as an empty list.
func normalizePriceLists(raw string) (datatypes.JSON, error) {
	if raw == "" {
		return datatypes.JSON("[]"), nil
	}
	var lists []model.PriceList
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		return nil, fmt.Errorf("%w: price_lists_data is not a valid list: %v", ErrInvalidInput, err)
	}
	encoded, err := json.Marshal(lists)
	if err != nil {
		return nil, fmt.Errorf("%w: price_lists_data: %v", ErrInvalidInput, err)
	}
	return datatypes.JSON(encoded), nil
}
