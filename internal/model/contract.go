package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// PriceList is one named pricing schedule a contract draws line items from.
// Chapters are plain labels inside the list; the system only stamps them onto
// records, it never resolves them back.
type PriceList struct {
	Name     string   `json:"name"`
	Chapters []string `json:"chapters,omitempty"`
}

type Contract struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	ContractName       string         `gorm:"column:contract_name" json:"contract_name"`
	EmployerName       string         `gorm:"column:employer_name" json:"employer_name"`
	ContractorName     string         `gorm:"column:contractor_name" json:"contractor_name"`
	ContractDate       time.Time      `gorm:"column:contract_date" json:"contract_date"`
	ContractNumber     string         `gorm:"column:contract_number" json:"contract_number"`
	InitialEstimate    float64        `gorm:"column:initial_estimate" json:"initial_estimate"`
	ContractAmount     float64        `gorm:"column:contract_amount" json:"contract_amount"`
	PriceLists         datatypes.JSON `gorm:"column:price_lists" json:"-"`
	Chapters           datatypes.JSON `gorm:"column:chapters" json:"-"`
	CalculationType    string         `gorm:"column:calculation_type" json:"calculation_type"`
	AdjustmentIncluded bool           `gorm:"column:adjustment_included" json:"adjustment_included"`
	SurveyWithAddress  bool           `gorm:"column:survey_with_address" json:"survey_with_address"`
	DeliveryDate       time.Time      `gorm:"column:delivery_date" json:"delivery_date"`
}

func (Contract) TableName() string { return "contracts" }

// DecodedPriceLists returns the contract's price lists, tolerating absent or
// malformed column data by decoding to an empty slice. Malformed data can only
// predate this service: creation validates the payload before persisting.
func (c *Contract) DecodedPriceLists() []PriceList {
	if len(c.PriceLists) == 0 {
		return []PriceList{}
	}
	var lists []PriceList
	if err := json.Unmarshal(c.PriceLists, &lists); err != nil {
		return []PriceList{}
	}
	return lists
}
