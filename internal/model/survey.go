package model

// Survey is one field measurement (متره) taken at a site.
type Survey struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Location   string    `gorm:"column:location" json:"location"`
	ItemTitle  string    `gorm:"column:item_title" json:"item_title"`
	Quantity   float64   `gorm:"column:quantity" json:"quantity"`
	Unit       string    `gorm:"column:unit" json:"unit"`
	ContractID *uint     `gorm:"column:contract_id" json:"contract_id,omitempty"`
	Contract   *Contract `gorm:"foreignKey:ContractID" json:"-"`
}

func (Survey) TableName() string { return "surveys" }

// ContractName resolves the owning contract's name for display.
func (s *Survey) ContractName() string {
	if s.Contract == nil {
		return ""
	}
	return s.Contract.ContractName
}
