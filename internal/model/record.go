package model

// Record is one priced line item drawn from a price list.
//
// ContractID is advisory: the schema declares no foreign key and inserts are
// never checked against contracts, so a record may reference a contract that
// does not exist. Display resolves such references to an empty name.
type Record struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Code             string    `gorm:"column:code" json:"code"`
	Description      string    `gorm:"column:description" json:"description"`
	Unit             string    `gorm:"column:unit" json:"unit"`
	YearlyVolume     float64   `gorm:"column:yearly_volume" json:"yearly_volume"`
	Repeats          int       `gorm:"column:repeats" json:"repeats"`
	ContractDuration int       `gorm:"column:contract_duration" json:"contract_duration"`
	UnitPrice        float64   `gorm:"column:unit_price" json:"unit_price"`
	ContractID       *uint     `gorm:"column:contract_id" json:"contract_id,omitempty"`
	PriceListName    string    `gorm:"column:price_list_name" json:"price_list_name"`
	ChapterName      string    `gorm:"column:chapter_name" json:"chapter_name"`
	Contract         *Contract `gorm:"foreignKey:ContractID" json:"-"`
}

func (Record) TableName() string { return "records" }

// ContractName resolves the owning contract's name for display and export.
func (r *Record) ContractName() string {
	if r.Contract == nil {
		return ""
	}
	return r.Contract.ContractName
}
