package models

import (
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/catalog"
)

// ItemModel is the persistence model for the Item aggregate.
type ItemModel struct {
	AggregateModel
	Code           string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string             `gorm:"type:varchar(200);not null"`
	Description    string             `gorm:"type:text"`
	Category       string             `gorm:"type:varchar(100);index"`
	Subcategory    string             `gorm:"type:varchar(100)"`
	UnitPrice      decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	UnitWeight     decimal.Decimal    `gorm:"type:decimal(12,3);not null"`
	UnitVolume     decimal.Decimal    `gorm:"type:decimal(12,4);not null"`
	Fragile        bool               `gorm:"not null;default:false"`
	Hazardous      bool               `gorm:"not null;default:false"`
	StockThreshold int                `gorm:"not null;default:10"`
	Status         catalog.ItemStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ImageURL       string             `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item aggregate.
func (m *ItemModel) ToDomain() *catalog.Item {
	return &catalog.Item{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Description:       m.Description,
		Category:          m.Category,
		Subcategory:       m.Subcategory,
		UnitPrice:         m.UnitPrice,
		UnitWeight:        m.UnitWeight,
		UnitVolume:        m.UnitVolume,
		Fragile:           m.Fragile,
		Hazardous:         m.Hazardous,
		StockThreshold:    m.StockThreshold,
		Status:            m.Status,
		ImageURL:          m.ImageURL,
	}
}

// FromDomain populates the persistence model from a domain Item aggregate.
func (m *ItemModel) FromDomain(i *catalog.Item) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.Code = i.Code
	m.Name = i.Name
	m.Description = i.Description
	m.Category = i.Category
	m.Subcategory = i.Subcategory
	m.UnitPrice = i.UnitPrice
	m.UnitWeight = i.UnitWeight
	m.UnitVolume = i.UnitVolume
	m.Fragile = i.Fragile
	m.Hazardous = i.Hazardous
	m.StockThreshold = i.StockThreshold
	m.Status = i.Status
	m.ImageURL = i.ImageURL
}

// ItemModelFromDomain creates a new persistence model from a domain Item aggregate.
func ItemModelFromDomain(i *catalog.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}
