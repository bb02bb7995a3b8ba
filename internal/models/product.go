package models

// Product represents a single item in the catalog.
// The ID is assigned by the store on create; ID 0 means "not yet persisted".
type Product struct {
	ID        int     `json:"id" form:"id" gorm:"primaryKey"`
	StockNo   string  `json:"stockNo" form:"stockNo" gorm:"type:varchar(20)" validate:"required,max=20"`
	StockName string  `json:"stockName" form:"stockName" gorm:"type:varchar(200)" validate:"required,max=200"`
	Price     float64 `json:"price" form:"price" validate:"gte=0"`
	Category  string  `json:"category" form:"category" gorm:"type:varchar(200)" validate:"required,max=200"`
}
