package product

import "time"

type Product struct {
	ID        int64     `gorm:"primaryKey"`
	CompanyID int64     `gorm:"column:company_id;index;not null"`
	Name      string    `gorm:"column:name;not null"`
	Category  string    `gorm:"column:category"`
	Price     float64   `gorm:"column:price;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
