package sale

import "time"

type Sale struct {
	ID        int64     `gorm:"primaryKey"`
	CompanyID int64     `gorm:"column:company_id;index;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`
	Items     []Item    `gorm:"foreignKey:SaleID"`
}

func (Sale) TableName() string { return "sales" }

type Item struct {
	ID       int64   `gorm:"primaryKey"`
	SaleID   int64   `gorm:"column:sale_id;index;not null"`
	Name     string  `gorm:"column:name;not null"`
	Category string  `gorm:"column:category"`
	Price    float64 `gorm:"column:price;not null"`
}

func (Item) TableName() string { return "sale_items" }
