package product

import (
	"time"

	productDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/product"
)

type Product struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	Name      string    `json:"nome"`
	Category  string    `json:"categoria"`
	Price     float64   `json:"prezzo"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDataModel(p *productDatamodel.Product) *Product {
	return &Product{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}

func ToDataModel(p *Product) *productDatamodel.Product {
	return &productDatamodel.Product{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}
