package sale

import (
	"time"

	saleDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/sale"
)

// Sale is one receipt: the items rung up together at the till.
type Sale struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []Item    `json:"items"`
}

type Item struct {
	Name     string  `json:"nome"`
	Category string  `json:"categoria"`
	Price    float64 `json:"prezzo"`
}

func FromDataModel(s *saleDatamodel.Sale) *Sale {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, Item{
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
		})
	}
	return &Sale{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		CreatedAt: s.CreatedAt,
		Items:     items,
	}
}
