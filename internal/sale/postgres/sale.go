package postgres

import (
	"time"

	"gorm.io/gorm"

	saleDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/sale"
	"github.com/frahmantamala/retail-management/internal/sale"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) sale.RepositoryAPI {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) ListByCompany(companyID int64) ([]*saleDatamodel.Sale, error) {
	var sales []*saleDatamodel.Sale
	err := r.db.
		Preload("Items").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

// Create inserts the sale and its items in one go; gorm cascades the
// association inside a transaction.
func (r *SaleRepository) Create(s *saleDatamodel.Sale) error {
	return r.db.Create(s).Error
}

// ItemsForReport returns the flattened receipt lines the report is built
// from, narrowed by the optional window and item filters.
func (r *SaleRepository) ItemsForReport(companyID int64, from, to time.Time, category, product string) ([]sale.SoldItem, error) {
	query := r.db.
		Table("sale_items").
		Select("sale_items.sale_id, sales.created_at AS sold_at, sale_items.name, sale_items.category, sale_items.price").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.company_id = ?", companyID)

	if !from.IsZero() {
		query = query.Where("sales.created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("sales.created_at <= ?", to)
	}
	if category != "" {
		query = query.Where("sale_items.category = ?", category)
	}
	if product != "" {
		query = query.Where("sale_items.name = ?", product)
	}

	var items []sale.SoldItem
	err := query.Scan(&items).Error
	return items, err
}
