package postgres

import (
	"gorm.io/gorm"

	productDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/product"
	"github.com/frahmantamala/retail-management/internal/product"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) product.RepositoryAPI {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListByCompany(companyID int64) ([]*productDatamodel.Product, error) {
	var products []*productDatamodel.Product
	err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *productDatamodel.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) Update(companyID, id int64, name, category string, price float64) error {
	return r.db.Model(&productDatamodel.Product{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Updates(map[string]interface{}{
			"name":     name,
			"category": category,
			"price":    price,
		}).Error
}

func (r *ProductRepository) Delete(companyID, id int64) error {
	return r.db.
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&productDatamodel.Product{}).Error
}
