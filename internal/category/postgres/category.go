package postgres

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/retail-management/internal/category"
	categoryDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/category"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByCompany(companyID int64) ([]*categoryDatamodel.Category, error) {
	var categories []*categoryDatamodel.Category
	err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Create(c *categoryDatamodel.Category) error {
	return r.db.Create(c).Error
}

// Rename and Delete are scoped by company_id so one tenant can never touch
// another tenant's rows, whatever id the client sends.
func (r *CategoryRepository) Rename(companyID, id int64, name string) error {
	return r.db.Model(&categoryDatamodel.Category{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("name", name).Error
}

func (r *CategoryRepository) Delete(companyID, id int64) error {
	return r.db.
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&categoryDatamodel.Category{}).Error
}
