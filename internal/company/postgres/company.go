package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/retail-management/internal/company"
	companyDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/company"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.RepositoryAPI {
	return &CompanyRepository{db: db}
}

// CreateWithOwner inserts the company and the owner's membership atomically.
func (r *CompanyRepository) CreateWithOwner(c *companyDatamodel.Company, ownerID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		member := &companyDatamodel.Member{CompanyID: c.ID, UserID: ownerID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
	})
}

func (r *CompanyRepository) GetByID(id int64) (*companyDatamodel.Company, error) {
	var c companyDatamodel.Company
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) GetByInviteCode(code string) (*companyDatamodel.Company, error) {
	var c companyDatamodel.Company
	err := r.db.Where("invite_code = ?", code).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) ListForUser(userID int64) ([]*companyDatamodel.Company, error) {
	var companies []*companyDatamodel.Company
	err := r.db.
		Joins("JOIN company_members ON company_members.company_id = companies.id").
		Where("company_members.user_id = ?", userID).
		Order("companies.name ASC").
		Find(&companies).Error
	return companies, err
}

// AddMember is idempotent: inserting an existing membership is a no-op.
func (r *CompanyRepository) AddMember(companyID, userID int64) error {
	member := &companyDatamodel.Member{CompanyID: companyID, UserID: userID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
}

func (r *CompanyRepository) RemoveMember(companyID, userID int64) error {
	return r.db.
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Delete(&companyDatamodel.Member{}).Error
}

func (r *CompanyRepository) IsMember(companyID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&companyDatamodel.Member{}).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Count(&count).Error
	return count > 0, err
}
