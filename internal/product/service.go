package product

import (
	"log/slog"

	"github.com/frahmantamala/retail-management/internal"
	productDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/product"
)

type RepositoryAPI interface {
	ListByCompany(companyID int64) ([]*productDatamodel.Product, error)
	Create(p *productDatamodel.Product) error
	Update(companyID, id int64, name, category string, price float64) error
	Delete(companyID, id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListByCompany(companyID int64) ([]*Product, error) {
	records, err := s.repo.ListByCompany(companyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list products", err)
	}

	products := make([]*Product, 0, len(records))
	for _, record := range records {
		products = append(products, FromDataModel(record))
	}
	return products, nil
}

func (s *Service) Create(dto ProductDTO, companyID int64) (*Product, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &productDatamodel.Product{
		CompanyID: companyID,
		Name:      dto.Name,
		Category:  dto.Category,
		Price:     dto.Price,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, internal.NewInternalError("failed to create product", err)
	}
	return FromDataModel(record), nil
}

func (s *Service) Update(dto ProductDTO, companyID, id int64) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(companyID, id, dto.Name, dto.Category, dto.Price); err != nil {
		return internal.NewInternalError("failed to update product", err)
	}
	return nil
}

func (s *Service) Delete(companyID, id int64) error {
	if err := s.repo.Delete(companyID, id); err != nil {
		return internal.NewInternalError("failed to delete product", err)
	}
	return nil
}
