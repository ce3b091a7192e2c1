package category

import (
	"log/slog"

	"github.com/frahmantamala/retail-management/internal"
	categoryDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	ListByCompany(companyID int64) ([]*categoryDatamodel.Category, error)
	Create(c *categoryDatamodel.Category) error
	Rename(companyID, id int64, name string) error
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

func (s *Service) ListByCompany(companyID int64) ([]*Category, error) {
	records, err := s.repo.ListByCompany(companyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list categories", err)
	}

	categories := make([]*Category, 0, len(records))
	for _, record := range records {
		categories = append(categories, FromDataModel(record))
	}
	return categories, nil
}

func (s *Service) Create(dto CategoryDTO, companyID int64) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &categoryDatamodel.Category{
		CompanyID: companyID,
		Name:      dto.Name,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, internal.NewInternalError("failed to create category", err)
	}
	return FromDataModel(record), nil
}

func (s *Service) Rename(dto CategoryDTO, companyID, id int64) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if err := s.repo.Rename(companyID, id, dto.Name); err != nil {
		return internal.NewInternalError("failed to rename category", err)
	}
	return nil
}

func (s *Service) Delete(companyID, id int64) error {
	if err := s.repo.Delete(companyID, id); err != nil {
		return internal.NewInternalError("failed to delete category", err)
	}
	return nil
}
