package company

import (
	"log/slog"

	"github.com/frahmantamala/retail-management/internal"
	companyDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/company"
)

type RepositoryAPI interface {
	CreateWithOwner(c *companyDatamodel.Company, ownerID int64) error
	GetByID(id int64) (*companyDatamodel.Company, error)
	GetByInviteCode(code string) (*companyDatamodel.Company, error)
	ListForUser(userID int64) ([]*companyDatamodel.Company, error)
	AddMember(companyID, userID int64) error
	RemoveMember(companyID, userID int64) error
	IsMember(companyID, userID int64) (bool, error)
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

// ListForUser returns the companies the user is a member of.
func (s *Service) ListForUser(userID int64) ([]*Company, error) {
	records, err := s.repo.ListForUser(userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list companies", err)
	}

	companies := make([]*Company, 0, len(records))
	for _, record := range records {
		companies = append(companies, FromDataModel(record))
	}
	return companies, nil
}

// Create inserts the company and the owner's membership in one transaction,
// so a created company is never ownerless.
func (s *Service) Create(dto CreateCompanyDTO, ownerID int64, ownerEmail string) (*Company, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	code, err := NewInviteCode()
	if err != nil {
		return nil, internal.NewInternalError("failed to generate invite code", err)
	}

	record := &companyDatamodel.Company{
		Name:       dto.CompanyName,
		InviteCode: code,
		OwnerEmail: ownerEmail,
	}
	if err := s.repo.CreateWithOwner(record, ownerID); err != nil {
		return nil, internal.NewInternalError("failed to create company", err)
	}

	s.logger.Info("company created", "company_id", record.ID, "owner", ownerEmail)
	return FromDataModel(record), nil
}

// Join redeems an invite code. Adding an existing member is a no-op.
func (s *Service) Join(dto JoinCompanyDTO, userID int64) (*Company, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByInviteCode(dto.InviteCode)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up invite code", err)
	}
	if record == nil {
		return nil, internal.ErrInvalidInviteCode
	}

	if err := s.repo.AddMember(record.ID, userID); err != nil {
		return nil, internal.NewInternalError("failed to add member", err)
	}

	s.logger.Info("user joined company", "company_id", record.ID, "user_id", userID)
	return FromDataModel(record), nil
}

// RemoveMember removes a member from a company. Only the owner may do it,
// and not to themselves.
func (s *Service) RemoveMember(companyID, targetUserID int64, requesterID int64, requesterEmail string) error {
	record, err := s.repo.GetByID(companyID)
	if err != nil {
		return internal.NewInternalError("failed to look up company", err)
	}
	if record == nil {
		return internal.ErrCompanyNotFound
	}

	if record.OwnerEmail != requesterEmail {
		return internal.ErrNotCompanyOwner
	}
	if targetUserID == requesterID {
		return internal.ErrCannotRemoveSelf
	}

	if err := s.repo.RemoveMember(companyID, targetUserID); err != nil {
		return internal.NewInternalError("failed to remove member", err)
	}

	s.logger.Info("member removed", "company_id", companyID, "user_id", targetUserID, "by", requesterEmail)
	return nil
}

// IsMember is the membership check the authorization middleware runs for
// every tenant-scoped request.
func (s *Service) IsMember(companyID, userID int64) (bool, error) {
	return s.repo.IsMember(companyID, userID)
}
