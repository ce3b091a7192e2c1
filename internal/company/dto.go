package company

// CreateCompanyDTO carries the create-company form.
type CreateCompanyDTO struct {
	CompanyName string `json:"companyName"`
}

// JoinCompanyDTO carries the invite code a user wants to redeem.
type JoinCompanyDTO struct {
	InviteCode string `json:"inviteCode"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateCompanyDTO) Validate() error {
	if d.CompanyName == "" {
		return ValidationError{Msg: "companyName is required"}
	}
	return nil
}

func (d JoinCompanyDTO) Validate() error {
	if d.InviteCode == "" {
		return ValidationError{Msg: "inviteCode is required"}
	}
	return nil
}

// CompaniesResponse wraps the membership list.
type CompaniesResponse struct {
	Companies []*Company `json:"companies"`
}

// StatusResponse is the minimal success envelope mutation endpoints answer with.
type StatusResponse struct {
	Success bool `json:"success"`
}
