package company

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	companyDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/company"
)

// Company is a tenant: an isolated unit owning its own categories,
// products and sales. Membership grants access; the owner can additionally
// manage members.
type Company struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"inviteCode"`
	OwnerEmail string    `json:"owner"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromDataModel(c *companyDatamodel.Company) *Company {
	return &Company{
		ID:         c.ID,
		Name:       c.Name,
		InviteCode: c.InviteCode,
		OwnerEmail: c.OwnerEmail,
		CreatedAt:  c.CreatedAt,
	}
}

func ToDataModel(c *Company) *companyDatamodel.Company {
	return &companyDatamodel.Company{
		ID:         c.ID,
		Name:       c.Name,
		InviteCode: c.InviteCode,
		OwnerEmail: c.OwnerEmail,
		CreatedAt:  c.CreatedAt,
	}
}

const (
	inviteCodeLength  = 6
	inviteCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewInviteCode returns a 6-character uppercase alphanumeric code. Codes are
// short and human-shareable; uniqueness is probabilistic, not enforced.
func NewInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeCharset))))
		if err != nil {
			return "", fmt.Errorf("generate invite code: %w", err)
		}
		code[i] = inviteCodeCharset[n.Int64()]
	}
	return string(code), nil
}
