package company

import "time"

type Company struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"column:name;not null"`
	InviteCode string    `gorm:"column:invite_code;index;not null"`
	OwnerEmail string    `gorm:"column:owner_email;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Company) TableName() string { return "companies" }

// Member is one row of the membership relation. The source service kept a
// companies array on each user document instead; a proper join table gives
// the same set semantics with referential integrity.
type Member struct {
	CompanyID int64     `gorm:"column:company_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Member) TableName() string { return "company_members" }
