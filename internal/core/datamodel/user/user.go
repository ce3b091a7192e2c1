package user

import "time"

type User struct {
	ID             int64     `gorm:"primaryKey"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	FirstName      string    `gorm:"column:first_name;not null"`
	LastName       string    `gorm:"column:last_name;not null"`
	DateOfBirth    string    `gorm:"column:date_of_birth;not null"`
	PasswordDigest string    `gorm:"column:password_digest;not null"`
	Salt           string    `gorm:"column:salt;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }
