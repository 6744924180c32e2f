package dbmodels

import (
	"time"
)

type User struct {
	BaseModel
	Email           string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash    string `gorm:"type:varchar(128)"`
	FirstName       string `gorm:"type:varchar(150)"`
	LastName        string `gorm:"type:varchar(150)"`
	Locale          string `gorm:"type:varchar(10)"`
	EmailVerifiedAt *time.Time
}

func (u User) GetFullName() string {
	return u.FirstName + " " + u.LastName
}
