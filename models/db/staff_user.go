package dbmodels

import (
	"fmt"
	"time"
)

type StaffUser struct {
	BaseModel
	Password  string `gorm:"type:varchar(128)"`
	FirstName string `gorm:"type:varchar(150)"`
	LastName  string `gorm:"type:varchar(150)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	IsActive  bool
	LastLogin time.Time
}

func (u StaffUser) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
