package dbmodels

import (
	"github.com/lib/pq"
)

type RecruitmentPost struct {
	BaseModel
	Title              string `gorm:"type:varchar(255)"`
	Department         string `gorm:"type:varchar(255)"`
	Description        string
	RequiredExperience int            // years
	Qualification      string         `gorm:"type:varchar(255)"`
	Skills             pq.StringArray `gorm:"type:text[]"`
	SalaryFrom         int
	SalaryTo           int
	Openings           int
	JDFileName         string `gorm:"type:varchar(255)"` // job description blob in object storage
	Closed             bool
}

type PostFilter struct {
	Department string `json:"department"`
	Search     string `json:"search"`
	OnlyOpen   bool   `json:"only_open"`
}
