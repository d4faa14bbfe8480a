package dbmodels

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"talentflow-backend/models"
)

type Candidate struct {
	BaseModel
	FirstName       string `gorm:"type:varchar(150)"`
	LastName        string `gorm:"type:varchar(150)"`
	Email           string `gorm:"type:varchar(255);index"`
	Phone           string `gorm:"type:varchar(32)"`
	Role            string `gorm:"type:varchar(255)"` // desired role
	ExperienceYears int
	Skills          pq.StringArray `gorm:"type:text[]"`
	Education       string
	WorkHistory     string
	Projects        string
	Certifications  string
	Source          models.CandidateSource `gorm:"type:varchar(50)"`
	Status          models.PipelineStatus  `gorm:"type:varchar(32);index"`

	// Closed set of outbound effects already performed, the single
	// idempotence guard for notification side effects.
	SideEffectsSent pq.StringArray `gorm:"type:text[]"`

	// Token for the public interview-response link mailed with the invite.
	ResponseToken string `gorm:"type:varchar(36);uniqueIndex"`

	Interview InterviewDetails `gorm:"embedded;embeddedPrefix:interview_"`
}

// InterviewDetails is the interview slice of the candidate record. Column
// names carry the interview_ prefix so a partial update touches only them.
type InterviewDetails struct {
	Role           string         `gorm:"type:varchar(255)"`
	Dates          pq.StringArray `gorm:"type:text[]"` // proposed dates, ISO yyyy-mm-dd
	RoundType      string         `gorm:"type:varchar(50)"`
	Interviewers   pq.StringArray `gorm:"type:text[]"`
	CurrentSalary  int
	ExpectedSalary int
	JoiningDate    string `gorm:"type:varchar(20)"`
	Feedback       string
	InviteSentAt   *time.Time
	VerifySentAt   *time.Time
	CongratsSentAt *time.Time
}

func (c Candidate) GetFullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// HasEffect reports whether the given side effect was already performed.
func (c Candidate) HasEffect(kind models.EffectKind) bool {
	for _, e := range c.SideEffectsSent {
		if e == string(kind) {
			return true
		}
	}
	return false
}

type CandidateFilter struct {
	Status models.PipelineStatus `json:"status"`
	PostID string                `json:"post_id"`
	Search string                `json:"search"`
}
