package dbmodels

import (
	"talentflow-backend/models"
)

// InterviewResponse is the candidate's own reply to a proposed interview,
// created through the public link and never by staff.
type InterviewResponse struct {
	BaseModel
	CandidateID     string     `gorm:"type:varchar(36);uniqueIndex"`
	Candidate       *Candidate `gorm:"foreignKey:CandidateID"`
	Reply           models.ResponseReply `gorm:"type:varchar(20)"`
	ChosenDate      string     `gorm:"type:varchar(20)"`
	JoiningDate     string     `gorm:"type:varchar(20)"`
	ExpectedSalary  int
	RelocationReady bool
	Comment         string
}

// Declined reports a recorded non-accept reply.
func (r InterviewResponse) Declined() bool {
	return r.Reply != "" && r.Reply != models.ResponseReplyAccepted
}
