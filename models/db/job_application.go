package dbmodels

import (
	"talentflow-backend/models"
)

// JobApplication is the join row between a candidate and a post. Its status
// column is a read-only projection maintained by the pipeline.
type JobApplication struct {
	BaseModel
	PostID      string           `gorm:"type:varchar(36);uniqueIndex:idx_post_candidate"`
	Post        *RecruitmentPost `gorm:"foreignKey:PostID"`
	CandidateID string           `gorm:"type:varchar(36);uniqueIndex:idx_post_candidate"`
	Candidate   *Candidate       `gorm:"foreignKey:CandidateID"`
	Status      models.ApplicationStatus `gorm:"type:varchar(32)"`
}
