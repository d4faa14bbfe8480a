package dbmodels

import (
	"talentflow-backend/models"
)

// PipelineHistory is the append-only audit trail of applied transitions.
type PipelineHistory struct {
	BaseModel
	CandidateID string                `gorm:"type:varchar(36);index"`
	Event       models.PipelineEvent  `gorm:"type:varchar(50)"`
	FromStatus  models.PipelineStatus `gorm:"type:varchar(32)"`
	ToStatus    models.PipelineStatus `gorm:"type:varchar(32)"`
	ActorID     string                `gorm:"type:varchar(36)"`
}
