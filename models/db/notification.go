package dbmodels

import (
	"talentflow-backend/models"
)

// Notification is one row of the append-only dispatch log, keyed by recipient.
type Notification struct {
	BaseModel
	Recipient   string            `gorm:"type:varchar(255);index"`
	Kind        models.EffectKind `gorm:"type:varchar(50)"`
	Subject     string            `gorm:"type:varchar(255)"`
	Body        string
	CandidateID string `gorm:"type:varchar(36);index"`
}
