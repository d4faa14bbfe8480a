package historystore

import (
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Append(rec dbmodels.PipelineHistory) (id string, err error)
	ListByCandidate(candidateID string) (list []dbmodels.PipelineHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Append(rec dbmodels.PipelineHistory) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.PipelineHistory, err error) {
	list = []dbmodels.PipelineHistory{}
	err = i.db.
		Model(&dbmodels.PipelineHistory{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
