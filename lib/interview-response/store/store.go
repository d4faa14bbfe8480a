package responsestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.InterviewResponse) (id string, err error)
	GetByCandidate(candidateID string) (rec *dbmodels.InterviewResponse, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.InterviewResponse) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByCandidate(candidateID string) (*dbmodels.InterviewResponse, error) {
	rec := dbmodels.InterviewResponse{}
	err := i.db.
		Model(&dbmodels.InterviewResponse{}).
		Where("candidate_id = ?", candidateID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
