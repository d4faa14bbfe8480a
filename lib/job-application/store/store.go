package applicationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// ErrAlreadyApplied is reported when the unique (post, candidate) pair
// constraint rejects a duplicate application.
var ErrAlreadyApplied = errors.New("candidate already applied to this post")

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	ListByPost(postID string) (list []dbmodels.JobApplication, err error)
	ListByCandidate(candidateID string) (list []dbmodels.JobApplication, err error)
	// UpdateStatusByCandidate mirrors the pipeline status onto every
	// application row of the candidate. Only the pipeline calls it.
	UpdateStatusByCandidate(candidateID string, status models.ApplicationStatus) error
	DeleteByCandidate(candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", ErrAlreadyApplied
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByPost(postID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Model(&dbmodels.JobApplication{}).
		Where("post_id = ?", postID).
		Preload(clause.Associations).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Model(&dbmodels.JobApplication{}).
		Where("candidate_id = ?", candidateID).
		Preload(clause.Associations).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatusByCandidate(candidateID string, status models.ApplicationStatus) error {
	return i.db.
		Model(&dbmodels.JobApplication{}).
		Where("candidate_id = ?", candidateID).
		Update("status", status).
		Error
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.JobApplication{}).
		Error
}
