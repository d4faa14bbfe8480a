package rankingstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

// ErrDuplicate is reported when the unique (candidate, post) index rejects a
// second entry; the cache is append-only.
var ErrDuplicate = errors.New("ranking already exists for this candidate and post")

type Provider interface {
	Get(candidateID, postID string) (rec *dbmodels.CandidateRanking, err error)
	Create(rec dbmodels.CandidateRanking) (id string, err error)
	ListByPost(postID string) (list []dbmodels.CandidateRanking, err error)
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

func (i impl) Get(candidateID, postID string) (*dbmodels.CandidateRanking, error) {
	rec := dbmodels.CandidateRanking{}
	err := i.db.
		Model(&dbmodels.CandidateRanking{}).
		Where("candidate_id = ?", candidateID).
		Where("post_id = ?", postID).
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

func (i impl) Create(rec dbmodels.CandidateRanking) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", ErrDuplicate
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByPost(postID string) (list []dbmodels.CandidateRanking, err error) {
	list = []dbmodels.CandidateRanking{}
	err = i.db.
		Model(&dbmodels.CandidateRanking{}).
		Where("post_id = ?", postID).
		Order("score desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.CandidateRanking{}).
		Error
}
