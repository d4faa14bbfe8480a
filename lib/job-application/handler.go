package jobapplication

import (
	"github.com/pkg/errors"
	"talentflow-backend/db"
	candidatestore "talentflow-backend/lib/candidate/store"
	applicationstore "talentflow-backend/lib/job-application/store"
	poststore "talentflow-backend/lib/recruitment-post/store"
	"talentflow-backend/models"
	postapimodels "talentflow-backend/models/api/post"
	dbmodels "talentflow-backend/models/db"
	"talentflow-backend/models/errs"
)

var (
	ErrPostNotFound      = errors.New("recruitment post not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrPostClosed        = errors.New("recruitment post is closed")
)

type Provider interface {
	Apply(postID, candidateID string) (id string, err error)
	ListByPost(postID string) (list []postapimodels.ApplicationView, err error)
	ListByCandidate(candidateID string) (list []postapimodels.ApplicationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          applicationstore.NewInstance(db.DB),
		postStore:      poststore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          applicationstore.Provider
	postStore      poststore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Apply(postID, candidateID string) (string, error) {
	post, err := i.postStore.GetByID(postID)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", ErrPostNotFound
	}
	if post.Closed {
		return "", ErrPostClosed
	}
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", ErrCandidateNotFound
	}
	rec := dbmodels.JobApplication{
		PostID:      postID,
		CandidateID: candidateID,
		Status:      models.ApplicationStatusFor(candidate.Status),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		// the unique (post, candidate) pair rejects a duplicate apply
		if errors.Is(err, applicationstore.ErrAlreadyApplied) {
			return "", errs.NewConflictError("candidate already applied to this post")
		}
		return "", err
	}
	return id, nil
}

func (i impl) ListByPost(postID string) ([]postapimodels.ApplicationView, error) {
	list, err := i.store.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListByCandidate(candidateID string) ([]postapimodels.ApplicationView, error) {
	list, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func convertList(list []dbmodels.JobApplication) []postapimodels.ApplicationView {
	result := make([]postapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, postapimodels.ApplicationConvert(rec))
	}
	return result
}
