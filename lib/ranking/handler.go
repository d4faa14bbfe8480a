package ranking

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/db"
	"talentflow-backend/lib/ai"
	candidatestore "talentflow-backend/lib/candidate/store"
	rankingstore "talentflow-backend/lib/ranking/store"
	poststore "talentflow-backend/lib/recruitment-post/store"
	rankingapimodels "talentflow-backend/models/api/ranking"
	dbmodels "talentflow-backend/models/db"
	"talentflow-backend/models/errs"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrPostNotFound      = errors.New("recruitment post not found")
)

// Provider is the append-only score cache. An existing (candidate, post)
// entry is returned as-is and never recomputed, even when the job
// description has changed since.
type Provider interface {
	GetOrCompute(ctx context.Context, candidateID, postID string) (rankingapimodels.RankingView, error)
	// ScoresByPost returns only the already cached scores, it never triggers
	// a compute.
	ScoresByPost(postID string) (map[string]int, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		rankingstore.NewInstance(db.DB),
		candidatestore.NewInstance(db.DB),
		poststore.NewInstance(db.DB),
		ai.Instance,
	)
}

func NewInstance(
	store rankingstore.Provider,
	candidateStore candidatestore.Provider,
	postStore poststore.Provider,
	scorer ai.Provider,
) Provider {
	return impl{
		store:          store,
		candidateStore: candidateStore,
		postStore:      postStore,
		scorer:         scorer,
	}
}

type impl struct {
	store          rankingstore.Provider
	candidateStore candidatestore.Provider
	postStore      poststore.Provider
	scorer         ai.Provider
}

func (i impl) GetOrCompute(ctx context.Context, candidateID, postID string) (rankingapimodels.RankingView, error) {
	cached, err := i.store.Get(candidateID, postID)
	if err != nil {
		return rankingapimodels.RankingView{}, errs.PersistenceError{Err: err}
	}
	if cached != nil {
		return rankingapimodels.Convert(*cached), nil
	}

	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return rankingapimodels.RankingView{}, errs.PersistenceError{Err: err}
	}
	if candidate == nil {
		return rankingapimodels.RankingView{}, ErrCandidateNotFound
	}
	post, err := i.postStore.GetByID(postID)
	if err != nil {
		return rankingapimodels.RankingView{}, errs.PersistenceError{Err: err}
	}
	if post == nil {
		return rankingapimodels.RankingView{}, ErrPostNotFound
	}

	// a scorer failure leaves no cache entry, so the call may be retried
	result, err := i.scorer.ScoreCandidate(ctx, candidateSummary(*candidate), postSummary(*post))
	if err != nil {
		return rankingapimodels.RankingView{}, errs.ComputeError{Err: err}
	}

	rec := dbmodels.CandidateRanking{
		CandidateID: candidateID,
		PostID:      postID,
		Score:       result.Score,
		Reasoning:   result.Reasoning,
	}
	_, err = i.store.Create(rec)
	if err != nil {
		if errors.Is(err, rankingstore.ErrDuplicate) {
			// a concurrent call won the insert, its entry is the cache
			log.
				WithField("candidate_id", candidateID).
				WithField("post_id", postID).
				Info("concurrent ranking insert, returning the existing entry")
			winner, getErr := i.store.Get(candidateID, postID)
			if getErr != nil {
				return rankingapimodels.RankingView{}, errs.PersistenceError{Err: getErr}
			}
			if winner != nil {
				return rankingapimodels.Convert(*winner), nil
			}
		}
		return rankingapimodels.RankingView{}, errs.PersistenceError{Err: err}
	}
	return rankingapimodels.Convert(rec), nil
}

func candidateSummary(c dbmodels.Candidate) string {
	return fmt.Sprintf("Name: %s\nDesired role: %s\nExperience: %d years\nSkills: %s\nEducation: %s\nWork history: %s\nProjects: %s\nCertifications: %s",
		c.GetFullName(), c.Role, c.ExperienceYears, strings.Join(c.Skills, ", "),
		c.Education, c.WorkHistory, c.Projects, c.Certifications)
}

func postSummary(p dbmodels.RecruitmentPost) string {
	return fmt.Sprintf("Title: %s\nDepartment: %s\nRequired experience: %d years\nQualification: %s\nSkills: %s\n%s",
		p.Title, p.Department, p.RequiredExperience, p.Qualification,
		strings.Join(p.Skills, ", "), p.Description)
}

func (i impl) ScoresByPost(postID string) (map[string]int, error) {
	list, err := i.store.ListByPost(postID)
	if err != nil {
		return nil, errs.PersistenceError{Err: err}
	}
	scores := make(map[string]int, len(list))
	for _, rec := range list {
		scores[rec.CandidateID] = rec.Score
	}
	return scores, nil
}
