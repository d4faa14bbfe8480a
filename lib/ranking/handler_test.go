package ranking

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"talentflow-backend/lib/ai"
	rankingstore "talentflow-backend/lib/ranking/store"
	"talentflow-backend/models"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
	"talentflow-backend/models/errs"
)

type memRankingStore struct {
	recs map[string]dbmodels.CandidateRanking
	// raceWinner, when set, is inserted by "someone else" between the cache
	// miss and our own insert, so Create reports a duplicate.
	raceWinner *dbmodels.CandidateRanking
}

func rankingKey(candidateID, postID string) string {
	return candidateID + "/" + postID
}

func (s *memRankingStore) Get(candidateID, postID string) (*dbmodels.CandidateRanking, error) {
	rec, ok := s.recs[rankingKey(candidateID, postID)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *memRankingStore) Create(rec dbmodels.CandidateRanking) (string, error) {
	key := rankingKey(rec.CandidateID, rec.PostID)
	if s.raceWinner != nil {
		s.recs[rankingKey(s.raceWinner.CandidateID, s.raceWinner.PostID)] = *s.raceWinner
		return "", rankingstore.ErrDuplicate
	}
	if _, ok := s.recs[key]; ok {
		return "", rankingstore.ErrDuplicate
	}
	s.recs[key] = rec
	return "r1", nil
}

func (s *memRankingStore) ListByPost(string) ([]dbmodels.CandidateRanking, error) { return nil, nil }
func (s *memRankingStore) DeleteByCandidate(string) error                         { return nil }

type memCandidateStore struct {
	rec *dbmodels.Candidate
}

func (s *memCandidateStore) Create(rec dbmodels.Candidate) (string, error) { return rec.ID, nil }
func (s *memCandidateStore) Update(string, map[string]interface{}) error   { return nil }
func (s *memCandidateStore) UpdateWithStatusCheck(string, models.PipelineStatus, map[string]interface{}) error {
	return nil
}

func (s *memCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) { return s.rec, nil }
func (s *memCandidateStore) GetByResponseToken(string) (*dbmodels.Candidate, error) {
	return nil, nil
}
func (s *memCandidateStore) GetByEmail(string) (*dbmodels.Candidate, error) { return nil, nil }
func (s *memCandidateStore) List(dbmodels.CandidateFilter, int, int) ([]dbmodels.Candidate, int64, error) {
	return nil, 0, nil
}
func (s *memCandidateStore) ListByPost(string) ([]dbmodels.Candidate, error) { return nil, nil }
func (s *memCandidateStore) Delete(string) error                             { return nil }

type memPostStore struct {
	rec *dbmodels.RecruitmentPost
}

func (s *memPostStore) Create(rec dbmodels.RecruitmentPost) (string, error) { return rec.ID, nil }
func (s *memPostStore) Update(string, map[string]interface{}) error         { return nil }
func (s *memPostStore) GetByID(string) (*dbmodels.RecruitmentPost, error)   { return s.rec, nil }
func (s *memPostStore) List(dbmodels.PostFilter, int, int) ([]dbmodels.RecruitmentPost, int64, error) {
	return nil, 0, nil
}
func (s *memPostStore) Delete(string) error { return nil }

type fakeScorer struct {
	calls  int
	result ai.ScoreResult
	err    error
}

func (s *fakeScorer) ParseResume(context.Context, string) (candidateapimodels.ParsedProfile, error) {
	return candidateapimodels.ParsedProfile{}, nil
}

func (s *fakeScorer) ScoreCandidate(context.Context, string, string) (ai.ScoreResult, error) {
	s.calls++
	if s.err != nil {
		return ai.ScoreResult{}, s.err
	}
	return s.result, nil
}

func newTestHandler(store *memRankingStore, scorer *fakeScorer) Provider {
	return NewInstance(
		store,
		&memCandidateStore{rec: &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "c1"}, Role: "Engineer"}},
		&memPostStore{rec: &dbmodels.RecruitmentPost{BaseModel: dbmodels.BaseModel{ID: "p1"}, Title: "Backend Engineer"}},
		scorer,
	)
}

func TestGetOrCompute(t *testing.T) {
	t.Run("computes once and serves the cache afterwards", func(t *testing.T) {
		store := &memRankingStore{recs: map[string]dbmodels.CandidateRanking{}}
		scorer := &fakeScorer{result: ai.ScoreResult{Score: 82, Reasoning: "solid match"}}
		handler := newTestHandler(store, scorer)

		first, err := handler.GetOrCompute(context.Background(), "c1", "p1")
		require.NoError(t, err)
		require.Equal(t, 82, first.Score)
		require.Equal(t, "solid match", first.Reasoning)

		second, err := handler.GetOrCompute(context.Background(), "c1", "p1")
		require.NoError(t, err)
		require.Equal(t, first.Score, second.Score)
		require.Equal(t, 1, scorer.calls)
	})

	t.Run("scorer failure writes no cache entry and allows retry", func(t *testing.T) {
		store := &memRankingStore{recs: map[string]dbmodels.CandidateRanking{}}
		scorer := &fakeScorer{err: errors.New("LLM unavailable")}
		handler := newTestHandler(store, scorer)

		_, err := handler.GetOrCompute(context.Background(), "c1", "p1")
		require.True(t, errs.IsCompute(err))
		require.Empty(t, store.recs)

		scorer.err = nil
		scorer.result = ai.ScoreResult{Score: 55, Reasoning: "retry"}
		view, err := handler.GetOrCompute(context.Background(), "c1", "p1")
		require.NoError(t, err)
		require.Equal(t, 55, view.Score)
		require.Equal(t, 2, scorer.calls)
	})

	t.Run("lost insert race returns the winner entry", func(t *testing.T) {
		store := &memRankingStore{
			recs: map[string]dbmodels.CandidateRanking{},
			raceWinner: &dbmodels.CandidateRanking{
				CandidateID: "c1", PostID: "p1", Score: 71, Reasoning: "winner",
			},
		}
		scorer := &fakeScorer{result: ai.ScoreResult{Score: 99, Reasoning: "loser"}}
		handler := newTestHandler(store, scorer)

		view, err := handler.GetOrCompute(context.Background(), "c1", "p1")
		require.NoError(t, err)
		require.Equal(t, 71, view.Score)
		require.Equal(t, "winner", view.Reasoning)
	})

	t.Run("existing entry is never recomputed", func(t *testing.T) {
		store := &memRankingStore{recs: map[string]dbmodels.CandidateRanking{
			rankingKey("c1", "p1"): {CandidateID: "c1", PostID: "p1", Score: 40, Reasoning: "stale but cached"},
		}}
		scorer := &fakeScorer{result: ai.ScoreResult{Score: 99}}
		handler := newTestHandler(store, scorer)

		view, err := handler.GetOrCompute(context.Background(), "c1", "p1")
		require.NoError(t, err)
		require.Equal(t, 40, view.Score)
		require.Equal(t, 0, scorer.calls)
	})
}
