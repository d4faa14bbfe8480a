package rankingapimodels

import (
	dbmodels "talentflow-backend/models/db"
	"time"
)

type RankingView struct {
	CandidateID string    `json:"candidate_id"`
	PostID      string    `json:"post_id"`
	Score       int       `json:"score"`
	Reasoning   string    `json:"reasoning"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func Convert(rec dbmodels.CandidateRanking) RankingView {
	return RankingView{
		CandidateID: rec.CandidateID,
		PostID:      rec.PostID,
		Score:       rec.Score,
		Reasoning:   rec.Reasoning,
		UpdatedAt:   rec.UpdatedAt,
	}
}
