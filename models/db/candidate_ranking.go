package dbmodels

// CandidateRanking caches one LLM score of a candidate against a post.
// The unique pair index makes the cache append-only: an existing entry is
// never recomputed or overwritten.
type CandidateRanking struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_post"`
	PostID      string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_post"`
	Score       int    // 0..100
	Reasoning   string
}
