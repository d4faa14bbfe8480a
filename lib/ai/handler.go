package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/config"
	"talentflow-backend/db"
	ailogstore "talentflow-backend/lib/ai/store"
	yagptclient "talentflow-backend/lib/ai/yagpt-client"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

const resumeParsePrompt = `You are a resume parser for a recruitment system.
Extract the applicant profile from the resume text and reply with a single JSON object,
no markdown, with exactly these keys:
{"first_name": "", "last_name": "", "email": "", "phone": "", "role": "",
"experience_years": 0, "skills": [], "education": "", "work_history": "",
"projects": "", "certifications": ""}
Leave a key empty when the resume does not state it. Do not invent data.`

const scorePrompt = `You are a recruiter scoring a candidate against a job description.
Reply with a single JSON object, no markdown: {"score": 0, "reasoning": ""}.
score is an integer from 0 to 100 for how well the candidate fits the job.
reasoning is a short explanation of the score.`

type ScoreResult struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

type Provider interface {
	ParseResume(ctx context.Context, resumeText string) (candidateapimodels.ParsedProfile, error)
	ScoreCandidate(ctx context.Context, candidateSummary, jobDescription string) (ScoreResult, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		yagptclient.NewClient(config.Conf.LLM.IAMToken, config.Conf.LLM.CatalogID),
		ailogstore.NewInstance(db.DB),
	)
}

func NewInstance(client yagptclient.Provider, logStore ailogstore.Provider) Provider {
	return impl{
		client:   client,
		logStore: logStore,
	}
}

type impl struct {
	client   yagptclient.Provider
	logStore ailogstore.Provider
}

func (i impl) ParseResume(ctx context.Context, resumeText string) (candidateapimodels.ParsedProfile, error) {
	profile := candidateapimodels.ParsedProfile{}
	raw, err := i.client.Complete(ctx, resumeParsePrompt, resumeText)
	i.logCall(dbmodels.AiLogKindResumeParse, resumeText, raw, err)
	if err != nil {
		return profile, err
	}
	if err = json.Unmarshal([]byte(extractJSON(raw)), &profile); err != nil {
		return profile, errors.Wrap(err, "resume parse response is not valid JSON")
	}
	return profile, nil
}

func (i impl) ScoreCandidate(ctx context.Context, candidateSummary, jobDescription string) (ScoreResult, error) {
	result := ScoreResult{}
	userText := "Job description:\n" + jobDescription + "\n\nCandidate:\n" + candidateSummary
	raw, err := i.client.Complete(ctx, scorePrompt, userText)
	i.logCall(dbmodels.AiLogKindScore, userText, raw, err)
	if err != nil {
		return result, err
	}
	if err = json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		return result, errors.Wrap(err, "score response is not valid JSON")
	}
	if result.Score < 0 || result.Score > 100 {
		return result, errors.Errorf("score %d is out of the 0..100 range", result.Score)
	}
	return result, nil
}

func (i impl) logCall(kind dbmodels.AiLogKind, request, response string, callErr error) {
	rec := dbmodels.AiLog{
		Kind:     kind,
		Request:  request,
		Response: response,
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}
	if _, err := i.logStore.Save(rec); err != nil {
		log.WithError(err).Error("ai log save failed")
	}
}

// extractJSON trims the model's occasional markdown fencing around the JSON body.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}
