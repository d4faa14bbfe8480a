package pipelineapimodels

import (
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
	"time"
)

// TransitionPayload carries the interview form fields supplied by the caller.
// Compensation and joining fields are persisted on every invite/verify/advance,
// not only once, so the latest edited values always win.
type TransitionPayload struct {
	Role           string   `json:"role"`
	Dates          []string `json:"dates"`
	RoundType      string   `json:"round_type"`
	Interviewers   []string `json:"interviewers"`
	CurrentSalary  int      `json:"current_salary"`
	ExpectedSalary int      `json:"expected_salary"`
	JoiningDate    string   `json:"joining_date"`
	Feedback       string   `json:"feedback"`
}

type TransitionRequest struct {
	Event   models.PipelineEvent `json:"event"`
	Payload TransitionPayload    `json:"payload"`
}

type TransitionResponse struct {
	Status models.PipelineStatus `json:"status"`
}

type HistoryView struct {
	Event      models.PipelineEvent  `json:"event"`
	FromStatus models.PipelineStatus `json:"from_status"`
	ToStatus   models.PipelineStatus `json:"to_status"`
	ActorID    string                `json:"actor_id"`
	CreatedAt  time.Time             `json:"created_at"`
}

func HistoryConvert(rec dbmodels.PipelineHistory) HistoryView {
	return HistoryView{
		Event:      rec.Event,
		FromStatus: rec.FromStatus,
		ToStatus:   rec.ToStatus,
		ActorID:    rec.ActorID,
		CreatedAt:  rec.CreatedAt,
	}
}
