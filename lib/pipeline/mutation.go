package pipeline

import (
	"time"

	"github.com/lib/pq"
	"talentflow-backend/models"
	pipelineapimodels "talentflow-backend/models/api/pipeline"
	dbmodels "talentflow-backend/models/db"
)

// BuildMutation computes the exact column-level update set for a resolved
// transition. It is pure: no I/O, no clock reads, deterministic for the same
// inputs, so a failed write can be retried by re-invoking the transition.
// Only the columns a transition owns appear in the map, so the partial update
// never touches unrelated candidate fields.
func BuildMutation(c dbmodels.Candidate, tr Transition, p pipelineapimodels.TransitionPayload, now time.Time) map[string]interface{} {
	updMap := map[string]interface{}{
		"status": tr.To,
	}
	if tr.CarryForm {
		// the latest edited form values always win, not just the delta
		updMap["interview_current_salary"] = p.CurrentSalary
		updMap["interview_expected_salary"] = p.ExpectedSalary
		updMap["interview_joining_date"] = p.JoiningDate
		updMap["interview_feedback"] = p.Feedback
	}
	switch tr.Event {
	case models.EventSendInvite:
		roundType := p.RoundType
		if roundType == "" {
			roundType = models.RoundTypeTechnical1
		}
		updMap["interview_role"] = p.Role
		updMap["interview_dates"] = pq.StringArray(p.Dates)
		updMap["interview_round_type"] = roundType
		updMap["interview_interviewers"] = pq.StringArray(p.Interviewers)
		updMap["interview_invite_sent_at"] = now
	case models.EventVerifyDetails:
		updMap["interview_verify_sent_at"] = now
	case models.EventAdvance:
		if tr.RoundType != "" {
			updMap["interview_round_type"] = tr.RoundType
		}
	case models.EventSendCongratulations:
		updMap["interview_congrats_sent_at"] = now
	}
	if tr.Effect != "" && !c.HasEffect(tr.Effect) {
		effects := make(pq.StringArray, 0, len(c.SideEffectsSent)+1)
		effects = append(effects, c.SideEffectsSent...)
		effects = append(effects, string(tr.Effect))
		updMap["side_effects_sent"] = effects
	}
	return updMap
}
