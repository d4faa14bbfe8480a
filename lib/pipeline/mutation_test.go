package pipeline

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"talentflow-backend/models"
	pipelineapimodels "talentflow-backend/models/api/pipeline"
	dbmodels "talentflow-backend/models/db"
)

func keysOf(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestBuildMutation(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	t.Run("send invite touches exactly the interview columns", func(t *testing.T) {
		c := dbmodels.Candidate{Status: models.PipelineStatusPending}
		tr, ok := Resolve(models.PipelineStatusPending, models.EventSendInvite)
		require.True(t, ok)

		updMap := BuildMutation(c, tr, pipelineapimodels.TransitionPayload{
			Role:           "Engineer",
			Dates:          []string{"2025-07-01", "2025-07-02"},
			Interviewers:   []string{"alice@example.com"},
			ExpectedSalary: 90000,
			Feedback:       "strong resume",
		}, now)

		require.ElementsMatch(t, []string{
			"status",
			"interview_role",
			"interview_dates",
			"interview_round_type",
			"interview_interviewers",
			"interview_invite_sent_at",
			"interview_current_salary",
			"interview_expected_salary",
			"interview_joining_date",
			"interview_feedback",
			"side_effects_sent",
		}, keysOf(updMap))
		require.Equal(t, models.PipelineStatusShortlisted, updMap["status"])
		require.Equal(t, pq.StringArray{"2025-07-01", "2025-07-02"}, updMap["interview_dates"])
		require.Equal(t, models.RoundTypeTechnical1, updMap["interview_round_type"])
		require.Equal(t, now, updMap["interview_invite_sent_at"])
		require.Equal(t, pq.StringArray{string(models.EffectInviteEmail)}, updMap["side_effects_sent"])
	})

	t.Run("advance carries the form fields and the round name only", func(t *testing.T) {
		c := dbmodels.Candidate{Status: models.PipelineStatusRound1}
		tr, ok := Resolve(models.PipelineStatusRound1, models.EventAdvance)
		require.True(t, ok)

		updMap := BuildMutation(c, tr, pipelineapimodels.TransitionPayload{
			CurrentSalary:  70000,
			ExpectedSalary: 95000,
			JoiningDate:    "2025-10-01",
		}, now)

		require.ElementsMatch(t, []string{
			"status",
			"interview_round_type",
			"interview_current_salary",
			"interview_expected_salary",
			"interview_joining_date",
			"interview_feedback",
		}, keysOf(updMap))
		require.Equal(t, models.PipelineStatusRound2, updMap["status"])
		require.Equal(t, models.RoundTypeTechnical2, updMap["interview_round_type"])
		require.Equal(t, 95000, updMap["interview_expected_salary"])
	})

	t.Run("final advance has no round name change", func(t *testing.T) {
		c := dbmodels.Candidate{Status: models.PipelineStatusRound3}
		tr, ok := Resolve(models.PipelineStatusRound3, models.EventAdvance)
		require.True(t, ok)

		updMap := BuildMutation(c, tr, pipelineapimodels.TransitionPayload{}, now)
		require.NotContains(t, updMap, "interview_round_type")
		require.Equal(t, models.PipelineStatusSelected, updMap["status"])
	})

	t.Run("reject touches only the status column", func(t *testing.T) {
		c := dbmodels.Candidate{Status: models.PipelineStatusRound2}
		tr, ok := Resolve(models.PipelineStatusRound2, models.EventReject)
		require.True(t, ok)

		updMap := BuildMutation(c, tr, pipelineapimodels.TransitionPayload{}, now)
		require.Equal(t, map[string]interface{}{
			"status": models.PipelineStatusRound2Rejected,
		}, updMap)
	})

	t.Run("effect already recorded is not appended twice", func(t *testing.T) {
		c := dbmodels.Candidate{
			Status:          models.PipelineStatusSelected,
			SideEffectsSent: pq.StringArray{string(models.EffectCongratsEmail)},
		}
		tr, ok := Resolve(models.PipelineStatusSelected, models.EventSendCongratulations)
		require.True(t, ok)

		updMap := BuildMutation(c, tr, pipelineapimodels.TransitionPayload{}, now)
		require.NotContains(t, updMap, "side_effects_sent")
	})

	t.Run("deterministic for the same inputs", func(t *testing.T) {
		c := dbmodels.Candidate{Status: models.PipelineStatusPending}
		tr, ok := Resolve(models.PipelineStatusPending, models.EventSendInvite)
		require.True(t, ok)
		p := pipelineapimodels.TransitionPayload{
			Role:         "Engineer",
			Dates:        []string{"2025-07-01"},
			Interviewers: []string{"alice@example.com"},
		}

		first := BuildMutation(c, tr, p, now)
		second := BuildMutation(c, tr, p, now)
		require.Equal(t, first, second)
	})
}
