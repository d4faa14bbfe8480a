package pipeline

import (
	"fmt"

	"talentflow-backend/models"
	pipelineapimodels "talentflow-backend/models/api/pipeline"
	dbmodels "talentflow-backend/models/db"
	"talentflow-backend/models/errs"
)

// GuardFunc is a transition precondition. Guards never perform I/O; the
// interview response record is loaded by the handler and passed in when the
// guard needs it.
type GuardFunc func(c dbmodels.Candidate, p pipelineapimodels.TransitionPayload, resp *dbmodels.InterviewResponse) error

type Transition struct {
	Event models.PipelineEvent
	From  models.PipelineStatus
	To    models.PipelineStatus

	// Effect is the notification attached to this transition, dispatched and
	// confirmed before the status mutation is committed. Empty means none.
	Effect models.EffectKind

	// RoundType is set on the interview record when entering the target
	// stage. Empty keeps the current round name.
	RoundType string

	// CarryForm pulls the latest compensation and joining fields from the
	// caller's payload into the mutation on every application.
	CarryForm bool

	Guard GuardFunc
}

var transitions = []Transition{
	{
		Event:     models.EventSendInvite,
		From:      models.PipelineStatusPending,
		To:        models.PipelineStatusShortlisted,
		Effect:    models.EffectInviteEmail,
		CarryForm: true,
		Guard:     guardInvitePayload,
	},
	{
		Event:     models.EventVerifyDetails,
		From:      models.PipelineStatusShortlisted,
		To:        models.PipelineStatusRound1,
		Effect:    models.EffectVerifyEmail,
		CarryForm: true,
		Guard:     guardInviteSent,
	},
	{
		Event:     models.EventAdvance,
		From:      models.PipelineStatusRound1,
		To:        models.PipelineStatusRound2,
		RoundType: models.RoundTypeTechnical2,
		CarryForm: true,
	},
	{
		Event:     models.EventAdvance,
		From:      models.PipelineStatusRound2,
		To:        models.PipelineStatusRound3,
		RoundType: models.RoundTypeHR,
		CarryForm: true,
	},
	{
		// round3 is already HR, no round name change on selection
		Event:     models.EventAdvance,
		From:      models.PipelineStatusRound3,
		To:        models.PipelineStatusSelected,
		CarryForm: true,
	},
	{
		// side-effect-only self loop, idempotent on the effect flag
		Event:  models.EventSendCongratulations,
		From:   models.PipelineStatusSelected,
		To:     models.PipelineStatusSelected,
		Effect: models.EffectCongratsEmail,
	},
	{
		Event: models.EventMarkNotInterested,
		From:  models.PipelineStatusPending,
		To:    models.PipelineStatusNotInterested,
		Guard: guardDeclined,
	},
	{
		Event: models.EventMarkNotInterested,
		From:  models.PipelineStatusShortlisted,
		To:    models.PipelineStatusNotInterested,
		Guard: guardDeclined,
	},
}

// Resolve finds the transition for the (status, event) pair. Reject is valid
// in every non-terminal stage and targets the stage's failure variant.
func Resolve(status models.PipelineStatus, event models.PipelineEvent) (Transition, bool) {
	if event == models.EventReject {
		if !status.IsRejectable() {
			return Transition{}, false
		}
		return Transition{
			Event: event,
			From:  status,
			To:    status.Rejected(),
		}, true
	}
	for _, tr := range transitions {
		if tr.From == status && tr.Event == event {
			return tr, true
		}
	}
	return Transition{}, false
}

func guardInvitePayload(c dbmodels.Candidate, p pipelineapimodels.TransitionPayload, resp *dbmodels.InterviewResponse) error {
	missing := []string{}
	if p.Role == "" {
		missing = append(missing, "role")
	}
	if len(p.Dates) == 0 {
		missing = append(missing, "dates")
	}
	if len(p.Interviewers) == 0 {
		missing = append(missing, "interviewers")
	}
	if len(missing) > 0 {
		return errs.NewValidationError("interview invite is incomplete", missing...)
	}
	return nil
}

func guardInviteSent(c dbmodels.Candidate, p pipelineapimodels.TransitionPayload, resp *dbmodels.InterviewResponse) error {
	if !c.HasEffect(models.EffectInviteEmail) {
		return errs.NewValidationError("interview invite was not sent yet")
	}
	return nil
}

func guardDeclined(c dbmodels.Candidate, p pipelineapimodels.TransitionPayload, resp *dbmodels.InterviewResponse) error {
	if resp == nil || !resp.Declined() {
		return errs.NewValidationError(fmt.Sprintf("candidate %s has no declined interview response on record", c.ID))
	}
	return nil
}
