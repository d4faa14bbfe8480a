package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/config"
	"talentflow-backend/db"
	candidatestore "talentflow-backend/lib/candidate/store"
	responsestore "talentflow-backend/lib/interview-response/store"
	applicationstore "talentflow-backend/lib/job-application/store"
	"talentflow-backend/lib/notify"
	historystore "talentflow-backend/lib/pipeline-history/store"
	"talentflow-backend/models"
	pipelineapimodels "talentflow-backend/models/api/pipeline"
	dbmodels "talentflow-backend/models/db"
	"talentflow-backend/models/errs"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// Provider applies pipeline transitions. The actor is the staff user
// triggering the event, recorded in the audit trail.
type Provider interface {
	Apply(ctx context.Context, actorID, candidateID string, event models.PipelineEvent, payload pipelineapimodels.TransitionPayload) (models.PipelineStatus, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		candidatestore.NewInstance(db.DB),
		responsestore.NewInstance(db.DB),
		applicationstore.NewInstance(db.DB),
		historystore.NewInstance(db.DB),
		notify.Instance,
		config.Conf.App.DomainForPublicLink,
		config.Conf.App.CompanyName,
	)
}

func NewInstance(
	store candidatestore.Provider,
	responseStore responsestore.Provider,
	applicationStore applicationstore.Provider,
	historyStore historystore.Provider,
	sink notify.Provider,
	publicLinkDomain string,
	companyName string,
) Provider {
	return impl{
		store:            store,
		responseStore:    responseStore,
		applicationStore: applicationStore,
		historyStore:     historyStore,
		sink:             sink,
		publicLinkDomain: publicLinkDomain,
		companyName:      companyName,
	}
}

type impl struct {
	store            candidatestore.Provider
	responseStore    responsestore.Provider
	applicationStore applicationstore.Provider
	historyStore     historystore.Provider
	sink             notify.Provider
	publicLinkDomain string
	companyName      string
}

// Apply runs one transition: resolve, guard, notify, then commit with a
// conditional status update. The notification is dispatched and confirmed
// before the commit, so a failed dispatch never leaves the candidate in a
// state implying they were contacted.
func (i impl) Apply(ctx context.Context, actorID, candidateID string, event models.PipelineEvent, payload pipelineapimodels.TransitionPayload) (models.PipelineStatus, error) {
	logger := log.
		WithField("candidate_id", candidateID).
		WithField("event", event).
		WithField("actor_id", actorID)

	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return "", errs.PersistenceError{Err: err}
	}
	if rec == nil {
		return "", ErrCandidateNotFound
	}

	tr, ok := Resolve(rec.Status, event)
	if !ok {
		return rec.Status, errs.NewValidationError(fmt.Sprintf("event %s is not allowed in status %s", event, rec.Status))
	}

	if tr.Guard != nil {
		var resp *dbmodels.InterviewResponse
		if event == models.EventMarkNotInterested {
			resp, err = i.responseStore.GetByCandidate(rec.ID)
			if err != nil {
				return rec.Status, errs.PersistenceError{Err: err}
			}
		}
		if err = tr.Guard(*rec, payload, resp); err != nil {
			return rec.Status, err
		}
	}

	if tr.Effect != "" {
		if rec.HasEffect(tr.Effect) {
			if tr.From == tr.To {
				// side effect already performed, nothing left to do
				logger.Info("side effect already sent, skipping")
				return rec.Status, nil
			}
		} else {
			if err = i.sink.Send(ctx, tr.Effect, rec.Email, rec.ID, i.messageData(*rec, tr, payload)); err != nil {
				logger.WithError(err).Error("notification dispatch failed, transition aborted")
				return rec.Status, errs.NotificationDeliveryError{Kind: string(tr.Effect), Err: err}
			}
			if tr.Event == models.EventSendInvite {
				i.notifyInterviewers(ctx, *rec, payload)
			}
		}
	}

	updMap := BuildMutation(*rec, tr, payload, time.Now())
	err = i.store.UpdateWithStatusCheck(rec.ID, rec.Status, updMap)
	if err != nil {
		if errors.Is(err, candidatestore.ErrStatusConflict) {
			return rec.Status, errs.NewConflictError("someone else updated this candidate, please refresh")
		}
		if errors.Is(err, candidatestore.ErrNotFound) {
			return rec.Status, ErrCandidateNotFound
		}
		return rec.Status, errs.PersistenceError{Err: err}
	}

	if tr.To != tr.From {
		// job application rows are a read-only projection of the pipeline
		if err = i.applicationStore.UpdateStatusByCandidate(rec.ID, models.ApplicationStatusFor(tr.To)); err != nil {
			logger.WithError(err).Error("application status projection failed")
		}
	}

	_, err = i.historyStore.Append(dbmodels.PipelineHistory{
		CandidateID: rec.ID,
		Event:       event,
		FromStatus:  tr.From,
		ToStatus:    tr.To,
		ActorID:     actorID,
	})
	if err != nil {
		logger.WithError(err).Error("pipeline history append failed")
	}

	logger.
		WithField("from_status", tr.From).
		WithField("to_status", tr.To).
		Info("pipeline transition applied")
	return tr.To, nil
}

func (i impl) messageData(rec dbmodels.Candidate, tr Transition, payload pipelineapimodels.TransitionPayload) models.MessageData {
	data := models.MessageData{
		CandidateName: rec.GetFullName(),
		Role:          rec.Interview.Role,
		Dates:         rec.Interview.Dates,
		RoundType:     rec.Interview.RoundType,
		Interviewers:  rec.Interview.Interviewers,
		JoiningDate:   rec.Interview.JoiningDate,
		CompanyName:   i.companyName,
		ResponseLink:  fmt.Sprintf("%s/response/%s", i.publicLinkDomain, rec.ResponseToken),
	}
	if tr.Event == models.EventSendInvite {
		data.Role = payload.Role
		data.Dates = payload.Dates
		data.Interviewers = payload.Interviewers
		data.RoundType = payload.RoundType
		if data.RoundType == "" {
			data.RoundType = models.RoundTypeTechnical1
		}
	}
	if payload.JoiningDate != "" {
		data.JoiningDate = payload.JoiningDate
	}
	return data
}

// notifyInterviewers sends assignment mails alongside the candidate invite.
// Best effort: the candidate is already invited at this point, so a failed
// interviewer mail is logged, not surfaced.
func (i impl) notifyInterviewers(ctx context.Context, rec dbmodels.Candidate, payload pipelineapimodels.TransitionPayload) {
	data := i.messageData(rec, Transition{Event: models.EventSendInvite}, payload)
	for _, interviewer := range payload.Interviewers {
		if err := i.sink.Send(ctx, models.EffectManagerInvite, interviewer, rec.ID, data); err != nil {
			log.
				WithField("candidate_id", rec.ID).
				WithField("interviewer", interviewer).
				WithError(err).
				Error("interviewer invite dispatch failed")
		}
	}
}
