package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	candidatestore "talentflow-backend/lib/candidate/store"
	"talentflow-backend/models"
	pipelineapimodels "talentflow-backend/models/api/pipeline"
	dbmodels "talentflow-backend/models/db"
	"talentflow-backend/models/errs"
)

type memStore struct {
	rec dbmodels.Candidate
	// stale, when set, is what GetByID returns instead of the live record.
	// Used to simulate two actors working from the same snapshot.
	stale   *dbmodels.Candidate
	updates []map[string]interface{}
}

func (s *memStore) Create(rec dbmodels.Candidate) (string, error)           { return rec.ID, nil }
func (s *memStore) Update(id string, updMap map[string]interface{}) error   { return nil }
func (s *memStore) GetByResponseToken(string) (*dbmodels.Candidate, error)  { return nil, nil }
func (s *memStore) GetByEmail(string) (*dbmodels.Candidate, error)          { return nil, nil }
func (s *memStore) ListByPost(string) ([]dbmodels.Candidate, error)         { return nil, nil }
func (s *memStore) Delete(string) error                                     { return nil }
func (s *memStore) List(dbmodels.CandidateFilter, int, int) ([]dbmodels.Candidate, int64, error) {
	return nil, 0, nil
}

func (s *memStore) GetByID(id string) (*dbmodels.Candidate, error) {
	if s.rec.ID != id {
		return nil, nil
	}
	if s.stale != nil {
		snapshot := *s.stale
		return &snapshot, nil
	}
	snapshot := s.rec
	return &snapshot, nil
}

func (s *memStore) UpdateWithStatusCheck(id string, expected models.PipelineStatus, updMap map[string]interface{}) error {
	if s.rec.ID != id {
		return candidatestore.ErrNotFound
	}
	if s.rec.Status != expected {
		return candidatestore.ErrStatusConflict
	}
	s.apply(updMap)
	s.updates = append(s.updates, updMap)
	return nil
}

func (s *memStore) apply(updMap map[string]interface{}) {
	for k, v := range updMap {
		switch k {
		case "status":
			s.rec.Status = v.(models.PipelineStatus)
		case "side_effects_sent":
			s.rec.SideEffectsSent = v.(pq.StringArray)
		case "interview_role":
			s.rec.Interview.Role = v.(string)
		case "interview_dates":
			s.rec.Interview.Dates = v.(pq.StringArray)
		case "interview_round_type":
			s.rec.Interview.RoundType = v.(string)
		case "interview_interviewers":
			s.rec.Interview.Interviewers = v.(pq.StringArray)
		case "interview_current_salary":
			s.rec.Interview.CurrentSalary = v.(int)
		case "interview_expected_salary":
			s.rec.Interview.ExpectedSalary = v.(int)
		case "interview_joining_date":
			s.rec.Interview.JoiningDate = v.(string)
		case "interview_feedback":
			s.rec.Interview.Feedback = v.(string)
		case "interview_invite_sent_at":
			ts := v.(time.Time)
			s.rec.Interview.InviteSentAt = &ts
		case "interview_verify_sent_at":
			ts := v.(time.Time)
			s.rec.Interview.VerifySentAt = &ts
		case "interview_congrats_sent_at":
			ts := v.(time.Time)
			s.rec.Interview.CongratsSentAt = &ts
		}
	}
}

type memResponseStore struct {
	resp *dbmodels.InterviewResponse
}

func (s *memResponseStore) Save(rec dbmodels.InterviewResponse) (string, error) { return rec.ID, nil }
func (s *memResponseStore) GetByCandidate(string) (*dbmodels.InterviewResponse, error) {
	return s.resp, nil
}

type memApplicationStore struct {
	projected []models.ApplicationStatus
}

func (s *memApplicationStore) Create(rec dbmodels.JobApplication) (string, error) { return rec.ID, nil }
func (s *memApplicationStore) ListByPost(string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}
func (s *memApplicationStore) ListByCandidate(string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}
func (s *memApplicationStore) UpdateStatusByCandidate(candidateID string, status models.ApplicationStatus) error {
	s.projected = append(s.projected, status)
	return nil
}
func (s *memApplicationStore) DeleteByCandidate(string) error { return nil }

type memHistoryStore struct {
	recs []dbmodels.PipelineHistory
}

func (s *memHistoryStore) Append(rec dbmodels.PipelineHistory) (string, error) {
	s.recs = append(s.recs, rec)
	return "h1", nil
}
func (s *memHistoryStore) ListByCandidate(string) ([]dbmodels.PipelineHistory, error) {
	return s.recs, nil
}

type sinkCall struct {
	kind      models.EffectKind
	recipient string
	data      models.MessageData
}

type fakeSink struct {
	calls     []sinkCall
	failKinds map[models.EffectKind]bool
}

func (s *fakeSink) Send(ctx context.Context, kind models.EffectKind, recipient, candidateID string, data models.MessageData) error {
	if s.failKinds[kind] {
		return errors.New("smtp unreachable")
	}
	s.calls = append(s.calls, sinkCall{kind: kind, recipient: recipient, data: data})
	return nil
}

// sentTo counts dispatches of one kind to one recipient.
func (s *fakeSink) sentTo(kind models.EffectKind, recipient string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind && c.recipient == recipient {
			n++
		}
	}
	return n
}

type env struct {
	store   *memStore
	resp    *memResponseStore
	apps    *memApplicationStore
	history *memHistoryStore
	sink    *fakeSink
	handler Provider
}

func newEnv(rec dbmodels.Candidate) *env {
	e := &env{
		store:   &memStore{rec: rec},
		resp:    &memResponseStore{},
		apps:    &memApplicationStore{},
		history: &memHistoryStore{},
		sink:    &fakeSink{failKinds: map[models.EffectKind]bool{}},
	}
	e.handler = NewInstance(e.store, e.resp, e.apps, e.history, e.sink, "http://localhost:8000", "TalentFlow")
	return e
}

func pendingCandidate() dbmodels.Candidate {
	return dbmodels.Candidate{
		BaseModel:     dbmodels.BaseModel{ID: "c1"},
		FirstName:     "Jordan",
		LastName:      "Miles",
		Email:         "jordan.miles@example.com",
		Status:        models.PipelineStatusPending,
		ResponseToken: "tok-1",
	}
}

func invitePayload() pipelineapimodels.TransitionPayload {
	return pipelineapimodels.TransitionPayload{
		Role:           "Engineer",
		Dates:          []string{"2025-07-01", "2025-07-02"},
		Interviewers:   []string{"alice@example.com", "bob@example.com"},
		ExpectedSalary: 90000,
	}
}

func TestSendInvite(t *testing.T) {
	t.Run("moves pending to shortlisted and persists interview details", func(t *testing.T) {
		e := newEnv(pendingCandidate())

		status, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventSendInvite, invitePayload())
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusShortlisted, status)
		require.Equal(t, models.PipelineStatusShortlisted, e.store.rec.Status)
		require.Equal(t, "Engineer", e.store.rec.Interview.Role)
		require.Equal(t, pq.StringArray{"2025-07-01", "2025-07-02"}, e.store.rec.Interview.Dates)
		require.Equal(t, models.RoundTypeTechnical1, e.store.rec.Interview.RoundType)
		require.NotNil(t, e.store.rec.Interview.InviteSentAt)
		require.True(t, e.store.rec.HasEffect(models.EffectInviteEmail))
		require.Equal(t, 1, e.sink.sentTo(models.EffectInviteEmail, "jordan.miles@example.com"))
		require.Equal(t, 1, e.sink.sentTo(models.EffectManagerInvite, "alice@example.com"))
		require.Equal(t, 1, e.sink.sentTo(models.EffectManagerInvite, "bob@example.com"))
		require.Equal(t, []models.ApplicationStatus{models.ApplicationStatusShortlisted}, e.apps.projected)
		require.Len(t, e.history.recs, 1)
		require.Equal(t, "staff-1", e.history.recs[0].ActorID)
	})

	t.Run("invite carries the response link", func(t *testing.T) {
		e := newEnv(pendingCandidate())

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventSendInvite, invitePayload())
		require.NoError(t, err)
		require.Equal(t, "http://localhost:8000/response/tok-1", e.sink.calls[0].data.ResponseLink)
	})

	t.Run("guard failure names missing fields and performs no IO", func(t *testing.T) {
		e := newEnv(pendingCandidate())
		payload := invitePayload()
		payload.Interviewers = nil

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventSendInvite, payload)
		var verr errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, []string{"interviewers"}, verr.Fields)
		require.Empty(t, e.sink.calls)
		require.Empty(t, e.store.updates)
		require.Equal(t, models.PipelineStatusPending, e.store.rec.Status)
	})

	t.Run("failed dispatch leaves status pending", func(t *testing.T) {
		e := newEnv(pendingCandidate())
		e.sink.failKinds[models.EffectInviteEmail] = true

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventSendInvite, invitePayload())
		require.True(t, errs.IsNotificationDelivery(err))
		require.Equal(t, models.PipelineStatusPending, e.store.rec.Status)
		require.Empty(t, e.store.updates)
	})
}

func TestVerifyDetails(t *testing.T) {
	t.Run("requires a previously sent invite", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusShortlisted
		e := newEnv(rec)

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventVerifyDetails, pipelineapimodels.TransitionPayload{})
		require.True(t, errs.IsValidation(err))
		require.Empty(t, e.sink.calls)
	})

	t.Run("moves shortlisted to round1 and stamps the verify mail", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusShortlisted
		rec.SideEffectsSent = pq.StringArray{string(models.EffectInviteEmail)}
		e := newEnv(rec)

		status, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventVerifyDetails, pipelineapimodels.TransitionPayload{JoiningDate: "2025-09-01"})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusRound1, status)
		require.NotNil(t, e.store.rec.Interview.VerifySentAt)
		require.Equal(t, "2025-09-01", e.store.rec.Interview.JoiningDate)
		require.Equal(t, 1, e.sink.sentTo(models.EffectVerifyEmail, "jordan.miles@example.com"))
	})
}

func TestAdvance(t *testing.T) {
	t.Run("round1 to round2 sets the second technical round", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusRound1
		rec.Interview.RoundType = models.RoundTypeTechnical1
		e := newEnv(rec)

		status, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventAdvance, pipelineapimodels.TransitionPayload{})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusRound2, status)
		require.Equal(t, models.RoundTypeTechnical2, e.store.rec.Interview.RoundType)
	})

	t.Run("round3 to selected keeps the HR round name", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusRound3
		rec.Interview.RoundType = models.RoundTypeHR
		e := newEnv(rec)

		status, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventAdvance, pipelineapimodels.TransitionPayload{})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusSelected, status)
		require.Equal(t, models.RoundTypeHR, e.store.rec.Interview.RoundType)
	})

	t.Run("not allowed from pending", func(t *testing.T) {
		e := newEnv(pendingCandidate())

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventAdvance, pipelineapimodels.TransitionPayload{})
		require.True(t, errs.IsValidation(err))
	})

	t.Run("two actors on the same snapshot: one success, one conflict", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusRound1
		e := newEnv(rec)
		snapshot := rec
		e.store.stale = &snapshot

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventAdvance, pipelineapimodels.TransitionPayload{})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusRound2, e.store.rec.Status)

		// second actor still holds the round1 snapshot
		_, err = e.handler.Apply(context.Background(), "staff-2", "c1", models.EventAdvance, pipelineapimodels.TransitionPayload{})
		require.True(t, errs.IsConflict(err))
		require.Equal(t, models.PipelineStatusRound2, e.store.rec.Status)
		require.Len(t, e.store.updates, 1)
	})
}

func TestReject(t *testing.T) {
	t.Run("round2 rejection lands on the stage failure variant", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusRound2
		e := newEnv(rec)

		status, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventReject, pipelineapimodels.TransitionPayload{})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusRound2Rejected, status)
		require.True(t, status.Valid())
		require.Empty(t, e.sink.calls)
	})

	t.Run("terminal states cannot be rejected", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusSelected
		e := newEnv(rec)

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventReject, pipelineapimodels.TransitionPayload{})
		require.True(t, errs.IsValidation(err))
	})
}

func TestSendCongratulations(t *testing.T) {
	t.Run("two invocations produce exactly one dispatch", func(t *testing.T) {
		rec := pendingCandidate()
		rec.Status = models.PipelineStatusSelected
		e := newEnv(rec)

		status, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventSendCongratulations, pipelineapimodels.TransitionPayload{})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusSelected, status)

		status, err = e.handler.Apply(context.Background(), "staff-1", "c1", models.EventSendCongratulations, pipelineapimodels.TransitionPayload{})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusSelected, status)

		require.Equal(t, 1, e.sink.sentTo(models.EffectCongratsEmail, "jordan.miles@example.com"))
		require.True(t, e.store.rec.HasEffect(models.EffectCongratsEmail))
	})
}

func TestMarkNotInterested(t *testing.T) {
	t.Run("requires a declined response on record", func(t *testing.T) {
		e := newEnv(pendingCandidate())

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventMarkNotInterested, pipelineapimodels.TransitionPayload{})
		require.True(t, errs.IsValidation(err))
		require.Equal(t, models.PipelineStatusPending, e.store.rec.Status)
	})

	t.Run("declined response allows the transition", func(t *testing.T) {
		e := newEnv(pendingCandidate())
		e.resp.resp = &dbmodels.InterviewResponse{
			CandidateID: "c1",
			Reply:       models.ResponseReplyDeclined,
		}

		status, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventMarkNotInterested, pipelineapimodels.TransitionPayload{})
		require.NoError(t, err)
		require.Equal(t, models.PipelineStatusNotInterested, status)
	})

	t.Run("accepted response keeps the guard closed", func(t *testing.T) {
		e := newEnv(pendingCandidate())
		e.resp.resp = &dbmodels.InterviewResponse{
			CandidateID: "c1",
			Reply:       models.ResponseReplyAccepted,
		}

		_, err := e.handler.Apply(context.Background(), "staff-1", "c1", models.EventMarkNotInterested, pipelineapimodels.TransitionPayload{})
		require.True(t, errs.IsValidation(err))
	})
}

func TestTransitionTableStaysInsideTheEnum(t *testing.T) {
	for _, tr := range transitions {
		require.True(t, tr.From.Valid(), "from status %s", tr.From)
		require.True(t, tr.To.Valid(), "to status %s", tr.To)
	}
	for _, s := range []models.PipelineStatus{
		models.PipelineStatusPending,
		models.PipelineStatusShortlisted,
		models.PipelineStatusRound1,
		models.PipelineStatusRound2,
		models.PipelineStatusRound3,
	} {
		tr, ok := Resolve(s, models.EventReject)
		require.True(t, ok)
		require.True(t, tr.To.Valid(), "rejected variant of %s", s)
	}
}
