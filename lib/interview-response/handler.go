package interviewresponse

import (
	"github.com/pkg/errors"
	"talentflow-backend/db"
	candidatestore "talentflow-backend/lib/candidate/store"
	responsestore "talentflow-backend/lib/interview-response/store"
	responseapimodels "talentflow-backend/models/api/response"
	dbmodels "talentflow-backend/models/db"
)

var ErrInvalidToken = errors.New("response link is invalid or expired")

// Provider serves the public response link. The candidate is resolved by
// the token mailed with the invite; staff routes never write here.
type Provider interface {
	GetInvite(token string) (responseapimodels.InviteView, error)
	Submit(token string, req responseapimodels.SubmitRequest) error
	GetByCandidate(candidateID string) (*responseapimodels.ResponseView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          responsestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          responsestore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) GetInvite(token string) (responseapimodels.InviteView, error) {
	rec, err := i.candidateStore.GetByResponseToken(token)
	if err != nil {
		return responseapimodels.InviteView{}, err
	}
	if rec == nil {
		return responseapimodels.InviteView{}, ErrInvalidToken
	}
	resp, err := i.store.GetByCandidate(rec.ID)
	if err != nil {
		return responseapimodels.InviteView{}, err
	}
	return responseapimodels.InviteView{
		CandidateName: rec.GetFullName(),
		Role:          rec.Interview.Role,
		Dates:         rec.Interview.Dates,
		Replied:       resp != nil,
	}, nil
}

func (i impl) Submit(token string, req responseapimodels.SubmitRequest) error {
	rec, err := i.candidateStore.GetByResponseToken(token)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrInvalidToken
	}
	resp, err := i.store.GetByCandidate(rec.ID)
	if err != nil {
		return err
	}
	if resp == nil {
		resp = &dbmodels.InterviewResponse{
			CandidateID: rec.ID,
		}
	}
	resp.Reply = req.Reply
	resp.ChosenDate = req.ChosenDate
	resp.JoiningDate = req.JoiningDate
	resp.ExpectedSalary = req.ExpectedSalary
	resp.RelocationReady = req.RelocationReady
	resp.Comment = req.Comment
	_, err = i.store.Save(*resp)
	return err
}

func (i impl) GetByCandidate(candidateID string) (*responseapimodels.ResponseView, error) {
	resp, err := i.store.GetByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	view := responseapimodels.Convert(*resp)
	return &view, nil
}
