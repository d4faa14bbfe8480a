package responseapimodels

import (
	"github.com/pkg/errors"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// SubmitRequest is the candidate's own reply, posted through the public link.
type SubmitRequest struct {
	Reply           models.ResponseReply `json:"reply"`
	ChosenDate      string               `json:"chosen_date"`
	JoiningDate     string               `json:"joining_date"`
	ExpectedSalary  int                  `json:"expected_salary"`
	RelocationReady bool                 `json:"relocation_ready"`
	Comment         string               `json:"comment"`
}

func (r SubmitRequest) Validate() error {
	if r.Reply != models.ResponseReplyAccepted && r.Reply != models.ResponseReplyDeclined {
		return errors.New("reply must be accepted or declined")
	}
	if r.Reply == models.ResponseReplyAccepted && r.ChosenDate == "" {
		return errors.New("chosen date is required when accepting")
	}
	return nil
}

type InviteView struct {
	CandidateName string   `json:"candidate_name"`
	Role          string   `json:"role"`
	Dates         []string `json:"dates"`
	Replied       bool     `json:"replied"`
}

type ResponseView struct {
	Reply           models.ResponseReply `json:"reply"`
	ChosenDate      string               `json:"chosen_date"`
	JoiningDate     string               `json:"joining_date"`
	ExpectedSalary  int                  `json:"expected_salary"`
	RelocationReady bool                 `json:"relocation_ready"`
	Comment         string               `json:"comment"`
}

func Convert(rec dbmodels.InterviewResponse) ResponseView {
	return ResponseView{
		Reply:           rec.Reply,
		ChosenDate:      rec.ChosenDate,
		JoiningDate:     rec.JoiningDate,
		ExpectedSalary:  rec.ExpectedSalary,
		RelocationReady: rec.RelocationReady,
		Comment:         rec.Comment,
	}
}
