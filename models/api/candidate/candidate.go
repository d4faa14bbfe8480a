package candidateapimodels

import (
	"github.com/pkg/errors"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	dbmodels "talentflow-backend/models/db"
)

type CandidateData struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Role            string   `json:"role"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Education       string   `json:"education"`
	WorkHistory     string   `json:"work_history"`
	Projects        string   `json:"projects"`
	Certifications  string   `json:"certifications"`
}

type CreateRequest struct {
	CandidateData
}

func (r CreateRequest) Validate() error {
	if r.Email == "" {
		return errors.New("candidate email is required")
	}
	if r.FirstName == "" && r.LastName == "" {
		return errors.New("candidate name is required")
	}
	return nil
}

type UpdateRequest struct {
	CandidateData
}

type ListRequest struct {
	Filter     dbmodels.CandidateFilter `json:"filter"`
	Pagination apimodels.Pagination     `json:"pagination"`
}

type InterviewDetailsView struct {
	Role           string   `json:"role"`
	Dates          []string `json:"dates"`
	RoundType      string   `json:"round_type"`
	Interviewers   []string `json:"interviewers"`
	CurrentSalary  int      `json:"current_salary"`
	ExpectedSalary int      `json:"expected_salary"`
	JoiningDate    string   `json:"joining_date"`
	Feedback       string   `json:"feedback"`
	InviteSentAt   string   `json:"invite_sent_at,omitempty"`
	VerifySentAt   string   `json:"verify_sent_at,omitempty"`
	CongratsSentAt string   `json:"congrats_sent_at,omitempty"`
}

type CandidateView struct {
	ID string `json:"id"`
	CandidateData
	Source          models.CandidateSource `json:"source"`
	Status          models.PipelineStatus  `json:"status"`
	SideEffectsSent []string               `json:"side_effects_sent"`
	Interview       InterviewDetailsView   `json:"interview_details"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func Convert(rec dbmodels.Candidate) CandidateView {
	view := CandidateView{
		ID: rec.ID,
		CandidateData: CandidateData{
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			Email:           rec.Email,
			Phone:           rec.Phone,
			Role:            rec.Role,
			ExperienceYears: rec.ExperienceYears,
			Skills:          rec.Skills,
			Education:       rec.Education,
			WorkHistory:     rec.WorkHistory,
			Projects:        rec.Projects,
			Certifications:  rec.Certifications,
		},
		Source:          rec.Source,
		Status:          rec.Status,
		SideEffectsSent: rec.SideEffectsSent,
		Interview: InterviewDetailsView{
			Role:           rec.Interview.Role,
			Dates:          rec.Interview.Dates,
			RoundType:      rec.Interview.RoundType,
			Interviewers:   rec.Interview.Interviewers,
			CurrentSalary:  rec.Interview.CurrentSalary,
			ExpectedSalary: rec.Interview.ExpectedSalary,
			JoiningDate:    rec.Interview.JoiningDate,
			Feedback:       rec.Interview.Feedback,
		},
	}
	if rec.Interview.InviteSentAt != nil {
		view.Interview.InviteSentAt = rec.Interview.InviteSentAt.Format(timeLayout)
	}
	if rec.Interview.VerifySentAt != nil {
		view.Interview.VerifySentAt = rec.Interview.VerifySentAt.Format(timeLayout)
	}
	if rec.Interview.CongratsSentAt != nil {
		view.Interview.CongratsSentAt = rec.Interview.CongratsSentAt.Format(timeLayout)
	}
	return view
}

// ParsedProfile is the structured result of LLM resume extraction.
type ParsedProfile struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Role            string   `json:"role"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Education       string   `json:"education"`
	WorkHistory     string   `json:"work_history"`
	Projects        string   `json:"projects"`
	Certifications  string   `json:"certifications"`
}
