package postapimodels

import (
	"github.com/pkg/errors"
	apimodels "talentflow-backend/models/api"
	dbmodels "talentflow-backend/models/db"
)

type PostData struct {
	Title              string   `json:"title"`
	Department         string   `json:"department"`
	Description        string   `json:"description"`
	RequiredExperience int      `json:"required_experience"`
	Qualification      string   `json:"qualification"`
	Skills             []string `json:"skills"`
	SalaryFrom         int      `json:"salary_from"`
	SalaryTo           int      `json:"salary_to"`
	Openings           int      `json:"openings"`
}

type CreateRequest struct {
	PostData
}

func (r CreateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("post title is required")
	}
	return nil
}

type ListRequest struct {
	Filter     dbmodels.PostFilter  `json:"filter"`
	Pagination apimodels.Pagination `json:"pagination"`
}

type PostView struct {
	ID string `json:"id"`
	PostData
	JDFileName string `json:"jd_file_name,omitempty"`
	Closed     bool   `json:"closed"`
}

func Convert(rec dbmodels.RecruitmentPost) PostView {
	return PostView{
		ID: rec.ID,
		PostData: PostData{
			Title:              rec.Title,
			Department:         rec.Department,
			Description:        rec.Description,
			RequiredExperience: rec.RequiredExperience,
			Qualification:      rec.Qualification,
			Skills:             rec.Skills,
			SalaryFrom:         rec.SalaryFrom,
			SalaryTo:           rec.SalaryTo,
			Openings:           rec.Openings,
		},
		JDFileName: rec.JDFileName,
		Closed:     rec.Closed,
	}
}

type ApplicationView struct {
	ID            string `json:"id"`
	PostID        string `json:"post_id"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Status        string `json:"status"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:          rec.ID,
		PostID:      rec.PostID,
		CandidateID: rec.CandidateID,
		Status:      string(rec.Status),
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.GetFullName()
	}
	return view
}
