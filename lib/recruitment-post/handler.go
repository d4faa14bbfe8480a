package recruitmentpost

import (
	"github.com/lib/pq"
	"talentflow-backend/db"
	poststore "talentflow-backend/lib/recruitment-post/store"
	apimodels "talentflow-backend/models/api"
	postapimodels "talentflow-backend/models/api/post"
	dbmodels "talentflow-backend/models/db"
)

var ErrNotFound = poststore.ErrNotFound

type Provider interface {
	Create(req postapimodels.CreateRequest) (id string, err error)
	Update(id string, req postapimodels.CreateRequest) error
	GetByID(id string) (postapimodels.PostView, error)
	List(filter dbmodels.PostFilter, pagination apimodels.Pagination) (list []postapimodels.PostView, rowCount int64, err error)
	SetJDFileName(id, fileName string) error
	Close(id string) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: poststore.NewInstance(db.DB),
	}
}

type impl struct {
	store poststore.Provider
}

func (i impl) Create(req postapimodels.CreateRequest) (string, error) {
	rec := dbmodels.RecruitmentPost{
		Title:              req.Title,
		Department:         req.Department,
		Description:        req.Description,
		RequiredExperience: req.RequiredExperience,
		Qualification:      req.Qualification,
		Skills:             req.Skills,
		SalaryFrom:         req.SalaryFrom,
		SalaryTo:           req.SalaryTo,
		Openings:           req.Openings,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, req postapimodels.CreateRequest) error {
	updMap := map[string]interface{}{
		"title":               req.Title,
		"department":          req.Department,
		"description":         req.Description,
		"required_experience": req.RequiredExperience,
		"qualification":       req.Qualification,
		"skills":              pq.StringArray(req.Skills),
		"salary_from":         req.SalaryFrom,
		"salary_to":           req.SalaryTo,
		"openings":            req.Openings,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (postapimodels.PostView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return postapimodels.PostView{}, err
	}
	if rec == nil {
		return postapimodels.PostView{}, ErrNotFound
	}
	return postapimodels.Convert(*rec), nil
}

func (i impl) List(filter dbmodels.PostFilter, pagination apimodels.Pagination) ([]postapimodels.PostView, int64, error) {
	page, limit := pagination.GetPage()
	list, rowCount, err := i.store.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]postapimodels.PostView, 0, len(list))
	for _, rec := range list {
		result = append(result, postapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) SetJDFileName(id, fileName string) error {
	return i.store.Update(id, map[string]interface{}{"jd_file_name": fileName})
}

func (i impl) Close(id string) error {
	return i.store.Update(id, map[string]interface{}{"closed": true})
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}
