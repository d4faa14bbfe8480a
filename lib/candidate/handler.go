package candidate

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/db"
	"talentflow-backend/lib/ai"
	candidatestore "talentflow-backend/lib/candidate/store"
	filestorage "talentflow-backend/lib/file-storage"
	applicationstore "talentflow-backend/lib/job-application/store"
	rankingstore "talentflow-backend/lib/ranking/store"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

var ErrNotFound = candidatestore.ErrNotFound

type Provider interface {
	Create(req candidateapimodels.CreateRequest) (id string, err error)
	Update(id string, req candidateapimodels.UpdateRequest) error
	GetByID(id string) (candidateapimodels.CandidateView, error)
	List(filter dbmodels.CandidateFilter, pagination apimodels.Pagination) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	ListByPost(postID string) (list []dbmodels.Candidate, err error)
	// Delete removes the candidate with its resume blobs, rankings and
	// application rows.
	Delete(ctx context.Context, id string) error
	// UploadResume stores the blob, parses it and merges the extracted
	// profile into the candidate; with an empty id a new candidate is
	// created from the parsed profile.
	UploadResume(ctx context.Context, candidateID string, file []byte, fileName, contentType string) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        candidatestore.NewInstance(db.DB),
		rankingStore: rankingstore.NewInstance(db.DB),
		appStore:     applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        candidatestore.Provider
	rankingStore rankingstore.Provider
	appStore     applicationstore.Provider
}

func (i impl) Create(req candidateapimodels.CreateRequest) (string, error) {
	rec := dbmodels.Candidate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Role:            req.Role,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		Education:       req.Education,
		WorkHistory:     req.WorkHistory,
		Projects:        req.Projects,
		Certifications:  req.Certifications,
		Source:          models.CandidateSourceManual,
		Status:          models.PipelineStatusPending,
		ResponseToken:   uuid.NewString(),
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, req candidateapimodels.UpdateRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	updMap := map[string]interface{}{
		"first_name":       req.FirstName,
		"last_name":        req.LastName,
		"email":            req.Email,
		"phone":            req.Phone,
		"role":             req.Role,
		"experience_years": req.ExperienceYears,
		"skills":           toStringArray(req.Skills),
		"education":        req.Education,
		"work_history":     req.WorkHistory,
		"projects":         req.Projects,
		"certifications":   req.Certifications,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, ErrNotFound
	}
	return candidateapimodels.Convert(*rec), nil
}

func (i impl) List(filter dbmodels.CandidateFilter, pagination apimodels.Pagination) ([]candidateapimodels.CandidateView, int64, error) {
	page, limit := pagination.GetPage()
	list, rowCount, err := i.store.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListByPost(postID string) ([]dbmodels.Candidate, error) {
	return i.store.ListByPost(postID)
}

func (i impl) Delete(ctx context.Context, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if err = filestorage.Instance.DeleteCandidateFiles(ctx, id); err != nil {
		return errors.Wrap(err, "resume blob cascade failed")
	}
	if err = i.rankingStore.DeleteByCandidate(id); err != nil {
		return err
	}
	if err = i.appStore.DeleteByCandidate(id); err != nil {
		return err
	}
	return i.store.Delete(id)
}

func (i impl) UploadResume(ctx context.Context, candidateID string, file []byte, fileName, contentType string) (string, error) {
	logger := log.WithField("file_name", fileName)
	profile, err := ai.Instance.ParseResume(ctx, string(file))
	if err != nil {
		// the blob is still stored, the profile just stays manual
		logger.WithError(err).Error("resume parse failed")
	}

	if candidateID == "" {
		rec := dbmodels.Candidate{
			FirstName:       profile.FirstName,
			LastName:        profile.LastName,
			Email:           profile.Email,
			Phone:           profile.Phone,
			Role:            profile.Role,
			ExperienceYears: profile.ExperienceYears,
			Skills:          profile.Skills,
			Education:       profile.Education,
			WorkHistory:     profile.WorkHistory,
			Projects:        profile.Projects,
			Certifications:  profile.Certifications,
			Source:          models.CandidateSourceResumeUpload,
			Status:          models.PipelineStatusPending,
			ResponseToken:   uuid.NewString(),
		}
		candidateID, err = i.store.Create(rec)
		if err != nil {
			return "", err
		}
	} else {
		rec, err := i.store.GetByID(candidateID)
		if err != nil {
			return "", err
		}
		if rec == nil {
			return "", ErrNotFound
		}
		updMap := mergeParsedProfile(*rec, profile)
		if len(updMap) > 0 {
			if err = i.store.Update(candidateID, updMap); err != nil {
				return "", err
			}
		}
	}

	if err = filestorage.Instance.UploadResume(ctx, candidateID, file, fileName, contentType); err != nil {
		return "", err
	}
	return candidateID, nil
}

// mergeParsedProfile fills only the blanks: manually entered values win over
// extracted ones.
func mergeParsedProfile(rec dbmodels.Candidate, profile candidateapimodels.ParsedProfile) map[string]interface{} {
	updMap := map[string]interface{}{}
	if rec.FirstName == "" && profile.FirstName != "" {
		updMap["first_name"] = profile.FirstName
	}
	if rec.LastName == "" && profile.LastName != "" {
		updMap["last_name"] = profile.LastName
	}
	if rec.Email == "" && profile.Email != "" {
		updMap["email"] = profile.Email
	}
	if rec.Phone == "" && profile.Phone != "" {
		updMap["phone"] = profile.Phone
	}
	if rec.Role == "" && profile.Role != "" {
		updMap["role"] = profile.Role
	}
	if rec.ExperienceYears == 0 && profile.ExperienceYears != 0 {
		updMap["experience_years"] = profile.ExperienceYears
	}
	if len(rec.Skills) == 0 && len(profile.Skills) != 0 {
		updMap["skills"] = toStringArray(profile.Skills)
	}
	if rec.Education == "" && profile.Education != "" {
		updMap["education"] = profile.Education
	}
	if rec.WorkHistory == "" && profile.WorkHistory != "" {
		updMap["work_history"] = profile.WorkHistory
	}
	if rec.Projects == "" && profile.Projects != "" {
		updMap["projects"] = profile.Projects
	}
	if rec.Certifications == "" && profile.Certifications != "" {
		updMap["certifications"] = profile.Certifications
	}
	return updMap
}

func toStringArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}
