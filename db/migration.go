package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "talentflow-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	for _, m := range []struct {
		name  string
		model interface{}
	}{
		{"StaffUser", &dbmodels.StaffUser{}},
		{"Candidate", &dbmodels.Candidate{}},
		{"RecruitmentPost", &dbmodels.RecruitmentPost{}},
		{"JobApplication", &dbmodels.JobApplication{}},
		{"InterviewResponse", &dbmodels.InterviewResponse{}},
		{"PipelineHistory", &dbmodels.PipelineHistory{}},
		{"Notification", &dbmodels.Notification{}},
		{"CandidateRanking", &dbmodels.CandidateRanking{}},
		{"FileStorage", &dbmodels.FileStorage{}},
		{"AiLog", &dbmodels.AiLog{}},
	} {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration of %s failed", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
