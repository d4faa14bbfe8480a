package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"talentflow-backend/config"
	"talentflow-backend/fiberlog"
	aihandler "talentflow-backend/lib/ai"
	authhandler "talentflow-backend/lib/auth"
	candidatehandler "talentflow-backend/lib/candidate"
	xlsexport "talentflow-backend/lib/export/xls"
	filestorage "talentflow-backend/lib/file-storage"
	interviewresponsehandler "talentflow-backend/lib/interview-response"
	jobapplicationhandler "talentflow-backend/lib/job-application"
	notify "talentflow-backend/lib/notify"
	pipelinehandler "talentflow-backend/lib/pipeline"
	pipelinehistoryhandler "talentflow-backend/lib/pipeline-history"
	rankinghandler "talentflow-backend/lib/ranking"
	recruitmentposthandler "talentflow-backend/lib/recruitment-post"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("bucket check failed")
	}
	notify.NewHandler()
	aihandler.NewHandler()
	authhandler.NewHandler()
	recruitmentposthandler.NewHandler()
	jobapplicationhandler.NewHandler()
	interviewresponsehandler.NewHandler()
	pipelinehistoryhandler.NewHandler()
	candidatehandler.NewHandler()
	rankinghandler.NewHandler()
	pipelinehandler.NewHandler()
	xlsexport.NewHandler()
}
