package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/controllers"
	candidatehandler "talentflow-backend/lib/candidate"
	filestorage "talentflow-backend/lib/file-storage"
	jobapplicationhandler "talentflow-backend/lib/job-application"
	pipelinehandler "talentflow-backend/lib/pipeline"
	pipelinehistoryhandler "talentflow-backend/lib/pipeline-history"
	rankinghandler "talentflow-backend/lib/ranking"
	"talentflow-backend/middleware"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"
	pipelineapimodels "talentflow-backend/models/api/pipeline"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("upload-resume", controller.createFromResume) // create a candidate from a resume file
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Post("upload-resume", controller.uploadResume) // attach a resume to an existing candidate
			idRouter.Get("resume", controller.getResume)            // download the stored resume
			idRouter.Get("resume-link", controller.getResumeLink)   // presigned download link
			idRouter.Put("pipeline", controller.transition)         // the single pipeline transition entrypoint
			idRouter.Get("history", controller.history)
			idRouter.Get("applications", controller.applications)
			idRouter.Get("ranking/:postId", controller.ranking)
		})
	})
}

// @Summary Create a candidate
// @Tags Candidate
// @Description Create a candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidatehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Candidate list
// @Tags Candidate
// @Description Candidate list with filter and pagination
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.ListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := candidatehandler.Instance.List(payload.Filter, payload.Pagination)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a candidate
// @Tags Candidate
// @Description Get a candidate by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidatehandler.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a candidate
// @Tags Candidate
// @Description Update candidate profile fields
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param	body				body		candidateapimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.UpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.Update(id, payload); err != nil {
		if errors.Is(err, candidatehandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a candidate
// @Tags Candidate
// @Description Delete a candidate with resume blobs, rankings and applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.Delete(ctx.UserContext(), id); err != nil {
		if errors.Is(err, candidatehandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Create a candidate from a resume
// @Tags Candidate
// @Description Upload a resume file and create a candidate from the parsed profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   resume		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/upload-resume [post]
func (c *candidateApiController) createFromResume(ctx *fiber.Ctx) error {
	return c.handleResumeUpload(ctx, "")
}

// @Summary Upload a candidate resume
// @Tags Candidate
// @Description Upload a resume for an existing candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param   resume		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/upload-resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.handleResumeUpload(ctx, id)
}

func (c *candidateApiController) handleResumeUpload(ctx *fiber.Ctx, candidateID string) error {
	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded resume")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded resume")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	contentType := file.Header.Get("Content-Type")
	id, err := candidatehandler.Instance.UploadResume(ctx.UserContext(), candidateID, fileBody, file.Filename, contentType)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Download a candidate resume
// @Tags Candidate
// @Description Download the stored resume file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/resume [get]
func (c *candidateApiController) getResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, fileName, err := filestorage.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Resume download link
// @Tags Candidate
// @Description Presigned link for downloading the stored resume
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/resume-link [get]
func (c *candidateApiController) getResumeLink(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	link, err := filestorage.Instance.GetResumeURL(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(link))
}

// @Summary Apply a pipeline transition
// @Tags Candidate
// @Description Apply a pipeline event to the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param	body				body		pipelineapimodels.TransitionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.TransitionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/pipeline [put]
func (c *candidateApiController) transition(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.TransitionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !payload.Event.Valid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unknown pipeline event"))
	}
	actorID := middleware.GetUserID(ctx)
	status, err := pipelinehandler.Instance.Apply(ctx.UserContext(), actorID, id, payload.Event, payload.Payload)
	if err != nil {
		if errors.Is(err, pipelinehandler.ErrCandidateNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(pipelineapimodels.TransitionResponse{Status: status}))
}

// @Summary Candidate pipeline history
// @Tags Candidate
// @Description Audit trail of pipeline transitions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/history [get]
func (c *candidateApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := pipelinehistoryhandler.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Candidate applications
// @Tags Candidate
// @Description Job applications of the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=[]postapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/applications [get]
func (c *candidateApiController) applications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := jobapplicationhandler.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Candidate ranking for a post
// @Tags Candidate
// @Description Cached relevance score of the candidate against the post
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param   postId          	path    string  true         "post ID"
// @Success 200 {object} apimodels.Response{data=rankingapimodels.RankingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/ranking/{postId} [get]
func (c *candidateApiController) ranking(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	postID, err := c.GetParamID(ctx, "postId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := rankinghandler.Instance.GetOrCompute(ctx.UserContext(), id, postID)
	if err != nil {
		if errors.Is(err, rankinghandler.ErrCandidateNotFound) || errors.Is(err, rankinghandler.ErrPostNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
