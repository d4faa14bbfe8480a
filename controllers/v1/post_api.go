package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/controllers"
	candidatehandler "talentflow-backend/lib/candidate"
	xlsexport "talentflow-backend/lib/export/xls"
	filestorage "talentflow-backend/lib/file-storage"
	jobapplicationhandler "talentflow-backend/lib/job-application"
	rankinghandler "talentflow-backend/lib/ranking"
	recruitmentposthandler "talentflow-backend/lib/recruitment-post"
	apimodels "talentflow-backend/models/api"
	postapimodels "talentflow-backend/models/api/post"
)

type postApiController struct {
	controllers.BaseAPIController
}

func InitPostApiRouters(app *fiber.App) {
	controller := postApiController{}
	app.Route("post", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Post("apply/:candidateId", controller.apply)
			idRouter.Get("applications", controller.applications)
			idRouter.Post("upload-jd", controller.uploadJD)
			idRouter.Put("close", controller.close)
			idRouter.Get("export", controller.export) // xlsx pipeline report
		})
	})
}

// @Summary Create a recruitment post
// @Tags Recruitment post
// @Description Create a recruitment post
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		postapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post [post]
func (c *postApiController) create(ctx *fiber.Ctx) error {
	var payload postapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := recruitmentposthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Recruitment post list
// @Tags Recruitment post
// @Description Recruitment post list with filter and pagination
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		postapimodels.ListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]postapimodels.PostView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/list [post]
func (c *postApiController) list(ctx *fiber.Ctx) error {
	var payload postapimodels.ListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := recruitmentposthandler.Instance.List(payload.Filter, payload.Pagination)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a recruitment post
// @Tags Recruitment post
// @Description Get a recruitment post by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Success 200 {object} apimodels.Response{data=postapimodels.PostView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id} [get]
func (c *postApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := recruitmentposthandler.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, recruitmentposthandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a recruitment post
// @Tags Recruitment post
// @Description Update a recruitment post
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Param	body				body		postapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id} [put]
func (c *postApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload postapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := recruitmentposthandler.Instance.Update(id, payload); err != nil {
		if errors.Is(err, recruitmentposthandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a recruitment post
// @Tags Recruitment post
// @Description Delete a recruitment post
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id} [delete]
func (c *postApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := recruitmentposthandler.Instance.Delete(id); err != nil {
		if errors.Is(err, recruitmentposthandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Apply a candidate to a post
// @Tags Recruitment post
// @Description Create a job application for the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Param   candidateId         path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id}/apply/{candidateId} [post]
func (c *postApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID, err := c.GetParamID(ctx, "candidateId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applicationID, err := jobapplicationhandler.Instance.Apply(id, candidateID)
	if err != nil {
		switch {
		case errors.Is(err, jobapplicationhandler.ErrPostNotFound),
			errors.Is(err, jobapplicationhandler.ErrCandidateNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, jobapplicationhandler.ErrPostClosed):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationID))
}

// @Summary Applications of a post
// @Tags Recruitment post
// @Description Job applications of the post
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Success 200 {object} apimodels.Response{data=[]postapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id}/applications [get]
func (c *postApiController) applications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := jobapplicationhandler.Instance.ListByPost(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Upload a job description
// @Tags Recruitment post
// @Description Upload the job description file of the post
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Param   jd		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id}/upload-jd [post]
func (c *postApiController) uploadJD(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("jd")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded job description")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded job description")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	contentType := file.Header.Get("Content-Type")
	if err = filestorage.Instance.UploadJD(ctx.UserContext(), id, fileBody, file.Filename, contentType); err != nil {
		return c.SendError(ctx, err)
	}
	if err = recruitmentposthandler.Instance.SetJDFileName(id, file.Filename); err != nil {
		if errors.Is(err, recruitmentposthandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Close a recruitment post
// @Tags Recruitment post
// @Description Close the post for new applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id}/close [put]
func (c *postApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := recruitmentposthandler.Instance.Close(id); err != nil {
		if errors.Is(err, recruitmentposthandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export the candidate pipeline report
// @Tags Recruitment post
// @Description Candidates of the post with pipeline statuses and scores, as xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "post ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/post/{id}/export [get]
func (c *postApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	post, err := recruitmentposthandler.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, recruitmentposthandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	candidates, err := candidatehandler.Instance.ListByPost(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	scores, err := rankinghandler.Instance.ScoresByPost(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportCandidateList(post.Title, candidates, scores)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, post.Title))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
