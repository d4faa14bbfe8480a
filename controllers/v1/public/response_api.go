package publicapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"talentflow-backend/controllers"
	interviewresponsehandler "talentflow-backend/lib/interview-response"
	apimodels "talentflow-backend/models/api"
	responseapimodels "talentflow-backend/models/api/response"
)

type publicResponseApiController struct {
	controllers.BaseAPIController
}

func InitPublicResponseApiRouters(app *fiber.App) {
	controller := publicResponseApiController{}
	app.Route("response", func(router fiber.Router) {
		router.Route(":token", func(tokenRouter fiber.Router) {
			tokenRouter.Get("", controller.getInvite)
			tokenRouter.Post("", controller.submit)
		})
	})
}

// @Summary Get the interview invite
// @Tags Interview response
// @Description Interview invite details behind the candidate's personal link
// @Param   token          		path    string  true         "response token"
// @Success 200 {object} apimodels.Response{data=responseapimodels.InviteView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/response/{token} [get]
func (c *publicResponseApiController) getInvite(ctx *fiber.Ctx) error {
	token, err := c.GetParamID(ctx, "token")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewresponsehandler.Instance.GetInvite(token)
	if err != nil {
		if errors.Is(err, interviewresponsehandler.ErrInvalidToken) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit the interview response
// @Tags Interview response
// @Description Candidate's reply to the interview invite
// @Param   token          		path    string  true         "response token"
// @Param	body				body		responseapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/response/{token} [post]
func (c *publicResponseApiController) submit(ctx *fiber.Ctx) error {
	token, err := c.GetParamID(ctx, "token")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload responseapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := interviewresponsehandler.Instance.Submit(token, payload); err != nil {
		if errors.Is(err, interviewresponsehandler.ErrInvalidToken) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
