package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "talentflow-backend/models/api"
	"talentflow-backend/models/errs"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParamID(ctx, "id")
}

func (c *BaseAPIController) GetParamID(ctx *fiber.Ctx, name string) (string, error) {
	id := ctx.Params(name)
	if id == "" {
		return "", errors.Errorf("%s is not specified", name)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Errorf("%s is not a valid identifier", name)
	}
	return id, nil
}

// SendError maps the domain error taxonomy onto HTTP statuses.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	switch {
	case errs.IsValidation(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errs.IsConflict(err):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case errs.IsNotificationDelivery(err):
		return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewError(err.Error()))
	case errs.IsCompute(err):
		return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewError(err.Error()))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
}
