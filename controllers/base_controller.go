package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse error")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id not specified")
	}
	return id, nil
}

func (c *BaseAPIController) GetParamID(ctx *fiber.Ctx, name string) (string, error) {
	id := ctx.Params(name)
	if id == "" {
		return "", errors.Errorf("%v not specified", name)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps the application error kind to an HTTP status.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	kind, ok := models.GetErrorKind(err)
	if ok {
		switch kind {
		case models.ValidationErrorKind:
			status = fiber.StatusBadRequest
		case models.InvalidStateErrorKind, models.DuplicateErrorKind:
			status = fiber.StatusConflict
		case models.NotFoundErrorKind:
			status = fiber.StatusNotFound
		case models.PermissionErrorKind:
			status = fiber.StatusForbidden
		case models.ExternalErrorKind:
			status = fiber.StatusBadGateway
		}
	}
	if status == fiber.StatusInternalServerError {
		c.GetLogger(ctx).WithError(err).Error("request failed")
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
