package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	apimodels "onboard-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// ErrorResponse подбирает http статус по доменной ошибке
func (c *BaseAPIController) ErrorResponse(ctx *fiber.Ctx, err error) error {
	return ctx.Status(apimodels.ErrorStatus(err)).JSON(apimodels.NewError(err.Error()))
}
