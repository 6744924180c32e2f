package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboard-backend/controllers"
	companyhandler "onboard-backend/lib/company"
	"onboard-backend/middleware"
	apimodels "onboard-backend/models/api"
	companyapimodels "onboard-backend/models/api/company"
)

type companyApiController struct {
	controllers.BaseAPIController
}

// InitCompanyRegRouters регистрирует создание компании:
// доступно любому аутентифицированному пользователю, членство не требуется
func InitCompanyRegRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
	})
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.update)
	})
}

// @Summary Создание компании
// @Tags Компания
// @Description Создание компании, создатель становится её владельцем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		companyapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company [post]
func (c *companyApiController) create(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := companyhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Данные компании
// @Tags Компания
// @Description Данные текущей компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/company [get]
func (c *companyApiController) get(ctx *fiber.Ctx) error {
	resp, err := companyhandler.Instance.GetByID(middleware.GetCompanyID(ctx))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение компании
// @Tags Компания
// @Description Изменение данных текущей компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		companyapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/company [put]
func (c *companyApiController) update(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := companyhandler.Instance.Update(middleware.GetCompanyID(ctx), payload); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
