package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboard-backend/controllers"
	questhandler "onboard-backend/lib/quest"
	"onboard-backend/middleware"
	"onboard-backend/models"
	apimodels "onboard-backend/models/api"
	questapimodels "onboard-backend/models/api/quest"
)

type questApiController struct {
	controllers.BaseAPIController
}

func InitQuestApiRouters(app *fiber.App) {
	controller := questApiController{}
	app.Route("quests", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Put("publish", controller.publish)
			idRoute.Put("archive", controller.archive)
			idRoute.Post("steps", controller.addStep)
			idRoute.Delete("steps/:stepId", controller.removeStep)
		})
	})
}

// @Summary Список квестов
// @Tags Квесты онбординга
// @Description Список квестов компании, опционально по статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	status				query		string	false	"статус квеста (draft/published/archived)"
// @Success 200 {object} apimodels.Response{data=[]questapimodels.QuestView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests [get]
func (c *questApiController) list(ctx *fiber.Ctx) error {
	status := models.QuestStatus(ctx.Query("status"))
	resp, err := questhandler.Instance.List(middleware.GetCompanyID(ctx), status)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание квеста
// @Tags Квесты онбординга
// @Description Создание квеста в статусе черновика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		questapimodels.QuestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests [post]
func (c *questApiController) create(ctx *fiber.Ctx) error {
	var payload questapimodels.QuestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := questhandler.Instance.Create(middleware.GetCompanyID(ctx), middleware.GetMembershipID(ctx), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка квеста
// @Tags Квесты онбординга
// @Description Карточка квеста с шагами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID квеста"
// @Success 200 {object} apimodels.Response{data=questapimodels.QuestView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests/{id} [get]
func (c *questApiController) get(ctx *fiber.Ctx) error {
	resp, err := questhandler.Instance.GetByID(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение квеста
// @Tags Квесты онбординга
// @Description Изменение квеста, доступно только для черновика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID квеста"
// @Param	body				body		questapimodels.QuestUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests/{id} [put]
func (c *questApiController) update(ctx *fiber.Ctx) error {
	var payload questapimodels.QuestUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := questhandler.Instance.Update(middleware.GetCompanyID(ctx), ctx.Params("id"), payload); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Публикация квеста
// @Tags Квесты онбординга
// @Description Перевод черновика в опубликованный, после публикации состав шагов не меняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID квеста"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests/{id}/publish [put]
func (c *questApiController) publish(ctx *fiber.Ctx) error {
	if err := questhandler.Instance.Publish(middleware.GetCompanyID(ctx), ctx.Params("id")); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Архивация квеста
// @Tags Квесты онбординга
// @Description Архивация опубликованного квеста, новые назначения запрещаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID квеста"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests/{id}/archive [put]
func (c *questApiController) archive(ctx *fiber.Ctx) error {
	if err := questhandler.Instance.Archive(middleware.GetCompanyID(ctx), ctx.Params("id")); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление шага
// @Tags Квесты онбординга
// @Description Добавление шага к черновику квеста
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID квеста"
// @Param	body				body		questapimodels.StepData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests/{id}/steps [post]
func (c *questApiController) addStep(ctx *fiber.Ctx) error {
	var payload questapimodels.StepData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := questhandler.Instance.AddStep(middleware.GetCompanyID(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Удаление шага
// @Tags Квесты онбординга
// @Description Удаление шага из черновика квеста
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID квеста"
// @Param	stepId				path		string	true	"ID шага"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/quests/{id}/steps/{stepId} [delete]
func (c *questApiController) removeStep(ctx *fiber.Ctx) error {
	if err := questhandler.Instance.RemoveStep(middleware.GetCompanyID(ctx), ctx.Params("id"), ctx.Params("stepId")); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
