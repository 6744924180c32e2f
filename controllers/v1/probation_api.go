package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboard-backend/controllers"
	probationhandler "onboard-backend/lib/probation"
	"onboard-backend/middleware"
	apimodels "onboard-backend/models/api"
	probationapimodels "onboard-backend/models/api/probation"
)

type probationApiController struct {
	controllers.BaseAPIController
}

func InitProbationApiRouters(app *fiber.App) {
	controller := probationApiController{}
	app.Route("probation/tasks", func(router fiber.Router) {
		router.Post("", controller.createTask)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getTask)
			idRoute.Put("status", controller.changeTaskStatus)
			idRoute.Post("review", controller.review)
		})
	})
	app.Get("members/:id/probation/tasks", controller.listTasks)
	app.Post("members/:id/probation/evaluate", controller.evaluate)
}

// @Summary Создание задачи испытательного срока
// @Tags Испытательный срок
// @Description Создание задачи испытательного срока участнику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		probationapimodels.TaskCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/probation/tasks [post]
func (c *probationApiController) createTask(ctx *fiber.Ctx) error {
	var payload probationapimodels.TaskCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := probationhandler.Instance.CreateTask(middleware.GetCompanyID(ctx), middleware.GetMembershipID(ctx), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка задачи
// @Tags Испытательный срок
// @Description Карточка задачи испытательного срока с оценками
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID задачи"
// @Success 200 {object} apimodels.Response{data=probationapimodels.TaskView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/probation/tasks/{id} [get]
func (c *probationApiController) getTask(ctx *fiber.Ctx) error {
	resp, err := probationhandler.Instance.GetTask(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса задачи
// @Tags Испытательный срок
// @Description Смена статуса задачи испытательного срока
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID задачи"
// @Param	body				body		probationapimodels.TaskStatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/probation/tasks/{id}/status [put]
func (c *probationApiController) changeTaskStatus(ctx *fiber.Ctx) error {
	var payload probationapimodels.TaskStatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := probationhandler.Instance.ChangeTaskStatus(middleware.GetCompanyID(ctx), ctx.Params("id"), payload); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Оценка задачи
// @Tags Испытательный срок
// @Description Оценка выполненной задачи с решением pass/extend/fail
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID задачи"
// @Param	body				body		probationapimodels.ReviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/probation/tasks/{id}/review [post]
func (c *probationApiController) review(ctx *fiber.Ctx) error {
	var payload probationapimodels.ReviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := probationhandler.Instance.Review(middleware.GetCompanyID(ctx), ctx.Params("id"), middleware.GetMembershipID(ctx), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Задачи участника
// @Tags Испытательный срок
// @Description Задачи испытательного срока участника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Success 200 {object} apimodels.Response{data=[]probationapimodels.TaskView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/probation/tasks [get]
func (c *probationApiController) listTasks(ctx *fiber.Ctx) error {
	resp, err := probationhandler.Instance.ListTasks(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Оценка испытательного срока
// @Tags Испытательный срок
// @Description Пересчёт статуса испытательного срока участника по его задачам и решениям
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/probation/evaluate [post]
func (c *probationApiController) evaluate(ctx *fiber.Ctx) error {
	status, err := probationhandler.Instance.Evaluate(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(status.ToHuman()))
}
