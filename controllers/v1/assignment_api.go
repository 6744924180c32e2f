package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"onboard-backend/controllers"
	assignmenthandler "onboard-backend/lib/assignment"
	"onboard-backend/middleware"
	apimodels "onboard-backend/models/api"
	questapimodels "onboard-backend/models/api/quest"
)

type assignmentApiController struct {
	controllers.BaseAPIController
}

func InitAssignmentApiRouters(app *fiber.App) {
	controller := assignmentApiController{}
	app.Route("assignments", func(router fiber.Router) {
		router.Get("", controller.listByCompany)
		router.Post("", controller.assign)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("expire", controller.expire)
			idRoute.Put("steps/:stepId", controller.completeStep)
		})
	})
	app.Get("members/:id/assignments", controller.listByMember)
}

// @Summary Список назначений компании
// @Tags Назначения квестов
// @Description Список назначений по всей компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]questapimodels.AssignmentView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assignments [get]
func (c *assignmentApiController) listByCompany(ctx *fiber.Ctx) error {
	recList, err := assignmenthandler.Instance.ListByCompany(middleware.GetCompanyID(ctx))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	now := time.Now().UTC()
	resp := make([]questapimodels.AssignmentView, 0, len(recList))
	for _, rec := range recList {
		resp = append(resp, questapimodels.AssignmentConvert(rec, assignmenthandler.DisplayStatus(rec, now)))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Назначение квеста
// @Tags Назначения квестов
// @Description Назначение квеста участнику, дедлайн вычисляется при создании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		questapimodels.AssignData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assignments [post]
func (c *assignmentApiController) assign(ctx *fiber.Ctx) error {
	var payload questapimodels.AssignData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := assignmenthandler.Instance.Assign(middleware.GetCompanyID(ctx), middleware.GetMembershipID(ctx), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка назначения
// @Tags Назначения квестов
// @Description Карточка назначения с сабмишенами шагов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID назначения"
// @Success 200 {object} apimodels.Response{data=questapimodels.AssignmentView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assignments/{id} [get]
func (c *assignmentApiController) get(ctx *fiber.Ctx) error {
	resp, err := assignmenthandler.Instance.GetByID(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Аннулирование назначения
// @Tags Назначения квестов
// @Description Административное аннулирование назначения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID назначения"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assignments/{id}/expire [put]
func (c *assignmentApiController) expire(ctx *fiber.Ctx) error {
	if err := assignmenthandler.Instance.Expire(middleware.GetCompanyID(ctx), ctx.Params("id")); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса шага
// @Tags Назначения квестов
// @Description Перевод сабмишена шага по допустимому переходу, согласование по роли шага
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID назначения"
// @Param	stepId				path		string	true	"ID шага"
// @Param	body				body		questapimodels.CompleteStepData	true	"request body"
// @Success 200 {object} apimodels.Response{data=questapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assignments/{id}/steps/{stepId} [put]
func (c *assignmentApiController) completeStep(ctx *fiber.Ctx) error {
	var payload questapimodels.CompleteStepData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := assignmenthandler.Instance.CompleteStep(
		middleware.GetCompanyID(ctx),
		ctx.Params("id"),
		ctx.Params("stepId"),
		middleware.GetMembershipID(ctx),
		middleware.GetMembershipRole(ctx),
		payload,
	)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Назначения участника
// @Tags Назначения квестов
// @Description Список назначений участника со статусом на момент запроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Success 200 {object} apimodels.Response{data=[]questapimodels.AssignmentView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/assignments [get]
func (c *assignmentApiController) listByMember(ctx *fiber.Ctx) error {
	resp, err := assignmenthandler.Instance.ListByMembership(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
