package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboard-backend/controllers"
	membershiphandler "onboard-backend/lib/membership"
	"onboard-backend/middleware"
	apimodels "onboard-backend/models/api"
	membershipapimodels "onboard-backend/models/api/membership"
)

type membershipApiController struct {
	controllers.BaseAPIController
}

func InitMembershipApiRouters(app *fiber.App) {
	controller := membershipApiController{}
	app.Route("members", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("invite", controller.invite)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("subordinates", controller.subordinates)
			idRoute.Put("activate", controller.activate)
			idRoute.Put("manager", controller.setManager)
			idRoute.Put("terminate", controller.terminate)
			idRoute.Put("probation_status", controller.setProbationStatus)
		})
	})
}

// @Summary Список участников
// @Tags Участники компании
// @Description Список участников текущей компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]membershipapimodels.MembershipView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members [get]
func (c *membershipApiController) list(ctx *fiber.Ctx) error {
	resp, err := membershiphandler.Instance.List(middleware.GetCompanyID(ctx))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Приглашение участника
// @Tags Участники компании
// @Description Приглашение зарегистрированного пользователя в компанию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		membershipapimodels.InviteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/invite [post]
func (c *membershipApiController) invite(ctx *fiber.Ctx) error {
	var payload membershipapimodels.InviteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := membershiphandler.Instance.Invite(middleware.GetCompanyID(ctx), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка участника
// @Tags Участники компании
// @Description Карточка участника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Success 200 {object} apimodels.Response{data=membershipapimodels.MembershipView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id} [get]
func (c *membershipApiController) get(ctx *fiber.Ctx) error {
	resp, err := membershiphandler.Instance.GetByID(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Подчинённые участника
// @Tags Участники компании
// @Description Подчинённые участника, при recursive=true вся ветка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Param	recursive			query		bool	false	"включая подчинённых подчинённых"
// @Success 200 {object} apimodels.Response{data=[]membershipapimodels.MembershipView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/subordinates [get]
func (c *membershipApiController) subordinates(ctx *fiber.Ctx) error {
	recursive := ctx.QueryBool("recursive", false)
	resp, err := membershiphandler.Instance.Subordinates(middleware.GetCompanyID(ctx), ctx.Params("id"), recursive)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Активация участника
// @Tags Участники компании
// @Description Перевод кандидата в действующие сотрудники
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Param	body				body		membershipapimodels.ActivateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=membershipapimodels.MembershipView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/activate [put]
func (c *membershipApiController) activate(ctx *fiber.Ctx) error {
	var payload membershipapimodels.ActivateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := membershiphandler.Instance.Activate(middleware.GetCompanyID(ctx), ctx.Params("id"), payload.Role)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Назначение руководителя
// @Tags Участники компании
// @Description Назначение руководителя участнику, циклы подчинения запрещены
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Param	body				body		membershipapimodels.SetManagerData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/manager [put]
func (c *membershipApiController) setManager(ctx *fiber.Ctx) error {
	var payload membershipapimodels.SetManagerData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := membershiphandler.Instance.SetManager(middleware.GetCompanyID(ctx), ctx.Params("id"), payload.ManagerMembershipID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Увольнение участника
// @Tags Участники компании
// @Description Перевод участника в статус уволенного
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/terminate [put]
func (c *membershipApiController) terminate(ctx *fiber.Ctx) error {
	err := membershiphandler.Instance.Terminate(middleware.GetCompanyID(ctx), ctx.Params("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса испытательного срока
// @Tags Участники компании
// @Description Ручная смена статуса испытательного срока участника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ID участника"
// @Param	body				body		membershipapimodels.ProbationStatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/members/{id}/probation_status [put]
func (c *membershipApiController) setProbationStatus(ctx *fiber.Ctx) error {
	var payload membershipapimodels.ProbationStatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := membershiphandler.Instance.SetProbationStatus(middleware.GetCompanyID(ctx), ctx.Params("id"), payload.Status)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
