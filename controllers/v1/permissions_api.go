package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboard-backend/controllers"
	"onboard-backend/lib/rbac"
	"onboard-backend/middleware"
	apimodels "onboard-backend/models/api"
)

type permissionsApiController struct {
	controllers.BaseAPIController
}

func InitPermissionsApiRouters(app *fiber.App) {
	controller := permissionsApiController{}
	app.Get("permissions", controller.permissions)
}

// @Summary Операции текущей роли
// @Tags Доступы
// @Description Таблица доступных операций по модулям для роли текущего участника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @router /api/v1/space/permissions [get]
func (c *permissionsApiController) permissions(ctx *fiber.Ctx) error {
	resp := rbac.Instance.GetPermissions(middleware.GetMembershipRole(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
