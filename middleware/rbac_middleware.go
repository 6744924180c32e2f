package middleware

import (
	"github.com/gofiber/fiber/v2"

	"onboard-backend/lib/rbac"
	apimodels "onboard-backend/models/api"
)

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		memberID := GetMembershipID(ctx)
		if memberID == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("доступ запрещён"))
		}
		role := GetMembershipRole(ctx)
		if role == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("доступ запрещён"))
		}
		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}
		if !handler(GetCompanyID(ctx), memberID, role, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("доступ запрещён"))
		}
		return ctx.Next()
	}
}
