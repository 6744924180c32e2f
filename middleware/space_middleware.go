package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "onboard-backend/lib/utils/auth-utils"
	"onboard-backend/models"
	apimodels "onboard-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetMembershipID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if member, exist := claims["member"]; exist {
		return member.(string)
	}
	return ""
}

func GetCompanyID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if company, exist := claims["company"]; exist {
		return company.(string)
	}
	return ""
}

func GetMembershipRole(ctx *fiber.Ctx) models.MembershipRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.MembershipRole(stringRole)
		}
	}
	return ""
}

// MembershipRequired пропускает только запросы с выбранной компанией в токене
func MembershipRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetCompanyID(ctx) == "" || GetMembershipID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("требуется вход от имени компании"))
		}
		return ctx.Next()
	}
}

func CompanyAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetMembershipRole(ctx).IsCompanyAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
