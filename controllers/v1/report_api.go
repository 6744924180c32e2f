package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"onboard-backend/controllers"
	assignmenthandler "onboard-backend/lib/assignment"
	xlsexport "onboard-backend/lib/export/xls"
	"onboard-backend/middleware"
	apimodels "onboard-backend/models/api"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("reports", func(router fiber.Router) {
		router.Get("assignments/xlsx", controller.assignmentsXlsx)
	})
}

// @Summary Выгрузка назначений в Excel
// @Tags Отчёты
// @Description Выгрузка назначений квестов компании в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/reports/assignments/xlsx [get]
func (c *reportApiController) assignmentsXlsx(ctx *fiber.Ctx) error {
	list, err := assignmenthandler.Instance.ListByCompany(middleware.GetCompanyID(ctx))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	now := time.Now().UTC()
	data, err := xlsexport.Instance.ExportAssignmentList(list, now)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка формирования выгрузки"))
	}
	fileName := fmt.Sprintf("assignments-%v.xlsx", now.Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
