package initializers

import (
	"context"

	"onboard-backend/config"
	"onboard-backend/fiberlog"
	assignmenthandler "onboard-backend/lib/assignment"
	authhandler "onboard-backend/lib/auth"
	companyhandler "onboard-backend/lib/company"
	xlsexport "onboard-backend/lib/export/xls"
	membershiphandler "onboard-backend/lib/membership"
	probationhandler "onboard-backend/lib/probation"
	questhandler "onboard-backend/lib/quest"
	"onboard-backend/lib/rbac"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	rbac.NewHandler()
	authhandler.NewHandler()
	companyhandler.NewHandler()
	membershiphandler.NewHandler()
	questhandler.NewHandler()
	assignmenthandler.NewHandler()
	probationhandler.NewHandler()
	xlsexport.NewHandler()
}
