package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "onboard-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Company")
	}
	if err := DB.AutoMigrate(&dbmodels.Membership{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Membership")
	}
	if err := DB.AutoMigrate(&dbmodels.Quest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Quest")
	}
	if err := DB.AutoMigrate(&dbmodels.QuestStep{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры QuestStep")
	}
	if err := DB.AutoMigrate(&dbmodels.QuestAssignment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры QuestAssignment")
	}
	if err := DB.AutoMigrate(&dbmodels.QuestStepSubmission{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры QuestStepSubmission")
	}
	if err := DB.AutoMigrate(&dbmodels.ProbationTask{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ProbationTask")
	}
	if err := DB.AutoMigrate(&dbmodels.ProbationReview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ProbationReview")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
