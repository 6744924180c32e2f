package xlsexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	assignmenthandler "onboard-backend/lib/assignment"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	ExportAssignmentList(list []dbmodels.QuestAssignment, now time.Time) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var assignmentHeaders = []string{"Сотрудник", "Квест", "Статус", "Прогресс, %", "Назначен", "Срок", "Завершён"}

// ExportAssignmentList выгружает назначения квестов компании,
// просроченность вычисляется на момент выгрузки.
func (i impl) ExportAssignmentList(list []dbmodels.QuestAssignment, now time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, assignmentHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeAssignmentData(f, sheet, list, row, now)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Онбординг")
	return f.WriteToBuffer()
}

func writeAssignmentData(f *excelize.File, sheet string, list []dbmodels.QuestAssignment, row int, now time.Time) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(assignmentHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Сотрудник"
		col := 1
		memberName := item.MembershipID
		if item.Membership != nil && item.Membership.User != nil {
			memberName = item.Membership.User.GetFullName()
		}
		if err := writeColumn(f, sheet, col, row, memberName); err != nil {
			return row, err
		}

		// "Квест"
		col++
		if item.Quest != nil {
			if err := writeColumn(f, sheet, col, row, item.Quest.Title); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		status := assignmenthandler.DisplayStatus(item, now)
		if err := writeColumn(f, sheet, col, row, status.ToHuman()); err != nil {
			return row, err
		}

		// "Прогресс, %"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.0f", item.ProgressPercent)); err != nil {
			return row, err
		}

		// "Назначен"
		col++
		if err := writeColumn(f, sheet, col, row, item.AssignedAt.Format("02.01.2006")); err != nil {
			return row, err
		}

		// "Срок"
		col++
		if err := writeColumn(f, sheet, col, row, item.DueAt.Format("02.01.2006")); err != nil {
			return row, err
		}

		// "Завершён"
		col++
		if item.CompletedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.CompletedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
