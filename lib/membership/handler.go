package membershiphandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"onboard-backend/db"
	membershipstore "onboard-backend/lib/membership/store"
	usersstore "onboard-backend/lib/users/store"
	"onboard-backend/models"
	membershipapimodels "onboard-backend/models/api/membership"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Invite(inviterCompanyID string, data membershipapimodels.InviteData) (id string, err error)
	Activate(companyID, id string, role models.MembershipRole) (membershipapimodels.MembershipView, error)
	SetManager(companyID, memberID, managerID string) error
	Subordinates(companyID, managerID string, recursive bool) ([]membershipapimodels.MembershipView, error)
	Terminate(companyID, id string) error
	SetProbationStatus(companyID, id string, status models.ProbationStatus) error
	GetByID(companyID, id string) (membershipapimodels.MembershipView, error)
	List(companyID string) ([]membershipapimodels.MembershipView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      membershipstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:      membershipstore.NewInstance(tx),
		usersStore: usersstore.NewInstance(tx),
	}
}

type impl struct {
	store      membershipstore.Provider
	usersStore usersstore.Provider
}

func (i impl) getLogger(companyID string) *log.Entry {
	return log.WithField("company_id", companyID)
}

func (i impl) Invite(inviterCompanyID string, data membershipapimodels.InviteData) (id string, err error) {
	logger := i.getLogger(inviterCompanyID).WithField("email", data.Email)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		usersStore := usersstore.NewInstance(tx)
		store := membershipstore.NewInstance(tx)
		user, err := usersStore.GetByEmail(data.Email)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.Wrap(models.ErrNotFound, "пользователь с таким email не зарегистрирован")
		}
		exist, err := store.GetByUserAndCompany(user.ID, inviterCompanyID)
		if err != nil {
			return err
		}
		if exist != nil {
			return errors.Wrap(models.ErrConflict, "пользователь уже приглашён в компанию")
		}
		rec := dbmodels.Membership{
			UserID:          user.ID,
			CompanyID:       inviterCompanyID,
			Role:            data.Role,
			Status:          models.MembershipInvited,
			ProbationStatus: models.ProbationOngoing,
		}
		id, err = store.Create(rec)
		return err
	})
	if err != nil {
		return "", err
	}
	logger.WithField("rec_id", id).Info("участник приглашён в компанию")
	return id, nil
}

func (i impl) Activate(companyID, id string, role models.MembershipRole) (membershipapimodels.MembershipView, error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return membershipapimodels.MembershipView{}, err
	}
	if rec.Status != models.MembershipApplicant {
		return membershipapimodels.MembershipView{},
			errors.Wrapf(models.ErrInvalidState, "активировать можно только кандидата, текущий статус: %v", rec.Status.ToHuman())
	}
	if role == "" {
		role = models.EmployeeRole
	}
	updMap := map[string]interface{}{
		"role":   role,
		"status": models.MembershipActive,
	}
	if err = i.store.Update(companyID, id, updMap); err != nil {
		return membershipapimodels.MembershipView{}, err
	}
	rec.Role = role
	rec.Status = models.MembershipActive
	i.getLogger(companyID).WithField("rec_id", id).Info("участник активирован")
	return membershipapimodels.MembershipConvert(*rec), nil
}

func (i impl) SetManager(companyID, memberID, managerID string) error {
	if memberID == managerID {
		return errors.Wrap(models.ErrInvalidState, "участник не может быть руководителем самого себя")
	}
	member, err := i.getRec(companyID, memberID)
	if err != nil {
		return err
	}
	manager, err := i.getRec(companyID, managerID)
	if err != nil {
		return err
	}
	if member.CompanyID != manager.CompanyID {
		return errors.Wrap(models.ErrInvalidState, "руководитель и участник должны быть из одной компании")
	}
	if err = i.checkCycle(companyID, member.ID, manager); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"manager_membership_id": manager.ID,
	}
	if err = i.store.Update(companyID, memberID, updMap); err != nil {
		return err
	}
	i.getLogger(companyID).
		WithField("rec_id", memberID).
		WithField("manager_id", managerID).
		Info("назначен руководитель")
	return nil
}

// checkCycle поднимается по цепочке руководителей от предполагаемого руководителя
// и запрещает назначение, если в цепочке встречается сам участник.
// Набор visited защищает обход от уже существующего цикла в данных.
func (i impl) checkCycle(companyID, memberID string, manager *dbmodels.Membership) error {
	visited := map[string]bool{}
	current := manager
	for current != nil {
		if current.ID == memberID {
			return errors.Wrap(models.ErrInvalidState, "назначение приведёт к циклу в иерархии руководителей")
		}
		if visited[current.ID] {
			break
		}
		visited[current.ID] = true
		if current.ManagerMembershipID == nil {
			break
		}
		next, err := i.store.GetByID(companyID, *current.ManagerMembershipID)
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}

// Subordinates возвращает прямых подчинённых или всё поддерево.
// Обход итеративный через очередь, повторные вершины отбрасываются.
func (i impl) Subordinates(companyID, managerID string, recursive bool) ([]membershipapimodels.MembershipView, error) {
	manager, err := i.getRec(companyID, managerID)
	if err != nil {
		return nil, err
	}
	direct, err := i.store.ListByManager(companyID, manager.ID)
	if err != nil {
		return nil, err
	}
	result := make([]membershipapimodels.MembershipView, 0, len(direct))
	if !recursive {
		for _, rec := range direct {
			result = append(result, membershipapimodels.MembershipConvert(rec))
		}
		return result, nil
	}
	seen := map[string]bool{manager.ID: true}
	queue := direct
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen[current.ID] {
			continue
		}
		seen[current.ID] = true
		result = append(result, membershipapimodels.MembershipConvert(current))
		children, err := i.store.ListByManager(companyID, current.ID)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)
	}
	return result, nil
}

func (i impl) Terminate(companyID, id string) error {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.Status.IsFinal() {
		return errors.Wrap(models.ErrInvalidState, "участник уже уволен")
	}
	updMap := map[string]interface{}{
		"status": models.MembershipTerminated,
	}
	if err = i.store.Update(companyID, id, updMap); err != nil {
		return err
	}
	i.getLogger(companyID).WithField("rec_id", id).Info("участник уволен")
	return nil
}

func (i impl) SetProbationStatus(companyID, id string, status models.ProbationStatus) error {
	_, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"probation_status": status,
	}
	return i.store.Update(companyID, id, updMap)
}

func (i impl) GetByID(companyID, id string) (membershipapimodels.MembershipView, error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return membershipapimodels.MembershipView{}, err
	}
	return membershipapimodels.MembershipConvert(*rec), nil
}

func (i impl) List(companyID string) ([]membershipapimodels.MembershipView, error) {
	recList, err := i.store.List(companyID)
	if err != nil {
		return nil, err
	}
	result := make([]membershipapimodels.MembershipView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, membershipapimodels.MembershipConvert(rec))
	}
	return result, nil
}

func (i impl) getRec(companyID, id string) (*dbmodels.Membership, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "участник не найден")
	}
	return rec, nil
}
