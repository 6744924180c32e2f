package membershiphandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

type fakeMembershipStore struct {
	recs map[string]*dbmodels.Membership
}

func newFakeMembershipStore(recs ...*dbmodels.Membership) *fakeMembershipStore {
	store := &fakeMembershipStore{recs: map[string]*dbmodels.Membership{}}
	for _, rec := range recs {
		store.recs[rec.ID] = rec
	}
	return store
}

func (f *fakeMembershipStore) Create(rec dbmodels.Membership) (string, error) {
	id := fmt.Sprintf("member-%v", len(f.recs)+1)
	rec.ID = id
	f.recs[id] = &rec
	return id, nil
}

func (f *fakeMembershipStore) GetByID(companyID, id string) (*dbmodels.Membership, error) {
	rec, ok := f.recs[id]
	if !ok || rec.CompanyID != companyID {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeMembershipStore) GetByUserAndCompany(userID, companyID string) (*dbmodels.Membership, error) {
	for _, rec := range f.recs {
		if rec.UserID == userID && rec.CompanyID == companyID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMembershipStore) GetActiveByUserAndCompany(userID, companyID string) (*dbmodels.Membership, error) {
	rec, err := f.GetByUserAndCompany(userID, companyID)
	if err != nil || rec == nil || rec.Status != models.MembershipActive {
		return nil, err
	}
	return rec, nil
}

func (f *fakeMembershipStore) Update(companyID, id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok || rec.CompanyID != companyID {
		return nil
	}
	if v, exist := updMap["manager_membership_id"]; exist {
		managerID := v.(string)
		rec.ManagerMembershipID = &managerID
	}
	if v, exist := updMap["status"]; exist {
		rec.Status = v.(models.MembershipStatus)
	}
	if v, exist := updMap["role"]; exist {
		rec.Role = v.(models.MembershipRole)
	}
	if v, exist := updMap["probation_status"]; exist {
		rec.ProbationStatus = v.(models.ProbationStatus)
	}
	return nil
}

func (f *fakeMembershipStore) List(companyID string) ([]dbmodels.Membership, error) {
	list := []dbmodels.Membership{}
	for _, rec := range f.recs {
		if rec.CompanyID == companyID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeMembershipStore) ListByManager(companyID, managerID string) ([]dbmodels.Membership, error) {
	list := []dbmodels.Membership{}
	for _, rec := range f.recs {
		if rec.CompanyID != companyID || rec.ManagerMembershipID == nil {
			continue
		}
		if *rec.ManagerMembershipID == managerID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func member(id, companyID string, managerID *string) *dbmodels.Membership {
	return &dbmodels.Membership{
		BaseModel:           dbmodels.BaseModel{ID: id},
		UserID:              "user-" + id,
		CompanyID:           companyID,
		Role:                models.EmployeeRole,
		Status:              models.MembershipActive,
		ManagerMembershipID: managerID,
	}
}

func strPtr(v string) *string {
	return &v
}

func TestSetManager(t *testing.T) {
	companyID := "company-1"

	t.Run(`участник не может руководить сам собой`, func(t *testing.T) {
		store := newFakeMembershipStore(member("a", companyID, nil))
		handler := impl{store: store}
		err := handler.SetManager(companyID, "a", "a")
		require.ErrorIs(t, err, models.ErrInvalidState)
	})

	t.Run(`назначение по цепочке вниз запрещено`, func(t *testing.T) {
		// a руководит b, b руководит c; назначить c руководителем a — цикл
		store := newFakeMembershipStore(
			member("a", companyID, nil),
			member("b", companyID, strPtr("a")),
			member("c", companyID, strPtr("b")),
		)
		handler := impl{store: store}
		err := handler.SetManager(companyID, "a", "c")
		require.ErrorIs(t, err, models.ErrInvalidState)
	})

	t.Run(`обычное назначение проходит`, func(t *testing.T) {
		store := newFakeMembershipStore(
			member("a", companyID, nil),
			member("b", companyID, nil),
		)
		handler := impl{store: store}
		err := handler.SetManager(companyID, "b", "a")
		require.Nil(t, err)
		rec, _ := store.GetByID(companyID, "b")
		require.NotNil(t, rec.ManagerMembershipID)
		require.Equal(t, "a", *rec.ManagerMembershipID)
	})

	t.Run(`руководитель из другой компании не находится`, func(t *testing.T) {
		store := newFakeMembershipStore(
			member("a", companyID, nil),
			member("b", "company-2", nil),
		)
		handler := impl{store: store}
		err := handler.SetManager(companyID, "a", "b")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSubordinates(t *testing.T) {
	companyID := "company-1"
	// a -> {b, c}, b -> {d}
	store := newFakeMembershipStore(
		member("a", companyID, nil),
		member("b", companyID, strPtr("a")),
		member("c", companyID, strPtr("a")),
		member("d", companyID, strPtr("b")),
	)
	handler := impl{store: store}

	t.Run(`прямые подчинённые`, func(t *testing.T) {
		list, err := handler.Subordinates(companyID, "a", false)
		require.Nil(t, err)
		require.Len(t, list, 2)
	})

	t.Run(`всё поддерево без повторов`, func(t *testing.T) {
		list, err := handler.Subordinates(companyID, "a", true)
		require.Nil(t, err)
		require.Len(t, list, 3)
		ids := map[string]bool{}
		for _, rec := range list {
			ids[rec.ID] = true
		}
		require.True(t, ids["b"])
		require.True(t, ids["c"])
		require.True(t, ids["d"])
	})

	t.Run(`неизвестный руководитель`, func(t *testing.T) {
		_, err := handler.Subordinates(companyID, "zzz", true)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestActivate(t *testing.T) {
	companyID := "company-1"

	t.Run(`кандидат становится сотрудником`, func(t *testing.T) {
		rec := member("a", companyID, nil)
		rec.Status = models.MembershipApplicant
		store := newFakeMembershipStore(rec)
		handler := impl{store: store}
		view, err := handler.Activate(companyID, "a", "")
		require.Nil(t, err)
		require.Equal(t, models.MembershipActive.ToHuman(), view.Status)
		require.Equal(t, models.EmployeeRole.ToHuman(), view.Role)
	})

	t.Run(`активировать действующего участника нельзя`, func(t *testing.T) {
		store := newFakeMembershipStore(member("a", companyID, nil))
		handler := impl{store: store}
		_, err := handler.Activate(companyID, "a", models.EmployeeRole)
		require.ErrorIs(t, err, models.ErrInvalidState)
	})
}

func TestTerminate(t *testing.T) {
	companyID := "company-1"

	t.Run(`увольнение терминально`, func(t *testing.T) {
		store := newFakeMembershipStore(member("a", companyID, nil))
		handler := impl{store: store}
		require.Nil(t, handler.Terminate(companyID, "a"))
		err := handler.Terminate(companyID, "a")
		require.ErrorIs(t, err, models.ErrInvalidState)
	})
}
