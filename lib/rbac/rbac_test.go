package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"onboard-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/space/quests/{id}/publish [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/space/quests/123-321/publish"
		require.True(t, r1.MatchString(validUri))

		invalidUri := "/api/v1/space/quests/publish"
		require.False(t, r1.MatchString(invalidUri))

		path, method, err = parseSwaggerPattern("/api/v1/space/assignments/{id}/steps/{stepId} [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/space/assignments/123-321/steps/qwe-ewr123-wr-12"
		require.True(t, r2.MatchString(validUri))

		invalidUri = "/api/v1/space/assignments/we-ewr123-wr-12/steps"
		require.False(t, r2.MatchString(invalidUri))
	})

	t.Run(`правила регистрируются и проверяют роль`, func(t *testing.T) {
		NewHandler()

		handler, found := Instance.GetRuleFunc("POST", "/api/v1/space/quests")
		require.True(t, found)
		require.True(t, handler("company-1", "member-1", models.HRRole, "/api/v1/space/quests"))
		require.False(t, handler("company-1", "member-1", models.EmployeeRole, "/api/v1/space/quests"))

		handler, found = Instance.GetRuleFunc("PUT", "/api/v1/space/members/abc-123/terminate")
		require.True(t, found)
		require.True(t, handler("company-1", "member-1", models.OwnerRole, ""))
		require.False(t, handler("company-1", "member-1", models.ManagerRole, ""))
	})

	t.Run(`на незарегистрированный путь правила нет`, func(t *testing.T) {
		NewHandler()
		_, found := Instance.GetRuleFunc("GET", "/api/v1/space/unknown")
		require.False(t, found)
	})

	t.Run(`таблица операций по роли`, func(t *testing.T) {
		NewHandler()
		permissions := Instance.GetPermissions(models.EmployeeRole)
		require.Contains(t, permissions[models.QuestModule], models.ViewPermission)
		require.NotContains(t, permissions[models.QuestModule], models.CreatePermission)
		require.NotContains(t, permissions, models.ReportModule)
	})
}
