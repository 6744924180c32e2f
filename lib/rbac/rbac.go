package rbac

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"onboard-backend/models"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.MembershipRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.MembershipRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	i := &impl{
		rules:       map[HTTPMethod]*PathRule{},
		permissions: map[models.MembershipRole]map[models.Module][]models.Permission{},
	}
	Instance = i
	i.initRules()
}

type impl struct {
	rules       map[HTTPMethod]*PathRule
	permissions map[models.MembershipRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	normalizedPath := normalizePath(path)
	httpMethod := HTTPMethod(strings.ToUpper(method))

	pathRule, exists := i.rules[httpMethod]
	if !exists {
		return nil, false
	}
	if handler, found := pathRule.Exact[normalizedPath]; found {
		return handler, true
	}
	for _, patternRule := range pathRule.Patterns {
		if patternRule.Pattern.MatchString(normalizedPath) {
			return patternRule.Handler, true
		}
	}
	return nil, false
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.MembershipRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		panic(err.Error())
	}

	// таблица {роль -> операции модуля}, отдаётся фронту
	for _, role := range roles {
		if _, ok := i.permissions[role]; !ok {
			i.permissions[role] = map[models.Module][]models.Permission{}
		}
		permissions := i.permissions[role][module]
		if slices.Contains(permissions, permission) {
			continue
		}
		i.permissions[role][module] = append(permissions, permission)
	}

	if _, exists := i.rules[method]; !exists {
		i.rules[method] = &PathRule{
			Exact:    make(map[string]models.RbacFunc),
			Patterns: []PatternRule{},
		}
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	pathRule := i.rules[method]
	if !strings.Contains(path, "{") {
		pathRule.Exact[path] = handler
		return nil
	}
	pattern := pathToRegex(path)
	if pattern == nil {
		pathRule.Exact[path] = handler
		return nil
	}
	pathRule.Patterns = append(pathRule.Patterns, PatternRule{
		Pattern: pattern,
		Handler: handler,
	})
	return nil
}

func (i *impl) GetPermissions(role models.MembershipRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

func pathToRegex(path string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(path)
	pattern = strings.ReplaceAll(pattern, "\\{", "{")
	pattern = strings.ReplaceAll(pattern, "\\}", "}")
	pattern = regexp.MustCompile(`\{[^}]+?\}`).ReplaceAllString(pattern, `([^/]+)`)
	pattern = "^" + pattern + "$"

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return regex
}

func AllowByRoleFunc(accessRoles []models.MembershipRole) models.RbacFunc {
	allowMap := map[models.MembershipRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(companyID, memberID string, role models.MembershipRole, path string) bool {
		return allowMap[role]
	}
}

// парсит строку в формате "/api/v1/quests [post]"
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)

	bracketStart := strings.LastIndex(pattern, "[")
	bracketEnd := strings.LastIndex(pattern, "]")
	if bracketStart == -1 || bracketEnd == -1 || bracketEnd < bracketStart {
		return "", "", errors.Errorf("Method not provided for pattern (%v)", pattern)
	}
	path = strings.TrimSpace(pattern[:bracketStart])
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[bracketStart+1 : bracketEnd])))
	return normalizePath(path), method, nil
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
