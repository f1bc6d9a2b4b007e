package rbac

import (
	"regexp"

	"recruitment-backend/models"
)

type MethodRule struct {
	Method  HTTPMethod
	Handler models.RbacFunc
}

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
	ALL    HTTPMethod = "ALL"
)

type PathRule struct {
	// checks ordered fast to slow
	Exact    map[string]models.RbacFunc // exact path matches
	Patterns []PatternRule              // regexp rules
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}
