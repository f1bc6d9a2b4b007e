package models

type UserRole string

const (
	AdminRole      UserRole = "ADMIN"
	HRRole         UserRole = "HR"
	ManagerRole    UserRole = "MANAGER"
	SpecialistRole UserRole = "SPECIALIST"
)

var roleHumanName = map[UserRole]string{
	AdminRole:      "Administrator",
	HRRole:         "HR specialist",
	ManagerRole:    "Manager",
	SpecialistRole: "Specialist",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// SystemUser is recorded as actor name on audit records produced
// without a user context.
const SystemUser = "System"
