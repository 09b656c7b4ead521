package models

const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
	RoleEvaluator = "evaluator"
)

type User struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Bio          *string  `json:"bio"`
	Availability []string `json:"availability"`
	Approved     bool     `json:"approved"`
}

// UserPatch lists the updatable user attributes. A nil field means
// "leave unchanged"; unknown keys on the wire are rejected at decode time.
type UserPatch struct {
	Name         *string   `json:"name"`
	Role         *string   `json:"role"`
	Bio          *string   `json:"bio"`
	Availability *[]string `json:"availability"`
	Approved     *bool     `json:"approved"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleProfessor, RoleEvaluator:
		return true
	}
	return false
}
