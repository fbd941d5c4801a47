package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is asserted by the identity provider in the access token.
type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleCitizen:  1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants everything min grants. Unknown roles grant nothing.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	need, ok := roleRank[min]
	return ok && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
