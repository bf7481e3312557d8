package user

import (
	"strings"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/capability"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/role"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
)

// User is a directory entry with a resolved role. Capability checks go
// through the role, so an unknown role code leaves the user without grants.
type User struct {
	id    string
	name  string
	email internet.Email
	role  role.Role
}

func New(id, name string, email internet.Email, code role.Code) User {
	return User{
		id:    id,
		name:  strings.TrimSpace(name),
		email: email,
		role:  role.Resolve(code),
	}
}

func (u User) ID() string            { return u.id }
func (u User) Name() string          { return u.name }
func (u User) Email() internet.Email { return u.email }
func (u User) Role() role.Role       { return u.role }
func (u User) IsZero() bool          { return u.id == "" }

func (u User) Can(c *capability.Capability) bool {
	return u.role.Can(c)
}
