package user

import "github.com/Segun112/homework-tracker/core"

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

var AllRoles = []string{RoleStudent, RoleTeacher}

// User is a record of the "users" collection. Passwords are stored and
// compared in plaintext; credential storage format is outside this
// application's functional scope.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (u *User) CheckPassword(pwd string) bool {
	return u.Password != "" && u.Password == pwd
}

func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// NewUser contains information needed to create (or upsert) a User via the
// admin CLI. The password policy is enforced here only; the stored record
// keeps whatever passes it.
type NewUser struct {
	ID       string `json:"id"`
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,userrole"`
}

func (nu *NewUser) Validate() error {
	nu.ID = core.CleanString(nu.ID)
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	return core.Validate.Struct(nu)
}
