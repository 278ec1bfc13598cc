package user

import "errors"

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

type (
	Repository interface {
		QueryAllUsers() ([]User, error)
		GetUserByID(id string) (User, error)
		GetUserByUsername(username string) (User, error)
		// UpdateOrCreateUser matches on Username; a created User with an
		// empty ID gets one from the collection's sequence.
		UpdateOrCreateUser(usr User) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate checks a username/password pair against the users collection.
// It is read-only and returns ErrInvalidCredentials on any mismatch.
func (svc *Service) Authenticate(uname, pwd string) (User, error) {
	usr, err := svc.repo.GetUserByUsername(uname)
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !usr.CheckPassword(pwd) {
		return User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

// QueryStudents returns all users with the student role.
func (svc *Service) QueryStudents() ([]User, error) {
	users, err := svc.repo.QueryAllUsers()
	if err != nil {
		return nil, err
	}
	students := make([]User, 0, len(users))
	for _, usr := range users {
		if usr.IsStudent() {
			students = append(students, usr)
		}
	}
	return students, nil
}

// UpdateOrCreate upserts a user from validated CLI input.
func (svc *Service) UpdateOrCreate(nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	return svc.repo.UpdateOrCreateUser(User{
		ID:       nu.ID,
		Username: nu.Username,
		Password: nu.Password,
		Role:     nu.Role,
	})
}
