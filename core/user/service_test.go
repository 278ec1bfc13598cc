package user_test

import (
	"testing"

	"github.com/Segun112/homework-tracker/core/user"
	"github.com/Segun112/homework-tracker/storage/jsonstore"
	"github.com/Segun112/homework-tracker/tests"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	repo := jsonstore.NewUserRepository(testutil.TmpDB(t))
	return user.NewService(repo), repo
}

func TestService_Authenticate(t *testing.T) {
	svc, repo := setup(t)
	testutil.CreateUser(t, repo, "s1", "awa", "Gr33n-pencil", user.RoleStudent)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "awa", password: "Gr33n-pencil"},
		{name: "wrong password", username: "awa", password: "red-pencil", wantErr: user.ErrInvalidCredentials},
		{name: "unknown username", username: "nope", password: "Gr33n-pencil", wantErr: user.ErrInvalidCredentials},
		{name: "empty password", username: "awa", password: "", wantErr: user.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(tt.username, tt.password)
			if err != tt.wantErr {
				t.Fatalf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && usr.ID != "s1" {
				t.Errorf("Authenticate() id = %q, want s1", usr.ID)
			}
		})
	}
}

func TestService_QueryStudents(t *testing.T) {
	svc, repo := setup(t)
	testutil.CreateUser(t, repo, "s1", "awa", "Gr33n-pencil", user.RoleStudent)
	testutil.CreateUser(t, repo, "s2", "bilal", "Blu3-pencil", user.RoleStudent)
	testutil.CreateUser(t, repo, "t1", "mrkofi", "Ch@lk-dust1", user.RoleTeacher)

	students, err := svc.QueryStudents()
	if err != nil {
		t.Fatalf("QueryStudents() error = %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("QueryStudents() returned %d users, want 2", len(students))
	}
	for _, s := range students {
		if !s.IsStudent() {
			t.Errorf("QueryStudents() returned non-student %+v", s)
		}
	}
}

func TestService_UpdateOrCreate(t *testing.T) {
	svc, repo := setup(t)

	usr, err := svc.UpdateOrCreate(user.NewUser{Username: "awa", Password: "Gr33n-pencil", Role: user.RoleStudent})
	if err != nil {
		t.Fatalf("UpdateOrCreate() error = %v", err)
	}
	if usr.ID == "" {
		t.Error("UpdateOrCreate() did not assign an id")
	}

	// same username updates in place
	updated, err := svc.UpdateOrCreate(user.NewUser{Username: "awa", Password: "Purpl3-pencil", Role: user.RoleStudent})
	if err != nil {
		t.Fatalf("UpdateOrCreate() error = %v", err)
	}
	if updated.ID != usr.ID {
		t.Errorf("UpdateOrCreate() id = %q, want %q", updated.ID, usr.ID)
	}
	all, err := repo.QueryAllUsers()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("users = %d, want 1", len(all))
	}
}

func TestNewUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		nu      user.NewUser
		wantErr bool
	}{
		{name: "valid", nu: user.NewUser{Username: "awa_01", Password: "Gr33n-pencil", Role: "student"}},
		{name: "missing username", nu: user.NewUser{Password: "Gr33n-pencil", Role: "student"}, wantErr: true},
		{name: "bad role", nu: user.NewUser{Username: "awa_01", Password: "Gr33n-pencil", Role: "principal"}, wantErr: true},
		{name: "short password", nu: user.NewUser{Username: "awa_01", Password: "abc", Role: "student"}, wantErr: true},
		{name: "all numeric password", nu: user.NewUser{Username: "awa_01", Password: "12345678", Role: "student"}, wantErr: true},
		{name: "password with whitespace", nu: user.NewUser{Username: "awa_01", Password: "green pencil", Role: "student"}, wantErr: true},
		{name: "password similar to username", nu: user.NewUser{Username: "awape_ncil", Password: "awape_ncil1", Role: "student"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nu.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
