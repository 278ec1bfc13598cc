package main

import (
	"testing"

	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/user"
	"github.com/Segun112/homework-tracker/storage/jsonstore"
	"github.com/Segun112/homework-tracker/tests"
)

var (
	usrRepo  user.Repository
	clubRepo club.Repository
)

func setup(t *testing.T) *commandLine {
	db := testutil.TmpDB(t)
	usrRepo = jsonstore.NewUserRepository(db)
	clubRepo = jsonstore.NewClubRepository(db)

	return &commandLine{
		usrSvc:  user.NewService(usrRepo),
		clubSvc: club.NewService(clubRepo),
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	extra   interface{}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"adduser", "-username", "awa"}, wantErr: errHelp},
		{name: "weak password", args: []string{"adduser", "-username", "awa"}, extra: extra{pwd: "lol"}, wantErr: errAny},
		{name: "unknown role", args: []string{"adduser", "-username", "awa", "-role", "janitor"}, extra: extra{pwd: "Gr33n-pencil"}, wantErr: errAny},
		{name: "student created", args: []string{"adduser", "-username", "awa"}, extra: extra{pwd: "Gr33n-pencil"}},
		{name: "teacher created", args: []string{"adduser", "-username", "mrkofi", "-role", user.RoleTeacher}, extra: extra{pwd: "Ch@lk-dust1"}},
		{name: "existing user updated", args: []string{"adduser", "-username", "awa"}, extra: extra{pwd: "Purpl3-pencil"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != nil {
				checkCLIErr(t, err, tt.wantErr)
				return
			}

			uname := core.CleanString(args[3], true)
			usr, err := usrRepo.GetUserByUsername(uname)
			if err != nil {
				t.Fatalf("GetUserByUsername() failed: %v", err)
			}
			if pwd := tt.extra.(extra).pwd; !usr.CheckPassword(pwd) {
				t.Errorf("saved password does not match %q", pwd)
			}
		})
	}

	usrs, err := usrRepo.QueryAllUsers()
	if err != nil {
		t.Fatal(err)
	}
	if len(usrs) != 2 {
		t.Errorf("len(users) = %d, want 2", len(usrs))
	}
}

func Test_commandLine_addClub(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no args", args: []string{"addclub"}, wantErr: errHelp},
		{name: "created", args: []string{"addclub", "-name", "Press"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != nil {
				checkCLIErr(t, err, tt.wantErr)
				return
			}

			c, err := clubRepo.GetClubByID(1)
			if err != nil {
				t.Fatalf("GetClubByID() failed: %v", err)
			}
			if c.Name != "Press" {
				t.Errorf("club.Name = %q, want %q", c.Name, "Press")
			}
			if len(c.Members) != 0 || len(c.Chatroom) != 0 {
				t.Errorf("new club is not empty: %+v", c)
			}
		})
	}
}

// errAny matches any non-nil error in a cliTest.
var errAny = &anyError{}

type anyError struct{}

func (*anyError) Error() string { return "any error" }

func checkCLIErr(t *testing.T, err, wantErr error) {
	t.Helper()
	switch wantErr {
	case nil:
		t.Errorf("cli.run() unexpected error = %v", err)
	case errAny: // pass
	default:
		if err != wantErr {
			t.Errorf("cli.run() error = %v, wantErr %v", err, wantErr)
		}
	}
}
