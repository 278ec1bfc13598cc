package main

import (
	"fmt"

	"github.com/Segun112/homework-tracker/core/user"
)

// addUser updates or creates a user.User, matching on username.
func (cli *commandLine) addUser(uname, pwd, role string) error {
	usr, err := cli.usrSvc.UpdateOrCreate(user.NewUser{
		Username: uname,
		Password: pwd,
		Role:     role,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s %q saved (id %s)\n", usr.Role, usr.Username, usr.ID)
	return nil
}
