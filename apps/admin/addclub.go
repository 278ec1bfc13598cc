package main

import "fmt"

// addClub creates a club with an empty members set and chatroom.
func (cli *commandLine) addClub(name string) error {
	c, err := cli.clubSvc.Create(name)
	if err != nil {
		return err
	}
	fmt.Printf("club %q created (id %d)\n", c.Name, c.ID)
	return nil
}
