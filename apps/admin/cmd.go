package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc  *user.Service
	clubSvc *club.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -username USERNAME -role student|teacher - add or update a user; the password is prompted next")
	fmt.Println("  addclub -name NAME - create a club")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserUname := addUserCmd.String("username", "", "The user's username. The password will be prompted next.")
	addUserRole := addUserCmd.String("role", user.RoleStudent, "One of: student, teacher.")

	addClubCmd := flag.NewFlagSet("addclub", flag.ExitOnError)
	addClubName := addClubCmd.String("name", "", "The club's name.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserUname == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserUname, string(pwd), *addUserRole)
	case "addclub":
		if err := addClubCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addClubName == "" {
			addClubCmd.Usage()
			return errHelp
		}
		return cli.addClub(*addClubName)
	default:
		cli.printUsage()
		return errHelp
	}
}
