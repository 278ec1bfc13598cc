package main

import (
	"log"
	"os"

	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/user"
	"github.com/Segun112/homework-tracker/storage/jsonstore"
)

func main() {
	db, err := jsonstore.Open(core.Conf.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	cli := &commandLine{
		usrSvc:  user.NewService(jsonstore.NewUserRepository(db)),
		clubSvc: club.NewService(jsonstore.NewClubRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}
