package main

import (
	"log"
	"os"

	"github.com/Segun112/homework-tracker/apps/api/echo"
	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/assignment"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/dashboard"
	"github.com/Segun112/homework-tracker/core/questionnaire"
	"github.com/Segun112/homework-tracker/core/user"
	"github.com/Segun112/homework-tracker/services/logger"
	"github.com/Segun112/homework-tracker/storage/jsonstore"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	logger := logsvc.NewRollbarLogger(std, core.Conf)
	logger.Enable(!core.Conf.Debug)

	// set up the collection store; a corrupt collection is fatal here, before
	// any request is served
	db, err := jsonstore.Open(core.Conf.DataDir)
	errAndDie(std, err)
	errAndDie(std, db.Verify("users", "clubs", "assignments", "submissions", "questionnaires"))

	// set up repos & services
	clubRepo := jsonstore.NewClubRepository(db)
	asgRepo := jsonstore.NewAssignmentRepository(db)
	questRepo := jsonstore.NewQuestionnaireRepository(db)

	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:             core.Conf.Address(),
			Logger:           logger,
			UserSvc:          user.NewService(jsonstore.NewUserRepository(db)),
			ClubSvc:          club.NewService(clubRepo),
			AssignmentSvc:    assignment.NewService(asgRepo),
			QuestionnaireSvc: questionnaire.NewService(questRepo),
			DashboardSvc:     dashboard.NewService(clubRepo, asgRepo, questRepo),
		},
	)
	std.Printf("serving on %s", core.Conf.Address())
	app.Start()
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
