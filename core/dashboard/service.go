// Package dashboard is a read-only join across submissions, clubs and
// questionnaires for a single student. It enforces no invariants of its own;
// it sits downstream of the components that do.
package dashboard

import (
	"github.com/Segun112/homework-tracker/core/assignment"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/questionnaire"
)

type StudentDashboard struct {
	Submissions   []assignment.Submission      `json:"submissions"`
	Club          *club.Club                   `json:"club"`
	Questionnaire *questionnaire.Questionnaire `json:"questionnaire"`
}

type Service struct {
	clubRepo  club.Repository
	asgRepo   assignment.Repository
	questRepo questionnaire.Repository
}

func NewService(clubRepo club.Repository, asgRepo assignment.Repository, questRepo questionnaire.Repository) *Service {
	return &Service{
		clubRepo:  clubRepo,
		asgRepo:   asgRepo,
		questRepo: questRepo,
	}
}

// GetStudent returns the student's submissions, the single club they belong
// to (or null) and their questionnaire (or null).
func (svc *Service) GetStudent(studentID string) (StudentDashboard, error) {
	dash := StudentDashboard{Submissions: []assignment.Submission{}}

	subs, err := svc.asgRepo.QuerySubmissionsByStudentID(studentID)
	if err != nil {
		return dash, err
	}
	if subs != nil {
		dash.Submissions = subs
	}

	clubs, err := svc.clubRepo.QueryAllClubs()
	if err != nil {
		return dash, err
	}
	for i := range clubs {
		if clubs[i].HasMember(studentID) {
			dash.Club = &clubs[i]
			break
		}
	}

	quest, err := svc.questRepo.GetQuestionnaireByStudentID(studentID)
	if err != nil {
		if err != questionnaire.ErrNotFound {
			return dash, err
		}
	} else {
		dash.Questionnaire = &quest
	}
	return dash, nil
}
