package questionnaire

import (
	"errors"
	"time"
)

var (
	// errors
	ErrNotFound         = errors.New("questionnaire not found")
	ErrAlreadySubmitted = errors.New("Questionnaire already submitted")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		QueryAllQuestionnaires() ([]Questionnaire, error)
		GetQuestionnaireByStudentID(studentID string) (Questionnaire, error)
		// CreateQuestionnaire fails with ErrAlreadySubmitted when a record
		// for the same student exists. The check and the insert run under
		// the collection's exclusive lock.
		CreateQuestionnaire(q Questionnaire) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Questionnaire, error) {
	return svc.repo.QueryAllQuestionnaires()
}

func (svc *Service) GetByStudent(studentID string) (Questionnaire, error) {
	return svc.repo.GetQuestionnaireByStudentID(studentID)
}

// Submit records a student's questionnaire exactly once, deriving the
// preferred club from the answers.
func (svc *Service) Submit(studentID string, answers map[string]string) (Questionnaire, error) {
	q := Questionnaire{
		StudentID:     studentID,
		Answers:       answers,
		PreferredClub: PreferredClub(answers),
		Timestamp:     nowFunc().UTC(),
	}
	if err := svc.repo.CreateQuestionnaire(q); err != nil {
		return Questionnaire{}, err
	}
	return q, nil
}
