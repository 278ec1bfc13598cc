package assignment

import (
	"errors"
	"time"
)

var (
	// errors
	ErrNotFound         = errors.New("Assignment not found")
	ErrAlreadySubmitted = errors.New("Assignment already submitted")
)

type (
	Repository interface {
		QueryAllAssignments() ([]Assignment, error)
		GetAssignmentByID(id int) (Assignment, error)
		// CreateAssignment assigns an id from the collection's sequence.
		CreateAssignment(a Assignment) (Assignment, error)

		QuerySubmissionsByStudentID(studentID string) ([]Submission, error)
		// CreateSubmission fails with ErrAlreadySubmitted when a submission
		// for the same (student, assignment) pair exists. The check and the
		// insert run under the collection's exclusive lock.
		CreateSubmission(sub Submission) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Assignment, error) {
	return svc.repo.QueryAllAssignments()
}

// Create persists a new assignment with the fixed points/penalty values.
func (svc *Service) Create(teacherID, name, description, dueDate string) (Assignment, error) {
	return svc.repo.CreateAssignment(Assignment{
		TeacherID:   teacherID,
		Name:        name,
		Description: description,
		DueDate:     dueDate,
		Points:      DefaultPoints,
		Penalty:     DefaultPenalty,
	})
}

// Submit scores and records a student's submission. The score is the
// assignment's full points when submissionTime is at or before the due date
// (midnight UTC), and points minus penalty, floored at zero, otherwise.
func (svc *Service) Submit(studentID string, assignmentID int, submissionTime time.Time) (int, error) {
	a, err := svc.repo.GetAssignmentByID(assignmentID)
	if err != nil {
		return 0, err
	}

	due, err := a.DueTime()
	if err != nil {
		return 0, err
	}
	score := a.Points
	if submissionTime.After(due) {
		score -= a.Penalty
		if score < 0 {
			score = 0
		}
	}

	sub := Submission{
		StudentID:      studentID,
		AssignmentID:   assignmentID,
		SubmissionTime: submissionTime.UTC(),
		Score:          score,
	}
	if err := svc.repo.CreateSubmission(sub); err != nil {
		return 0, err
	}
	return score, nil
}

func (svc *Service) QuerySubmissionsByStudent(studentID string) ([]Submission, error) {
	return svc.repo.QuerySubmissionsByStudentID(studentID)
}
