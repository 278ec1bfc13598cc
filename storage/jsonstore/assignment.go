package jsonstore

import "github.com/Segun112/homework-tracker/core/assignment"

const (
	assignmentsCollection = "assignments"
	submissionsCollection = "submissions"
)

type assignmentRepository struct {
	db *DB
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) QueryAllAssignments() ([]assignment.Assignment, error) {
	lock := repo.db.collLock(assignmentsCollection)
	lock.RLock()
	defer lock.RUnlock()

	assignments := []assignment.Assignment{}
	err := repo.db.load(assignmentsCollection, &assignments)
	return assignments, err
}

func (repo *assignmentRepository) GetAssignmentByID(id int) (assignment.Assignment, error) {
	assignments, err := repo.QueryAllAssignments()
	if err != nil {
		return assignment.Assignment{}, err
	}
	for _, a := range assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	lock := repo.db.collLock(assignmentsCollection)
	lock.Lock()
	defer lock.Unlock()

	var assignments []assignment.Assignment
	if err := repo.db.load(assignmentsCollection, &assignments); err != nil {
		return assignment.Assignment{}, err
	}
	seq, err := repo.db.nextSeq(assignmentsCollection)
	if err != nil {
		return assignment.Assignment{}, err
	}
	a.ID = seq
	assignments = append(assignments, a)
	return a, repo.db.save(assignmentsCollection, assignments)
}

func (repo *assignmentRepository) QuerySubmissionsByStudentID(studentID string) ([]assignment.Submission, error) {
	lock := repo.db.collLock(submissionsCollection)
	lock.RLock()
	defer lock.RUnlock()

	var subs []assignment.Submission
	if err := repo.db.load(submissionsCollection, &subs); err != nil {
		return nil, err
	}
	matched := []assignment.Submission{}
	for _, sub := range subs {
		if sub.StudentID == studentID {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

func (repo *assignmentRepository) CreateSubmission(sub assignment.Submission) error {
	lock := repo.db.collLock(submissionsCollection)
	lock.Lock()
	defer lock.Unlock()

	var subs []assignment.Submission
	if err := repo.db.load(submissionsCollection, &subs); err != nil {
		return err
	}
	for _, s := range subs {
		if s.StudentID == sub.StudentID && s.AssignmentID == sub.AssignmentID {
			return assignment.ErrAlreadySubmitted
		}
	}
	subs = append(subs, sub)
	return repo.db.save(submissionsCollection, subs)
}
