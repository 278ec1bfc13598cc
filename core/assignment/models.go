package assignment

import "time"

// Fixed grading parameters applied to every new assignment.
const (
	DefaultPoints  = 10
	DefaultPenalty = 5

	// DueDateLayout is the calendar-date format of Assignment.DueDate. A due
	// date carries no time-of-day component and is treated as midnight UTC
	// of that date when compared against submission times.
	DueDateLayout = "2006-01-02"
)

// Assignment is a record of the "assignments" collection. Immutable
// post-creation.
type Assignment struct {
	ID          int    `json:"id"`
	TeacherID   string `json:"teacher_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Points      int    `json:"points"`
	Penalty     int    `json:"penalty"`
}

// DueTime parses DueDate as midnight UTC of that date.
func (a *Assignment) DueTime() (time.Time, error) {
	return time.ParseInLocation(DueDateLayout, a.DueDate, time.UTC)
}

// Submission is a record of the "submissions" collection. At most one exists
// per (student_id, assignment_id) pair.
type Submission struct {
	StudentID      string    `json:"student_id"`
	AssignmentID   int       `json:"assignment_id"`
	SubmissionTime time.Time `json:"submission_time"` // UTC
	Score          int       `json:"score"`
}
