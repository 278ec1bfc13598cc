package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/assignment"
)

type assignmentApi struct {
	service *assignment.Service
}

func registerAssignmentAPI(e *echo.Echo, jwt echo.MiddlewareFunc, svc *assignment.Service) {
	api := assignmentApi{service: svc}

	e.GET("/assignments", api.queryAssignments)
	e.POST("/assignment", api.createAssignment, jwt)
	e.POST("/submit", api.submitAssignment, jwt)
}

func (api *assignmentApi) queryAssignments(ctx echo.Context) error {
	assignments, err := api.service.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *assignmentApi) createAssignment(ctx echo.Context) error {
	data := new(NewAssignmentRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := requireTeacher(ctx, data.TeacherID); err != nil {
		return err
	}

	a, err := api.service.Create(data.TeacherID, data.Name, data.Description, data.DueDate)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusOK, NewAssignmentResponse{Success: true, Assignment: a})
}

func (api *assignmentApi) submitAssignment(ctx echo.Context) error {
	data := new(SubmitAssignmentRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := requireSubject(ctx, data.StudentID); err != nil {
		return err
	}

	submittedAt, err := time.Parse(time.RFC3339, data.SubmissionTime)
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{
			Field: "submission_time",
			Error: "must be a valid RFC 3339 timestamp",
		})
	}

	score, err := api.service.Submit(data.StudentID, data.AssignmentID, submittedAt)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SubmitAssignmentResponse{Success: true, Score: score})
}

type (
	NewAssignmentRequest struct {
		TeacherID   string `json:"teacher_id" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
	}

	NewAssignmentResponse struct {
		Success    bool                  `json:"success"`
		Assignment assignment.Assignment `json:"assignment"`
	}

	SubmitAssignmentRequest struct {
		StudentID      string `json:"student_id" validate:"required"`
		AssignmentID   int    `json:"assignment_id" validate:"required"`
		SubmissionTime string `json:"submission_time" validate:"required"`
	}

	SubmitAssignmentResponse struct {
		Success bool `json:"success"`
		Score   int  `json:"score"`
	}
)

func (nr *NewAssignmentRequest) Validate() error {
	nr.TeacherID = core.CleanString(nr.TeacherID)
	nr.Name = core.CleanString(nr.Name)
	return core.Validate.Struct(nr)
}

func (sr *SubmitAssignmentRequest) Validate() error {
	sr.StudentID = core.CleanString(sr.StudentID)
	return core.Validate.Struct(sr)
}
