package echoapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/club"
)

type clubApi struct {
	service *club.Service
}

func registerClubAPI(e *echo.Echo, jwt echo.MiddlewareFunc, svc *club.Service) {
	api := clubApi{service: svc}

	e.GET("/clubs", api.queryClubs)
	e.POST("/assign-club", api.assignClub, jwt)
	e.POST("/club-chat", api.postMessage, jwt)
}

func (api *clubApi) queryClubs(ctx echo.Context) error {
	clubs, err := api.service.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, clubs)
}

func (api *clubApi) assignClub(ctx echo.Context) error {
	data := new(AssignClubRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := requireTeacher(ctx, data.TeacherID); err != nil {
		return err
	}

	if err := api.service.AssignMembers(data.TeacherID, data.StudentIDs, data.ClubID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}

func (api *clubApi) postMessage(ctx echo.Context) error {
	data := new(ChatMessageRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := requireSubject(ctx, data.StudentID); err != nil {
		return err
	}

	if _, err := api.service.PostMessage(data.ClubID, data.StudentID, data.Message); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}

// StudentIDList accepts either a JSON array of ids or a single
// comma-separated string, as submitted by the club assignment form.
type StudentIDList []string

func (l *StudentIDList) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		*l = ids
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	for _, id := range strings.Split(joined, ",") {
		if id = strings.TrimSpace(id); id != "" {
			*l = append(*l, id)
		}
	}
	return nil
}

type (
	AssignClubRequest struct {
		TeacherID  string        `json:"teacher_id" validate:"required"`
		StudentIDs StudentIDList `json:"student_ids" validate:"required,min=1,dive,required"`
		ClubID     int           `json:"club_id" validate:"required"`
	}

	ChatMessageRequest struct {
		ClubID    int    `json:"club_id" validate:"required"`
		StudentID string `json:"student_id" validate:"required"`
		Message   string `json:"message" validate:"required"`
	}
)

func (ar *AssignClubRequest) Validate() error {
	ar.TeacherID = core.CleanString(ar.TeacherID)
	return core.Validate.Struct(ar)
}

func (cr *ChatMessageRequest) Validate() error {
	cr.StudentID = core.CleanString(cr.StudentID)
	return core.Validate.Struct(cr)
}
