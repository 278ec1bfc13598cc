package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/questionnaire"
)

type questionnaireApi struct {
	service *questionnaire.Service
}

func registerQuestionnaireAPI(e *echo.Echo, jwt echo.MiddlewareFunc, svc *questionnaire.Service) {
	api := questionnaireApi{service: svc}

	e.GET("/questionnaires", api.queryQuestionnaires)
	e.POST("/questionnaire", api.submitQuestionnaire, jwt)
}

func (api *questionnaireApi) queryQuestionnaires(ctx echo.Context) error {
	quests, err := api.service.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, quests)
}

func (api *questionnaireApi) submitQuestionnaire(ctx echo.Context) error {
	data := new(QuestionnaireRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := requireSubject(ctx, data.StudentID); err != nil {
		return err
	}

	if _, err := api.service.Submit(data.StudentID, data.Answers); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}

type QuestionnaireRequest struct {
	StudentID string            `json:"student_id" validate:"required"`
	Answers   map[string]string `json:"answers" validate:"required,min=1"`
}

func (qr *QuestionnaireRequest) Validate() error {
	qr.StudentID = core.CleanString(qr.StudentID)
	return core.Validate.Struct(qr)
}
