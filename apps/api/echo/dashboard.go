package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Segun112/homework-tracker/core/dashboard"
)

type dashboardApi struct {
	service *dashboard.Service
}

func registerDashboardAPI(e *echo.Echo, svc *dashboard.Service) {
	api := dashboardApi{service: svc}

	e.GET("/dashboard/:student_id", api.studentDashboard)
}

func (api *dashboardApi) studentDashboard(ctx echo.Context) error {
	dash, err := api.service.GetStudent(ctx.Param("student_id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dash)
}
