package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/user"
)

type userApi struct {
	service *user.Service
}

func registerUserAPI(e *echo.Echo, svc *user.Service) {
	api := userApi{service: svc}

	e.POST("/login", api.login)
	e.GET("/users", api.queryStudents)
}

func (api *userApi) login(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.service.Authenticate(data.Username, data.Password)
	if err != nil {
		if err == user.ErrInvalidCredentials {
			// the login contract reports a mismatch in the body, not the status
			return ctx.JSON(http.StatusOK, failureResponse{Success: false, Message: err.Error()})
		}
		return err
	}

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Role:    usr.Role,
		ID:      usr.ID,
		Token:   token,
	})
}

func (api *userApi) queryStudents(ctx echo.Context) error {
	students, err := api.service.QueryStudents()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
		ID      string `json:"id"`
		Token   string `json:"token"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.Username = core.CleanString(lr.Username)
	return core.Validate.Struct(lr)
}
