package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Segun112/homework-tracker/core"
	"github.com/Segun112/homework-tracker/core/assignment"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/dashboard"
	"github.com/Segun112/homework-tracker/core/questionnaire"
	"github.com/Segun112/homework-tracker/core/user"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Logger           core.Logger
		UserSvc          *user.Service
		ClubSvc          *club.Service
		AssignmentSvc    *assignment.Service
		QuestionnaireSvc *questionnaire.Service
		DashboardSvc     *dashboard.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug
	s.app.HideBanner = true

	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(s.app, s.opts.UserSvc)
	registerAssignmentAPI(s.app, jwt, s.opts.AssignmentSvc)
	registerClubAPI(s.app, jwt, s.opts.ClubSvc)
	registerQuestionnaireAPI(s.app, jwt, s.opts.QuestionnaireSvc)
	registerDashboardAPI(s.app, s.opts.DashboardSvc)
}

// Start runs the server until an interrupt/terminate signal arrives or a
// handler signals shutdown, then drains in-flight requests.
func (s *server) Start() {
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		errs <- s.app.Start(s.opts.Addr)
	}()

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			s.app.Logger.Fatal(err)
		}
	case sig := <-s.shutdown:
		s.app.Logger.Infof("caught %v: shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Stop(ctx); err != nil {
			s.app.Logger.Fatal(err)
		}
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
