// Package echoweb serves the EduTrack admin web application. Every screen is
// rendered server-side; all data comes from the EduTrack backend REST API.
package echoweb

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Pacchu9832/Edutrack-admin/core"
	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
	"github.com/Pacchu9832/Edutrack-admin/core/session"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool
		Conf           *core.Config
		Logger         core.Logger
		Sessions       *session.CookieStore
		// HTTPClient is shared by every backend call; tests stub the
		// backend by pointing Conf.API.BaseURL at a test server.
		HTTPClient *http.Client
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
		web  *webApp
	}
)

var _ Server = (*server)(nil)

// webApp carries the dependencies every page handler needs.
type webApp struct {
	conf     *core.Config
	logger   core.Logger
	sessions *session.CookieStore
	hc       *http.Client

	// dashboard notice feed: concurrent refreshes race, the generation-
	// guarded loader keeps an older response from clobbering a newer one.
	noticeLoader listview.Loader[school.Notice]
	noticeMu     sync.RWMutex
	noticeFeed   []school.Notice
}

// api builds a backend client bound to the request's session token.
func (app *webApp) api(sess session.Session) *edusvc.Client {
	opts := []edusvc.Option{
		edusvc.WithTimeout(app.conf.API.Timeout),
		edusvc.WithTokenSource(func() string { return sess.Token }),
		edusvc.WithDemoMode(app.conf.DemoMode),
	}
	if app.hc != nil {
		opts = append(opts, edusvc.WithHTTPClient(app.hc))
	}
	return edusvc.NewClient(app.conf.API.BaseURL, opts...)
}

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
		web: &webApp{
			conf:     opts.Conf,
			logger:   opts.Logger,
			sessions: opts.Sessions,
			hc:       opts.HTTPClient,
		},
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.web)
	s.app.Renderer = newRenderer()
	s.app.Debug = conf.Debug

	app := s.web

	// un-gated endpoints
	s.app.GET("/login", app.loginPage)
	s.app.POST("/login", app.login)
	s.app.GET("/static/*", echo.WrapHandler(staticHandler()))

	// everything else requires a valid session
	g := s.app.Group("", app.requireAuth)
	g.POST("/logout", app.logout)
	g.POST("/sidebar/toggle", app.toggleSidebar)

	g.GET("/dashboard", app.dashboard)

	g.GET("/users", app.usersPage)
	g.POST("/users", app.createUser)
	g.POST("/users/:id", app.updateUser)
	g.POST("/users/:id/delete", app.deleteUser)
	g.POST("/users/bulk-delete", app.bulkDeleteUsers)

	g.GET("/students", app.classSelectPage)
	g.GET("/students/class/:classId", app.studentsPage)
	g.GET("/students/:id", app.studentDetailsPage)
	g.POST("/students", app.createStudent)
	g.POST("/students/:id", app.updateStudent)
	g.POST("/students/:id/delete", app.deleteStudent)
	g.POST("/students/bulk-delete", app.bulkDeleteStudents)

	g.GET("/teachers/:id", app.teacherProfilePage)
	g.POST("/teachers/:id", app.updateTeacherProfile)

	g.GET("/parents/:id", app.parentPage)
	g.POST("/parents/:id", app.updateParentProfile)
	g.POST("/parents/:id/children", app.linkChild)
	g.POST("/parents/:id/children/:studentId/unlink", app.unlinkChild)

	g.GET("/attendance", app.attendancePage)
	g.POST("/attendance", app.saveAttendance)

	g.GET("/marks", app.marksPage)
	g.POST("/marks", app.saveMarks)
	g.POST("/marks/:studentId/delete", app.deleteMark)
	g.GET("/marks/export", app.exportMarks)

	g.GET("/timetable", app.timetablePage)
	g.POST("/timetable", app.createPeriod)
	g.POST("/timetable/:id", app.updatePeriod)
	g.POST("/timetable/:id/delete", app.deletePeriod)

	g.GET("/leaves", app.leavesPage)
	g.POST("/leaves/:id/decide", app.decideLeave)

	g.GET("/notices", app.noticesPage)
	g.POST("/notices", app.createNotice)
	g.POST("/notices/:id", app.updateNotice)
	g.POST("/notices/:id/delete", app.deleteNotice)

	g.GET("/reports", app.reportsPage)
	g.GET("/reports/export", app.exportReport)
	g.GET("/reports/print", app.printReport)

	// any unknown path (the root included) lands on the dashboard
	g.Any("/*", func(ctx echo.Context) error {
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	})
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
