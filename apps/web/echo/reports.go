package echoweb

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/report"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

func reportScope(ctx echo.Context) report.Scope {
	return report.Scope{
		Class:     ctx.QueryParam("class"),
		Subject:   ctx.QueryParam("subject"),
		Exam:      ctx.QueryParam("exam"),
		StartDate: ctx.QueryParam("start"),
		EndDate:   ctx.QueryParam("end"),
	}
}

// buildReport fetches the data behind the chosen report type and derives it.
func (app *webApp) buildReport(ctx echo.Context) (report.Report, error) {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	kind := report.Kind(ctx.QueryParam("type"))
	scope := reportScope(ctx)
	now := time.Now()

	switch kind {
	case report.KindMarks:
		marks, err := api.Marks(reqCtx, edusvc.MarkScope{Class: scope.Class, Subject: scope.Subject, Exam: scope.Exam})
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching marks")
		}
		return report.Marks(scope, now, marks), nil

	case report.KindAttendance:
		students, err := api.StudentsByClass(reqCtx, scope.Class)
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching class roster")
		}
		days, err := app.attendanceRange(ctx, scope)
		if err != nil {
			return report.Report{}, err
		}
		return report.Attendance(scope, now, students, days), nil

	case report.KindStudents:
		var students []school.Student
		var err error
		if scope.Class != "" {
			students, err = api.StudentsFiltered(reqCtx, scope.Class)
		} else {
			students, err = api.AllStudents(reqCtx)
		}
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching students")
		}
		return report.Students(scope, now, students), nil

	case report.KindLeaves:
		leaves, err := api.LeaveRequestsFiltered(reqCtx, scope.Class, scope.StartDate, scope.EndDate)
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching leave requests")
		}
		return report.Leaves(scope, now, leaves), nil

	case report.KindNotices:
		notices, err := api.Notices(reqCtx)
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching notices")
		}
		return report.Notices(scope, now, notices), nil
	}
	return report.Report{}, echo.NewHTTPError(http.StatusBadRequest, "unknown report type")
}

// attendanceRange fetches one sheet per day across the scope's date range,
// per period 1 (the daily register), and feeds them to the aggregator.
func (app *webApp) attendanceRange(ctx echo.Context, scope report.Scope) ([]report.Day, error) {
	start, err := time.Parse("2006-01-02", scope.StartDate)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "a start date is required")
	}
	end, err := time.Parse("2006-01-02", scope.EndDate)
	if err != nil {
		end = start
	}
	if end.Before(start) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "end date precedes start date")
	}
	// cap the range so a typo cannot fan out into thousands of calls
	if end.Sub(start) > 62*24*time.Hour {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "date range is limited to two months")
	}

	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	var days []report.Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		records, err := api.Attendance(reqCtx, edusvc.AttendanceScope{
			Class:    scope.Class,
			Subject:  scope.Subject,
			PeriodNo: 1,
			Date:     date,
		})
		if err != nil {
			continue // unmarked day
		}
		days = append(days, report.Day{Date: date, Records: records})
	}
	return days, nil
}

func (app *webApp) reportsPage(ctx echo.Context) error {
	data := echo.Map{
		"Kinds":    report.Kinds,
		"Exams":    school.Exams,
		"Subjects": school.Subjects,
		"Type":     ctx.QueryParam("type"),
		"Scope":    reportScope(ctx),
	}

	classes, err := app.api(currentSession(ctx)).Classes(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching classes")
	}
	data["Classes"] = classes

	if ctx.QueryParam("type") != "" {
		rep, err := app.buildReport(ctx)
		if err != nil {
			return err
		}
		data["Report"] = rep
	}
	return ctx.Render(http.StatusOK, "reports.html", data)
}

// exportReport downloads the configured report as CSV or JSON.
func (app *webApp) exportReport(ctx echo.Context) error {
	rep, err := app.buildReport(ctx)
	if err != nil {
		return err
	}

	res := ctx.Response()
	switch ctx.QueryParam("format") {
	case "json":
		res.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rep.Filename("json")+`"`)
		res.WriteHeader(http.StatusOK)
		return rep.WriteJSON(res)
	default:
		res.Header().Set(echo.HeaderContentType, "text/csv")
		res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rep.Filename("csv")+`"`)
		res.WriteHeader(http.StatusOK)
		return rep.WriteCSV(res)
	}
}

// printReport renders the report on a chrome-free page for printing.
func (app *webApp) printReport(ctx echo.Context) error {
	rep, err := app.buildReport(ctx)
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "print.html", echo.Map{
		"Report": rep,
	})
}
