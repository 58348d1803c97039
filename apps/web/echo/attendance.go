package echoweb

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

func attendanceScope(ctx echo.Context) edusvc.AttendanceScope {
	period, _ := strconv.Atoi(ctx.QueryParam("period"))
	date := ctx.QueryParam("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return edusvc.AttendanceScope{
		Class:    ctx.QueryParam("class"),
		Subject:  ctx.QueryParam("subject"),
		PeriodNo: period,
		Date:     date,
	}
}

// attendanceRow is one student on the marking sheet with their recorded status.
type attendanceRow struct {
	Student school.Student
	Status  string
}

// attendancePage shows the scope pickers and, once a full scope is chosen, the
// marking sheet. The roster and any existing records load in parallel; existing
// records switch the sheet into edit mode.
func (app *webApp) attendancePage(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	classes, err := api.Classes(reqCtx)
	if err != nil {
		return errors.Wrap(err, "fetching classes")
	}

	scope := attendanceScope(ctx)
	data := echo.Map{
		"Classes":  classes,
		"Subjects": school.Subjects,
		"Slots":    school.TimeSlots,
		"Scope":    scope,
		"Statuses": []string{school.AttendancePresent, school.AttendanceAbsent, school.AttendanceLate},
	}
	if scope.Class == "" || scope.Subject == "" || scope.PeriodNo == 0 {
		return ctx.Render(http.StatusOK, "attendance.html", data)
	}

	var (
		wg         sync.WaitGroup
		students   []school.Student
		studentErr error
		records    []school.AttendanceRecord
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		students, studentErr = api.StudentsByClass(reqCtx, scope.Class)
	}()
	go func() {
		defer wg.Done()
		records, _ = api.Attendance(reqCtx, scope)
	}()
	wg.Wait()

	if studentErr != nil {
		return errors.Wrap(studentErr, "fetching class roster")
	}

	recorded := make(map[int]string, len(records))
	for _, record := range records {
		recorded[record.StudentID] = record.Status
	}
	rows := make([]attendanceRow, 0, len(students))
	for _, s := range students {
		status, ok := recorded[s.ID]
		if !ok {
			status = school.AttendancePresent // default for a fresh sheet
		}
		rows = append(rows, attendanceRow{Student: s, Status: status})
	}

	data["Rows"] = rows
	data["Editing"] = len(records) > 0
	return ctx.Render(http.StatusOK, "attendance.html", data)
}

// saveAttendance submits the sheet: a fresh one is marked, an existing one is
// amended.
func (app *webApp) saveAttendance(ctx echo.Context) error {
	period, _ := strconv.Atoi(ctx.FormValue("period"))
	scope := edusvc.AttendanceScope{
		Class:    ctx.FormValue("class"),
		Subject:  ctx.FormValue("subject"),
		PeriodNo: period,
		Date:     ctx.FormValue("date"),
	}
	if scope.Class == "" || scope.Subject == "" || scope.PeriodNo == 0 || scope.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "class, subject, period and date are required")
	}

	form, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing attendance form")
	}
	var records []school.AttendanceRecord
	for _, raw := range form["student_id"] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		status := ctx.FormValue("status_" + raw)
		switch status {
		case school.AttendancePresent, school.AttendanceAbsent, school.AttendanceLate:
		default:
			status = school.AttendancePresent
		}
		records = append(records, school.AttendanceRecord{StudentID: id, Status: status})
	}
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no students on the sheet")
	}

	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	var flash string
	if ctx.FormValue("editing") == "true" {
		err = api.EditAttendance(reqCtx, scope, records)
		flash = "Attendance updated."
	} else {
		markedBy := ""
		if sess := currentSession(ctx); sess.Valid() {
			markedBy = sess.User.Name
		}
		err = api.MarkAttendance(reqCtx, scope, records, markedBy)
		flash = "Attendance marked."
	}
	if err != nil {
		return errors.Wrap(err, "saving attendance")
	}

	q := url.Values{
		"class":   {scope.Class},
		"subject": {scope.Subject},
		"period":  {strconv.Itoa(scope.PeriodNo)},
		"date":    {scope.Date},
	}
	return redirectBack(ctx, "/attendance?"+q.Encode(), flash)
}
