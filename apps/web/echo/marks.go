package echoweb

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	"github.com/Pacchu9832/Edutrack-admin/core/report"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

func markScope(ctx echo.Context) edusvc.MarkScope {
	return edusvc.MarkScope{
		Class:   ctx.QueryParam("class"),
		Subject: ctx.QueryParam("subject"),
		Exam:    ctx.QueryParam("exam"),
	}
}

func (app *webApp) markList(pageSize int) *listview.Manager[school.Mark] {
	return listview.NewManager(listview.Config[school.Mark]{
		PageSize: pageSize,
		ID:       func(m school.Mark) int { return m.StudentID },
		SearchFields: []func(school.Mark) string{
			func(m school.Mark) string { return m.StudentName },
			func(m school.Mark) string { return m.RollNumber },
		},
		Columns: map[string]listview.Column[school.Mark]{
			"roll":  {Kind: listview.Numeric, Value: func(m school.Mark) string { return m.RollNumber }},
			"name":  {Value: func(m school.Mark) string { return m.StudentName }},
			"total": {Kind: listview.Numeric, Value: func(m school.Mark) string { return strconv.Itoa(m.TotalMark) }},
		},
		Filters: map[string]listview.Predicate[school.Mark]{
			"status": listview.Equals(func(m school.Mark) string { return m.Status }),
		},
		DefaultSort: "roll",
	})
}

// marksPage shows the scope pickers and the recorded marks. The class roster
// loads alongside the marks so the entry form can offer every student.
func (app *webApp) marksPage(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	classes, err := api.Classes(reqCtx)
	if err != nil {
		return errors.Wrap(err, "fetching classes")
	}

	scope := markScope(ctx)
	data := echo.Map{
		"Classes":  classes,
		"Subjects": school.Subjects,
		"Exams":    school.Exams,
		"Scope":    scope,
	}
	if scope.Class == "" || scope.Subject == "" || scope.Exam == "" {
		return ctx.Render(http.StatusOK, "marks.html", data)
	}

	var (
		wg       sync.WaitGroup
		marks    []school.Mark
		marksErr error
		students []school.Student
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		marks, marksErr = api.Marks(reqCtx, scope)
	}()
	go func() {
		defer wg.Done()
		students, _ = api.StudentsByClass(reqCtx, scope.Class)
	}()
	wg.Wait()

	if marksErr != nil {
		return errors.Wrap(marksErr, "fetching marks")
	}

	m := app.markList(app.conf.PageSize)
	m.SetCollection(marks)
	view := bindList(ctx, m, "status")

	data["View"] = view
	data["Students"] = students
	data["Major"] = school.IsMajorExam(scope.Exam)
	data["PassMark"] = school.PassMark(scope.Exam)
	data["Sort"] = m.SortKey()
	data["Order"] = m.SortOrder()
	data["Query"] = ctx.QueryParams()
	return ctx.Render(http.StatusOK, "marks.html", data)
}

// saveMarks upserts one entry per student row submitted with a mark.
func (app *webApp) saveMarks(ctx echo.Context) error {
	scope := edusvc.MarkScope{
		Class:   ctx.FormValue("class"),
		Subject: ctx.FormValue("subject"),
		Exam:    ctx.FormValue("exam"),
	}
	if scope.Class == "" || scope.Subject == "" || scope.Exam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "class, subject and exam are required")
	}

	form, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing marks form")
	}

	var entries []edusvc.MarkEntry
	for _, raw := range form["student_id"] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		theoryRaw := ctx.FormValue("theory_" + raw)
		internalRaw := ctx.FormValue("internal_" + raw)
		if theoryRaw == "" && internalRaw == "" {
			continue // row left blank
		}
		theory, _ := strconv.Atoi(theoryRaw)
		internal, _ := strconv.Atoi(internalRaw)

		mf := school.MarkForm{StudentID: id, TheoryMark: theory, InternalMark: internal}
		if err := mf.Validate(); err != nil {
			return err
		}
		entries = append(entries, edusvc.NewMarkEntry(scope.Exam, mf))
	}
	if len(entries) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no marks entered")
	}

	var teacherID *int
	if sess := currentSession(ctx); sess.Valid() && sess.User.Role == school.RoleTeacher {
		teacherID = &sess.User.ID
	}
	if err := app.api(currentSession(ctx)).UpsertMarks(ctx.Request().Context(), scope, entries, teacherID); err != nil {
		return errors.Wrap(err, "saving marks")
	}
	return redirectBack(ctx, marksBackURL(scope), "Marks saved.")
}

func (app *webApp) deleteMark(ctx echo.Context) error {
	studentID, err := intParam(ctx, "studentId")
	if err != nil {
		return err
	}
	scope := edusvc.MarkScope{
		Class:   ctx.FormValue("class"),
		Subject: ctx.FormValue("subject"),
		Exam:    ctx.FormValue("exam"),
	}
	if err := app.api(currentSession(ctx)).DeleteMark(ctx.Request().Context(), scope, studentID); err != nil {
		return errors.Wrap(err, "deleting mark")
	}
	return redirectBack(ctx, marksBackURL(scope), "Mark deleted.")
}

// exportMarks downloads the current scope's marks as a CSV report.
func (app *webApp) exportMarks(ctx echo.Context) error {
	scope := markScope(ctx)
	if scope.Class == "" || scope.Subject == "" || scope.Exam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "class, subject and exam are required")
	}

	marks, err := app.api(currentSession(ctx)).Marks(ctx.Request().Context(), scope)
	if err != nil {
		return errors.Wrap(err, "fetching marks")
	}

	rep := report.Marks(report.Scope{
		Class:   scope.Class,
		Subject: scope.Subject,
		Exam:    scope.Exam,
	}, time.Now(), marks)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rep.Filename("csv")+`"`)
	res.WriteHeader(http.StatusOK)
	return rep.WriteCSV(res)
}

func marksBackURL(scope edusvc.MarkScope) string {
	q := url.Values{"class": {scope.Class}, "subject": {scope.Subject}, "exam": {scope.Exam}}
	return "/marks?" + q.Encode()
}
