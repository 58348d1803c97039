package echoweb

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// timetableGrid indexes entries by day then period for the weekly grid.
type timetableGrid map[string]map[int]school.TimetableEntry

func buildGrid(entries []school.TimetableEntry) timetableGrid {
	grid := make(timetableGrid, len(school.DaysOfWeek))
	for _, day := range school.DaysOfWeek {
		grid[day] = make(map[int]school.TimetableEntry, len(school.TimeSlots))
	}
	for _, entry := range entries {
		if row, ok := grid[entry.DayOfWeek]; ok {
			row[entry.PeriodNo] = entry
		}
	}
	return grid
}

// timetablePage renders the weekly grid for the chosen class. The entries and
// the teacher directory (for the period form) load in parallel.
func (app *webApp) timetablePage(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	classes, err := api.Classes(reqCtx)
	if err != nil {
		return errors.Wrap(err, "fetching classes")
	}

	classID := ctx.QueryParam("class")
	data := echo.Map{
		"Classes":  classes,
		"Class":    classID,
		"Days":     school.DaysOfWeek,
		"Slots":    school.TimeSlots,
		"Subjects": school.Subjects,
	}
	if classID == "" {
		return ctx.Render(http.StatusOK, "timetable.html", data)
	}

	var (
		wg         sync.WaitGroup
		entries    []school.TimetableEntry
		entriesErr error
		teachers   []school.User
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		entries, entriesErr = api.ClassTimetable(reqCtx, classID)
	}()
	go func() {
		defer wg.Done()
		teachers, _ = api.TeachersDetailed(reqCtx)
	}()
	wg.Wait()

	if entriesErr != nil {
		return errors.Wrap(entriesErr, "fetching timetable")
	}

	data["Grid"] = buildGrid(entries)
	data["Teachers"] = teachers
	return ctx.Render(http.StatusOK, "timetable.html", data)
}

func bindPeriodForm(ctx echo.Context) school.PeriodForm {
	periodNo, _ := strconv.Atoi(ctx.FormValue("period_no"))
	teacherID, _ := strconv.Atoi(ctx.FormValue("teacher_id"))
	form := school.PeriodForm{
		Class:     ctx.FormValue("class"),
		DayOfWeek: ctx.FormValue("day_of_week"),
		PeriodNo:  periodNo,
		Subject:   ctx.FormValue("subject"),
		TeacherID: teacherID,
		StartTime: ctx.FormValue("start_time"),
		EndTime:   ctx.FormValue("end_time"),
	}
	// the fixed slot supplies the times when the form leaves them out
	if form.StartTime == "" || form.EndTime == "" {
		for _, slot := range school.TimeSlots {
			if slot.Period == form.PeriodNo {
				form.StartTime, form.EndTime = slot.Start, slot.End
				break
			}
		}
	}
	return form
}

func (app *webApp) createPeriod(ctx echo.Context) error {
	form := bindPeriodForm(ctx)
	if err := form.Validate(); err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).CreatePeriod(ctx.Request().Context(), form); err != nil {
		return errors.Wrap(err, "creating period")
	}
	return redirectBack(ctx, timetableBackURL(form.Class), "Period added.")
}

func (app *webApp) updatePeriod(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	form := bindPeriodForm(ctx)
	if err := form.Validate(); err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).UpdatePeriod(ctx.Request().Context(), id, form); err != nil {
		return errors.Wrap(err, "updating period")
	}
	return redirectBack(ctx, timetableBackURL(form.Class), "Period updated.")
}

func (app *webApp) deletePeriod(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).DeletePeriod(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting period")
	}
	return redirectBack(ctx, timetableBackURL(ctx.FormValue("class")), "Period removed.")
}

func timetableBackURL(classID string) string {
	q := url.Values{"class": {classID}}
	return "/timetable?" + q.Encode()
}
