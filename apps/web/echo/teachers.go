package echoweb

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// teacherProfilePage joins three independent fetches: the profile, the
// subject/class assignments and today's schedule. The profile is required;
// the other two degrade to empty sections.
func (app *webApp) teacherProfilePage(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	var (
		wg          sync.WaitGroup
		details     school.TeacherDetails
		detailsErr  error
		assignments []school.TeacherAssignment
		schedule    []school.ScheduleEntry
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		details, detailsErr = api.TeacherDetails(reqCtx, id)
	}()
	go func() {
		defer wg.Done()
		assignments, _ = api.TeacherAssignments(reqCtx, id)
	}()
	go func() {
		defer wg.Done()
		schedule, _ = api.TeacherScheduleToday(reqCtx, id)
	}()
	wg.Wait()

	if detailsErr != nil {
		return errors.Wrap(detailsErr, "fetching teacher profile")
	}
	return ctx.Render(http.StatusOK, "teacher.html", echo.Map{
		"TeacherID":   id,
		"Details":     details,
		"Assignments": assignments,
		"Schedule":    schedule,
		"Subjects":    school.Subjects,
	})
}

func (app *webApp) updateTeacherProfile(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	details := school.TeacherDetails{
		UserID:           id,
		Subject:          ctx.FormValue("subject"),
		Phone:            ctx.FormValue("phone"),
		Experience:       ctx.FormValue("experience"),
		Qualification:    ctx.FormValue("qualification"),
		Address:          ctx.FormValue("address"),
		Gender:           ctx.FormValue("gender"),
		DOB:              ctx.FormValue("dob"),
		JoiningDate:      ctx.FormValue("joining_date"),
		Salary:           ctx.FormValue("salary"),
		EmergencyContact: ctx.FormValue("emergency_contact"),
	}

	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	if err := api.UpdateTeacherDetails(reqCtx, id, details); err != nil {
		return errors.Wrap(err, "updating teacher profile")
	}
	if avatar, err := formUpload(ctx, "profile_image"); err != nil {
		return err
	} else if avatar != nil {
		if err := api.UploadTeacherImage(reqCtx, id, *avatar); err != nil {
			return errors.Wrap(err, "uploading teacher image")
		}
	}
	return redirectBack(ctx, "/teachers/"+ctx.Param("id"), "Profile updated.")
}
