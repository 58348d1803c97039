package echoweb

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// parentPage shows a parent's profile and linked children. The profile, the
// children and the student directory (for the link picker) load in parallel.
func (app *webApp) parentPage(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	var (
		wg         sync.WaitGroup
		profile    school.ParentProfile
		profileErr error
		children   []school.Child
		students   []school.Student
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		profile, profileErr = api.ParentProfile(reqCtx, id)
	}()
	go func() {
		defer wg.Done()
		children, _ = api.ParentChildren(reqCtx, id)
	}()
	go func() {
		defer wg.Done()
		students, _ = api.AllStudents(reqCtx)
	}()
	wg.Wait()

	if profileErr != nil {
		return errors.Wrap(profileErr, "fetching parent profile")
	}

	// the picker only offers students not already linked
	linked := make(map[int]bool, len(children))
	for _, child := range children {
		linked[child.UserID] = true
	}
	unlinked := students[:0]
	for _, s := range students {
		if !linked[s.ID] {
			unlinked = append(unlinked, s)
		}
	}

	return ctx.Render(http.StatusOK, "parent.html", echo.Map{
		"ParentID": id,
		"Profile":  profile,
		"Children": children,
		"Students": unlinked,
	})
}

func (app *webApp) updateParentProfile(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	profile := school.ParentProfile{
		UserID:         id,
		Occupation:     ctx.FormValue("occupation"),
		Address:        ctx.FormValue("address"),
		AlternatePhone: ctx.FormValue("alternate_phone"),
	}

	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	if err := api.SaveParentProfile(reqCtx, id, profile); err != nil {
		return errors.Wrap(err, "saving parent profile")
	}
	if avatar, err := formUpload(ctx, "profile_image"); err != nil {
		return err
	} else if avatar != nil {
		if err := api.UploadParentImage(reqCtx, id, *avatar); err != nil {
			return errors.Wrap(err, "uploading parent image")
		}
	}
	return redirectBack(ctx, "/parents/"+ctx.Param("id"), "Profile updated.")
}

func (app *webApp) linkChild(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := strconv.Atoi(ctx.FormValue("student_user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "a student must be selected")
	}

	if err := app.api(currentSession(ctx)).LinkChild(ctx.Request().Context(), id, studentID); err != nil {
		return errors.Wrap(err, "linking child")
	}
	return redirectBack(ctx, "/parents/"+ctx.Param("id"), "Child linked.")
}

func (app *webApp) unlinkChild(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := intParam(ctx, "studentId")
	if err != nil {
		return err
	}

	if err := app.api(currentSession(ctx)).UnlinkChild(ctx.Request().Context(), id, studentID); err != nil {
		return errors.Wrap(err, "unlinking child")
	}
	return redirectBack(ctx, "/parents/"+ctx.Param("id"), "Child unlinked.")
}
