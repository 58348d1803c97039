package echoweb

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

func (app *webApp) userList(pageSize int) *listview.Manager[school.User] {
	return listview.NewManager(listview.Config[school.User]{
		PageSize: pageSize,
		ID:       func(u school.User) int { return u.ID },
		SearchFields: []func(school.User) string{
			func(u school.User) string { return u.Name },
			func(u school.User) string { return u.Username },
			func(u school.User) string { return u.Email },
		},
		Columns: map[string]listview.Column[school.User]{
			"name":    {Value: func(u school.User) string { return u.Name }},
			"role":    {Value: func(u school.User) string { return u.Role }},
			"created": {Kind: listview.Time, Time: func(u school.User) time.Time { return u.CreatedAt }},
		},
		Filters: map[string]listview.Predicate[school.User]{
			"role": listview.Equals(func(u school.User) string { return u.Role }),
		},
		DefaultSort: "name",
	})
}

func (app *webApp) usersPage(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	users, err := api.Users(reqCtx)
	if err != nil {
		return errors.Wrap(err, "fetching users")
	}
	users = api.EnrichTeachers(reqCtx, users)

	m := app.userList(app.conf.PageSize)
	m.SetCollection(users)
	view := bindList(ctx, m, "role")

	return ctx.Render(http.StatusOK, "users.html", echo.Map{
		"View":     view,
		"Roles":    school.AllRoles,
		"Subjects": school.Subjects,
		"Query":    ctx.QueryParams(),
		"Sort":     m.SortKey(),
		"Order":    m.SortOrder(),
	})
}

func bindUserForm(ctx echo.Context) school.UserForm {
	return school.UserForm{
		Name:             ctx.FormValue("name"),
		Username:         ctx.FormValue("username"),
		RollNumber:       ctx.FormValue("roll_number"),
		Email:            ctx.FormValue("email"),
		Phone:            ctx.FormValue("phone"),
		Password:         ctx.FormValue("password"),
		Role:             ctx.FormValue("role"),
		Subject:          ctx.FormValue("subject"),
		Experience:       ctx.FormValue("experience"),
		Qualification:    ctx.FormValue("qualification"),
		Address:          ctx.FormValue("address"),
		Gender:           ctx.FormValue("gender"),
		DOB:              ctx.FormValue("dob"),
		JoiningDate:      ctx.FormValue("joining_date"),
		Salary:           ctx.FormValue("salary"),
		EmergencyContact: ctx.FormValue("emergency_contact"),
	}
}

func (app *webApp) createUser(ctx echo.Context) error {
	form := bindUserForm(ctx)
	if err := form.Validate(true /* creating */); err != nil {
		return err
	}

	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	// teachers go through the dedicated endpoint so the profile image and
	// teaching details land in one submission
	if form.Role == school.RoleTeacher {
		avatar, err := formUpload(ctx, "profile_image")
		if err != nil {
			return err
		}
		if err := api.CreateTeacher(reqCtx, form, avatar); err != nil {
			return errors.Wrap(err, "creating teacher")
		}
	} else {
		if _, err := api.CreateUser(reqCtx, form); err != nil {
			return errors.Wrap(err, "creating user")
		}
	}
	return redirectBack(ctx, "/users", "User created.")
}

func (app *webApp) updateUser(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	form := bindUserForm(ctx)
	if err := form.Validate(false); err != nil {
		return err
	}

	if err := app.api(currentSession(ctx)).UpdateUser(ctx.Request().Context(), id, form); err != nil {
		return errors.Wrap(err, "updating user")
	}
	return redirectBack(ctx, "/users", "User updated.")
}

func (app *webApp) deleteUser(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).DeleteUser(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting user")
	}
	return redirectBack(ctx, "/users", "User deleted.")
}

// bulkDeleteUsers removes the checked rows. The backend has no batched user
// endpoint, so the deletion goes out as one call per id; the redirect refetches
// the list without the deleted rows.
func (app *webApp) bulkDeleteUsers(ctx echo.Context) error {
	form, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing bulk delete form")
	}

	m := app.userList(app.conf.PageSize)
	for _, raw := range form["selected"] {
		if id, err := strconv.Atoi(raw); err == nil {
			m.Toggle(id)
		}
	}
	ids := m.Selected()
	if len(ids) == 0 {
		return redirectBack(ctx, "/users", "Nothing selected.")
	}

	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()
	for _, id := range ids {
		if err := api.DeleteUser(reqCtx, id); err != nil {
			return errors.Wrap(err, "bulk deleting users")
		}
	}
	m.ClearSelection()
	return redirectBack(ctx, "/users", "Selected users deleted.")
}
