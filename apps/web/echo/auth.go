package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
	"github.com/Pacchu9832/Edutrack-admin/core/session"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

func (app *webApp) loginPage(ctx echo.Context) error {
	// an authenticated user has no business on the login page
	if sess := app.sessions.Restore(ctx.Request()); sess.Valid() {
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return ctx.Render(http.StatusOK, "login.html", echo.Map{
		"AppName": app.conf.AppName,
	})
}

func (app *webApp) login(ctx echo.Context) error {
	creds := school.Credentials{
		UsernameOrEmail: ctx.FormValue("username"),
		Password:        ctx.FormValue("password"),
	}
	if err := creds.Validate(); err != nil {
		return app.loginFailed(ctx, creds.UsernameOrEmail, "Username and password are required.")
	}

	res, err := app.api(session.Session{}).Login(ctx.Request().Context(), creds)
	if err != nil {
		if errors.Cause(err) == edusvc.ErrUnauthorized || edusvc.IsBadRequest(err) {
			return app.loginFailed(ctx, creds.UsernameOrEmail, "Invalid credentials.")
		}
		return errors.Wrap(err, "logging in")
	}

	if err := app.sessions.Set(ctx.Request(), ctx.Response(), res.User, res.Token); err != nil {
		return errors.Wrap(err, "persisting session")
	}
	return ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

func (app *webApp) loginFailed(ctx echo.Context, username, msg string) error {
	return ctx.Render(http.StatusUnauthorized, "login.html", echo.Map{
		"AppName":  app.conf.AppName,
		"Username": username,
		"Error":    msg,
	})
}

func (app *webApp) logout(ctx echo.Context) error {
	if err := app.sessions.Clear(ctx.Request(), ctx.Response()); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return ctx.Redirect(http.StatusSeeOther, "/login")
}
