package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Pacchu9832/Edutrack-admin/core/session"
)

const sessionContextKey = "session"

// requireAuth gates every page behind a valid session. An anonymous request is
// redirected to /login; the session is stashed on the context for handlers.
func (app *webApp) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sess := app.sessions.Restore(ctx.Request())
		if !sess.Valid() {
			return ctx.Redirect(http.StatusSeeOther, "/login")
		}
		ctx.Set(sessionContextKey, sess)
		return next(ctx)
	}
}

func currentSession(ctx echo.Context) session.Session {
	sess, _ := ctx.Get(sessionContextKey).(session.Session)
	return sess
}
