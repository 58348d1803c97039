package echoweb

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler for a
// server-rendered app: a backend 401 clears the session and forces a fresh
// login, everything else lands on the error page.
func newAppHTTPErrorHandler(app *webApp) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string
		var fieldErr bool

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = http.StatusText(code)
			if m, ok := origErr.Message.(string); ok {
				message = m
			}
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			fieldErr = true
			message = "submitted data is invalid"
			for _, vErr := range origErr {
				message = vErr.Field() + ": " + vErr.Translate(core.Translator)
				break
			}
		case *core.ValidationError:
			code = http.StatusBadRequest
			fieldErr = true
			message = origErr.Error()
			for _, fErr := range origErr.Fields {
				message = fErr.Field + ": " + fErr.Error
				break
			}
		default:
			// a rejected token anywhere sends the user back to login
			if origErr == edusvc.ErrUnauthorized {
				_ = app.sessions.Clear(ctx.Request(), ctx.Response())
				if !ctx.Response().Committed {
					_ = ctx.Redirect(http.StatusSeeOther, "/login")
				}
				return
			}

			code = http.StatusInternalServerError
			message = http.StatusText(code)

			logArgs := []interface{}{errors.Wrap(err, message)}
			if sess := currentSession(ctx); sess.Valid() {
				logArgs = append(logArgs, *sess.User)
			}
			app.logger.Error(message, logArgs...)
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}

		// a failed form submission lands back on the screen it came from so
		// the message shows next to the form; the standalone error page is
		// only for requests with no referring screen
		if fieldErr && !ctx.Response().Committed {
			if back := ctx.Request().Referer(); back != "" {
				_ = redirectBack(ctx, back, message)
				return
			}
		}

		if !ctx.Response().Committed {
			rErr := ctx.Render(code, "error.html", echo.Map{
				"Code":    code,
				"Message": message,
			})
			if rErr != nil {
				ctx.Echo().Logger.Error(rErr)
			}
		}
	}
}
