package echoweb

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

// dashboard shows the head counts and the latest notices. The two fetches are
// independent and run in parallel; the notice feed goes through the
// generation-guarded loader so a slow older refresh cannot clobber a newer
// one; on a failed refresh the last good feed is served.
func (app *webApp) dashboard(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	var (
		wg       sync.WaitGroup
		stats    school.Stats
		statsErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, statsErr = api.Stats(reqCtx)
	}()

	done := app.noticeLoader.Load(reqCtx,
		func(c context.Context) ([]school.Notice, error) {
			return api.Notices(c)
		},
		func(notices []school.Notice, err error) {
			if err != nil {
				return // keep the last good feed
			}
			app.noticeMu.Lock()
			app.noticeFeed = notices
			app.noticeMu.Unlock()
		},
	)
	<-done
	wg.Wait()

	// a rejected token must still force a fresh login; any other stats
	// failure renders zero counts behind a banner instead of blocking
	if errors.Cause(statsErr) == edusvc.ErrUnauthorized {
		return statsErr
	}

	app.noticeMu.RLock()
	notices := app.noticeFeed
	app.noticeMu.RUnlock()
	if len(notices) > 3 {
		notices = notices[:3]
	}

	return ctx.Render(http.StatusOK, "dashboard.html", echo.Map{
		"Stats":      stats,
		"StatsError": statsErr != nil,
		"Notices":    notices,
	})
}
