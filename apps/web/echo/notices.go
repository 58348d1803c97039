package echoweb

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

func (app *webApp) noticeList(pageSize int) *listview.Manager[school.Notice] {
	return listview.NewManager(listview.Config[school.Notice]{
		PageSize: pageSize,
		ID:       func(n school.Notice) int { return n.ID },
		SearchFields: []func(school.Notice) string{
			func(n school.Notice) string { return n.Reason },
			func(n school.Notice) string { return n.Message },
		},
		Columns: map[string]listview.Column[school.Notice]{
			"date":    {Value: func(n school.Notice) string { return n.NoticeDate }},
			"title":   {Value: func(n school.Notice) string { return n.Reason }},
			"created": {Kind: listview.Time, Time: func(n school.Notice) time.Time { return n.CreatedAt }},
		},
		Filters: map[string]listview.Predicate[school.Notice]{
			"type":     listview.Equals(func(n school.Notice) string { return n.Type }),
			"priority": listview.Equals(func(n school.Notice) string { return n.Priority }),
		},
		DefaultSort:  "created",
		DefaultOrder: listview.Descending,
	})
}

func (app *webApp) noticesPage(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	var (
		wg         sync.WaitGroup
		notices    []school.Notice
		noticesErr error
		classes    []string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		notices, noticesErr = api.Notices(reqCtx)
	}()
	go func() {
		defer wg.Done()
		classes, _ = api.ClassList(reqCtx)
	}()
	wg.Wait()

	if noticesErr != nil {
		return errors.Wrap(noticesErr, "fetching notices")
	}

	m := app.noticeList(app.conf.PageSize)
	m.SetCollection(notices)
	view := bindList(ctx, m, "type", "priority")

	return ctx.Render(http.StatusOK, "notices.html", echo.Map{
		"View":       view,
		"Classes":    classes,
		"Types":      school.NoticeTypes,
		"Priorities": school.NoticePriorities,
		"Query":      ctx.QueryParams(),
		"Sort":       m.SortKey(),
		"Order":      m.SortOrder(),
	})
}

func (app *webApp) bindNoticeForm(ctx echo.Context) (school.NoticeForm, error) {
	form, err := ctx.FormParams()
	if err != nil {
		return school.NoticeForm{}, errors.Wrap(err, "parsing notice form")
	}

	var studentIDs []int
	for _, raw := range form["student_user_ids"] {
		if id, err := strconv.Atoi(raw); err == nil {
			studentIDs = append(studentIDs, id)
		}
	}

	nf := school.NoticeForm{
		Reason:         ctx.FormValue("reason"),
		Message:        ctx.FormValue("message"),
		NoticeDate:     ctx.FormValue("notice_date"),
		ClassIDs:       form["class_ids"],
		StudentUserIDs: studentIDs,
		SendToParents:  ctx.FormValue("send_to_parents") == "on",
		Priority:       ctx.FormValue("priority"),
		Type:           ctx.FormValue("type"),
	}
	if sess := currentSession(ctx); sess.Valid() {
		nf.SenderUserID = sess.User.ID
	}
	return nf, nil
}

func (app *webApp) createNotice(ctx echo.Context) error {
	form, err := app.bindNoticeForm(ctx)
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).CreateNotice(ctx.Request().Context(), form); err != nil {
		return errors.Wrap(err, "creating notice")
	}
	return redirectBack(ctx, "/notices", "Notice published.")
}

func (app *webApp) updateNotice(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	form, err := app.bindNoticeForm(ctx)
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).UpdateNotice(ctx.Request().Context(), id, form); err != nil {
		return errors.Wrap(err, "updating notice")
	}
	return redirectBack(ctx, "/notices", "Notice updated.")
}

func (app *webApp) deleteNotice(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).DeleteNotice(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting notice")
	}
	return redirectBack(ctx, "/notices", "Notice deleted.")
}
