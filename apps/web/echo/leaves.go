package echoweb

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

// statusParentPending filters on the parent side alone, whatever the teacher
// decided; the other status values match the derived overall status.
const statusParentPending = "parent_pending"

const leaveDateLayout = "2006-01-02"

// leaveStatus is the derived overall status shown and filtered on.
func leaveStatus(lr school.LeaveRequest) string {
	switch {
	case lr.Rejected():
		return school.DecisionRejected
	case lr.Approved():
		return school.DecisionApproved
	default:
		return school.DecisionPending
	}
}

// leaveMatchesPreset reports whether the request's leave dates fall inside the
// named quick-filter window relative to now. Week covers the next seven days
// and month the current calendar month; upcoming means the leave has not
// started yet.
func leaveMatchesPreset(lr school.LeaveRequest, preset string, now time.Time) bool {
	start, err := time.Parse(leaveDateLayout, lr.FromDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(leaveDateLayout, lr.ToDate)
	if err != nil {
		end = start
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch preset {
	case "today":
		return !start.After(today) && !end.Before(today)
	case "week":
		return !start.After(today.AddDate(0, 0, 6)) && !end.Before(today)
	case "month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return !start.After(monthStart.AddDate(0, 1, -1)) && !end.Before(monthStart)
	case "upcoming":
		return start.After(today)
	}
	return false
}

func (app *webApp) leaveList(pageSize int, now time.Time) *listview.Manager[school.LeaveRequest] {
	return listview.NewManager(listview.Config[school.LeaveRequest]{
		PageSize: pageSize,
		ID:       func(lr school.LeaveRequest) int { return lr.ID },
		SearchFields: []func(school.LeaveRequest) string{
			func(lr school.LeaveRequest) string { return lr.StudentName },
			func(lr school.LeaveRequest) string { return lr.Reason },
			func(lr school.LeaveRequest) string { return strconv.Itoa(lr.ID) },
		},
		Columns: map[string]listview.Column[school.LeaveRequest]{
			"student": {Value: func(lr school.LeaveRequest) string { return lr.StudentName }},
			"class":   {Kind: listview.Numeric, Value: func(lr school.LeaveRequest) string { return lr.Class }},
			"created": {Kind: listview.Time, Time: func(lr school.LeaveRequest) time.Time { return lr.CreatedAt }},
		},
		Filters: map[string]listview.Predicate[school.LeaveRequest]{
			"status": func(lr school.LeaveRequest, value string) bool {
				if value == statusParentPending {
					return lr.ParentStatus == school.DecisionPending
				}
				return leaveStatus(lr) == value
			},
			"urgent": func(lr school.LeaveRequest, value string) bool { return lr.Urgent == (value == "true") },
			"range": func(lr school.LeaveRequest, value string) bool {
				return leaveMatchesPreset(lr, value, now)
			},
		},
		DefaultSort:  "created",
		DefaultOrder: listview.Descending,
	})
}

func (app *webApp) leavesPage(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	classID := ctx.QueryParam("class")
	start, end := ctx.QueryParam("start"), ctx.QueryParam("end")

	var leaves []school.LeaveRequest
	var err error
	if classID != "" || start != "" || end != "" {
		leaves, err = api.LeaveRequestsFiltered(reqCtx, classID, start, end)
	} else {
		leaves, err = api.LeaveRequests(reqCtx)
	}
	if err != nil {
		return errors.Wrap(err, "fetching leave requests")
	}

	m := app.leaveList(app.conf.PageSize, time.Now())
	m.SetCollection(leaves)
	view := bindList(ctx, m, "status", "urgent", "range")

	type leaveRow struct {
		school.LeaveRequest
		Status string
	}
	rows := make([]leaveRow, 0, len(view.Rows))
	for _, lr := range view.Rows {
		rows = append(rows, leaveRow{LeaveRequest: lr, Status: leaveStatus(lr)})
	}

	return ctx.Render(http.StatusOK, "leaves.html", echo.Map{
		"View":     view,
		"Rows":     rows,
		"Class":    classID,
		"Start":    start,
		"End":      end,
		"Statuses": []string{school.DecisionPending, school.DecisionApproved, school.DecisionRejected},
		"Query":    ctx.QueryParams(),
		"Sort":     m.SortKey(),
		"Order":    m.SortOrder(),
	})
}

// decideLeave records an approval or rejection on behalf of the teacher or
// the parent side.
func (app *webApp) decideLeave(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	actor := ctx.FormValue("actor")
	if actor != edusvc.ActorTeacher && actor != edusvc.ActorParent {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown decision actor")
	}
	status := ctx.FormValue("status")
	if status != school.DecisionApproved && status != school.DecisionRejected {
		return echo.NewHTTPError(http.StatusBadRequest, "decision must approve or reject")
	}

	if err := app.api(currentSession(ctx)).DecideLeave(ctx.Request().Context(), id, actor, status); err != nil {
		return errors.Wrap(err, "deciding leave request")
	}
	return redirectBack(ctx, "/leaves", "Decision recorded.")
}
