package edusvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// ClassTimetable fetches the flat list of periods for a class.
func (c *Client) ClassTimetable(ctx context.Context, classID string) ([]school.TimetableEntry, error) {
	var entries []school.TimetableEntry
	err := c.get(ctx, "/timetable/class/"+classID, nil, &entries)
	return entries, err
}

// CreatePeriod adds one timetable cell.
func (c *Client) CreatePeriod(ctx context.Context, form school.PeriodForm) error {
	return c.send(ctx, http.MethodPost, "/timetable", nil, form, nil)
}

// UpdatePeriod edits one timetable cell.
func (c *Client) UpdatePeriod(ctx context.Context, id int, form school.PeriodForm) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/timetable/%d", id), nil, form, nil)
}

// DeletePeriod clears one timetable cell.
func (c *Client) DeletePeriod(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/timetable/%d", id), nil, nil, nil)
}
