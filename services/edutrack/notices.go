package edusvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// Notices fetches all published notices. In demo mode an unreachable backend
// yields the canned sample set instead of an error.
func (c *Client) Notices(ctx context.Context) ([]school.Notice, error) {
	var notices []school.Notice
	if err := c.get(ctx, "/notices", nil, &notices); err != nil {
		if c.demoMode && !errors.Is(err, ErrUnauthorized) {
			return demoNotices(), nil
		}
		return nil, err
	}
	return notices, nil
}

// CreateNotice publishes a notice to the selected classes/students.
func (c *Client) CreateNotice(ctx context.Context, form school.NoticeForm) error {
	return c.send(ctx, http.MethodPost, "/notices", nil, form, nil)
}

// UpdateNotice edits a published notice.
func (c *Client) UpdateNotice(ctx context.Context, id int, form school.NoticeForm) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/notices/%d", id), nil, form, nil)
}

// DeleteNotice withdraws a notice.
func (c *Client) DeleteNotice(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/notices/%d", id), nil, nil, nil)
}

// ClassList lists class identifiers from the authenticated route. Some
// screens (notices, timetable, leaves) use this route, others use the public
// one; both return the same shape.
func (c *Client) ClassList(ctx context.Context) ([]string, error) {
	var classes []string
	err := c.get(ctx, "/classes", nil, &classes)
	return classes, err
}
