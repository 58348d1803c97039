package edusvc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// Decision actors on a leave request.
const (
	ActorTeacher = "teacher"
	ActorParent  = "parent"
)

type leaveEnvelope struct {
	Data []school.LeaveRequest `json:"data"`
}

// LeaveRequests fetches all leave requests. In demo mode an unreachable
// backend yields the canned sample set instead of an error.
func (c *Client) LeaveRequests(ctx context.Context) ([]school.LeaveRequest, error) {
	var envelope leaveEnvelope
	if err := c.get(ctx, "/leave-requests", nil, &envelope); err != nil {
		if c.demoMode && !errors.Is(err, ErrUnauthorized) {
			return demoLeaveRequests(), nil
		}
		return nil, err
	}
	return envelope.Data, nil
}

// LeaveRequestsFiltered fetches requests scoped by class and date range (reports).
func (c *Client) LeaveRequestsFiltered(ctx context.Context, classID, startDate, endDate string) ([]school.LeaveRequest, error) {
	query := url.Values{}
	if classID != "" {
		query.Set("class", classID)
	}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	var envelope leaveEnvelope
	if err := c.get(ctx, "/leave-requests", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

type leaveDecision struct {
	Status string `json:"status"`
}

// DecideLeave records a teacher or parent decision on a request.
func (c *Client) DecideLeave(ctx context.Context, requestID int, actor, status string) error {
	if actor != ActorTeacher && actor != ActorParent {
		return errors.Errorf("unknown decision actor %q", actor)
	}
	path := fmt.Sprintf("/leave-requests/%d/%s", requestID, actor)
	return c.send(ctx, http.MethodPatch, path, nil, leaveDecision{Status: status}, nil)
}
