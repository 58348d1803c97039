package edusvc

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// AttendanceScope identifies one attendance sheet.
type AttendanceScope struct {
	Class    string
	Subject  string
	PeriodNo int
	Date     string // YYYY-MM-DD
}

func (s AttendanceScope) query() url.Values {
	return url.Values{
		"className": {s.Class},
		"subject":   {s.Subject},
		"periodNo":  {strconv.Itoa(s.PeriodNo)},
		"date":      {s.Date},
	}
}

// Attendance fetches existing records for a scope; an empty result means the
// sheet has not been marked yet.
func (c *Client) Attendance(ctx context.Context, scope AttendanceScope) ([]school.AttendanceRecord, error) {
	var records []school.AttendanceRecord
	err := c.get(ctx, "/attendance/get", scope.query(), &records)
	return records, err
}

type attendancePayload struct {
	ClassName      string                `json:"className"`
	Subject        string                `json:"subject"`
	PeriodNo       int                   `json:"periodNo"`
	Date           string                `json:"date"`
	AttendanceList []attendanceListEntry `json:"attendanceList"`
	MarkedBy       string                `json:"markedBy,omitempty"`
}

type attendanceListEntry struct {
	StudentID int    `json:"studentId"`
	Status    string `json:"status"`
}

func newAttendancePayload(scope AttendanceScope, records []school.AttendanceRecord, markedBy string) attendancePayload {
	list := make([]attendanceListEntry, 0, len(records))
	for _, record := range records {
		list = append(list, attendanceListEntry{StudentID: record.StudentID, Status: record.Status})
	}
	return attendancePayload{
		ClassName:      scope.Class,
		Subject:        scope.Subject,
		PeriodNo:       scope.PeriodNo,
		Date:           scope.Date,
		AttendanceList: list,
		MarkedBy:       markedBy,
	}
}

// MarkAttendance records a fresh sheet.
func (c *Client) MarkAttendance(ctx context.Context, scope AttendanceScope, records []school.AttendanceRecord, markedBy string) error {
	return c.send(ctx, http.MethodPost, "/attendance/mark", nil, newAttendancePayload(scope, records, markedBy), nil)
}

// EditAttendance amends an already-marked sheet.
func (c *Client) EditAttendance(ctx context.Context, scope AttendanceScope, records []school.AttendanceRecord) error {
	return c.send(ctx, http.MethodPatch, "/attendance/edit", nil, newAttendancePayload(scope, records, ""), nil)
}
