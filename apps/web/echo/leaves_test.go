package echoweb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// leaveFixture spans the filter axes: overall status, parent-side status and
// the quick date windows around Wednesday 2024-06-12.
func leaveFixture() []school.LeaveRequest {
	return []school.LeaveRequest{
		{ID: 1, StudentName: "Aarav Shah", Reason: "Fever",
			ParentStatus: school.DecisionPending, TeacherStatus: school.DecisionPending,
			FromDate: "2024-06-12", ToDate: "2024-06-12"},
		{ID: 2, StudentName: "Diya Patel", Reason: "Family function",
			ParentStatus: school.DecisionApproved, TeacherStatus: school.DecisionPending,
			FromDate: "2024-06-14", ToDate: "2024-06-16"},
		{ID: 3, StudentName: "Kabir Rao", Reason: "Travel",
			ParentStatus: school.DecisionPending, TeacherStatus: school.DecisionRejected,
			FromDate: "2024-07-01", ToDate: "2024-07-03"},
		{ID: 4, StudentName: "Meera Iyer", Reason: "Wedding",
			ParentStatus: school.DecisionApproved, TeacherStatus: school.DecisionApproved,
			FromDate: "2024-06-01", ToDate: "2024-06-02"},
	}
}

func leaveIDs(rows []school.LeaveRequest) []int {
	ids := make([]int, 0, len(rows))
	for _, lr := range rows {
		ids = append(ids, lr.ID)
	}
	return ids
}

func TestLeaveStatusFilter(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	app := &webApp{}

	tests := []struct {
		status string
		want   []int
	}{
		{school.DecisionPending, []int{1, 2}},
		{school.DecisionApproved, []int{4}},
		{school.DecisionRejected, []int{3}},
		// parent still undecided, whatever the teacher did
		{statusParentPending, []int{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			m := app.leaveList(10, now)
			m.SetCollection(leaveFixture())
			m.SetFilter("status", tt.status)
			assert.ElementsMatch(t, tt.want, leaveIDs(m.View().Rows))
		})
	}
}

func TestLeaveDatePresets(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	app := &webApp{}

	tests := []struct {
		preset string
		want   []int
	}{
		{"today", []int{1}},
		{"week", []int{1, 2}},
		{"month", []int{1, 2, 4}},
		{"upcoming", []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			m := app.leaveList(10, now)
			m.SetCollection(leaveFixture())
			m.SetFilter("range", tt.preset)
			assert.ElementsMatch(t, tt.want, leaveIDs(m.View().Rows))
		})
	}
}

func TestLeaveMatchesPresetBrokenDates(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	// an unparsable from date never matches
	lr := school.LeaveRequest{FromDate: "June 12th", ToDate: "2024-06-12"}
	assert.False(t, leaveMatchesPreset(lr, "today", now))

	// a missing to date falls back to a one-day leave
	lr = school.LeaveRequest{FromDate: "2024-06-12", ToDate: ""}
	assert.True(t, leaveMatchesPreset(lr, "today", now))
}

func TestLeaveSearchByRequestID(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	app := &webApp{}

	m := app.leaveList(10, now)
	m.SetCollection(leaveFixture())
	m.SetSearch("3")
	assert.ElementsMatch(t, []int{3}, leaveIDs(m.View().Rows))
}
