package edusvc

import (
	"time"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// Demo fixtures, shown only when demo mode is enabled and the backend has no
// data to offer. Kept out of production builds by configuration, not build tags,
// so the demo dataset stays exercised by tests.

func demoLeaveRequests() []school.LeaveRequest {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	atPtr := func(s string) *time.Time {
		t := at(s)
		return &t
	}
	return []school.LeaveRequest{
		{
			ID: 1, StudentName: "John Doe", StudentID: 101, Class: "10",
			FromDate: "2024-01-20", ToDate: "2024-01-22", Reason: "Family function",
			ParentStatus: school.DecisionApproved, TeacherStatus: school.DecisionPending,
			CreatedAt: at("2024-01-15T10:00:00Z"), ParentDecisionAt: atPtr("2024-01-15T12:00:00Z"),
			TotalDays: 3,
		},
		{
			ID: 2, StudentName: "Jane Smith", StudentID: 102, Class: "9",
			FromDate: "2024-01-18", ToDate: "2024-01-18", Reason: "Medical appointment",
			ParentStatus: school.DecisionApproved, TeacherStatus: school.DecisionApproved,
			CreatedAt: at("2024-01-12T09:00:00Z"), ParentDecisionAt: atPtr("2024-01-12T10:00:00Z"),
			TeacherDecisionAt: atPtr("2024-01-13T14:00:00Z"), TotalDays: 1, Urgent: true,
		},
		{
			ID: 3, StudentName: "Mike Johnson", StudentID: 103, Class: "11",
			FromDate: "2024-01-25", ToDate: "2024-01-27", Reason: "Illness - fever",
			ParentStatus: school.DecisionPending, TeacherStatus: school.DecisionPending,
			CreatedAt: at("2024-01-16T08:00:00Z"), TotalDays: 3, Urgent: true,
		},
		{
			ID: 4, StudentName: "Sarah Wilson", StudentID: 104, Class: "8",
			FromDate: "2024-01-19", ToDate: "2024-01-19", Reason: "Personal emergency",
			ParentStatus: school.DecisionApproved, TeacherStatus: school.DecisionRejected,
			CreatedAt: at("2024-01-14T11:00:00Z"), ParentDecisionAt: atPtr("2024-01-14T11:30:00Z"),
			TeacherDecisionAt: atPtr("2024-01-15T09:00:00Z"), TotalDays: 1,
		},
		{
			ID: 5, StudentName: "David Brown", StudentID: 105, Class: "12",
			FromDate: "2024-02-01", ToDate: "2024-02-03", Reason: "College admission interview",
			ParentStatus: school.DecisionApproved, TeacherStatus: school.DecisionApproved,
			CreatedAt: at("2024-01-17T13:00:00Z"), ParentDecisionAt: atPtr("2024-01-17T14:00:00Z"),
			TeacherDecisionAt: atPtr("2024-01-18T10:00:00Z"), TotalDays: 3,
		},
	}
}

func demoNotices() []school.Notice {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []school.Notice{
		{
			ID: 1, Reason: "Parent-Teacher Meeting",
			Message:    "Parent-Teacher meeting will be conducted on 25th January 2024. All parents are requested to attend.",
			NoticeDate: "2024-01-15", Type: "meeting", Priority: "high", SendToParents: true,
			CreatedAt: at("2024-01-15T10:00:00Z"), Classes: []string{"8", "9", "10"}, RecipientsCount: 150,
		},
		{
			ID: 2, Reason: "Annual Exam Schedule",
			Message:    "Annual examinations will commence from 1st March 2024. Detailed schedule will be provided soon.",
			NoticeDate: "2024-01-10", Type: "exam", Priority: "urgent", SendToParents: true,
			CreatedAt: at("2024-01-10T09:00:00Z"), Classes: []string{"10", "11", "12"}, RecipientsCount: 200,
		},
		{
			ID: 3, Reason: "Republic Day Celebration",
			Message:    "School will organize Republic Day celebration on 26th January. All students should attend in uniform.",
			NoticeDate: "2024-01-20", Type: "event", Priority: "normal", SendToParents: false,
			CreatedAt: at("2024-01-08T11:00:00Z"), Classes: []string{"8", "9", "10", "11", "12"}, RecipientsCount: 300,
		},
	}
}
