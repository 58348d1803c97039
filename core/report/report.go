// Package report derives printable/exportable summaries from backend data.
// All derivation is pure; fetching belongs to the caller.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

type Kind string

const (
	KindMarks      Kind = "marks"
	KindAttendance Kind = "attendance"
	KindStudents   Kind = "students"
	KindLeaves     Kind = "leave-requests"
	KindNotices    Kind = "notices"
)

var Kinds = []Kind{KindMarks, KindAttendance, KindStudents, KindLeaves, KindNotices}

// Scope narrows a report; unused fields stay empty.
type Scope struct {
	Class     string `json:"class,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Exam      string `json:"exam,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Label renders the scope for file names and headings, eg "class-10-mathematics".
func (s Scope) Label() string {
	var parts []string
	if s.Class != "" {
		parts = append(parts, "class-"+s.Class)
	}
	if s.Subject != "" {
		parts = append(parts, s.Subject)
	}
	if s.Exam != "" {
		parts = append(parts, s.Exam)
	}
	if s.StartDate != "" {
		parts = append(parts, s.StartDate)
		if s.EndDate != "" && s.EndDate != s.StartDate {
			parts = append(parts, "to", s.EndDate)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "all")
	}
	return slugify(strings.Join(parts, "-"))
}

// Stat is one summary line, eg "Pass %" / "82.5".
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report is a fully derived report: summary stats plus a tabular body.
type Report struct {
	Kind        Kind       `json:"kind"`
	Title       string     `json:"title"`
	Scope       Scope      `json:"scope"`
	GeneratedAt time.Time  `json:"generated_at"`
	Summary     []Stat     `json:"summary"`
	Header      []string   `json:"header"`
	Rows        [][]string `json:"rows"`
}

// Filename returns "<kind>-<scope>-<date>.<ext>".
func (r Report) Filename(ext string) string {
	date := r.GeneratedAt.Format("2006-01-02")
	return fmt.Sprintf("%s-%s-%s.%s", r.Kind, r.Scope.Label(), date, ext)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true // trim leading dashes
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func percent(part, whole int) string {
	if whole == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(part)*100/float64(whole))
}

// Marks summarises a marks listing: average/min/max total and pass percentage,
// with one row per student mark.
func Marks(scope Scope, now time.Time, marks []school.Mark) Report {
	rep := Report{
		Kind:        KindMarks,
		Title:       "Marks Report",
		Scope:       scope,
		GeneratedAt: now,
		Header:      []string{"Roll No", "Student", "Class", "Subject", "Exam", "Total", "Grade", "Status"},
	}

	var sum, min, max, passed int
	for i, m := range marks {
		if i == 0 || m.TotalMark < min {
			min = m.TotalMark
		}
		if m.TotalMark > max {
			max = m.TotalMark
		}
		sum += m.TotalMark
		if m.Status == "Pass" {
			passed++
		}
		rep.Rows = append(rep.Rows, []string{
			m.RollNumber, m.StudentName, m.Class, m.Subject, strings.TrimSpace(m.Exam),
			fmt.Sprint(m.TotalMark), school.CalculateGrade(m.TotalMark), m.Status,
		})
	}

	avg := "0.0"
	if len(marks) > 0 {
		avg = fmt.Sprintf("%.1f", float64(sum)/float64(len(marks)))
	}
	rep.Summary = []Stat{
		{"Students", fmt.Sprint(len(marks))},
		{"Average", avg},
		{"Highest", fmt.Sprint(max)},
		{"Lowest", fmt.Sprint(min)},
		{"Pass %", percent(passed, len(marks))},
	}
	return rep
}

// Day is one day's attendance sheet.
type Day struct {
	Date    string
	Records []school.AttendanceRecord
}

// Attendance aggregates per-student presence over a date range. Students with
// no records at all still get a row with zero counts.
func Attendance(scope Scope, now time.Time, students []school.Student, days []Day) Report {
	rep := Report{
		Kind:        KindAttendance,
		Title:       "Attendance Report",
		Scope:       scope,
		GeneratedAt: now,
		Header:      []string{"Roll No", "Student", "Present", "Absent", "Late", "Attendance %"},
	}

	type tally struct{ present, absent, late int }
	tallies := make(map[int]*tally, len(students))
	for _, s := range students {
		tallies[s.ID] = &tally{}
	}
	for _, day := range days {
		for _, rec := range day.Records {
			t, ok := tallies[rec.StudentID]
			if !ok {
				continue
			}
			switch rec.Status {
			case school.AttendancePresent:
				t.present++
			case school.AttendanceAbsent:
				t.absent++
			case school.AttendanceLate:
				t.late++
			}
		}
	}

	var totalPresent, totalMarked int
	for _, s := range students {
		t := tallies[s.ID]
		marked := t.present + t.absent + t.late
		// late still counts as attended
		attended := t.present + t.late
		totalPresent += attended
		totalMarked += marked
		rep.Rows = append(rep.Rows, []string{
			s.RollNumber, s.Name,
			fmt.Sprint(t.present), fmt.Sprint(t.absent), fmt.Sprint(t.late),
			percent(attended, marked),
		})
	}

	rep.Summary = []Stat{
		{"Students", fmt.Sprint(len(students))},
		{"Days", fmt.Sprint(len(days))},
		{"Overall %", percent(totalPresent, totalMarked)},
	}
	return rep
}

// Students summarises a class roster with gender counts.
func Students(scope Scope, now time.Time, students []school.Student) Report {
	rep := Report{
		Kind:        KindStudents,
		Title:       "Student Summary",
		Scope:       scope,
		GeneratedAt: now,
		Header:      []string{"Roll No", "Student", "Class", "Gender", "DOB", "Parent", "Parent Contact"},
	}

	genders := make(map[string]int)
	for _, s := range students {
		g := strings.ToLower(s.Gender)
		if g == "" {
			g = "unspecified"
		}
		genders[g]++
		rep.Rows = append(rep.Rows, []string{
			s.RollNumber, s.Name, s.Class, s.Gender, s.DOB, s.ParentName, s.ParentContactNo,
		})
	}

	rep.Summary = []Stat{
		{"Students", fmt.Sprint(len(students))},
		{"Male", fmt.Sprint(genders["male"])},
		{"Female", fmt.Sprint(genders["female"])},
	}
	if n := len(students) - genders["male"] - genders["female"]; n > 0 {
		rep.Summary = append(rep.Summary, Stat{"Other/Unspecified", fmt.Sprint(n)})
	}
	return rep
}

// Leaves counts leave requests by overall status.
func Leaves(scope Scope, now time.Time, leaves []school.LeaveRequest) Report {
	rep := Report{
		Kind:        KindLeaves,
		Title:       "Leave Requests Report",
		Scope:       scope,
		GeneratedAt: now,
		Header:      []string{"Student", "Class", "From", "To", "Days", "Reason", "Parent", "Teacher", "Status"},
	}

	var approved, pending, rejected int
	for _, lr := range leaves {
		status := school.DecisionPending
		switch {
		case lr.Rejected():
			rejected++
			status = school.DecisionRejected
		case lr.Approved():
			approved++
			status = school.DecisionApproved
		default:
			pending++
		}
		rep.Rows = append(rep.Rows, []string{
			lr.StudentName, lr.Class, lr.FromDate, lr.ToDate, fmt.Sprint(lr.TotalDays),
			lr.Reason, lr.ParentStatus, lr.TeacherStatus, status,
		})
	}

	rep.Summary = []Stat{
		{"Requests", fmt.Sprint(len(leaves))},
		{"Approved", fmt.Sprint(approved)},
		{"Pending", fmt.Sprint(pending)},
		{"Rejected", fmt.Sprint(rejected)},
	}
	return rep
}

// Notices counts notices by type and priority.
func Notices(scope Scope, now time.Time, notices []school.Notice) Report {
	rep := Report{
		Kind:        KindNotices,
		Title:       "Notices Report",
		Scope:       scope,
		GeneratedAt: now,
		Header:      []string{"Date", "Title", "Type", "Priority", "Classes", "Recipients"},
	}

	byType := make(map[string]int)
	var urgent int
	for _, n := range notices {
		byType[n.Type]++
		if n.Priority == "urgent" {
			urgent++
		}
		rep.Rows = append(rep.Rows, []string{
			n.NoticeDate, n.Reason, n.Type, n.Priority,
			strings.Join(n.Classes, " "), fmt.Sprint(n.RecipientsCount),
		})
	}

	rep.Summary = []Stat{{"Notices", fmt.Sprint(len(notices))}, {"Urgent", fmt.Sprint(urgent)}}
	for _, typ := range school.NoticeTypes {
		if byType[typ] > 0 {
			rep.Summary = append(rep.Summary, Stat{titleCase(typ), fmt.Sprint(byType[typ])})
		}
	}
	return rep
}
