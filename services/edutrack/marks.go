package edusvc

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// MarkScope identifies one marks sheet: a class, a subject and an exam.
type MarkScope struct {
	Class   string
	Subject string
	Exam    string
}

func (s MarkScope) query() url.Values {
	return url.Values{
		"className": {s.Class},
		"subject":   {s.Subject},
		"exam":      {s.Exam},
	}
}

// Marks fetches the marks recorded for a scope.
func (c *Client) Marks(ctx context.Context, scope MarkScope) ([]school.Mark, error) {
	var marks []school.Mark
	err := c.get(ctx, "/marks", scope.query(), &marks)
	return marks, err
}

// MarkEntry is one student's row in an upsert. Theory and internal marks are
// omitted for internal exams, where only the total is recorded.
type MarkEntry struct {
	StudentID    int    `json:"studentId"`
	TheoryMark   *int   `json:"theoryMark"`
	InternalMark *int   `json:"internalMark"`
	TotalMark    int    `json:"totalMark"`
	Status       string `json:"status"`
}

type marksUpsert struct {
	ClassName string      `json:"className"`
	Subject   string      `json:"subject"`
	Exam      string      `json:"exam"`
	MarksList []MarkEntry `json:"marksList"`
	TeacherID *int        `json:"teacherId"`
}

// NewMarkEntry derives totals, status and field presence from the exam kind.
func NewMarkEntry(exam string, form school.MarkForm) MarkEntry {
	total := school.TotalMark(exam, form.TheoryMark, form.InternalMark)
	entry := MarkEntry{
		StudentID: form.StudentID,
		TotalMark: total,
		Status:    school.MarkStatus(exam, total),
	}
	if school.IsMajorExam(exam) {
		theory, internal := form.TheoryMark, form.InternalMark
		entry.TheoryMark = &theory
		entry.InternalMark = &internal
	}
	return entry
}

// UpsertMarks creates or updates the given entries within a scope.
func (c *Client) UpsertMarks(ctx context.Context, scope MarkScope, entries []MarkEntry, teacherID *int) error {
	payload := marksUpsert{
		ClassName: scope.Class,
		Subject:   scope.Subject,
		Exam:      scope.Exam,
		MarksList: entries,
		TeacherID: teacherID,
	}
	return c.send(ctx, http.MethodPost, "/marks/upsert", nil, payload, nil)
}

// DeleteMark removes one student's mark within a scope.
func (c *Client) DeleteMark(ctx context.Context, scope MarkScope, studentID int) error {
	query := scope.query()
	query.Set("studentId", strconv.Itoa(studentID))
	return c.do(ctx, http.MethodDelete, "/marks", query, nil, "", nil)
}
