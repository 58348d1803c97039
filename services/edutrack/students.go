package edusvc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// Classes lists class identifiers ("8", "9", ...).
func (c *Client) Classes(ctx context.Context) ([]string, error) {
	var classes []string
	err := c.get(ctx, "/public-admin/classes", nil, &classes)
	return classes, err
}

// StudentsByClass fetches the roster of one class.
func (c *Client) StudentsByClass(ctx context.Context, classID string) ([]school.Student, error) {
	var students []school.Student
	err := c.get(ctx, "/public-admin/students/"+classID, nil, &students)
	return students, err
}

// Student fetches a single student record.
func (c *Client) Student(ctx context.Context, id int) (school.Student, error) {
	var student school.Student
	err := c.get(ctx, fmt.Sprintf("/public-admin/student/%d", id), nil, &student)
	return student, err
}

// AllStudents fetches every student across classes (notice recipients).
func (c *Client) AllStudents(ctx context.Context) ([]school.Student, error) {
	var students []school.Student
	err := c.get(ctx, "/allstudents", nil, &students)
	return students, err
}

func studentFields(form school.StudentForm) map[string]string {
	return map[string]string{
		"name":              form.Name,
		"username":          form.Username,
		"roll_number":       form.RollNumber,
		"email":             form.Email,
		"phone":             form.Phone,
		"password":          form.Password,
		"gender":            form.Gender,
		"dob":               form.DOB,
		"address":           form.Address,
		"blood_group":       form.BloodGroup,
		"parent_name":       form.ParentName,
		"parent_contact_no": form.ParentContactNo,
		"parent_address":    form.ParentAddress,
		"class":             form.Class,
	}
}

// CreateStudent registers a student; multipart so the profile image uploads
// with the rest of the form.
func (c *Client) CreateStudent(ctx context.Context, form school.StudentForm, avatar *Upload) error {
	return c.sendForm(ctx, http.MethodPost, "/admin/addStudentWithImage", studentFields(form), avatar, nil)
}

// UpdateStudent edits a student. An empty password field means "leave
// unchanged"; the backend skips it.
func (c *Client) UpdateStudent(ctx context.Context, id int, form school.StudentForm, avatar *Upload) error {
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf("/admin/students/%d", id), studentFields(form), avatar, nil)
}

// DeleteStudent removes one student.
func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/admin/students/%d", id), nil, nil, nil)
}

type bulkStudentAction struct {
	Action     string `json:"action"`
	StudentIDs []int  `json:"student_ids"`
}

// BulkDeleteStudents removes the selected students in one batched call.
func (c *Client) BulkDeleteStudents(ctx context.Context, ids []int) error {
	return c.send(ctx, http.MethodPost, "/admin/students/bulk", nil, bulkStudentAction{Action: "delete", StudentIDs: ids}, nil)
}

// StudentsFiltered fetches students scoped by class for reports.
func (c *Client) StudentsFiltered(ctx context.Context, classID string) ([]school.Student, error) {
	var students []school.Student
	query := url.Values{"class": {classID}}
	err := c.get(ctx, "/admin/students", query, &students)
	return students, err
}

// ClassCount fetches the roster size of one class without keeping the roster.
func (c *Client) ClassCount(ctx context.Context, classID string) (int, error) {
	students, err := c.StudentsByClass(ctx, classID)
	if err != nil {
		return 0, err
	}
	return len(students), nil
}
