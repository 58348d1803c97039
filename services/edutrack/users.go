package edusvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// Users fetches all accounts (teachers, parents, admins, students).
func (c *Client) Users(ctx context.Context) ([]school.User, error) {
	var users []school.User
	err := c.get(ctx, "/admin/users", nil, &users)
	return users, err
}

// CreateUser registers a non-teacher account.
func (c *Client) CreateUser(ctx context.Context, form school.UserForm) (school.User, error) {
	var usr school.User
	err := c.send(ctx, http.MethodPost, "/public-admin/users", nil, form, &usr)
	return usr, err
}

// CreateTeacher registers a teacher account; the payload is multipart so a
// profile image can ride along with the form.
func (c *Client) CreateTeacher(ctx context.Context, form school.UserForm, avatar *Upload) error {
	fields := map[string]string{
		"name":              form.Name,
		"username":          form.Username,
		"email":             form.Email,
		"phone":             form.Phone,
		"password":          form.Password,
		"role":              school.RoleTeacher,
		"subject":           form.Subject,
		"experience":        form.Experience,
		"qualification":     form.Qualification,
		"address":           form.Address,
		"gender":            form.Gender,
		"dob":               form.DOB,
		"joining_date":      form.JoiningDate,
		"salary":            form.Salary,
		"emergency_contact": form.EmergencyContact,
	}
	return c.sendForm(ctx, http.MethodPost, "/admin/teachers", fields, avatar, nil)
}

// UpdateUser edits any account type on the backend.
func (c *Client) UpdateUser(ctx context.Context, id int, form school.UserForm) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), nil, form, nil)
}

// DeleteUser removes one account. Bulk deletion issues one call per id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, nil)
}

// teacherDetailsEnvelope mirrors the /teacher/details/:id wire shape: subject
// and phone at the top level, the rest nested under "details".
type teacherDetailsEnvelope struct {
	Subject string                `json:"subject"`
	Phone   string                `json:"phone"`
	Details school.TeacherDetails `json:"details"`
}

// TeacherDetails fetches a teacher's profile, flattened.
func (c *Client) TeacherDetails(ctx context.Context, id int) (school.TeacherDetails, error) {
	var envelope teacherDetailsEnvelope
	if err := c.get(ctx, fmt.Sprintf("/teacher/details/%d", id), nil, &envelope); err != nil {
		return school.TeacherDetails{}, err
	}
	details := envelope.Details
	details.UserID = id
	if details.Subject == "" {
		details.Subject = envelope.Subject
	}
	if details.Phone == "" {
		details.Phone = envelope.Phone
	}
	return details, nil
}

// UpdateTeacherDetails saves a teacher's profile fields.
func (c *Client) UpdateTeacherDetails(ctx context.Context, id int, details school.TeacherDetails) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/teacher/details/%d", id), nil, details, nil)
}

// UploadTeacherImage replaces a teacher's profile image.
func (c *Client) UploadTeacherImage(ctx context.Context, id int, avatar Upload) error {
	return c.sendForm(ctx, http.MethodPost, fmt.Sprintf("/teacher/details/%d/profile-image", id), nil, &avatar, nil)
}

// TeachersDetailed fetches teachers with their subject assignments, used by
// the timetable editor.
func (c *Client) TeachersDetailed(ctx context.Context) ([]school.User, error) {
	var teachers []school.User
	err := c.get(ctx, "/admin/teachers/detailed", nil, &teachers)
	return teachers, err
}

// TeacherAssignments lists the subject/class pairs a teacher covers.
func (c *Client) TeacherAssignments(ctx context.Context, id int) ([]school.TeacherAssignment, error) {
	var assignments []school.TeacherAssignment
	err := c.get(ctx, fmt.Sprintf("/teacher/subjects-classes/%d", id), nil, &assignments)
	return assignments, err
}

// TeacherScheduleToday returns the teacher's periods for the current day.
func (c *Client) TeacherScheduleToday(ctx context.Context, id int) ([]school.ScheduleEntry, error) {
	var schedule []school.ScheduleEntry
	err := c.get(ctx, fmt.Sprintf("/teacher/schedule/today/%d", id), nil, &schedule)
	return schedule, err
}
