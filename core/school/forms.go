package school

import (
	"github.com/Pacchu9832/Edutrack-admin/core"
)

// Credentials is the login form. The backend accepts a username or an email.
type Credentials struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.UsernameOrEmail = core.CleanString(c.UsernameOrEmail, true /* lower */)
	return core.Validate.Struct(c)
}

// StudentForm contains the information needed to create or update a Student.
// On update an empty Password means "leave unchanged"; the form is submitted
// as multipart whenever ProfileImage is attached.
type StudentForm struct {
	Name            string `json:"name" form:"name" validate:"required"`
	Username        string `json:"username" form:"username" validate:"omitempty,min=4,alphanum_"`
	RollNumber      string `json:"roll_number" form:"roll_number" validate:"required"`
	Email           string `json:"email" form:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password" validate:"omitempty,min=6"`
	Gender          string `json:"gender" form:"gender" validate:"omitempty,oneof=Male Female Other"`
	DOB             string `json:"dob" form:"dob"`
	Address         string `json:"address" form:"address"`
	BloodGroup      string `json:"blood_group" form:"blood_group"`
	ParentName      string `json:"parent_name" form:"parent_name"`
	ParentContactNo string `json:"parent_contact_no" form:"parent_contact_no"`
	ParentAddress   string `json:"parent_address" form:"parent_address"`
	Class           string `json:"class" form:"class" validate:"required"`
}

func (f *StudentForm) Validate(creating bool) error {
	f.Name = core.CleanString(f.Name)
	f.Username = core.CleanString(f.Username, true /* lower */)
	f.Email = core.CleanString(f.Email, true /* lower */)
	if creating && f.Password == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "password", Error: "this field is required"})
	}
	return core.Validate.Struct(f)
}

// UserForm creates or updates an account on the Users screen. Teacher-specific
// fields are only sent for RoleTeacher.
type UserForm struct {
	Name             string `json:"name" form:"name" validate:"required"`
	Username         string `json:"username" form:"username" validate:"omitempty,min=4,alphanum_"`
	RollNumber       string `json:"roll_number" form:"roll_number"`
	Email            string `json:"email" form:"email" validate:"omitempty,email"`
	Phone            string `json:"phone" form:"phone"`
	Password         string `json:"password" form:"password" validate:"omitempty,min=6"`
	Role             string `json:"role" form:"role" validate:"required,oneof=Teacher Parent Admin Student"`
	Subject          string `json:"subject" form:"subject"`
	Experience       string `json:"experience" form:"experience"`
	Qualification    string `json:"qualification" form:"qualification"`
	Address          string `json:"address" form:"address"`
	Gender           string `json:"gender" form:"gender" validate:"omitempty,oneof=Male Female Other"`
	DOB              string `json:"dob" form:"dob"`
	JoiningDate      string `json:"joining_date" form:"joining_date"`
	Salary           string `json:"salary" form:"salary"`
	EmergencyContact string `json:"emergency_contact" form:"emergency_contact"`
}

func (f *UserForm) Validate(creating bool) error {
	f.Name = core.CleanString(f.Name)
	f.Username = core.CleanString(f.Username, true /* lower */)
	f.Email = core.CleanString(f.Email, true /* lower */)
	if creating && f.Password == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "password", Error: "this field is required"})
	}
	return core.Validate.Struct(f)
}

// NoticeForm is the create/update payload for a notice.
type NoticeForm struct {
	Reason         string   `json:"reason" form:"reason" validate:"required"`
	Message        string   `json:"message" form:"message" validate:"required"`
	NoticeDate     string   `json:"notice_date" form:"notice_date" validate:"required"`
	ClassIDs       []string `json:"class_ids" form:"class_ids"`
	StudentUserIDs []int    `json:"student_user_ids" form:"student_user_ids"`
	SendToParents  bool     `json:"send_to_parents" form:"send_to_parents"`
	Priority       string   `json:"priority" form:"priority" validate:"required,oneof=low normal high urgent"`
	Type           string   `json:"type" form:"type" validate:"required,oneof=general holiday event emergency exam meeting"`
	SenderUserID   int      `json:"sender_user_id"`
}

func (f *NoticeForm) Validate() error {
	f.Reason = core.CleanString(f.Reason)
	f.Message = core.CleanString(f.Message)
	return core.Validate.Struct(f)
}

// PeriodForm creates or updates one timetable cell.
type PeriodForm struct {
	Class     string `json:"class" form:"class" validate:"required"`
	DayOfWeek string `json:"day_of_week" form:"day_of_week" validate:"required"`
	PeriodNo  int    `json:"period_no" form:"period_no" validate:"required,min=1,max=6"`
	Subject   string `json:"subject" form:"subject" validate:"required"`
	TeacherID int    `json:"teacher_id" form:"teacher_id" validate:"required"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
	EndTime   string `json:"end_time" form:"end_time" validate:"required"`
}

func (f *PeriodForm) Validate() error { return core.Validate.Struct(f) }

// MarkForm is one row of the marks entry modal. For internal exams the theory
// field carries the single total mark.
type MarkForm struct {
	StudentID    int `json:"student_id" form:"student_id" validate:"required"`
	TheoryMark   int `json:"theory_mark" form:"theory_mark" validate:"min=0,max=100"`
	InternalMark int `json:"internal_mark" form:"internal_mark" validate:"min=0,max=100"`
}

func (f *MarkForm) Validate() error { return core.Validate.Struct(f) }
