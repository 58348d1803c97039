package school

import "time"

// Roles as the backend reports them on /admin/users.
const (
	RoleAdmin   = "Admin"
	RoleTeacher = "Teacher"
	RoleParent  = "Parent"
	RoleStudent = "Student"
)

var AllRoles = []string{RoleTeacher, RoleParent, RoleAdmin, RoleStudent}

// Subjects taught; mirrors the backend's fixed subject list.
var Subjects = []string{"Kannada", "English", "Hindi", "Mathematics", "Science", "Social Science", "PT"}

// Exams. The trailing space in "Annual Exam " matches the backend's stored value.
const (
	ExamInternal1 = "I Internal Exam"
	ExamInternal2 = "II Internal Exam"
	ExamMidterm   = "Midterm Exam"
	ExamInternal3 = "III Internal Exam"
	ExamInternal4 = "IV Internal Exam"
	ExamAnnual    = "Annual Exam "
)

var Exams = []string{ExamInternal1, ExamInternal2, ExamMidterm, ExamInternal3, ExamInternal4, ExamAnnual}

// User is an account row from /admin/users. Teachers carry Subject/Phone/AvatarURL
// after enrichment from /teacher/details/:id.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Subject   string    `json:"subject,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Student struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	RollNumber      string `json:"roll_number"`
	Class           string `json:"class"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	Address         string `json:"address"`
	BloodGroup      string `json:"blood_group"`
	ParentName      string `json:"parent_name"`
	ParentContactNo string `json:"parent_contact_no"`
	ParentAddress   string `json:"parent_address"`
	ProfileImage    string `json:"profile_image"`
}

// TeacherDetails is the profile payload behind /teacher/details/:id.
type TeacherDetails struct {
	UserID           int    `json:"user_id"`
	Subject          string `json:"subject"`
	Phone            string `json:"phone"`
	Experience       string `json:"experience"`
	Qualification    string `json:"qualification"`
	Address          string `json:"address"`
	Gender           string `json:"gender"`
	DOB              string `json:"dob"`
	JoiningDate      string `json:"joining_date"`
	Salary           string `json:"salary"`
	EmergencyContact string `json:"emergency_contact"`
	ProfileImageURL  string `json:"profile_image_url"`
}

type TeacherAssignment struct {
	Subject string `json:"subject"`
	Class   string `json:"class"`
}

type ScheduleEntry struct {
	PeriodNo  int    `json:"period_no"`
	Class     string `json:"class"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ParentProfile struct {
	UserID          int    `json:"user_id"`
	Occupation      string `json:"occupation"`
	Address         string `json:"address"`
	AlternatePhone  string `json:"alternate_phone"`
	ProfileImageURL string `json:"profile_image_url"`
}

// Child links a parent account to a student account.
type Child struct {
	UserID     int    `json:"user_id"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	RollNumber string `json:"roll_number"`
}

type Mark struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	StudentName  string    `json:"student_name"`
	RollNumber   string    `json:"roll_number"`
	Class        string    `json:"class_name"`
	Subject      string    `json:"subject"`
	Exam         string    `json:"exam"`
	TheoryMark   int       `json:"theory_mark"`
	InternalMark int       `json:"internal_mark"`
	TotalMark    int       `json:"total_mark"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

type AttendanceRecord struct {
	StudentID int    `json:"student_id"`
	Status    string `json:"status"`
}

// Decision statuses on leave requests; a request is approved overall only when
// both parent and teacher approved it.
const (
	DecisionPending  = "pending"
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

type LeaveRequest struct {
	ID                int        `json:"id"`
	StudentName       string     `json:"student_name"`
	StudentID         int        `json:"student_id"`
	Class             string     `json:"class"`
	FromDate          string     `json:"from_date"`
	ToDate            string     `json:"to_date"`
	Reason            string     `json:"reason"`
	ParentStatus      string     `json:"parent_status"`
	TeacherStatus     string     `json:"teacher_status"`
	CreatedAt         time.Time  `json:"created_at"`
	ParentDecisionAt  *time.Time `json:"parent_decision_at"`
	TeacherDecisionAt *time.Time `json:"teacher_decision_at"`
	TotalDays         int        `json:"total_days"`
	Urgent            bool       `json:"urgent"`
}

// Pending reports whether either decision is still outstanding.
func (lr LeaveRequest) Pending() bool {
	return lr.ParentStatus == DecisionPending || lr.TeacherStatus == DecisionPending
}

// Approved reports whether both parent and teacher approved.
func (lr LeaveRequest) Approved() bool {
	return lr.ParentStatus == DecisionApproved && lr.TeacherStatus == DecisionApproved
}

// Rejected reports whether either party rejected.
func (lr LeaveRequest) Rejected() bool {
	return lr.ParentStatus == DecisionRejected || lr.TeacherStatus == DecisionRejected
}

// Notice types and priorities.
var (
	NoticeTypes      = []string{"general", "holiday", "event", "emergency", "exam", "meeting"}
	NoticePriorities = []string{"low", "normal", "high", "urgent"}
)

type Notice struct {
	ID              int       `json:"id"`
	Reason          string    `json:"reason"` // the notice title
	Message         string    `json:"message"`
	NoticeDate      string    `json:"notice_date"`
	Type            string    `json:"type"`
	Priority        string    `json:"priority"`
	SendToParents   bool      `json:"send_to_parents"`
	CreatedAt       time.Time `json:"created_at"`
	Classes         []string  `json:"classes"`
	RecipientsCount int       `json:"recipients_count"`
}

type TimetableEntry struct {
	ID          int    `json:"id"`
	Class       string `json:"class"`
	DayOfWeek   string `json:"day_of_week"`
	PeriodNo    int    `json:"period_no"`
	Subject     string `json:"subject"`
	TeacherID   int    `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

var DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TimeSlot is a fixed school period.
type TimeSlot struct {
	Period int
	Start  string
	End    string
}

var TimeSlots = []TimeSlot{
	{1, "09:00", "09:55"},
	{2, "10:00", "10:50"},
	{3, "11:10", "12:05"},
	{4, "12:05", "13:00"},
	{5, "14:00", "14:55"},
	{6, "15:00", "15:55"},
}

// Stats is the dashboard payload from /public-admin/stats.
type Stats struct {
	StudentCount int `json:"studentCount"`
	TeacherCount int `json:"teacherCount"`
	ParentCount  int `json:"parentCount"`
	AdminCount   int `json:"adminCount"`
}
