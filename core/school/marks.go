package school

// Pass thresholds. Major exams (Midterm, Annual) are marked out of 100
// (theory + internal); internal exams take a single total out of 25.
const (
	PassMarkMajor    = 35
	PassMarkInternal = 9
)

type GradeBand struct {
	Min, Max int
	Grade    string
	Label    string
}

var GradeScale = []GradeBand{
	{90, 100, "A+", "Excellent"},
	{80, 89, "A", "Very Good"},
	{70, 79, "B+", "Good"},
	{60, 69, "B", "Above Average"},
	{50, 59, "C", "Average"},
	{40, 49, "D", "Below Average"},
	{0, 39, "F", "Fail"},
}

// CalculateGrade maps a total mark onto the grade scale. Out-of-range totals fall to F.
func CalculateGrade(total int) string {
	for _, band := range GradeScale {
		if total >= band.Min && total <= band.Max {
			return band.Grade
		}
	}
	return "F"
}

// IsMajorExam reports whether the exam takes separate theory and internal marks.
func IsMajorExam(exam string) bool {
	return exam == ExamMidterm || exam == ExamAnnual
}

// IsInternalExam reports whether only a single total mark is entered.
func IsInternalExam(exam string) bool {
	switch exam {
	case ExamInternal1, ExamInternal2, ExamInternal3, ExamInternal4:
		return true
	}
	return false
}

// PassMark returns the pass threshold for the given exam.
func PassMark(exam string) int {
	if IsMajorExam(exam) {
		return PassMarkMajor
	}
	return PassMarkInternal
}

// TotalMark combines theory and internal marks according to the exam kind:
// major exams sum both, internal exams store the total in the theory field.
func TotalMark(exam string, theory, internal int) int {
	if IsMajorExam(exam) {
		return theory + internal
	}
	return theory
}

// MarkStatus derives Pass/Fail from the total against the exam's threshold.
func MarkStatus(exam string, total int) string {
	if total >= PassMark(exam) {
		return "Pass"
	}
	return "Fail"
}
