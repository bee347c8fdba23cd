package models

// Semester enumerates the two academic terms a course can be placed in.
type Semester string

const (
	SemesterFall   Semester = "Fall"
	SemesterSpring Semester = "Spring"
)

// Valid reports whether s is one of the two known semesters.
func (s Semester) Valid() bool {
	return s == SemesterFall || s == SemesterSpring
}

// Ordinal returns the within-year sort position of the semester. Fall
// opens the labeled academic year, so Fall of year N precedes Spring
// of the same year N.
func (s Semester) Ordinal() int {
	if s == SemesterSpring {
		return 2
	}
	return 1
}

// PlannedCourse is one course placed into one academic term.
type PlannedCourse struct {
	CourseCode string   `json:"courseCode" binding:"required"`
	Year       int      `json:"year" binding:"required,min=1"`
	Semester   Semester `json:"semester" binding:"required"`
}

// StudentPlan is a student's multi-year course timeline. StartYear is
// informational for clients and does not affect validation.
type StudentPlan struct {
	Courses   []PlannedCourse `json:"courses"`
	StartYear int             `json:"startYear,omitempty"`
}

// Finding severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding is one reported issue about a term or a course within a
// term. Term-level findings (credit load) carry an empty CourseCode.
type Finding struct {
	CourseCode string   `json:"courseCode"`
	Year       int      `json:"year"`
	Semester   Semester `json:"semester"`
	Message    string   `json:"error"`
	Severity   string   `json:"severity"`
}

// ValidationResult is the full outcome of checking one plan.
type ValidationResult struct {
	IsValid  bool      `json:"isValid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}
