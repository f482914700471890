package models

import "strings"

// Semester identifies the academic term a course is offered in.
type Semester string

const (
	SemesterOdd  Semester = "ODD"
	SemesterEven Semester = "EVEN"
	// SemesterOther covers blank or unrecognized semester fields. It never
	// satisfies an ODD/EVEN quota rule.
	SemesterOther Semester = "OTHER"
)

// ParseSemester normalises a raw semester field case-insensitively.
func ParseSemester(raw string) Semester {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(SemesterOdd):
		return SemesterOdd
	case string(SemesterEven):
		return SemesterEven
	default:
		return SemesterOther
	}
}

// CourseRecord is one normalised catalog entry. Immutable once loaded.
type CourseRecord struct {
	SequenceNo  string   `json:"sequence_no"`
	Category    string   `json:"category"`
	Cohort      string   `json:"cohort"`
	CourseCode  string   `json:"course_code"`
	CourseTitle string   `json:"course_title"`
	Semester    Semester `json:"semester"`
}
