package models

import "time"

// SubmissionEntry is one chosen course inside a submission.
type SubmissionEntry struct {
	CourseCode string   `json:"course_code"`
	CourseName string   `json:"course_name"`
	Category   string   `json:"category"`
	Semester   Semester `json:"semester"`
	Priority   Priority `json:"priority"`
}

// SubmissionRecord is the finalized payload handed to the submission store.
// Built fresh per submit action, only after a passing verdict, and never
// mutated afterwards.
type SubmissionRecord struct {
	EmployeeID  string            `json:"employee_id"`
	FacultyName string            `json:"faculty_name"`
	Cohort      string            `json:"cohort"`
	Department  string            `json:"department"`
	Entries     []SubmissionEntry `json:"entries"`
}

// SelectionRow is a persisted selection as stored in the submission store.
type SelectionRow struct {
	ID          string    `db:"id" json:"id"`
	EmployeeID  string    `db:"employee_id" json:"employee_id"`
	FacultyName string    `db:"faculty_name" json:"faculty_name"`
	Cohort      string    `db:"cohort" json:"cohort"`
	Department  string    `db:"department" json:"department"`
	CourseCode  string    `db:"course_code" json:"course_code"`
	CourseName  string    `db:"course_name" json:"course_name"`
	Category    string    `db:"category" json:"category"`
	Semester    Semester  `db:"semester" json:"semester"`
	Priority    Priority  `db:"priority" json:"priority"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
