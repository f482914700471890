package models

// FacultyIdentity is a resolved faculty directory entry. The core only reads
// it; ownership stays with the caller for the duration of a session.
type FacultyIdentity struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Cohort     string `json:"cohort"`
	Department string `json:"department"`
}
