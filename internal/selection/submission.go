package selection

import (
	"github.com/klcse/faculty-option-api/internal/catalog"
	"github.com/klcse/faculty-option-api/internal/models"
)

// BuildSubmission projects a validated selection into the finalized record
// handed to the submission store. Callers must only invoke it after a passing
// verdict. Each selected code resolves to its first matching catalog record.
func BuildSubmission(identity models.FacultyIdentity, courses []models.CourseRecord, sel State) models.SubmissionRecord {
	record := models.SubmissionRecord{
		EmployeeID:  identity.EmployeeID,
		FacultyName: identity.Name,
		Cohort:      identity.Cohort,
		Department:  identity.Department,
		Entries:     make([]models.SubmissionEntry, 0, sel.Len()),
	}

	for _, code := range sel.Selected() {
		course, ok := catalog.FindByCode(courses, code)
		if !ok {
			continue
		}
		tier, _ := sel.PriorityOf(code)
		record.Entries = append(record.Entries, models.SubmissionEntry{
			CourseCode: course.CourseCode,
			CourseName: course.CourseTitle,
			Category:   course.Category,
			Semester:   course.Semester,
			Priority:   tier,
		})
	}

	return record
}

// RowsToSelection maps persisted rows back into editable selection state, the
// inverse of BuildSubmission. Row order becomes insertion order.
func RowsToSelection(rows []models.SelectionRow) State {
	state := NewState()
	for _, row := range rows {
		state = state.Toggle(row.CourseCode)
		state = state.SetPriority(row.CourseCode, row.Priority)
	}
	return state
}
