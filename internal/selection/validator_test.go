package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/models"
)

func catalogFixture() []models.CourseRecord {
	return []models.CourseRecord{
		{CourseCode: "CS101", Category: "Core", Semester: models.SemesterOdd},
		{CourseCode: "CS102", Category: "Elective", Semester: models.SemesterOdd},
		{CourseCode: "CS201", Category: "Core", Semester: models.SemesterEven},
		{CourseCode: "CS202", Category: "Elective", Semester: models.SemesterEven},
	}
}

func pick(s State, code string, tier models.Priority) State {
	return s.Toggle(code).SetPriority(code, tier)
}

func fullSelection() State {
	s := NewState()
	s = pick(s, "CS101", models.PriorityFirst)
	s = pick(s, "CS102", models.PrioritySecond)
	s = pick(s, "CS201", models.PriorityFirst)
	s = pick(s, "CS202", models.PriorityThird)
	return s
}

func TestValidateAcceptsFullCoverage(t *testing.T) {
	verdict := Validate(catalogFixture(), fullSelection())
	assert.True(t, verdict.OK)
	assert.Empty(t, verdict.FailedRule)
}

func TestValidateMissingPriorityFiresFirst(t *testing.T) {
	// No priority anywhere and no coverage either: rule 1 must win.
	s := NewState().Toggle("CS101")
	verdict := Validate(catalogFixture(), s)

	require.False(t, verdict.OK)
	assert.Equal(t, RuleMissingPriority, verdict.FailedRule)
	assert.Contains(t, verdict.Message, "CS101")
}

func TestValidateScarceCatalogRequiresAll(t *testing.T) {
	scarce := []models.CourseRecord{
		{CourseCode: "CS101", Category: "Core", Semester: models.SemesterOdd},
		{CourseCode: "CS201", Category: "Core", Semester: models.SemesterEven},
	}

	s := pick(NewState(), "CS101", models.PriorityFirst)
	verdict := Validate(scarce, s)
	require.False(t, verdict.OK)
	assert.Equal(t, RuleInsufficientSelection, verdict.FailedRule)

	s = pick(s, "CS201", models.PriorityFirst)
	verdict = Validate(scarce, s)
	assert.True(t, verdict.OK)
}

func TestValidateScarceCatalogStillNeedsTopPriority(t *testing.T) {
	scarce := []models.CourseRecord{
		{CourseCode: "CS101", Category: "Core", Semester: models.SemesterOdd},
		{CourseCode: "CS201", Category: "Core", Semester: models.SemesterEven},
	}

	s := pick(NewState(), "CS101", models.PriorityFirst)
	s = pick(s, "CS201", models.PrioritySecond)

	verdict := Validate(scarce, s)
	require.False(t, verdict.OK)
	assert.Equal(t, RuleNoTopPriority, verdict.FailedRule)
	assert.Contains(t, verdict.Message, string(models.SemesterEven))
}

func TestValidateCategoryUncovered(t *testing.T) {
	s := NewState()
	s = pick(s, "CS101", models.PriorityFirst)
	s = pick(s, "CS102", models.PrioritySecond)
	s = pick(s, "CS201", models.PriorityFirst)
	// CS202 (EVEN Elective) left out.

	verdict := Validate(catalogFixture(), s)
	require.False(t, verdict.OK)
	assert.Equal(t, RuleCategoryUncovered, verdict.FailedRule)
	assert.Contains(t, verdict.Message, "Elective")
	assert.Contains(t, verdict.Message, string(models.SemesterEven))
}

func TestValidateNoTopPriorityInSemester(t *testing.T) {
	s := NewState()
	s = pick(s, "CS101", models.PriorityFirst)
	s = pick(s, "CS102", models.PrioritySecond)
	s = pick(s, "CS201", models.PrioritySecond)
	s = pick(s, "CS202", models.PriorityThird)

	verdict := Validate(catalogFixture(), s)
	require.False(t, verdict.OK)
	assert.Equal(t, RuleNoTopPriority, verdict.FailedRule)
	assert.Contains(t, verdict.Message, string(models.SemesterEven))
}

func TestValidateEmptySemesterIsExempt(t *testing.T) {
	oddOnly := []models.CourseRecord{
		{CourseCode: "CS101", Category: "Core", Semester: models.SemesterOdd},
		{CourseCode: "CS102", Category: "Core", Semester: models.SemesterOdd},
		{CourseCode: "CS103", Category: "Elective", Semester: models.SemesterOdd},
	}

	s := NewState()
	s = pick(s, "CS101", models.PriorityFirst)
	s = pick(s, "CS103", models.PrioritySecond)

	verdict := Validate(oddOnly, s)
	assert.True(t, verdict.OK)
}

func TestValidateBlankCategoryUsesFallbackGroup(t *testing.T) {
	courses := []models.CourseRecord{
		{CourseCode: "CS101", Category: "Core", Semester: models.SemesterOdd},
		{CourseCode: "CS102", Category: "", Semester: models.SemesterOdd},
		{CourseCode: "CS103", Category: "Core", Semester: models.SemesterOdd},
	}

	s := pick(NewState(), "CS101", models.PriorityFirst)
	verdict := Validate(courses, s)
	require.False(t, verdict.OK)
	assert.Equal(t, RuleCategoryUncovered, verdict.FailedRule)

	s = pick(s, "CS102", models.PrioritySecond)
	verdict = Validate(courses, s)
	assert.True(t, verdict.OK)
}

func TestValidateEmptySelectionOnEmptyCatalog(t *testing.T) {
	verdict := Validate(nil, NewState())
	assert.True(t, verdict.OK)
}
