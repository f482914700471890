package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/models"
)

func TestSplitFieldsPlain(t *testing.T) {
	assert.Equal(t, []string{"1", "Core", "Y23", "CS101"}, SplitFields("1,Core,Y23,CS101"))
}

func TestSplitFieldsQuotedComma(t *testing.T) {
	fields := SplitFields(`2,Core,Y23,CS102,"Data Structures, Advanced",ODD`)
	require.Len(t, fields, 6)
	assert.Equal(t, "Data Structures, Advanced", fields[4])
}

func TestSplitFieldsDoubledQuote(t *testing.T) {
	fields := SplitFields(`1,"He said ""hi""",x`)
	require.Len(t, fields, 3)
	assert.Equal(t, `He said "hi"`, fields[1])
}

func TestSplitFieldsUnterminatedQuote(t *testing.T) {
	// An opening quote with no closer swallows the rest of the line into
	// one field instead of failing.
	fields := SplitFields(`1,"no closer,here`)
	require.Len(t, fields, 2)
	assert.Equal(t, "no closer,here", fields[1])
}

func TestSplitFieldsEmptyFields(t *testing.T) {
	assert.Equal(t, []string{"", "", ""}, SplitFields(",,"))
	assert.Equal(t, []string{""}, SplitFields(""))
}

func TestParseCoursesSkipsHeaderAndFiltersCohort(t *testing.T) {
	raw := "S.No,Category,Cohort,Code,Title,Semester\n" +
		"1,Core,Y23,CS101,Algorithms,ODD\n" +
		"2,Core,Y24,CS201,Databases,EVEN\n" +
		"3,Elective, Y23 ,CS301,Compilers,EVEN\n"

	records := ParseCourses(raw, "Y23")
	require.Len(t, records, 2)
	assert.Equal(t, "CS101", records[0].CourseCode)
	assert.Equal(t, models.SemesterOdd, records[0].Semester)
	// Cohort match is exact after trimming surrounding spaces.
	assert.Equal(t, "CS301", records[1].CourseCode)
}

func TestParseCoursesCohortIsCaseSensitive(t *testing.T) {
	raw := "header\n1,Core,y23,CS101,Algorithms,ODD\n"
	assert.Empty(t, ParseCourses(raw, "Y23"))
}

func TestParseCoursesShortRows(t *testing.T) {
	raw := "header\n1,Core,Y23\n"
	records := ParseCourses(raw, "Y23")
	require.Len(t, records, 1)
	assert.Empty(t, records[0].CourseCode)
	assert.Equal(t, models.SemesterOther, records[0].Semester)
}

func TestParseCoursesStripsTitleQuotes(t *testing.T) {
	raw := "header\n" + `1,Core,Y23,CS101,"Algorithms, Part I",odd` + "\n"
	records := ParseCourses(raw, "Y23")
	require.Len(t, records, 1)
	assert.Equal(t, "Algorithms, Part I", records[0].CourseTitle)
	assert.Equal(t, models.SemesterOdd, records[0].Semester)
}

func TestParseBatchesConcatenatesWithoutDeduplication(t *testing.T) {
	y23 := "header\n1,Core,Y23,CS101,Algorithms,ODD\n"
	y24 := "header\n1,Core,Y23,CS101,Algorithms,ODD\n"

	records := ParseBatches([]string{y23, y24}, "Y23")
	require.Len(t, records, 2)
	assert.Equal(t, records[0].CourseCode, records[1].CourseCode)
}

func TestParseCoursesBlankLines(t *testing.T) {
	raw := "header\n\n1,Core,Y23,CS101,Algorithms,ODD\n\n"
	assert.Len(t, ParseCourses(raw, "Y23"), 1)
}
