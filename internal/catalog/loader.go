package catalog

import (
	"strings"

	"github.com/klcse/faculty-option-api/internal/models"
)

// Column layout of the year-batch catalog sources.
const (
	colSequence = iota
	colCategory
	colCohort
	colCourseCode
	colCourseTitle
	colSemester
)

// SplitFields splits one raw line on commas using a quote-toggle scanner.
// A double quote flips the in-quote state and is consumed; commas inside a
// quoted region are literal content. A doubled quote inside a quoted region
// yields one literal quote, which keeps the scanner symmetric with the
// quoting the report exporter emits.
func SplitFields(line string) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, current.String())

	return fields
}

// ParseCourses parses raw tabular catalog text into course records for one
// cohort. The first line is a header and is skipped. A record is kept only
// when its trimmed cohort field equals targetCohort exactly (case-sensitive).
// Short rows never fail; missing columns become empty fields.
func ParseCourses(rawText, targetCohort string) []models.CourseRecord {
	lines := strings.Split(rawText, "\n")
	records := make([]models.CourseRecord, 0, len(lines))

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		fields := SplitFields(line)
		if strings.TrimSpace(fieldAt(fields, colCohort)) != targetCohort {
			continue
		}

		records = append(records, models.CourseRecord{
			SequenceNo:  fieldAt(fields, colSequence),
			Category:    fieldAt(fields, colCategory),
			Cohort:      fieldAt(fields, colCohort),
			CourseCode:  fieldAt(fields, colCourseCode),
			CourseTitle: stripOuterQuotes(fieldAt(fields, colCourseTitle)),
			Semester:    models.ParseSemester(stripOuterQuotes(fieldAt(fields, colSemester))),
		})
	}

	return records
}

// ParseBatches parses every year-batch source and concatenates the results.
// No de-duplication happens: a course code present in two batches appears
// twice, mirroring the upstream data contract.
func ParseBatches(rawTexts []string, targetCohort string) []models.CourseRecord {
	var all []models.CourseRecord
	for _, raw := range rawTexts {
		all = append(all, ParseCourses(raw, targetCohort)...)
	}
	return all
}

func fieldAt(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// stripOuterQuotes removes at most one leading and one trailing double quote.
func stripOuterQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}
