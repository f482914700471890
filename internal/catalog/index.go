package catalog

import (
	"sort"
	"strings"

	"github.com/klcse/faculty-option-api/internal/models"
)

// FallbackCategory labels courses whose category field is blank.
const FallbackCategory = "Other"

// CategoryGroups is a read-only grouping of course records by category.
type CategoryGroups map[string][]models.CourseRecord

// BuildIndex groups courses by category. With a non-nil semester filter the
// input is first restricted to courses whose semester matches
// case-insensitively. The union of all groups equals the (restricted) input
// exactly once; the result is rebuilt on every call, never mutated in place.
func BuildIndex(courses []models.CourseRecord, semesterFilter *models.Semester) CategoryGroups {
	groups := make(CategoryGroups)
	for _, course := range courses {
		if semesterFilter != nil && !semesterMatches(course.Semester, *semesterFilter) {
			continue
		}
		category := course.Category
		if strings.TrimSpace(category) == "" {
			category = FallbackCategory
		}
		groups[category] = append(groups[category], course)
	}
	return groups
}

// Categories enumerates group keys in lexicographic order for determinism.
func (g CategoryGroups) Categories() []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// CountBySemester tallies how many courses each of ODD and EVEN carries.
// OTHER-semester courses count toward neither.
func CountBySemester(courses []models.CourseRecord) map[models.Semester]int {
	counts := map[models.Semester]int{
		models.SemesterOdd:  0,
		models.SemesterEven: 0,
	}
	for _, course := range courses {
		switch course.Semester {
		case models.SemesterOdd, models.SemesterEven:
			counts[course.Semester]++
		}
	}
	return counts
}

// CategoriesOf returns the set of categories present in the given semester.
func CategoriesOf(courses []models.CourseRecord, semester models.Semester) map[string]struct{} {
	categories := make(map[string]struct{})
	for _, course := range courses {
		if !semesterMatches(course.Semester, semester) {
			continue
		}
		category := course.Category
		if strings.TrimSpace(category) == "" {
			category = FallbackCategory
		}
		categories[category] = struct{}{}
	}
	return categories
}

// FindByCode returns the first catalog record carrying the given course code.
func FindByCode(courses []models.CourseRecord, code string) (models.CourseRecord, bool) {
	for _, course := range courses {
		if course.CourseCode == code {
			return course, true
		}
	}
	return models.CourseRecord{}, false
}

func semesterMatches(have, want models.Semester) bool {
	return strings.EqualFold(string(have), string(want))
}
