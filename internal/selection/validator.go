package selection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/klcse/faculty-option-api/internal/catalog"
	"github.com/klcse/faculty-option-api/internal/models"
)

// RuleID names one eligibility rule.
type RuleID string

const (
	RuleMissingPriority       RuleID = "MISSING_PRIORITY"
	RuleInsufficientSelection RuleID = "INSUFFICIENT_SELECTION_SCARCE"
	RuleCategoryUncovered     RuleID = "CATEGORY_UNCOVERED"
	RuleNoTopPriority         RuleID = "NO_TOP_PRIORITY_IN_SEMESTER"
)

// Verdict is the single outcome of one validation pass.
type Verdict struct {
	OK         bool   `json:"ok"`
	FailedRule RuleID `json:"failed_rule,omitempty"`
	Message    string `json:"message,omitempty"`
}

func fail(rule RuleID, message string) Verdict {
	return Verdict{FailedRule: rule, Message: message}
}

// Validate decides whether the selection is admissible against the cohort's
// catalog. It is pure and total: rules run in a fixed order, cheapest first,
// and evaluation stops at the first violation so the caller always gets one
// actionable reason.
func Validate(courses []models.CourseRecord, sel State) Verdict {
	// Rule 1: every selected course carries a priority.
	var unprioritised []string
	for _, code := range sel.Selected() {
		if _, ok := sel.PriorityOf(code); !ok {
			unprioritised = append(unprioritised, code)
		}
	}
	if len(unprioritised) > 0 {
		return fail(RuleMissingPriority, fmt.Sprintf(
			"assign a priority (Option 1/Option 2/Option 3) to: %s",
			strings.Join(unprioritised, ", ")))
	}

	// Rule 2: with fewer than three offered courses, every one of them must
	// be selected. Passing the scarce branch makes the per-category quotas
	// trivially satisfied, so the two branches never both apply.
	total := len(courses)
	if total < 3 {
		if sel.Len() != total {
			return fail(RuleInsufficientSelection, fmt.Sprintf(
				"only %d course(s) are offered for this cohort; select all of them", total))
		}
	} else {
		// Rule 3: each category present in a non-empty semester needs at
		// least one selected course.
		for _, semester := range []models.Semester{models.SemesterOdd, models.SemesterEven} {
			if verdict, ok := checkCategoryCoverage(courses, sel, semester); !ok {
				return verdict
			}
		}
	}

	// Rule 4: each non-empty semester needs at least one Option 1 pick.
	for _, semester := range []models.Semester{models.SemesterOdd, models.SemesterEven} {
		if verdict, ok := checkTopPriority(courses, sel, semester); !ok {
			return verdict
		}
	}

	return Verdict{OK: true}
}

// checkCategoryCoverage verifies rule 3 for one semester. A semester with no
// courses is skipped entirely; a category that vanishes after the semester
// filter is never iterated.
func checkCategoryCoverage(courses []models.CourseRecord, sel State, semester models.Semester) (Verdict, bool) {
	if catalog.CountBySemester(courses)[semester] == 0 {
		return Verdict{}, true
	}

	categorySet := catalog.CategoriesOf(courses, semester)
	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		if !coversCategory(courses, sel, semester, category) {
			return fail(RuleCategoryUncovered, fmt.Sprintf(
				"select at least one %q course in the %s semester", category, semester)), false
		}
	}
	return Verdict{}, true
}

func coversCategory(courses []models.CourseRecord, sel State, semester models.Semester, category string) bool {
	for _, code := range sel.Selected() {
		course, ok := catalog.FindByCode(courses, code)
		if !ok || course.Semester != semester {
			continue
		}
		courseCategory := course.Category
		if strings.TrimSpace(courseCategory) == "" {
			courseCategory = catalog.FallbackCategory
		}
		if courseCategory == category {
			return true
		}
	}
	return false
}

// checkTopPriority verifies rule 4 for one semester. A semester absent from
// the catalog is vacuously exempt.
func checkTopPriority(courses []models.CourseRecord, sel State, semester models.Semester) (Verdict, bool) {
	if catalog.CountBySemester(courses)[semester] == 0 {
		return Verdict{}, true
	}

	for _, code := range sel.Selected() {
		course, ok := catalog.FindByCode(courses, code)
		if !ok || course.Semester != semester {
			continue
		}
		if tier, ok := sel.PriorityOf(code); ok && tier == models.PriorityFirst {
			return Verdict{}, true
		}
	}

	return fail(RuleNoTopPriority, fmt.Sprintf(
		"select at least one Option 1 course in the %s semester", semester)), false
}
