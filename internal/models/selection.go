package models

import (
	"fmt"
	"strings"
)

// Priority is a faculty's ranked preference tier for a selected course.
// Tier 1 is the highest. The numeric tag is independent of any display label.
type Priority int

const (
	PriorityFirst  Priority = 1
	PrioritySecond Priority = 2
	PriorityThird  Priority = 3
)

// Valid reports whether p is one of the three known tiers.
func (p Priority) Valid() bool {
	return p >= PriorityFirst && p <= PriorityThird
}

// Label renders the tier the way the selection screen displays it.
func (p Priority) Label() string {
	return fmt.Sprintf("Option %d", int(p))
}

// ParsePriority accepts either a bare tier number or a display label.
func ParsePriority(raw string) (Priority, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.ToUpper(s), "OPTION")
	s = strings.TrimSpace(s)
	switch s {
	case "1":
		return PriorityFirst, true
	case "2":
		return PrioritySecond, true
	case "3":
		return PriorityThird, true
	default:
		return 0, false
	}
}
