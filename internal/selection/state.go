package selection

import "github.com/klcse/faculty-option-api/internal/models"

// State is the in-progress selection a faculty member is building: which
// course codes are picked (insertion order preserved) and which priority tier
// each carries. Values are immutable; every mutation returns a new State.
// Invariant: every prioritised code is a selected code.
type State struct {
	codes      []string
	priorities map[string]models.Priority
}

// NewState returns an empty selection.
func NewState() State {
	return State{}
}

// Toggle adds the code when absent (order-preserving append) and removes it,
// together with its priority entry, when present.
func (s State) Toggle(code string) State {
	if s.Has(code) {
		next := State{
			codes:      make([]string, 0, len(s.codes)-1),
			priorities: make(map[string]models.Priority, len(s.priorities)),
		}
		for _, c := range s.codes {
			if c != code {
				next.codes = append(next.codes, c)
			}
		}
		for c, p := range s.priorities {
			if c != code {
				next.priorities[c] = p
			}
		}
		return next
	}

	next := s.clone()
	next.codes = append(next.codes, code)
	return next
}

// SetPriority assigns a tier to a selected code, overwriting any previous
// tier. Unselected codes and invalid tiers leave the state unchanged.
func (s State) SetPriority(code string, tier models.Priority) State {
	if !s.Has(code) || !tier.Valid() {
		return s
	}
	next := s.clone()
	next.priorities[code] = tier
	return next
}

// Has reports whether the code is currently selected.
func (s State) Has(code string) bool {
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}

// Selected returns the selected codes in insertion order.
func (s State) Selected() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// PriorityOf returns the tier assigned to a code, if any.
func (s State) PriorityOf(code string) (models.Priority, bool) {
	p, ok := s.priorities[code]
	return p, ok
}

// Len returns the number of selected codes.
func (s State) Len() int {
	return len(s.codes)
}

func (s State) clone() State {
	next := State{
		codes:      make([]string, len(s.codes)),
		priorities: make(map[string]models.Priority, len(s.priorities)),
	}
	copy(next.codes, s.codes)
	for c, p := range s.priorities {
		next.priorities[c] = p
	}
	return next
}
