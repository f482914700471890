package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klcse/faculty-option-api/internal/models"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewState().Toggle("CS101").Toggle("CS102")
	assert.Equal(t, []string{"CS101", "CS102"}, s.Selected())

	s = s.Toggle("CS101")
	assert.Equal(t, []string{"CS102"}, s.Selected())
	assert.False(t, s.Has("CS101"))
}

func TestToggleRemoveDropsPriority(t *testing.T) {
	s := NewState().Toggle("CS101").SetPriority("CS101", models.PriorityFirst)

	_, ok := s.PriorityOf("CS101")
	require.True(t, ok)

	s = s.Toggle("CS101")
	_, ok = s.PriorityOf("CS101")
	assert.False(t, ok)

	// Re-adding starts without a priority.
	s = s.Toggle("CS101")
	_, ok = s.PriorityOf("CS101")
	assert.False(t, ok)
}

func TestSetPriorityRequiresSelection(t *testing.T) {
	s := NewState().SetPriority("CS101", models.PriorityFirst)
	_, ok := s.PriorityOf("CS101")
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestSetPriorityRejectsInvalidTier(t *testing.T) {
	s := NewState().Toggle("CS101").SetPriority("CS101", models.Priority(4))
	_, ok := s.PriorityOf("CS101")
	assert.False(t, ok)
}

func TestSetPriorityOverwrites(t *testing.T) {
	s := NewState().Toggle("CS101").
		SetPriority("CS101", models.PriorityThird).
		SetPriority("CS101", models.PriorityFirst)

	tier, ok := s.PriorityOf("CS101")
	require.True(t, ok)
	assert.Equal(t, models.PriorityFirst, tier)
}

func TestStateValuesAreImmutable(t *testing.T) {
	base := NewState().Toggle("CS101")
	withPriority := base.SetPriority("CS101", models.PriorityFirst)

	_, ok := base.PriorityOf("CS101")
	assert.False(t, ok)

	_, ok = withPriority.PriorityOf("CS101")
	assert.True(t, ok)

	added := base.Toggle("CS102")
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, added.Len())
}
