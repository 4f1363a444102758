package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	reg, err := Builtin()
	require.NoError(t, err)
	s := NewSelector(reg)
	s.SetNotify(nil)
	return s
}

func TestSelectorStartsAtZero(t *testing.T) {
	s := newTestSelector(t)
	assert.Equal(t, 0, s.Current())
	assert.False(t, s.Done())
}

func TestAdvanceSaturatesAtLastScene(t *testing.T) {
	s := newTestSelector(t)
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	assert.Equal(t, 2, s.Current())
}

func TestRetreatSaturatesAtZero(t *testing.T) {
	s := newTestSelector(t)
	s.Advance()
	for i := 0; i < 10; i++ {
		s.Retreat()
	}
	assert.Equal(t, 0, s.Current())
}

func TestThreeAdvancesFromZeroClampToTwo(t *testing.T) {
	s := newTestSelector(t)
	s.Apply(Event{Key: KeyRight, Action: Press})
	s.Apply(Event{Key: KeyRight, Action: Press})
	s.Apply(Event{Key: KeyRight, Action: Press})
	assert.Equal(t, 2, s.Current())
}

func TestThreeRetreatsFromTwoClampToZero(t *testing.T) {
	s := newTestSelector(t)
	s.Advance()
	s.Advance()
	require.Equal(t, 2, s.Current())

	s.Apply(Event{Key: KeyLeft, Action: Press})
	s.Apply(Event{Key: KeyLeft, Action: Press})
	s.Apply(Event{Key: KeyLeft, Action: Press})
	assert.Equal(t, 0, s.Current())
}

func TestRoundTripAwayFromBoundaries(t *testing.T) {
	s := newTestSelector(t)
	s.Advance() // state 1, away from both ends
	s.Advance()
	s.Retreat()
	assert.Equal(t, 1, s.Current())
}

func TestQuitKeepsCursor(t *testing.T) {
	s := newTestSelector(t)
	s.Advance()
	s.Apply(Event{Key: KeyEscape, Action: Press})
	assert.True(t, s.Done())
	assert.Equal(t, 1, s.Current())
}

func TestReleaseAndRepeatAreIgnored(t *testing.T) {
	s := newTestSelector(t)
	s.Apply(Event{Key: KeyRight, Action: Release})
	s.Apply(Event{Key: KeyRight, Action: Repeat})
	s.Apply(Event{Key: KeyEscape, Action: Release})
	assert.Equal(t, 0, s.Current())
	assert.False(t, s.Done())
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	s := newTestSelector(t)
	s.Apply(Event{Key: KeyUnknown, Action: Press})
	assert.Equal(t, 0, s.Current())
	assert.False(t, s.Done())
}

func TestNotifyFiresOnSaturatedNoOp(t *testing.T) {
	s := newTestSelector(t)
	var seen []int
	s.SetNotify(func(scene int) {
		seen = append(seen, scene)
	})
	s.Retreat() // already at 0, still notifies
	s.Advance()
	s.Advance()
	s.Advance() // saturated at 2
	assert.Equal(t, []int{0, 1, 2, 2}, seen)
}

func TestQuitDoesNotNotify(t *testing.T) {
	s := newTestSelector(t)
	called := false
	s.SetNotify(func(int) { called = true })
	s.Quit()
	assert.False(t, called)
}
