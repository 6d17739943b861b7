package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_HasContent(t *testing.T) {
	assert.False(t, State{}.HasContent())
	assert.False(t, State{Active: "   ", Passive: "\n\t"}.HasContent())
	assert.True(t, State{Active: " a "}.HasContent())
	assert.True(t, State{Passive: "b"}.HasContent())
}

func TestState_Clear(t *testing.T) {
	s := State{Active: "The dog chased the cat", Passive: "The cat was chased by the dog"}

	once := s.Clear()
	twice := once.Clear()

	assert.Equal(t, once, twice)
	assert.Equal(t, "", once.Active)
	assert.Equal(t, "", once.Passive)
	assert.False(t, once.HasContent())
}

func TestState_Source(t *testing.T) {
	src, ok := State{Active: "  first  ", Passive: "second"}.Source()
	assert.True(t, ok)
	assert.Equal(t, "first", src)

	src, ok = State{Active: "   ", Passive: " second "}.Source()
	assert.True(t, ok)
	assert.Equal(t, "second", src)

	_, ok = State{Active: " ", Passive: ""}.Source()
	assert.False(t, ok)
}

func TestState_With(t *testing.T) {
	s := State{Active: "a", Passive: "p"}

	assert.Equal(t, State{Active: "x", Passive: "p"}, s.With(SlotActive, "x"))
	assert.Equal(t, State{Active: "a", Passive: "x"}, s.With(SlotPassive, "x"))
	assert.Equal(t, "a", s.Get(SlotActive))
	assert.Equal(t, "p", s.Get(SlotPassive))
}

func TestOutcome_Apply(t *testing.T) {
	s := State{Active: "edited while loading", Passive: "old"}

	ok := Outcome{Kind: OutcomeSuccess, Target: SlotPassive, ConvertedText: "new"}
	assert.Equal(t, State{Active: "edited while loading", Passive: "new"}, ok.Apply(s))

	failed := Outcome{Kind: OutcomeFailure, Target: SlotActive, Reason: "boom"}
	assert.Equal(t, State{Active: ErrorText, Passive: "old"}, failed.Apply(s))

	assert.Equal(t, s, Outcome{Kind: OutcomeSkipped}.Apply(s))
}
