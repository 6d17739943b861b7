package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"aux plus ed with agent", "The cake was baked by her", LabelPassive},
		{"trailing by agent", "The ball was thrown by him", LabelPassive},
		{"irregular participle with agent", "The letter was sent by John", LabelPassive},
		{"is plus ed", "The task is completed", LabelPassive},
		{"are plus ed", "The doors are closed now", LabelPassive},
		{"were plus ed", "The parcels were delivered yesterday", LabelPassive},
		{"been plus ed", "It has been tested twice", LabelPassive},
		{"case insensitive", "THE REPORT WAS FINISHED", LabelPassive},
		{"bare ed after aux", "it was ed", LabelPassive},
		{"by false positive", "Everyone stood by me", LabelPassive},
		{"plain active", "She wrote the report", LabelActive},
		{"active scenario", "The dog chased the cat", LabelActive},
		{"ed word without aux", "He enjoyed the seed", LabelActive},
		{"irregular participle without agent", "The book was written", LabelActive},
		{"aux inside another word", "This edited version", LabelActive},
		{"aux suffix of word", "Thesis edited carefully", LabelActive},
		{"by followed by two words", "The song was sung by the choir", LabelActive},
		{"by agent with period", "The song was sung by Anna.", LabelActive},
		{"by agent with trailing space", "The song was sung by Anna ", LabelActive},
		{"ed not at word end", "The car was redder", LabelActive},
		{"empty", "", LabelActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	text := "The window was opened by Tom"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestDirectionFor(t *testing.T) {
	assert.Equal(t, ActiveToPassive, DirectionFor(LabelActive))
	assert.Equal(t, PassiveToActive, DirectionFor(LabelPassive))
}

func TestDirectionValid(t *testing.T) {
	assert.True(t, ActiveToPassive.Valid())
	assert.True(t, PassiveToActive.Valid())
	assert.False(t, Direction("sideways").Valid())
	assert.False(t, Direction("").Valid())
}
