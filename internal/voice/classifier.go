package voice

import "regexp"

type Label string

const (
	LabelActive  Label = "active"
	LabelPassive Label = "passive"
)

type Direction string

const (
	ActiveToPassive Direction = "active_to_passive"
	PassiveToActive Direction = "passive_to_active"
)

// passiveIndicators — достаточно одного совпадения
var passiveIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bis\s+\w*ed\b`),   // "is completed"
	regexp.MustCompile(`(?i)\bwas\s+\w*ed\b`),  // "was painted"
	regexp.MustCompile(`(?i)\bare\s+\w*ed\b`),  // "are closed"
	regexp.MustCompile(`(?i)\bwere\s+\w*ed\b`), // "were delivered"
	regexp.MustCompile(`(?i)\bbeen\s+\w*ed\b`), // "been tested"
	regexp.MustCompile(`(?i)\bby\s+\w+$`),      // заканчивается на "by someone"
}

// Classify — эвристика, не парсер: "was written" без "by ..." останется active.
func Classify(text string) Label {
	for _, re := range passiveIndicators {
		if re.MatchString(text) {
			return LabelPassive
		}
	}
	return LabelActive
}

func DirectionFor(label Label) Direction {
	if label == LabelPassive {
		return PassiveToActive
	}
	return ActiveToPassive
}

func (d Direction) Valid() bool {
	return d == ActiveToPassive || d == PassiveToActive
}
