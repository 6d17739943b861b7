package converter

import "strings"

type Slot string

const (
	SlotActive  Slot = "active"
	SlotPassive Slot = "passive"
)

// State — два поля формы; хранится у вызывающей стороны, сюда передаётся по значению
type State struct {
	Active  string `json:"active_text"`
	Passive string `json:"passive_text"`
}

func (s State) HasContent() bool {
	return strings.TrimSpace(s.Active) != "" || strings.TrimSpace(s.Passive) != ""
}

func (s State) Clear() State {
	return State{}
}

// Source — текст для классификации: сначала active, потом passive
func (s State) Source() (string, bool) {
	if t := strings.TrimSpace(s.Active); t != "" {
		return t, true
	}
	if t := strings.TrimSpace(s.Passive); t != "" {
		return t, true
	}
	return "", false
}

func (s State) Get(slot Slot) string {
	if slot == SlotActive {
		return s.Active
	}
	return s.Passive
}

func (s State) With(slot Slot, text string) State {
	if slot == SlotActive {
		s.Active = text
	} else {
		s.Passive = text
	}
	return s
}
