package converter

type OutcomeKind string

const (
	OutcomeSkipped OutcomeKind = "skipped"
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
)

type Outcome struct {
	Kind          OutcomeKind `json:"status"`
	Request       Request     `json:"request"`
	Target        Slot        `json:"target,omitempty"`
	ConvertedText string      `json:"converted_text,omitempty"`
	Reason        string      `json:"-"`
}

// SlotText — что должно оказаться в целевом поле
func (o Outcome) SlotText() string {
	if o.Kind == OutcomeFailure {
		return ErrorText
	}
	return o.ConvertedText
}

// Apply переносит результат на состояние; меняется только целевое поле
func (o Outcome) Apply(s State) State {
	if o.Kind == OutcomeSkipped {
		return s
	}
	return s.With(o.Target, o.SlotText())
}

type Result struct {
	State   State
	Outcome Outcome
}
