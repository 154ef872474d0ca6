package domain

// AnswerState distinguishes a system-suggested default from a value the user
// has actually confirmed. A suggested value must never count as answered.
type AnswerState string

const (
	AnswerUnanswered AnswerState = "unanswered"
	AnswerSuggested  AnswerState = "suggested"
	AnswerConfirmed  AnswerState = "confirmed"
)

// BoolAnswer is a tri-state yes/no answer. Used for decisions where the wizard
// pre-populates a suggestion (the loan-needed decision) that the user still
// has to confirm.
type BoolAnswer struct {
	State AnswerState `yaml:"state" json:"state"`
	Value bool        `yaml:"value" json:"value"`
}

// UnansweredBool returns an unanswered tri-state.
func UnansweredBool() BoolAnswer {
	return BoolAnswer{State: AnswerUnanswered}
}

// SuggestedBool returns a system-suggested value awaiting confirmation.
func SuggestedBool(v bool) BoolAnswer {
	return BoolAnswer{State: AnswerSuggested, Value: v}
}

// ConfirmedBool returns a user-confirmed value.
func ConfirmedBool(v bool) BoolAnswer {
	return BoolAnswer{State: AnswerConfirmed, Value: v}
}

// Confirmed reports whether the user has confirmed the answer.
func (a BoolAnswer) Confirmed() bool {
	return a.State == AnswerConfirmed
}

// ConfirmedNo reports whether the user has explicitly answered "no".
func (a BoolAnswer) ConfirmedNo() bool {
	return a.State == AnswerConfirmed && !a.Value
}

// ConfirmedYes reports whether the user has explicitly answered "yes".
func (a BoolAnswer) ConfirmedYes() bool {
	return a.State == AnswerConfirmed && a.Value
}
