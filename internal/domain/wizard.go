package domain

// SectionID names one of the four wizard sections.
type SectionID string

const (
	SectionProperty SectionID = "property"
	SectionBuyer    SectionID = "buyer"
	SectionLoan     SectionID = "loan"
	SectionSeller   SectionID = "seller"
)

// AllSections returns the sections in wizard order.
func AllSections() []SectionID {
	return []SectionID{SectionProperty, SectionBuyer, SectionLoan, SectionSeller}
}

// SectionStatus is the per-section state machine.
type SectionStatus string

const (
	SectionNotStarted SectionStatus = "not_started"
	SectionInProgress SectionStatus = "in_progress"
	SectionComplete   SectionStatus = "complete"
)

// SectionState tracks where the user is within one section.
type SectionState struct {
	Status SectionStatus `yaml:"status" json:"status"`
	Step   int           `yaml:"step" json:"step"`
}

// WizardPosition is the user's position across all four sections plus the two
// navigation flags that gate whether the loan/seller sections are part of the
// required path at all.
type WizardPosition struct {
	Sections             map[SectionID]SectionState `yaml:"sections" json:"sections"`
	LoanSectionVisible   bool                       `yaml:"loan_section_visible" json:"loanSectionVisible"`
	SellerSectionVisible bool                       `yaml:"seller_section_visible" json:"sellerSectionVisible"`
}

// NewWizardPosition returns a fresh position with every section not started
// and both optional sections on the path.
func NewWizardPosition() WizardPosition {
	sections := make(map[SectionID]SectionState, 4)
	for _, id := range AllSections() {
		sections[id] = SectionState{Status: SectionNotStarted}
	}
	return WizardPosition{
		Sections:             sections,
		LoanSectionVisible:   true,
		SellerSectionVisible: true,
	}
}

// State returns the section's state, defaulting to not started.
func (w WizardPosition) State(id SectionID) SectionState {
	if s, ok := w.Sections[id]; ok {
		return s
	}
	return SectionState{Status: SectionNotStarted}
}

// SectionComplete reports whether the section has been marked complete.
func (w WizardPosition) SectionComplete(id SectionID) bool {
	return w.State(id).Status == SectionComplete
}

// PastStep reports whether the user has moved strictly beyond the given step
// of a section. A field asked at that step only counts as answered once this
// is true; a value merely displayed at the current step has not been
// confirmed yet.
func (w WizardPosition) PastStep(id SectionID, step int) bool {
	s := w.State(id)
	if s.Status == SectionComplete {
		return true
	}
	return s.Status == SectionInProgress && s.Step > step
}

// WithSection returns a copy with one section's state replaced. Positions are
// treated as immutable snapshots, matching the rest of the core.
func (w WizardPosition) WithSection(id SectionID, state SectionState) WizardPosition {
	sections := make(map[SectionID]SectionState, len(w.Sections))
	for k, v := range w.Sections {
		sections[k] = v
	}
	sections[id] = state
	w.Sections = sections
	return w
}
