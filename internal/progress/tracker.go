// Package progress derives wizard completion from the branching resolver's
// required-field set. A field only counts as answered once the user has
// moved past the step that asks it; a pre-populated or suggested value shown
// at the current step has not been confirmed and does not count.
package progress

import (
	"github.com/stampcalc/stampcalc/internal/branching"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// Report is the tracker's output: the required path, how much of it has
// been answered, and the rounded completion percentage.
type Report struct {
	Required    []branching.FieldRef `json:"required"`
	Outstanding []branching.FieldKey `json:"outstanding"`
	Answered    int                  `json:"answeredCount"`
	Total       int                  `json:"totalCount"`
	Percent     int                  `json:"percent"`
}

// Track walks the required fields for a profile at a position and reports
// completion. Pure; call it again after every mutation.
func Track(p domain.Profile, pos domain.WizardPosition) Report {
	required := branching.RequiredFields(p, pos)

	report := Report{
		Required: required,
		Total:    len(required),
	}
	for _, f := range required {
		if Answered(f, pos) {
			report.Answered++
		} else {
			report.Outstanding = append(report.Outstanding, f.Key)
		}
	}
	report.Percent = percent(report.Answered, report.Total)
	return report
}

// Answered reports whether a single required field has been confirmed: its
// section is complete, or the wizard has moved strictly past the step that
// asks it.
func Answered(f branching.FieldRef, pos domain.WizardPosition) bool {
	return pos.PastStep(f.Section, f.Step)
}

// percent rounds to the nearest integer. Zero required fields yields zero;
// that cannot happen with a valid region but is guarded anyway.
func percent(answered, total int) int {
	if total == 0 {
		return 0
	}
	return (answered*100 + total/2) / total
}
