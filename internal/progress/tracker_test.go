package progress

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stampcalc/stampcalc/internal/branching"
	"github.com/stampcalc/stampcalc/internal/domain"
)

func actProfile() domain.Profile {
	return domain.Profile{
		Property: domain.PropertyProfile{
			Region:      domain.RegionACT,
			Category:    domain.CategoryHouse,
			Acquisition: domain.AcquisitionExisting,
			Price:       decimal.NewFromInt(650_000),
		},
	}
}

func TestTrack_NothingAnsweredAtStart(t *testing.T) {
	report := Track(actProfile(), domain.NewWizardPosition())

	if report.Answered != 0 {
		t.Errorf("expected 0 answered at start, got %d", report.Answered)
	}
	if report.Percent != 0 {
		t.Errorf("expected 0%%, got %d%%", report.Percent)
	}
	if len(report.Outstanding) != report.Total {
		t.Errorf("outstanding (%d) should equal total (%d)", len(report.Outstanding), report.Total)
	}
}

func TestTrack_StalePensionCardNotCounted(t *testing.T) {
	// ACT buyer section at step 5: prior-ownership (step 4) just answered,
	// the pension-card question (step 6 in the ACT) not yet reached. A
	// stale pension-card value from a previous session must not count.
	p := actProfile()
	p.Buyer.HasPensionCard = true // stale resumed value

	pos := domain.NewWizardPosition().
		WithSection(domain.SectionProperty, domain.SectionState{Status: domain.SectionComplete}).
		WithSection(domain.SectionBuyer, domain.SectionState{Status: domain.SectionInProgress, Step: 5})

	report := Track(p, pos)

	outstanding := make(map[branching.FieldKey]bool)
	for _, key := range report.Outstanding {
		outstanding[key] = true
	}
	if !outstanding[branching.FieldPensionCard] {
		t.Error("pension card should still be outstanding at buyer step 5")
	}
	if outstanding[branching.FieldPriorOwnership] {
		t.Error("prior ownership (step 4) should count as answered at step 5")
	}
	if outstanding[branching.FieldFirstHome] {
		t.Error("first-home question (step 3) should count as answered at step 5")
	}
}

func TestTrack_PercentMonotonicThroughSection(t *testing.T) {
	p := actProfile()
	prev := -1

	for step := 0; step <= 10; step++ {
		pos := domain.NewWizardPosition().
			WithSection(domain.SectionProperty, domain.SectionState{Status: domain.SectionComplete}).
			WithSection(domain.SectionBuyer, domain.SectionState{Status: domain.SectionInProgress, Step: step})
		report := Track(p, pos)
		if report.Percent < prev {
			t.Errorf("percent fell from %d to %d at buyer step %d", prev, report.Percent, step)
		}
		prev = report.Percent
	}
}

func TestTrack_CompleteSectionAnswersItsFields(t *testing.T) {
	p := actProfile()
	pos := domain.NewWizardPosition()
	for _, id := range domain.AllSections() {
		pos = pos.WithSection(id, domain.SectionState{Status: domain.SectionComplete})
	}
	// With every section complete and a confirmed loan answer the whole
	// path is answered.
	p.Buyer.NeedsLoan = domain.ConfirmedBool(true)

	report := Track(p, pos)
	if report.Percent != 100 {
		t.Errorf("expected 100%%, got %d%% (outstanding: %v)", report.Percent, report.Outstanding)
	}
	if report.Answered != report.Total {
		t.Errorf("answered %d != total %d", report.Answered, report.Total)
	}
}

func TestTrack_SuggestedLoanAnswerKeepsLoanFieldsRequired(t *testing.T) {
	// The wizard suggests "no loan" but the user has not confirmed it; the
	// loan questions stay on the path and the percentage reflects them.
	p := actProfile()
	p.Buyer.NeedsLoan = domain.SuggestedBool(false)

	pos := domain.NewWizardPosition().
		WithSection(domain.SectionProperty, domain.SectionState{Status: domain.SectionComplete}).
		WithSection(domain.SectionBuyer, domain.SectionState{Status: domain.SectionComplete})

	report := Track(p, pos)
	found := false
	for _, f := range report.Required {
		if f.Key == branching.FieldDeposit {
			found = true
		}
	}
	if !found {
		t.Error("loan questions should remain required while the no-loan answer is only suggested")
	}
}

func TestTrack_ConfirmedNoLoanShrinksPathAndRaisesPercent(t *testing.T) {
	p := actProfile()
	pos := domain.NewWizardPosition().
		WithSection(domain.SectionProperty, domain.SectionState{Status: domain.SectionComplete}).
		WithSection(domain.SectionBuyer, domain.SectionState{Status: domain.SectionComplete})

	p.Buyer.NeedsLoan = domain.SuggestedBool(false)
	before := Track(p, pos)

	p.Buyer.NeedsLoan = domain.ConfirmedBool(false)
	after := Track(p, pos)

	if after.Total >= before.Total {
		t.Errorf("confirming no-loan should shrink the required path: %d -> %d", before.Total, after.Total)
	}
	if after.Percent < before.Percent {
		t.Errorf("percent should not fall when the path shrinks: %d -> %d", before.Percent, after.Percent)
	}
}

func TestPercentRounding(t *testing.T) {
	tests := []struct {
		answered, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 10, 50},
		{10, 10, 100},
	}
	for _, tt := range tests {
		if got := percent(tt.answered, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %d, want %d", tt.answered, tt.total, got, tt.want)
		}
	}
}
