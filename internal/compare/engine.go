// Package compare runs one buyer/property profile through every region's
// rule table and ranks the outcomes, answering "what would this purchase
// cost elsewhere".
package compare

import (
	"fmt"
	"sort"

	"github.com/stampcalc/stampcalc/internal/calculation"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// Result is one region's outcome for the compared profile.
type Result struct {
	Region    domain.Region         `json:"region"`
	Breakdown *domain.CostBreakdown `json:"breakdown"`
}

// ComparisonSet is the ranked cross-region comparison.
type ComparisonSet struct {
	BaseRegion domain.Region `json:"baseRegion"`
	Results    []Result      `json:"results"`
}

// Engine orchestrates cross-region comparison.
type Engine struct {
	CalcEngine *calculation.Engine
}

// NewEngine creates a comparison engine.
func NewEngine(calcEngine *calculation.Engine) *Engine {
	return &Engine{CalcEngine: calcEngine}
}

// Compare evaluates the profile in every region, ranked by total ascending.
// Region-specific inputs the profile does not carry (the Victorian locality
// flag, the ACT means-test answers) keep their zero values, so foreign
// regions are compared on the information actually available.
func (e *Engine) Compare(p domain.Profile, pos domain.WizardPosition) (*ComparisonSet, error) {
	set := &ComparisonSet{BaseRegion: p.Property.Region}

	for _, region := range domain.AllRegions() {
		candidate := p
		candidate.Property.Region = region

		cb, err := e.CalcEngine.Breakdown(candidate, pos)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate %s: %w", region, err)
		}
		set.Results = append(set.Results, Result{Region: region, Breakdown: cb})
	}

	sort.SliceStable(set.Results, func(i, j int) bool {
		return set.Results[i].Breakdown.Total.LessThan(set.Results[j].Breakdown.Total)
	})
	return set, nil
}

// BaseResult returns the entry for the profile's own region.
func (cs *ComparisonSet) BaseResult() *Result {
	for i := range cs.Results {
		if cs.Results[i].Region == cs.BaseRegion {
			return &cs.Results[i]
		}
	}
	return nil
}
