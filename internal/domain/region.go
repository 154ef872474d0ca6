package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Region identifies one of the eight Australian jurisdictions, each with its
// own duty, concession and grant rules.
type Region string

const (
	RegionNSW Region = "NSW"
	RegionVIC Region = "VIC"
	RegionQLD Region = "QLD"
	RegionWA  Region = "WA"
	RegionSA  Region = "SA"
	RegionTAS Region = "TAS"
	RegionACT Region = "ACT"
	RegionNT  Region = "NT"
)

// ErrUnknownRegion is returned when a region code has no rule table.
var ErrUnknownRegion = errors.New("unknown region")

// AllRegions returns the eight region codes in display order.
func AllRegions() []Region {
	return []Region{
		RegionNSW, RegionVIC, RegionQLD, RegionWA,
		RegionSA, RegionTAS, RegionACT, RegionNT,
	}
}

// ParseRegion normalises a region code string.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllRegions() {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// Valid reports whether the region has a rule table.
func (r Region) Valid() bool {
	_, err := ParseRegion(string(r))
	return err == nil
}

// FullName returns the jurisdiction's long name.
func (r Region) FullName() string {
	switch r {
	case RegionNSW:
		return "New South Wales"
	case RegionVIC:
		return "Victoria"
	case RegionQLD:
		return "Queensland"
	case RegionWA:
		return "Western Australia"
	case RegionSA:
		return "South Australia"
	case RegionTAS:
		return "Tasmania"
	case RegionACT:
		return "Australian Capital Territory"
	case RegionNT:
		return "Northern Territory"
	default:
		return string(r)
	}
}
