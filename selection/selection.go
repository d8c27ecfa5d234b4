// Package selection keeps the category and from/to units chosen by a user
// consistent with each other and with the unit catalog.
package selection

import (
	"errors"
	"fmt"

	"github.com/vybdev/uconv/units"
)

// ErrInvalidSelection is returned when a category or unit is not among the
// choices currently on offer.
var ErrInvalidSelection = errors.New("invalid selection")

// State is the selection of a single session. The zero value is unusable,
// construct it with New.
type State struct {
	catalog  *units.Catalog
	category string
	from     string
	to       string
}

// New returns a State with the first category of catalog selected.
func New(catalog *units.Catalog) *State {
	s := &State{catalog: catalog}
	// Catalogs are validated to be non-empty, so this cannot fail.
	_ = s.SelectCategory(catalog.Categories()[0])
	return s
}

// Category returns the current category.
func (s *State) Category() string { return s.category }

// From returns the current source unit.
func (s *State) From() string { return s.from }

// To returns the current target unit.
func (s *State) To() string { return s.to }

// Units returns the units of the current category.
func (s *State) Units() []string {
	u, _ := s.catalog.Units(s.category)
	return u
}

// SelectCategory switches to category. Re-selecting the current category
// is a no-op; any other category resets from/to to its first two units
// (or its only unit twice).
func (s *State) SelectCategory(category string) error {
	list, err := s.catalog.Units(category)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	if category == s.category {
		return nil
	}
	s.category = category
	s.from = list[0]
	s.to = list[0]
	if len(list) > 1 {
		s.to = list[1]
	}
	return nil
}

// SelectFromUnit sets the source unit. The target unit is kept when it is
// still a distinct candidate, otherwise it moves to the first candidate.
func (s *State) SelectFromUnit(unit string) error {
	if !s.catalog.Contains(s.category, unit) {
		return fmt.Errorf("%w: %q is not a %s unit", ErrInvalidSelection, unit, s.category)
	}
	s.from = unit
	s.to = DefaultTo(ToCandidates(s.Units(), unit), unit, s.to)
	return nil
}

// SelectToUnit sets the target unit, which must be one of ToCandidates.
func (s *State) SelectToUnit(unit string) error {
	for _, c := range s.ToCandidates() {
		if c == unit {
			s.to = unit
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not a valid target for %q", ErrInvalidSelection, unit, s.from)
}

// ToCandidates returns the target choices for the current source unit.
func (s *State) ToCandidates() []string {
	return ToCandidates(s.Units(), s.from)
}

// ToCandidates lists every unit except from, followed by from itself as a
// trailing self-conversion slot.
func ToCandidates(list []string, from string) []string {
	out := make([]string, 0, len(list))
	for _, u := range list {
		if u != from {
			out = append(out, u)
		}
	}
	return append(out, from)
}

// DefaultTo picks the preselected target among candidates: prev when it is
// still offered and differs from from, else the first candidate.
func DefaultTo(candidates []string, from, prev string) string {
	if len(candidates) == 0 {
		return ""
	}
	if prev != from || len(candidates) == 1 {
		for _, c := range candidates {
			if c == prev {
				return c
			}
		}
	}
	return candidates[0]
}
