// Package filter narrows a set of daylily records by a filter specification.
//
// A Spec holds one criterion per filterable dimension. A criterion that is
// unset is inactive and does not filter; Default returns the spec with every
// criterion inactive. Apply combines the active criteria with logical AND.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/user/daylily/internal/model"
)

// MatchMode selects how a text criterion compares.
type MatchMode int

const (
	// Partial matches a case-insensitive substring.
	Partial MatchMode = iota
	// Exact matches the whole value, case-insensitively.
	Exact
)

// String returns the flag spelling of the mode.
func (m MatchMode) String() string {
	if m == Exact {
		return "exact"
	}
	return "partial"
}

// ParseMatchMode parses "exact" or "partial" (case-insensitive).
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "partial":
		return Partial, nil
	case "exact":
		return Exact, nil
	}
	return Partial, fmt.Errorf("invalid match mode %q (expected exact or partial)", s)
}

// Text is a text criterion with its own match mode.
type Text struct {
	Query Optional[string]
	Mode  MatchMode
}

// Active reports whether the criterion filters. An empty query is inactive.
func (t Text) Active() bool {
	q, ok := t.Query.Get()
	return ok && q != ""
}

// SetText sets the query; an empty string clears it.
func (t *Text) SetText(q string) {
	if q == "" {
		t.Query = None[string]()
		return
	}
	t.Query = Some(q)
}

// IntRange is an inclusive integer range; either bound may be open.
type IntRange struct {
	Start Optional[int]
	End   Optional[int]
}

// Active reports whether either bound is set.
func (r IntRange) Active() bool {
	return r.Start.IsSet() || r.End.IsSet()
}

// FloatRange is an inclusive numeric range; either bound may be open.
type FloatRange struct {
	Min Optional[float64]
	Max Optional[float64]
}

// Active reports whether either bound is set.
func (r FloatRange) Active() bool {
	return r.Min.IsSet() || r.Max.IsSet()
}

// Spec is the full set of user-chosen criteria.
type Spec struct {
	Name         Text
	Hybridizer   Text
	Year         IntRange
	Ploidy       Optional[string]
	BloomSize    FloatRange
	ScapeHeight  FloatRange
	Branches     FloatRange
	BudCount     FloatRange
	BloomSeasons []string
	Rebloom      bool
	FoliageType  Optional[string]
	Expr         *Expression
}

// Default returns the spec that shows every record.
func Default() Spec {
	return Spec{}
}

// Criterion names, in the order Active reports them.
const (
	CriterionName        = "name"
	CriterionHybridizer  = "hybridizer"
	CriterionYear        = "year"
	CriterionPloidy      = "ploidy"
	CriterionBloomSize   = "bloom size"
	CriterionScapeHeight = "scape height"
	CriterionBranches    = "branches"
	CriterionBudCount    = "bud count"
	CriterionBloomSeason = "bloom season"
	CriterionRebloom     = "rebloom"
	CriterionFoliageType = "foliage type"
	CriterionExpr        = "expression"
)

// Active returns the names of the active criteria.
func (s Spec) Active() []string {
	var names []string
	add := func(active bool, name string) {
		if active {
			names = append(names, name)
		}
	}
	add(s.Name.Active(), CriterionName)
	add(s.Hybridizer.Active(), CriterionHybridizer)
	add(s.Year.Active(), CriterionYear)
	add(s.Ploidy.IsSet(), CriterionPloidy)
	add(s.BloomSize.Active(), CriterionBloomSize)
	add(s.ScapeHeight.Active(), CriterionScapeHeight)
	add(s.Branches.Active(), CriterionBranches)
	add(s.BudCount.Active(), CriterionBudCount)
	add(len(s.BloomSeasons) > 0, CriterionBloomSeason)
	add(s.Rebloom, CriterionRebloom)
	add(s.FoliageType.IsSet(), CriterionFoliageType)
	add(s.Expr != nil, CriterionExpr)
	return names
}

// IsDefault reports whether no criterion is active.
func (s Spec) IsDefault() bool {
	return len(s.Active()) == 0
}

// Clone returns a copy that shares no mutable state with s.
func (s Spec) Clone() Spec {
	c := s
	c.BloomSeasons = slices.Clone(s.BloomSeasons)
	return c
}

// TogglePloidy selects v, or clears the ploidy criterion when v is
// already selected.
func (s *Spec) TogglePloidy(v string) {
	s.Ploidy = toggle(s.Ploidy, v)
}

// ToggleFoliage selects v, or clears the foliage criterion when v is
// already selected.
func (s *Spec) ToggleFoliage(v string) {
	s.FoliageType = toggle(s.FoliageType, v)
}

func toggle(cur Optional[string], v string) Optional[string] {
	if got, ok := cur.Get(); (ok && got == v) || v == "" {
		return None[string]()
	}
	return Some(v)
}

// ToggleSeason adds season to the selection, or removes it when present.
func (s *Spec) ToggleSeason(season string) {
	if i := slices.Index(s.BloomSeasons, season); i >= 0 {
		s.BloomSeasons = slices.Delete(slices.Clone(s.BloomSeasons), i, i+1)
		return
	}
	s.BloomSeasons = append(slices.Clone(s.BloomSeasons), season)
}

// ParseIntRange builds an IntRange from user text. Blank bounds are open.
func ParseIntRange(start, end string) (IntRange, error) {
	var r IntRange
	var err error
	if r.Start, err = parseIntBound(start); err != nil {
		return IntRange{}, err
	}
	if r.End, err = parseIntBound(end); err != nil {
		return IntRange{}, err
	}
	return r, nil
}

// ParseFloatRange builds a FloatRange from user text. Blank bounds are open.
func ParseFloatRange(lo, hi string) (FloatRange, error) {
	var r FloatRange
	var err error
	if r.Min, err = parseFloatBound(lo); err != nil {
		return FloatRange{}, err
	}
	if r.Max, err = parseFloatBound(hi); err != nil {
		return FloatRange{}, err
	}
	return r, nil
}

func parseIntBound(s string) (Optional[int], error) {
	if strings.TrimSpace(s) == "" {
		return None[int](), nil
	}
	v, ok := model.ParseLeadingInt(s)
	if !ok {
		return None[int](), fmt.Errorf("%w: %q", model.ErrInvalidBound, s)
	}
	return Some(v), nil
}

func parseFloatBound(s string) (Optional[float64], error) {
	if strings.TrimSpace(s) == "" {
		return None[float64](), nil
	}
	v, ok := model.ParseLeadingFloat(s)
	if !ok {
		return None[float64](), fmt.Errorf("%w: %q", model.ErrInvalidBound, s)
	}
	return Some(v), nil
}
