package filter

import (
	"slices"
	"strings"

	"github.com/user/daylily/internal/model"
)

// predicate reports whether a record satisfies one criterion.
type predicate func(d *model.Daylily) bool

// Apply returns the records that satisfy every active criterion of spec, in
// their original order. The input slice and records are not modified; the
// result is always a new slice.
func Apply(records []*model.Daylily, spec Spec) []*model.Daylily {
	preds := spec.predicates()
	result := make([]*model.Daylily, 0, len(records))
	for _, d := range records {
		if matchesAll(d, preds) {
			result = append(result, d)
		}
	}
	return result
}

// Matches reports whether a single record satisfies spec.
func (s Spec) Matches(d *model.Daylily) bool {
	return matchesAll(d, s.predicates())
}

func matchesAll(d *model.Daylily, preds []predicate) bool {
	for _, p := range preds {
		if !p(d) {
			return false
		}
	}
	return true
}

// predicates builds one predicate per active criterion.
func (s Spec) predicates() []predicate {
	var preds []predicate

	if s.Name.Active() {
		preds = append(preds, textPredicate(s.Name, func(d *model.Daylily) string { return d.Name }))
	}
	if s.Hybridizer.Active() {
		preds = append(preds, textPredicate(s.Hybridizer, func(d *model.Daylily) string { return d.Hybridizer }))
	}
	if s.Year.Active() {
		preds = append(preds, yearPredicate(s.Year))
	}
	if v, ok := s.Ploidy.Get(); ok {
		preds = append(preds, func(d *model.Daylily) bool { return d.Ploidy == v })
	}
	if s.BloomSize.Active() {
		preds = append(preds, rangePredicate(s.BloomSize, func(d *model.Daylily) string { return d.BloomSize }))
	}
	if s.ScapeHeight.Active() {
		preds = append(preds, rangePredicate(s.ScapeHeight, func(d *model.Daylily) string { return d.ScapeHeight }))
	}
	if s.Branches.Active() {
		preds = append(preds, rangePredicate(s.Branches, func(d *model.Daylily) string { return d.Branches }))
	}
	if s.BudCount.Active() {
		preds = append(preds, rangePredicate(s.BudCount, func(d *model.Daylily) string { return d.BudCount }))
	}
	if len(s.BloomSeasons) > 0 {
		seasons := slices.Clone(s.BloomSeasons)
		preds = append(preds, func(d *model.Daylily) bool { return slices.Contains(seasons, d.BloomSeason) })
	}
	if s.Rebloom {
		preds = append(preds, IsRebloomer)
	}
	if v, ok := s.FoliageType.Get(); ok {
		preds = append(preds, func(d *model.Daylily) bool { return d.FoliageType == v })
	}
	if s.Expr != nil {
		preds = append(preds, s.Expr.Match)
	}

	return preds
}

func textPredicate(t Text, field func(*model.Daylily) string) predicate {
	q, _ := t.Query.Get()
	q = strings.ToLower(q)
	if t.Mode == Exact {
		return func(d *model.Daylily) bool { return strings.ToLower(field(d)) == q }
	}
	return func(d *model.Daylily) bool { return strings.Contains(strings.ToLower(field(d)), q) }
}

func yearPredicate(r IntRange) predicate {
	return func(d *model.Daylily) bool {
		year, ok := model.ParseLeadingInt(d.Year)
		if !ok {
			return false
		}
		if start, set := r.Start.Get(); set && year < start {
			return false
		}
		if end, set := r.End.Get(); set && year > end {
			return false
		}
		return true
	}
}

// rangePredicate excludes records whose field does not parse as a number.
func rangePredicate(r FloatRange, field func(*model.Daylily) string) predicate {
	return func(d *model.Daylily) bool {
		v, ok := model.ParseLeadingFloat(field(d))
		if !ok {
			return false
		}
		if lo, set := r.Min.Get(); set && v < lo {
			return false
		}
		if hi, set := r.Max.Get(); set && v > hi {
			return false
		}
		return true
	}
}

// IsRebloomer reports whether "rebloom" appears in the bloom season, bloom
// habit or notes of d.
func IsRebloomer(d *model.Daylily) bool {
	for _, s := range []string{d.BloomSeason, d.BloomHabit, d.Notes} {
		if strings.Contains(strings.ToLower(s), "rebloom") {
			return true
		}
	}
	return false
}
