package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/model"
)

// Filter flags shared by list and facets
var (
	filterName            string
	filterExactName       bool
	filterHybridizer      string
	filterExactHybridizer bool
	filterYearStart       string
	filterYearEnd         string
	filterPloidy          string
	filterBloomSizeMin    string
	filterBloomSizeMax    string
	filterScapeHeightMin  string
	filterScapeHeightMax  string
	filterBranchesMin     string
	filterBranchesMax     string
	filterBudCountMin     string
	filterBudCountMax     string
	filterSeasons         []string
	filterRebloom         bool
	filterFoliage         string
	filterExpr            string
)

// filterHelp is appended to the Long text of commands taking filter flags.
const filterHelp = `Filters (all combine with AND):
  --name, --hybridizer           Case-insensitive substring match
  --exact-name, --exact-hybridizer
                                 Match the whole value instead
  --year-start, --year-end       Inclusive introduction year range
  --ploidy                       Diploid, Tetraploid, ...
  --bloom-size-min/max           Inches, e.g. --bloom-size-min 5
  --scape-height-min/max         Inches
  --branches-min/max
  --bud-count-min/max
  --season                       Repeatable; matches any listed season
  --rebloom                      Only rebloomers
  --foliage                      Dormant, Evergreen, Semi-Evergreen
  --expr                         Expression, e.g. 'year_num >= 2000 && rebloom'

Numeric bounds accept leading numbers such as "6.5 inches". Records whose
value does not parse as a number are excluded while that range is set.`

func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&filterName, "name", "", "Filter by variety name")
	f.BoolVar(&filterExactName, "exact-name", false, "Match the whole name instead of a substring")
	f.StringVar(&filterHybridizer, "hybridizer", "", "Filter by hybridizer")
	f.BoolVar(&filterExactHybridizer, "exact-hybridizer", false, "Match the whole hybridizer instead of a substring")
	f.StringVar(&filterYearStart, "year-start", "", "Earliest introduction year")
	f.StringVar(&filterYearEnd, "year-end", "", "Latest introduction year")
	f.StringVar(&filterPloidy, "ploidy", "", "Ploidy (e.g. Diploid, Tetraploid)")
	f.StringVar(&filterBloomSizeMin, "bloom-size-min", "", "Minimum bloom size in inches")
	f.StringVar(&filterBloomSizeMax, "bloom-size-max", "", "Maximum bloom size in inches")
	f.StringVar(&filterScapeHeightMin, "scape-height-min", "", "Minimum scape height in inches")
	f.StringVar(&filterScapeHeightMax, "scape-height-max", "", "Maximum scape height in inches")
	f.StringVar(&filterBranchesMin, "branches-min", "", "Minimum branch count")
	f.StringVar(&filterBranchesMax, "branches-max", "", "Maximum branch count")
	f.StringVar(&filterBudCountMin, "bud-count-min", "", "Minimum bud count")
	f.StringVar(&filterBudCountMax, "bud-count-max", "", "Maximum bud count")
	f.StringSliceVar(&filterSeasons, "season", nil, "Bloom season (repeatable)")
	f.BoolVar(&filterRebloom, "rebloom", false, "Only rebloomers")
	f.StringVar(&filterFoliage, "foliage", "", "Foliage type (Dormant, Evergreen, Semi-Evergreen)")
	f.StringVar(&filterExpr, "expr", "", "Filter expression (expr language)")
}

// flagError ties a filter error to the flag that caused it.
type flagError struct {
	flag string
	err  error
}

func (e *flagError) Error() string {
	return fmt.Sprintf("invalid --%s: %v", e.flag, e.err)
}

func (e *flagError) Unwrap() error {
	return e.err
}

// buildSpec turns the filter flags into a filter spec.
func buildSpec() (filter.Spec, error) {
	spec := filter.Default()

	spec.Name.SetText(strings.TrimSpace(filterName))
	if filterExactName {
		spec.Name.Mode = filter.Exact
	}
	spec.Hybridizer.SetText(strings.TrimSpace(filterHybridizer))
	if filterExactHybridizer {
		spec.Hybridizer.Mode = filter.Exact
	}

	year, err := parseIntFlags("year-start", filterYearStart, "year-end", filterYearEnd)
	if err != nil {
		return spec, err
	}
	spec.Year = year

	ranges := []struct {
		dst         *filter.FloatRange
		minFlag, lo string
		maxFlag, hi string
	}{
		{&spec.BloomSize, "bloom-size-min", filterBloomSizeMin, "bloom-size-max", filterBloomSizeMax},
		{&spec.ScapeHeight, "scape-height-min", filterScapeHeightMin, "scape-height-max", filterScapeHeightMax},
		{&spec.Branches, "branches-min", filterBranchesMin, "branches-max", filterBranchesMax},
		{&spec.BudCount, "bud-count-min", filterBudCountMin, "bud-count-max", filterBudCountMax},
	}
	for _, r := range ranges {
		parsed, err := parseFloatFlags(r.minFlag, r.lo, r.maxFlag, r.hi)
		if err != nil {
			return spec, err
		}
		*r.dst = parsed
	}

	if v := strings.TrimSpace(filterPloidy); v != "" {
		spec.Ploidy = filter.Some(canonical(v, model.Ploidies))
	}
	if v := strings.TrimSpace(filterFoliage); v != "" {
		spec.FoliageType = filter.Some(canonical(v, model.FoliageTypes))
	}
	for _, s := range filterSeasons {
		if s = strings.TrimSpace(s); s != "" {
			spec.BloomSeasons = append(spec.BloomSeasons, canonical(s, model.BloomSeasons))
		}
	}
	spec.Rebloom = filterRebloom

	if strings.TrimSpace(filterExpr) != "" {
		e, err := filter.CompileExpression(filterExpr)
		if err != nil {
			return spec, &flagError{flag: "expr", err: err}
		}
		spec.Expr = e
	}

	return spec, nil
}

func parseIntFlags(startFlag, start, endFlag, end string) (filter.IntRange, error) {
	if _, err := filter.ParseIntRange(start, ""); err != nil {
		return filter.IntRange{}, &flagError{flag: startFlag, err: err}
	}
	r, err := filter.ParseIntRange(start, end)
	if err != nil {
		return filter.IntRange{}, &flagError{flag: endFlag, err: err}
	}
	return r, nil
}

func parseFloatFlags(minFlag, lo, maxFlag, hi string) (filter.FloatRange, error) {
	if _, err := filter.ParseFloatRange(lo, ""); err != nil {
		return filter.FloatRange{}, &flagError{flag: minFlag, err: err}
	}
	r, err := filter.ParseFloatRange(lo, hi)
	if err != nil {
		return filter.FloatRange{}, &flagError{flag: maxFlag, err: err}
	}
	return r, nil
}

// canonical returns the known option equal to v ignoring case, or v itself.
// Datasets may carry values outside the known lists, so unknown values are
// kept rather than rejected.
func canonical(v string, options []string) string {
	for _, o := range options {
		if strings.EqualFold(o, v) {
			return o
		}
	}
	return v
}

// exitFilterError reports a filter flag error as a validation error.
func exitFilterError(err error) {
	details := map[string]interface{}{}
	var fe *flagError
	if errors.As(err, &fe) {
		details["flag"] = fe.flag
	}
	ExitValidationError(err.Error(), details)
}

// resetFilterFlags restores the filter flags to their defaults.
func resetFilterFlags() {
	filterName, filterHybridizer = "", ""
	filterExactName, filterExactHybridizer = false, false
	filterYearStart, filterYearEnd = "", ""
	filterPloidy, filterFoliage, filterExpr = "", "", ""
	filterBloomSizeMin, filterBloomSizeMax = "", ""
	filterScapeHeightMin, filterScapeHeightMax = "", ""
	filterBranchesMin, filterBranchesMax = "", ""
	filterBudCountMin, filterBudCountMax = "", ""
	filterSeasons = nil
	filterRebloom = false
}
