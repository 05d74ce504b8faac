package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/user/daylily/internal/model"
)

// Expression is an advanced criterion written in the expr language, e.g.
//
//	year_num >= 2000 && ploidy == "Tetraploid" && bloom_size_num > 6
//
// Dataset fields are available by their JSON names as strings. The numeric
// fields are also exposed as <field>_num when they parse as a number, and
// "rebloom" is a boolean.
type Expression struct {
	source  string
	program *vm.Program
}

// CompileExpression compiles source once for reuse across records.
func CompileExpression(source string) (*Expression, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: empty expression", model.ErrInvalidExpression)
	}
	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidExpression, err)
	}
	return &Expression{source: source, program: program}, nil
}

// String returns the expression source.
func (e *Expression) String() string {
	return e.source
}

// Match evaluates the expression against d. Evaluation errors and non-boolean
// results count as not matching.
func (e *Expression) Match(d *model.Daylily) bool {
	out, err := expr.Run(e.program, exprEnv(d))
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

func exprEnv(d *model.Daylily) map[string]interface{} {
	env := make(map[string]interface{}, 28)
	for k, v := range d.Values() {
		env[k] = v
	}
	if year, ok := model.ParseLeadingInt(d.Year); ok {
		env["year_num"] = year
	}
	numeric := map[string]string{
		"bloom_size_num":   d.BloomSize,
		"scape_height_num": d.ScapeHeight,
		"branches_num":     d.Branches,
		"bud_count_num":    d.BudCount,
	}
	for k, v := range numeric {
		if f, ok := model.ParseLeadingFloat(v); ok {
			env[k] = f
		}
	}
	env["rebloom"] = IsRebloomer(d)
	return env
}
