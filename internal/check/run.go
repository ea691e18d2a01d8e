package check

import (
	"fmt"
	"strings"

	"datamapper/internal/diagnostic"
	"datamapper/internal/match"
	"datamapper/mapper"
	"datamapper/primitive"
)

// Result is the outcome of one input of a check.
type Result struct {
	Check  int
	Kind   primitive.KindEnum
	Input  any
	Value  any
	OK     bool
	Err    error
	Output string
}

// Run evaluates every check of f and returns its results and diagnostics.
func Run(f *File, factory *mapper.Factory) ([]Result, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	var results []Result
	for i := range f.Checks {
		results = append(results, runCheck(i, &f.Checks[i], factory, diags)...)
	}

	return results, diags
}

func runCheck(idx int, c *Check, factory *mapper.Factory, diags *diagnostic.Diagnostics) []Result {
	where := fmt.Sprintf("checks[%d]", idx)

	kind, ok := primitive.ParseKind(c.Kind)
	if !ok {
		msg := fmt.Sprintf("no data mapper kind %q", c.Kind)
		if hint, ok := match.Closest(c.Kind, kindNames()); ok {
			msg += fmt.Sprintf(", did you mean %q?", hint)
		}
		diags.AddError(diagnostic.CodeUnknownKind, msg, c.Kind, where, "")
		return nil
	}

	m, err := factory.ForKind(kind)
	if err != nil {
		diags.AddError(diagnostic.CodeUnknownKind, err.Error(), c.Kind, where, "")
		return nil
	}

	results := make([]Result, 0, len(c.Input))
	for i, in := range c.Input {
		r := Result{Check: idx, Kind: kind, Input: in}
		r.Value, r.OK, r.Err = m.TryParsePropValue(in)
		if r.OK {
			r.Output = m.ConvertValueToString(r.Value)
		}
		results = append(results, r)

		input := fmt.Sprint(in)
		if in == nil {
			input = "<nil>"
		}

		expect, hasExpect := c.ExpectFor(i)

		switch {
		case r.Err != nil:
			diags.AddError(diagnostic.CodeUnexpectedError, r.Err.Error(), kind.Name(), where, input)
		case c.Fail && r.OK:
			diags.AddError(diagnostic.CodeUnexpectedSuccess, fmt.Sprintf("parsed as %q", r.Output), kind.Name(), where, input)
		case c.Fail:
			diags.AddInfo(diagnostic.CodePassed, "rejected", kind.Name(), where, input)
		case !r.OK:
			diags.AddError(diagnostic.CodeUnexpectedFailure, "not parsed", kind.Name(), where, input)
		case !hasExpect:
			if len(c.Expect) > 1 {
				diags.AddWarning(diagnostic.CodeNoExpectation, "fewer expectations than inputs", kind.Name(), where, input)
			} else {
				diags.AddInfo(diagnostic.CodePassed, "parsed", kind.Name(), where, input)
			}
		case r.Output != expect:
			diags.AddError(diagnostic.CodeMismatch, fmt.Sprintf("got %q, want %q", r.Output, expect), kind.Name(), where, input)
		default:
			diags.AddInfo(diagnostic.CodePassed, r.Output, kind.Name(), where, input)
		}
	}

	return results
}

func kindNames() []string {
	names := make([]string, 0, primitive.KindTotal-1)
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		names = append(names, strings.ToLower(k.Name()))
	}

	return names
}
