package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Codes of the diagnostics produced by check runs.
const (
	CodeUnknownKind       = "unknown-kind"
	CodeUnexpectedFailure = "unexpected-failure"
	CodeUnexpectedSuccess = "unexpected-success"
	CodeUnexpectedError   = "unexpected-error"
	CodeMissingError      = "missing-error"
	CodeMismatch          = "mismatch"
	CodeNoExpectation     = "no-expectation"
	CodePassed            = "passed"
)

// Diagnostics holds all diagnostic information from a check run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code is one of the Code* constants.
	Code    string
	Message string
	// Kind is the mapper kind name the check ran against.
	Kind string
	// Check locates the check in its file, e.g. "checks[2]".
	Check string
	// Input is the raw input as written in the check file.
	Input string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return "unknown"
	}
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, kind, check, input string) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Kind:     kind,
		Check:    check,
		Input:    input,
	}

	switch sev {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) AddError(code, message, kind, check, input string) {
	d.add(DiagnosticError, code, message, kind, check, input)
}

func (d *Diagnostics) AddWarning(code, message, kind, check, input string) {
	d.add(DiagnosticWarning, code, message, kind, check, input)
}

func (d *Diagnostics) AddInfo(code, message, kind, check, input string) {
	d.add(DiagnosticInfo, code, message, kind, check, input)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Summary returns a one-line count of passed, failed and skipped checks.
func (d *Diagnostics) Summary() string {
	passed := 0
	for _, i := range d.Infos {
		if i.Code == CodePassed {
			passed++
		}
	}

	return fmt.Sprintf("%d passed, %d failed, %d warnings", passed, len(d.Errors), len(d.Warnings))
}

// String returns a formatted diagnostic string, e.g.
// `checks[1] guid "abc": [unexpected-failure] not parsed`.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Check != "" {
		prefix = append(prefix, d.Check)
	}
	if d.Kind != "" {
		prefix = append(prefix, d.Kind)
	}
	if d.Input != "" {
		prefix = append(prefix, fmt.Sprintf("%q", d.Input))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
