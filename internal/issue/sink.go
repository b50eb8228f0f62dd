package issue

import (
	"errors"

	"github.com/ktxkit/ktxkit/pkg/types"
)

// FatalError carries the final report of a fatal diagnostic up to the
// orchestrator. It unwinds the validator; nothing below the orchestrator
// recovers from it.
type FatalError struct {
	Report types.ValidationReport
}

func (e *FatalError) Error() string {
	return e.Report.Details
}

// IsFatal reports whether err is (or wraps) a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// Sink receives bound diagnostics, counts them, applies the
// warnings-as-errors policy and delivers them to the caller's callback.
type Sink struct {
	report           func(types.ValidationReport)
	warningsAsErrors bool

	numError   int
	numWarning int
}

// NewSink returns a sink delivering to report. A nil report callback is
// allowed; counting still happens.
func NewSink(warningsAsErrors bool, report func(types.ValidationReport)) *Sink {
	return &Sink{report: report, warningsAsErrors: warningsAsErrors}
}

func (s *Sink) dispatch(r types.ValidationReport) {
	if s.report != nil {
		s.report(r)
	}
}

// Warning emits a warning diagnostic. Under warnings-as-errors the outgoing
// report is re-stamped to error severity and counted as an error; the
// catalog entry itself is unchanged.
func (s *Sink) Warning(is Issue, args ...interface{}) {
	r := is.Report(args...)
	if s.warningsAsErrors {
		s.numError++
		r.Type = types.SevError
	} else {
		s.numWarning++
	}
	s.dispatch(r)
}

// Error emits an error diagnostic and continues validation.
func (s *Sink) Error(is Issue, args ...interface{}) {
	s.numError++
	s.dispatch(is.Report(args...))
}

// Fatal emits a fatal diagnostic and returns the abort error the caller
// must propagate. The report is delivered before the unwind starts.
func (s *Sink) Fatal(is Issue, args ...interface{}) error {
	s.numError++
	r := is.Report(args...)
	s.dispatch(r)
	return &FatalError{Report: r}
}

// ErrorCount returns the number of error-severity diagnostics emitted,
// including re-stamped warnings and fatals.
func (s *Sink) ErrorCount() int { return s.numError }

// WarningCount returns the number of warning-severity diagnostics emitted.
func (s *Sink) WarningCount() int { return s.numWarning }
