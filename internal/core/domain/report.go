package domain

import "go.trai.ch/zerr"

// ValidationReport accumulates the outcome of one validation pass.
// Errors gate the build, warnings are advisory and never block. Entries
// keep the order in which checks recorded them.
type ValidationReport struct {
	errors   []string
	warnings []string
}

// AddError records a fatal configuration finding.
func (r *ValidationReport) AddError(msg string) {
	r.errors = append(r.errors, msg)
}

// AddWarning records an advisory finding.
func (r *ValidationReport) AddWarning(msg string) {
	r.warnings = append(r.warnings, msg)
}

// Errors returns the recorded errors in insertion order.
func (r *ValidationReport) Errors() []string {
	return append([]string(nil), r.errors...)
}

// Warnings returns the recorded warnings in insertion order.
func (r *ValidationReport) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

// HasErrors reports whether the report blocks the build.
func (r *ValidationReport) HasErrors() bool {
	return len(r.errors) > 0
}

// Err converts the report into a configuration error carrying every
// invalid item and their count, or nil when the report is clean.
func (r *ValidationReport) Err() error {
	if !r.HasErrors() {
		return nil
	}
	err := zerr.With(ErrConfigInvalid, "count", len(r.errors))
	return zerr.With(err, "items", r.Errors())
}
