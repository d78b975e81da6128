// SPDX-License-Identifier: MIT
// Test-only bridge: exposes unexported option state to the external
// matrix_test package. Compiled only with tests.

package matrix

// Stable panic messages, for assertions.
const (
	PanicRelTolInvalid_TestOnly = panicRelTolInvalid
	PanicAbsTolInvalid_TestOnly = panicAbsTolInvalid
)

// OptionsSnapshot is a public copy of the effective Options.
type OptionsSnapshot struct {
	RelTol   float64
	AbsTol   float64
	EqualNaN bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after applying opts over
// the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{RelTol: o.rtol, AbsTol: o.atol, EqualNaN: o.equalNaN}
}
