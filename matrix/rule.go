// SPDX-License-Identifier: MIT

package matrix

// Rule selects the direction of a row/column-wise operation such as Slices.
// By convention the zero value means row-wise.
type Rule int

const (
	// Row interprets the operation row by row.
	Row Rule = iota
	// Column interprets the operation column by column.
	Column
)

// Inverse returns the other rule.
func (r Rule) Inverse() Rule {
	if r == Row {
		return Column
	}

	return Row
}

func (r Rule) String() string {
	if r == Row {
		return "row"
	}

	return "column"
}
