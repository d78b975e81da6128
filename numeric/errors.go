// SPDX-License-Identifier: MIT

package numeric

import "errors"

// ErrLossyConversion is returned by Index when the value has no exact
// representation as a Go int.
var ErrLossyConversion = errors.New("numeric: lossy integer conversion")
