// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Key selects a contiguous extent along one dimension: a single index
// (Single), a half-open range (Span) or the whole dimension (Full). Two keys,
// one per dimension, address a rectangular region in Matrix.Slice.
type Key struct {
	start, stop  int
	full, single bool
}

// Single selects the position i.
func Single(i int) Key { return Key{start: i, stop: i + 1, single: true} }

// Span selects [start, stop). An empty span (start == stop) is legal.
func Span(start, stop int) Key { return Key{start: start, stop: stop} }

// Full selects the whole dimension.
func Full() Key { return Key{full: true} }

// resolve maps the key onto a dimension of length n.
func (k Key) resolve(n int) (start, stop int, err error) {
	if k.full {
		return 0, n, nil
	}
	if k.start < 0 || k.stop < k.start || k.stop > n {
		return 0, 0, ErrIndexOutOfRange
	}

	return k.start, k.stop, nil
}

func (k Key) String() string {
	if k.full {
		return ":"
	}
	if k.single {
		return fmt.Sprint(k.start)
	}

	return fmt.Sprintf("%d:%d", k.start, k.stop)
}
