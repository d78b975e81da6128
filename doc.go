// Package matrices is a small library of generic matrices over a layered
// numeric capability tower.
//
// What is in the box?
//
//	numeric/ - scalar protocols (ComplexLike ⊂ RealLike ⊂ IntegralLike) and
//	           the concrete element types Complex, Real, Rational and Int
//	matrix/  - Matrix[T], shapes and keys, element-wise operators with scalar
//	           broadcasting, matrix multiplication, lexicographic comparison
//	           and typed views per capability level
//
// Why a tower?
//
//   - The compiler decides which operators an element type supports:
//     FloorDiv needs RealLike, Lsh needs IntegralLike.
//   - Pure Go values: every operation returns a new matrix, so results can
//     be shared between goroutines without locks.
//   - Bring your own numbers: any type implementing numeric.ComplexLike[T]
//     (or a richer level) can be stored and multiplied.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]numeric.Int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]numeric.Int{{5, 6}, {7, 8}})
//	p, _ := matrix.MatMul[numeric.Int](a, b)
//	// p == [[19, 22], [43, 50]]
//
//	go get github.com/katalvlaran/matrices
package matrices
