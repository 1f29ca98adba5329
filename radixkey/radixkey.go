// Package radixkey defines the oracle contract that lets radixsort sort
// values it otherwise knows nothing about.
package radixkey

// Oracle is the contract a caller implements to make a type T sortable by
// radixsort. It is the only way the sorter ever looks inside a key.
//
// Levels reports the total number of 8-bit digits that make up a key.
// Digit must return the byte at the given level, where level L-1 (L =
// Levels()) is the most significant digit. Sorting lexicographically by
// (Digit(v, L-1), Digit(v, L-2), ..., Digit(v, 0)) must agree with the
// desired total order over T. Sign and float bit-tricks belong inside
// Digit; the sorter itself only ever sees unsigned bytes.
type Oracle[T any] interface {
	Levels() int
	Digit(v T, level int) byte
}
