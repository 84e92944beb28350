// Package kernel implements the strided-iteration engine shared by the
// add, trace, and contract primitives: the stride-optimized view, the
// divide-and-conquer traversal, and the scalar-coefficient dispatcher.
package kernel

// Number is the set of element kinds the kernel engine operates on: the
// two real and two complex floating kinds. Callers never instantiate the
// generic kernel functions directly with anything else.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Tag distinguishes the three coefficient states a caller can request for
// alpha or beta. It is a dispatch-time distinction fixed by the caller's
// intent, not a runtime comparison against the zero or unit value.
type Tag int

const (
	TagZero Tag = iota
	TagOne
	TagGeneral
)
