package kernel

// View is a non-owning strided descriptor into a dtype-specific buffer.
// It borrows Data for the duration of one kernel call and is discarded
// when the call returns; it never reshapes or copies the backing memory.
type View[T Number] struct {
	Data    []T
	Strides []int
	Conj    func(T) T
}

// identity is the Conj function for real element kinds and for any
// operand that was not marked conjugated.
func identity[T Number](v T) T { return v }

// ConjOf resolves a per-operand conjugation flag into a read transform,
// once per operand rather than once per element: Normal (or any real
// element kind) always returns identity; Conjugated resolves, via a
// single type switch on T, to an elementwise complex conjugate. On real
// element kinds conjugation is always a no-op regardless of the flag.
func ConjOf[T Number](conjugated bool) func(T) T {
	if !conjugated {
		return identity[T]
	}
	var zero T
	switch any(zero).(type) {
	case complex64:
		return func(v T) T {
			c := any(v).(complex64)
			return any(complex(real(c), -imag(c))).(T)
		}
	case complex128:
		return func(v T) T {
			c := any(v).(complex128)
			return any(complex(real(c), -imag(c))).(T)
		}
	default:
		return identity[T]
	}
}

// NewView builds a View over data with the given per-axis strides and
// conjugation flag.
func NewView[T Number](data []T, strides []int, conjugated bool) View[T] {
	return View[T]{Data: data, Strides: strides, Conj: ConjOf[T](conjugated)}
}

// at reads the element at the given flat offset, applying the view's
// conjugation transform.
func (v View[T]) at(offset int) T {
	return v.Conj(v.Data[offset])
}
