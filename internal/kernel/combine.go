package kernel

// combiner is the specialized update function for one destination cell,
// chosen once per kernel call by newCombiner and then invoked once per
// leaf with no further branching. term is the operation's contribution
// at this cell (a single conjugated read for Add, a diagonal sum for
// Trace, a contracted dot product for Contract); cur is the current
// destination value.
type combiner[T Number] func(term, cur T) T

// newCombiner is the ScalarDispatcher: it produces, for a given pair of
// coefficient tags, the specialization that never multiplies by a
// literal one or adds a literal zero on the hot path. It is shared
// verbatim by Add, Trace, and Contract: each only differs in how it
// computes term before calling the returned combiner.
func newCombiner[T Number](alphaTag, betaTag Tag, alpha, beta T) combiner[T] {
	switch alphaTag {
	case TagOne:
		switch betaTag {
		case TagZero:
			return func(term, cur T) T { return term }
		case TagOne:
			return func(term, cur T) T { return cur + term }
		default:
			return func(term, cur T) T { return beta*cur + term }
		}
	case TagGeneral:
		switch betaTag {
		case TagZero:
			return func(term, cur T) T { return alpha * term }
		case TagOne:
			return func(term, cur T) T { return cur + alpha*term }
		default:
			return func(term, cur T) T { return beta*cur + alpha*term }
		}
	default: // TagZero: term is never computed by the caller in this case.
		switch betaTag {
		case TagZero:
			return func(term, cur T) T { return T(0) }
		case TagOne:
			return func(term, cur T) T { return cur }
		default:
			return func(term, cur T) T { return beta * cur }
		}
	}
}
