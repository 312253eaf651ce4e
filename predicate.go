package assertz

// PredicateAssert checks a predicate function.
type PredicateAssert[T any] struct {
	base
	actual func(T) bool
}

// ThatPredicate starts assertions on a predicate. It panics when the
// predicate is nil.
//
//	assertz.ThatPredicate(t, isEven).Accepts(2, 4).Rejects(3)
func ThatPredicate[T any](t TestingT, actual func(T) bool) *PredicateAssert[T] {
	requirePredicate(actual)
	return &PredicateAssert[T]{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *PredicateAssert[T]) As(description string, args ...any) *PredicateAssert[T] {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *PredicateAssert[T]) WithFailMessage(format string, args ...any) *PredicateAssert[T] {
	a.overrideFailMessage(format, args)
	return a
}

// Accepts checks that the predicate holds for every value.
func (a *PredicateAssert[T]) Accepts(values ...T) *PredicateAssert[T] {
	a.t.Helper()
	requireValues(len(values))
	return a.accepts("Accepts", values)
}

// AcceptsAll checks that the predicate holds for every element of values.
func (a *PredicateAssert[T]) AcceptsAll(values []T) *PredicateAssert[T] {
	a.t.Helper()
	return a.accepts("AcceptsAll", values)
}

// Rejects checks that the predicate fails for every value.
func (a *PredicateAssert[T]) Rejects(values ...T) *PredicateAssert[T] {
	a.t.Helper()
	requireValues(len(values))
	return a.rejects("Rejects", values)
}

// RejectsAll checks that the predicate fails for every element of values.
func (a *PredicateAssert[T]) RejectsAll(values []T) *PredicateAssert[T] {
	a.t.Helper()
	return a.rejects("RejectsAll", values)
}

func (a *PredicateAssert[T]) accepts(assertion string, values []T) *PredicateAssert[T] {
	a.t.Helper()
	var rejected []T
	for _, v := range values {
		if !a.actual(v) {
			rejected = append(rejected, v)
		}
	}
	a.check(assertion, len(rejected) == 0, func() string {
		return "\nExpecting predicate to accept:\n  " + indent(a.repr().format(values)) +
			"\nbut it rejected:\n  " + indent(a.repr().format(rejected))
	})
	return a
}

func (a *PredicateAssert[T]) rejects(assertion string, values []T) *PredicateAssert[T] {
	a.t.Helper()
	var accepted []T
	for _, v := range values {
		if a.actual(v) {
			accepted = append(accepted, v)
		}
	}
	a.check(assertion, len(accepted) == 0, func() string {
		return "\nExpecting predicate to reject:\n  " + indent(a.repr().format(values)) +
			"\nbut it accepted:\n  " + indent(a.repr().format(accepted))
	})
	return a
}
