package assertz

// PointerAssert checks a pointer as an optional value: nil is empty, anything
// else holds the pointee.
type PointerAssert[T any] struct {
	base
	actual *T
}

// ThatPointer starts assertions on a pointer.
//
//	assertz.ThatPointer(t, cfg.Timeout).PointsTo(30 * time.Second)
func ThatPointer[T any](t TestingT, actual *T) *PointerAssert[T] {
	return &PointerAssert[T]{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *PointerAssert[T]) As(description string, args ...any) *PointerAssert[T] {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *PointerAssert[T]) WithFailMessage(format string, args ...any) *PointerAssert[T] {
	a.overrideFailMessage(format, args)
	return a
}

// IsNil checks that the pointer holds no value.
func (a *PointerAssert[T]) IsNil() *PointerAssert[T] {
	a.t.Helper()
	a.check("IsNil", a.actual == nil, func() string {
		return "\nExpecting pointer to be nil but it pointed to:\n  " + indent(a.repr().format(*a.actual))
	})
	return a
}

// IsNotNil checks that the pointer holds a value.
func (a *PointerAssert[T]) IsNotNil() *PointerAssert[T] {
	a.t.Helper()
	a.check("IsNotNil", a.actual != nil, func() string {
		return "\nExpecting pointer not to be nil"
	})
	return a
}

// PointsTo checks that the pointee equals expected.
func (a *PointerAssert[T]) PointsTo(expected T) *PointerAssert[T] {
	a.t.Helper()
	if a.actual == nil {
		return a.failEmpty("PointsTo")
	}
	a.check("PointsTo", deepEqual(a.config, *a.actual, expected), func() string {
		return "\nExpecting pointer to point to:\n  " + indent(a.repr().format(expected)) +
			"\nbut it pointed to:\n  " + indent(a.repr().format(*a.actual)) +
			equalityDiff(a.config, expected, *a.actual)
	})
	return a
}

// HasValueSatisfying checks the pointee against requirement, reporting all
// of its failures at once.
func (a *PointerAssert[T]) HasValueSatisfying(requirement func(TestingT, T)) *PointerAssert[T] {
	a.t.Helper()
	if requirement == nil {
		invalidArgument("requirement must not be nil")
	}
	if a.actual == nil {
		return a.failEmpty("HasValueSatisfying")
	}
	errs := evaluate(a.config, *a.actual, []func(TestingT, T){requirement})
	a.check("HasValueSatisfying", len(errs) == 0, func() string {
		return "\nExpecting pointee:\n  " + indent(a.repr().format(*a.actual)) + "\nto satisfy the requirement, but:" +
			indent((&MultipleFailuresError{Heading: "Unsatisfied requirements", Errors: errs}).Error())
	})
	return a
}

// HasValueMatching checks the pointee against predicate.
func (a *PointerAssert[T]) HasValueMatching(predicate func(T) bool, description ...string) *PointerAssert[T] {
	a.t.Helper()
	requirePredicate(predicate)
	if a.actual == nil {
		return a.failEmpty("HasValueMatching")
	}
	a.check("HasValueMatching", predicate(*a.actual), func() string {
		return "\nExpecting pointee:\n  " + indent(a.repr().format(*a.actual)) + "\nto match " + predicateName(description) + "."
	})
	return a
}

// Value navigates to the pointee. A nil pointer fails the check and yields
// assertions on the zero value.
func (a *PointerAssert[T]) Value() *ObjectAssert[T] {
	a.t.Helper()
	var v T
	if a.actual == nil {
		a.failEmpty("Value")
	} else {
		v = *a.actual
	}
	b := a.derive()
	return &ObjectAssert[T]{base: b, actual: v, comparison: standardComparison[T](b.config)}
}

func (a *PointerAssert[T]) failEmpty(assertion string) *PointerAssert[T] {
	a.t.Helper()
	a.failWith(assertion, "\nExpecting pointer not to be nil")
	return a
}
