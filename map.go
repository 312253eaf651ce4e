package assertz

import (
	"slices"
	"strings"
)

// MapAssert checks maps. Values are compared structurally.
type MapAssert[K comparable, V any] struct {
	base
	actual map[K]V
}

// ThatMap starts assertions on a map.
//
//	assertz.ThatMap(t, ages).ContainsEntry("frodo", 33).DoesNotContainKey("sauron")
func ThatMap[M ~map[K]V, K comparable, V any](t TestingT, actual M) *MapAssert[K, V] {
	return &MapAssert[K, V]{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *MapAssert[K, V]) As(description string, args ...any) *MapAssert[K, V] {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *MapAssert[K, V]) WithFailMessage(format string, args ...any) *MapAssert[K, V] {
	a.overrideFailMessage(format, args)
	return a
}

// IsNil checks that the map is nil.
func (a *MapAssert[K, V]) IsNil() *MapAssert[K, V] {
	a.t.Helper()
	a.check("IsNil", a.actual == nil, func() string {
		return shouldBe(a.repr(), a.actual, "nil")
	})
	return a
}

// IsEmpty checks that the map has no entries.
func (a *MapAssert[K, V]) IsEmpty() *MapAssert[K, V] {
	a.t.Helper()
	a.check("IsEmpty", len(a.actual) == 0, func() string {
		return shouldBe(a.repr(), a.actual, "empty")
	})
	return a
}

// IsNotEmpty checks that the map has at least one entry.
func (a *MapAssert[K, V]) IsNotEmpty() *MapAssert[K, V] {
	a.t.Helper()
	a.check("IsNotEmpty", len(a.actual) > 0, func() string {
		return "\nExpecting actual not to be empty"
	})
	return a
}

// HasSize checks the number of entries.
func (a *MapAssert[K, V]) HasSize(expected int) *MapAssert[K, V] {
	a.t.Helper()
	a.check("HasSize", len(a.actual) == expected, func() string {
		return shouldHaveSize(a.repr(), a.actual, len(a.actual), expected)
	})
	return a
}

// HasSameSizeAs checks the size against another sized value.
func (a *MapAssert[K, V]) HasSameSizeAs(other any) *MapAssert[K, V] {
	a.t.Helper()
	n := sizeOf(other)
	a.check("HasSameSizeAs", len(a.actual) == n, func() string {
		return shouldHaveSize(a.repr(), a.actual, len(a.actual), n)
	})
	return a
}

// ContainsKey checks that key is present.
func (a *MapAssert[K, V]) ContainsKey(key K) *MapAssert[K, V] {
	a.t.Helper()
	return a.containsKeys("ContainsKey", []K{key})
}

// ContainsKeys checks that every key is present.
func (a *MapAssert[K, V]) ContainsKeys(keys ...K) *MapAssert[K, V] {
	a.t.Helper()
	requireValues(len(keys))
	return a.containsKeys("ContainsKeys", keys)
}

func (a *MapAssert[K, V]) containsKeys(assertion string, keys []K) *MapAssert[K, V] {
	a.t.Helper()
	var missing []K
	for _, k := range keys {
		if _, ok := a.actual[k]; !ok {
			missing = append(missing, k)
		}
	}
	a.check(assertion, len(missing) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain key(s)", keys) +
			clause(a.repr(), "but could not find the following key(s)", missing)
	})
	return a
}

// ContainsOnlyKeys checks that the map has exactly the given keys.
func (a *MapAssert[K, V]) ContainsOnlyKeys(keys ...K) *MapAssert[K, V] {
	a.t.Helper()
	expected := make(map[K]struct{}, len(keys))
	var missing []K
	for _, k := range keys {
		expected[k] = struct{}{}
		if _, ok := a.actual[k]; !ok {
			missing = append(missing, k)
		}
	}
	var unexpected []K
	for k := range a.actual {
		if _, ok := expected[k]; !ok {
			unexpected = append(unexpected, k)
		}
	}
	a.check("ContainsOnlyKeys", len(missing) == 0 && len(unexpected) == 0, func() string {
		msg := expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain only keys", keys)
		if len(missing) > 0 {
			msg += clause(a.repr(), "but could not find the following key(s)", missing)
		}
		if len(unexpected) > 0 {
			msg += clause(a.repr(), "and the following key(s) were unexpected", sortedCopy(a.repr(), unexpected))
		}
		return msg
	})
	return a
}

// DoesNotContainKey checks that key is absent.
func (a *MapAssert[K, V]) DoesNotContainKey(key K) *MapAssert[K, V] {
	a.t.Helper()
	return a.doesNotContainKeys("DoesNotContainKey", []K{key})
}

// DoesNotContainKeys checks that none of the keys is present.
func (a *MapAssert[K, V]) DoesNotContainKeys(keys ...K) *MapAssert[K, V] {
	a.t.Helper()
	requireValues(len(keys))
	return a.doesNotContainKeys("DoesNotContainKeys", keys)
}

func (a *MapAssert[K, V]) doesNotContainKeys(assertion string, keys []K) *MapAssert[K, V] {
	a.t.Helper()
	var found []K
	for _, k := range keys {
		if _, ok := a.actual[k]; ok {
			found = append(found, k)
		}
	}
	a.check(assertion, len(found) == 0, func() string {
		return shouldNotContain(a.repr(), a.actual, keys, found, "")
	})
	return a
}

// ContainsEntry checks that key maps to a value equal to value.
func (a *MapAssert[K, V]) ContainsEntry(key K, value V) *MapAssert[K, V] {
	a.t.Helper()
	got, ok := a.actual[key]
	a.check("ContainsEntry", ok && deepEqual(a.config, got, value), func() string {
		msg := expectingActual(a.repr(), a.actual) + "\nto contain entry:\n  " +
			a.repr().format(key) + "=" + a.repr().format(value)
		if ok {
			return msg + "\nbut key was mapped to:\n  " + indent(a.repr().format(got))
		}
		return msg + "\nbut key was not found"
	})
	return a
}

// DoesNotContainEntry checks that key is absent or maps to another value.
func (a *MapAssert[K, V]) DoesNotContainEntry(key K, value V) *MapAssert[K, V] {
	a.t.Helper()
	got, ok := a.actual[key]
	a.check("DoesNotContainEntry", !ok || !deepEqual(a.config, got, value), func() string {
		return expectingActual(a.repr(), a.actual) + "\nnot to contain entry:\n  " +
			a.repr().format(key) + "=" + a.repr().format(value)
	})
	return a
}

// ContainsAllEntriesOf checks that every entry of other is in the map.
func (a *MapAssert[K, V]) ContainsAllEntriesOf(other map[K]V) *MapAssert[K, V] {
	a.t.Helper()
	missing := make(map[K]V)
	for k, v := range other {
		if got, ok := a.actual[k]; !ok || !deepEqual(a.config, got, v) {
			missing[k] = v
		}
	}
	a.check("ContainsAllEntriesOf", len(missing) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain all entries of", other) +
			clause(a.repr(), "but could not find the following entries", missing)
	})
	return a
}

// ContainsValue checks that some entry holds value.
func (a *MapAssert[K, V]) ContainsValue(value V) *MapAssert[K, V] {
	a.t.Helper()
	return a.containsValues("ContainsValue", []V{value})
}

// ContainsValues checks that every value is held by some entry.
func (a *MapAssert[K, V]) ContainsValues(values ...V) *MapAssert[K, V] {
	a.t.Helper()
	requireValues(len(values))
	return a.containsValues("ContainsValues", values)
}

func (a *MapAssert[K, V]) containsValues(assertion string, values []V) *MapAssert[K, V] {
	a.t.Helper()
	var missing []V
	for _, v := range values {
		if !a.hasValue(v) {
			missing = append(missing, v)
		}
	}
	a.check(assertion, len(missing) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain value(s)", values) +
			clause(a.repr(), "but could not find the following value(s)", missing)
	})
	return a
}

// DoesNotContainValue checks that no entry holds value.
func (a *MapAssert[K, V]) DoesNotContainValue(value V) *MapAssert[K, V] {
	a.t.Helper()
	a.check("DoesNotContainValue", !a.hasValue(value), func() string {
		return shouldCompare(a.repr(), a.actual, "not to contain value", value, "")
	})
	return a
}

// IsEqualTo checks that both maps hold the same entries.
func (a *MapAssert[K, V]) IsEqualTo(expected map[K]V) *MapAssert[K, V] {
	a.t.Helper()
	a.check("IsEqualTo", deepEqual(a.config, a.actual, expected), func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, "") + equalityDiff(a.config, expected, a.actual)
	})
	return a
}

func (a *MapAssert[K, V]) hasValue(value V) bool {
	for _, v := range a.actual {
		if deepEqual(a.config, v, value) {
			return true
		}
	}
	return false
}

// sortedCopy orders keys collected from map iteration so messages are
// stable.
func sortedCopy[K any](r representation, keys []K) []K {
	out := slices.Clone(keys)
	slices.SortStableFunc(out, func(x, y K) int {
		if c, ok := naturalCompare(x, y); ok {
			return c
		}
		return strings.Compare(r.format(x), r.format(y))
	})
	return out
}
