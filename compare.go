package assertz

import (
	"cmp"
	"reflect"
	"time"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Comparator orders two values: negative when a < b, zero when they are
// equal, positive when a > b.
type Comparator[T any] func(a, b T) int

// comparatorSuffix is appended to messages of checks that used a custom
// comparator instead of the standard comparison.
const comparatorSuffix = "\nwhen comparing values using the given comparator"

// comparison is the strategy an assertion uses to compare values: the
// standard one (deep equality and natural ordering) or a caller-supplied
// comparator.
type comparison[T any] struct {
	comparator Comparator[T]
	equal      func(a, b T) bool
}

func (c comparison[T]) areEqual(a, b T) bool {
	if c.comparator != nil {
		return c.comparator(a, b) == 0
	}
	return c.equal(a, b)
}

func (c comparison[T]) suffix() string {
	if c.comparator != nil {
		return comparatorSuffix
	}
	return ""
}

// compare orders a and b with the comparator when present, otherwise with
// their natural ordering. ok is false when no ordering exists.
func (c comparison[T]) compare(a, b T) (result int, ok bool) {
	if c.comparator != nil {
		return c.comparator(a, b), true
	}
	return naturalCompare(a, b)
}

func (c comparison[T]) contains(values []T, v T) bool {
	return c.indexOf(values, v) >= 0
}

func (c comparison[T]) indexOf(values []T, v T) int {
	for i, candidate := range values {
		if c.areEqual(candidate, v) {
			return i
		}
	}
	return -1
}

func standardComparison[T any](cfg Config) comparison[T] {
	return comparison[T]{
		equal: func(a, b T) bool { return deepEqual(cfg, a, b) },
	}
}

func orderedComparison[T cmp.Ordered]() comparison[T] {
	return comparison[T]{
		equal: func(a, b T) bool { return cmp.Compare(a, b) == 0 },
	}
}

func requireComparator[T any](c Comparator[T]) {
	if c == nil {
		invalidArgument("comparator must not be nil")
	}
}

// deepEqual compares values structurally with go-cmp. Unexported struct
// fields take part in the comparison when the config allows it and are
// ignored otherwise.
func deepEqual(cfg Config, a, b any) bool {
	if a == nil || b == nil {
		return isNil(a) && isNil(b) && reflect.TypeOf(a) == reflect.TypeOf(b)
	}
	return gocmp.Equal(a, b, cmpOptions(cfg, a, b)...)
}

// deepDiff returns a go-cmp report of the differences between expected
// and actual, or an empty string when the values are equal.
func deepDiff(cfg Config, expected, actual any) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	if expected == nil || actual == nil {
		return ""
	}
	return gocmp.Diff(expected, actual, cmpOptions(cfg, expected, actual)...)
}

func cmpOptions(cfg Config, values ...any) []gocmp.Option {
	if cfg.CompareUnexportedFields {
		return []gocmp.Option{gocmp.Exporter(func(reflect.Type) bool { return true })}
	}
	return []gocmp.Option{cmpopts.IgnoreUnexported(structTypes(values...)...)}
}

// structTypes collects a zero value of every struct type reachable from
// values, as cmpopts.IgnoreUnexported expects.
func structTypes(values ...any) []any {
	seen := make(map[reflect.Type]struct{})
	for _, v := range values {
		walkStructTypes(reflect.ValueOf(v), seen)
	}
	types := make([]any, 0, len(seen))
	for t := range seen {
		types = append(types, reflect.New(t).Elem().Interface())
	}
	return types
}

func walkStructTypes(v reflect.Value, seen map[reflect.Type]struct{}) {
	if !v.IsValid() {
		return
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			walkStructTypes(v.Elem(), seen)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkStructTypes(v.Index(i), seen)
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			walkStructTypes(iter.Key(), seen)
			walkStructTypes(iter.Value(), seen)
		}
	case reflect.Struct:
		if _, ok := seen[v.Type()]; ok {
			return
		}
		seen[v.Type()] = struct{}{}
		for i := 0; i < v.NumField(); i++ {
			walkStructTypes(v.Field(i), seen)
		}
	}
}

// naturalCompare orders two values of the same basic kind: signed and
// unsigned integers, floats, strings and time.Time. ok is false when the
// values are not mutually comparable.
func naturalCompare(a, b any) (result int, ok bool) {
	if ta, isTime := a.(time.Time); isTime {
		tb, bothTime := b.(time.Time)
		if !bothTime {
			return 0, false
		}
		return ta.Compare(tb), true
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return 0, false
	}

	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float()), true
	case reflect.String:
		return cmp.Compare(va.String(), vb.String()), true
	default:
		return 0, false
	}
}
