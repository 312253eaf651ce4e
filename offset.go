package assertz

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Number is the set of types NumberAssert works with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Offset is an absolute tolerance between an actual and an expected number.
// A difference equal to a Within offset passes; ByLessThan offsets exclude
// the boundary.
type Offset[N Number] struct {
	value  N
	strict bool
}

// Within builds an inclusive offset. It panics when value is negative or NaN.
func Within[N Number](value N) Offset[N] {
	if value != value || value < 0 {
		invalidArgument("offset must be a positive number or zero, got %v", value)
	}
	return Offset[N]{value: value}
}

// ByLessThan builds a strict offset. It panics unless value is greater than
// zero.
func ByLessThan[N Number](value N) Offset[N] {
	if value != value || value <= 0 {
		invalidArgument("strict offset must be greater than zero, got %v", value)
	}
	return Offset[N]{value: value, strict: true}
}

// Value returns the tolerance.
func (o Offset[N]) Value() N {
	return o.value
}

// Strict reports whether a difference equal to the offset fails.
func (o Offset[N]) Strict() bool {
	return o.strict
}

func (o Offset[N]) String() string {
	if o.strict {
		return fmt.Sprintf("strict offset %v", o.value)
	}
	return fmt.Sprintf("offset %v", o.value)
}

// allows reports whether d is within the offset.
func (o Offset[N]) allows(d difference) bool {
	limit := distance(N(0), o.value)
	if d.isFloat {
		if o.strict {
			return d.float < limit.float
		}
		return d.float <= limit.float
	}
	if o.strict {
		return d.magnitude < limit.magnitude
	}
	return d.magnitude <= limit.magnitude
}

// Percentage is a tolerance relative to the expected value. A difference
// equal to the percentage of the expected value passes.
type Percentage struct {
	value float64
}

// WithinPercentage builds a percentage tolerance. It panics when p is
// negative or NaN.
func WithinPercentage(p float64) Percentage {
	if math.IsNaN(p) || p < 0 {
		invalidArgument("percentage must be a positive number or zero, got %v", p)
	}
	return Percentage{value: p}
}

// Value returns the percentage, 10 meaning 10%.
func (p Percentage) Value() float64 {
	return p.value
}

func (p Percentage) String() string {
	return formatFloat(p.value) + "%"
}

// tolerance returns the absolute tolerance the percentage allows around
// expected.
func (p Percentage) tolerance(expected float64) float64 {
	return math.Abs(p.value * expected / 100)
}

// difference is the absolute distance between two numbers. Integer distances
// are held as uint64, which fits any gap between two values of one type.
type difference struct {
	magnitude uint64
	float     float64
	isFloat   bool
	text      string
}

func (d difference) value() float64 {
	if d.isFloat {
		return d.float
	}
	return float64(d.magnitude)
}

func distance[N Number](a, b N) difference {
	if a > b {
		a, b = b, a
	}
	lo, hi := reflect.ValueOf(a), reflect.ValueOf(b)
	switch lo.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m := uint64(hi.Int()) - uint64(lo.Int())
		return difference{magnitude: m, text: strconv.FormatUint(m, 10)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		m := hi.Uint() - lo.Uint()
		return difference{magnitude: m, text: strconv.FormatUint(m, 10)}
	default:
		d := b - a
		return difference{float: float64(d), isFloat: true, text: fmt.Sprint(d)}
	}
}

func isNaN[N Number](n N) bool {
	return n != n
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
