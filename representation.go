package assertz

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// spewConfig renders structured values on a single line with stable map
// ordering and without pointer addresses.
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
	MaxDepth:                10,
}

// representation turns values into the text shown in failure messages.
type representation struct {
	maxElements      int
	maxSingleLineLen int
	maxStringLen     int
}

func (r representation) format(v any) string {
	if isNil(v) {
		return "nil"
	}

	switch x := v.(type) {
	case string:
		return r.quote(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case time.Duration:
		return x.String()
	case error:
		return r.quote(x.Error())
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return r.quote(rv.String())
	case reflect.Slice, reflect.Array:
		return r.formatSequence(rv)
	case reflect.Map:
		return r.formatMap(rv)
	case reflect.Struct, reflect.Pointer, reflect.Interface:
		return spewConfig.Sprintf("%+v", v)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf("%T", v)
	default:
		return fmt.Sprint(v)
	}
}

// formatAll renders a list of values as a sequence.
func (r representation) formatAll(values []any) string {
	return r.formatSequence(reflect.ValueOf(values))
}

func (r representation) quote(s string) string {
	if r.maxStringLen > 0 && len(s) > r.maxStringLen {
		cut := r.maxStringLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return strconv.Quote(s[:cut]) + "... (truncated " + strconv.Itoa(len(s)-cut) + " chars)"
	}
	return strconv.Quote(s)
}

func (r representation) formatSequence(rv reflect.Value) string {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return "nil"
	}

	n := rv.Len()
	parts := make([]string, 0, min(n, r.limit()+1))
	for _, i := range r.indexes(n) {
		if i < 0 {
			parts = append(parts, "...")
			continue
		}
		parts = append(parts, r.element(rv.Index(i)))
	}
	return r.join("[", parts, "]")
}

func (r representation) formatMap(rv reflect.Value) string {
	if rv.IsNil() {
		return "nil"
	}

	keys := rv.MapKeys()
	sortValues(keys, r)

	parts := make([]string, 0, min(len(keys), r.limit()+1))
	for _, i := range r.indexes(len(keys)) {
		if i < 0 {
			parts = append(parts, "...")
			continue
		}
		parts = append(parts, r.element(keys[i])+"="+r.element(rv.MapIndex(keys[i])))
	}
	return r.join("{", parts, "}")
}

func (r representation) element(v reflect.Value) string {
	if !v.CanInterface() {
		return fmt.Sprintf("%v", v)
	}
	return r.format(v.Interface())
}

// indexes returns the positions to print, using -1 where elements are
// elided. The first half and the last half of the limit are kept.
func (r representation) indexes(n int) []int {
	limit := r.limit()
	idx := make([]int, 0, min(n, limit+1))
	if n <= limit {
		for i := 0; i < n; i++ {
			idx = append(idx, i)
		}
		return idx
	}

	head := (limit + 1) / 2
	tail := limit - head
	for i := 0; i < head; i++ {
		idx = append(idx, i)
	}
	idx = append(idx, -1)
	for i := n - tail; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}

func (r representation) limit() int {
	if r.maxElements < 1 {
		return 1000
	}
	return r.maxElements
}

func (r representation) join(open string, parts []string, closing string) string {
	single := open + strings.Join(parts, ", ") + closing
	if len(parts) < 2 || r.maxSingleLineLen < 1 || len(single) <= r.maxSingleLineLen {
		return single
	}
	return open + strings.Join(parts, ",\n    ") + closing
}

// sortValues orders map keys naturally when possible and by their printed
// form otherwise so that messages are deterministic.
func sortValues(values []reflect.Value, r representation) {
	sort.SliceStable(values, func(i, j int) bool {
		a, b := values[i], values[j]
		if a.CanInterface() && b.CanInterface() {
			if c, ok := naturalCompare(a.Interface(), b.Interface()); ok {
				return c < 0
			}
		}
		return r.element(a) < r.element(b)
	})
}

// isNil reports whether v is nil, including typed nils held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
