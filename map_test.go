package assertz

import (
	"testing"

	asserttest "github.com/zoobzio/assertz/testing"
)

func TestMapAssert(t *testing.T) {
	ages := map[string]int{"Frodo": 50, "Sam": 38, "Bilbo": 111}

	t.Run("Passing Chain", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, ages).
				IsNotEmpty().
				HasSize(3).
				HasSameSizeAs([]string{"a", "b", "c"}).
				ContainsKey("Frodo").
				ContainsKeys("Sam", "Bilbo").
				ContainsOnlyKeys("Bilbo", "Frodo", "Sam").
				DoesNotContainKey("Gollum").
				DoesNotContainKeys("Sauron", "Saruman").
				ContainsEntry("Sam", 38).
				DoesNotContainEntry("Sam", 39).
				DoesNotContainEntry("Gollum", 589).
				ContainsAllEntriesOf(map[string]int{"Frodo": 50, "Bilbo": 111}).
				ContainsValue(111).
				ContainsValues(50, 38).
				DoesNotContainValue(0).
				IsEqualTo(map[string]int{"Bilbo": 111, "Sam": 38, "Frodo": 50})
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Entries Print In Key Order", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, ages).IsEmpty()
		})
		asserttest.AssertStopped(t, m, `{"Bilbo"=111, "Frodo"=50, "Sam"=38}`)
	})

	t.Run("Missing Keys", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, ages).ContainsKeys("Frodo", "Gollum")
		})
		asserttest.AssertStopped(t, m, "but could not find the following key(s):\n  [\"Gollum\"]")
	})

	t.Run("Unexpected Keys Are Sorted", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, ages).ContainsOnlyKeys("Frodo")
		})
		asserttest.AssertStopped(t, m, "and the following key(s) were unexpected:\n  [\"Bilbo\", \"Sam\"]")
	})

	t.Run("Entry With Other Value", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, ages).ContainsEntry("Sam", 40)
		})
		asserttest.AssertStopped(t, m, "to contain entry:\n  \"Sam\"=40\nbut key was mapped to:\n  38")
	})

	t.Run("Entry With Missing Key", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, ages).ContainsEntry("Gollum", 589)
		})
		asserttest.AssertStopped(t, m, "but key was not found")
	})

	t.Run("Missing Entries", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, ages).ContainsAllEntriesOf(map[string]int{"Frodo": 33, "Sam": 38})
		})
		asserttest.AssertStopped(t, m, "but could not find the following entries:\n  {\"Frodo\"=33}")
	})

	t.Run("Values Compared Structurally", func(t *testing.T) {
		byName := map[string]hobbit{"ring": {Name: "Frodo"}}
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, byName).ContainsEntry("ring", hobbit{Name: "Frodo"}).ContainsValue(hobbit{Name: "Frodo"})
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Nil And Empty Differ In Equality", func(t *testing.T) {
		var none map[string]int
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, none).IsNil().IsEmpty().HasSize(0)
		})
		asserttest.AssertPassed(t, m)

		failing := asserttest.Run(func(m *asserttest.MockT) {
			ThatMap(m, none).IsEqualTo(map[string]int{})
		})
		asserttest.AssertStopped(t, failing, "\nexpected: {}\n but was: nil")
	})

	t.Run("Usage Errors", func(t *testing.T) {
		expectInvalidArgument(t, func() {
			ThatMap(&asserttest.MockT{}, ages).ContainsKeys()
		})
		expectInvalidArgument(t, func() {
			ThatMap(&asserttest.MockT{}, ages).ContainsValues()
		})
	})
}
