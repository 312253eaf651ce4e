package assertz

import "github.com/google/uuid"

// UUIDAssert checks UUIDs.
type UUIDAssert struct {
	base
	actual uuid.UUID
}

// ThatUUID starts assertions on a UUID.
func ThatUUID(t TestingT, actual uuid.UUID) *UUIDAssert {
	return &UUIDAssert{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *UUIDAssert) As(description string, args ...any) *UUIDAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *UUIDAssert) WithFailMessage(format string, args ...any) *UUIDAssert {
	a.overrideFailMessage(format, args)
	return a
}

// IsEqualTo checks that actual equals expected.
func (a *UUIDAssert) IsEqualTo(expected uuid.UUID) *UUIDAssert {
	a.t.Helper()
	a.check("IsEqualTo", a.actual == expected, func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, "")
	})
	return a
}

// IsNil checks for the all-zero UUID.
func (a *UUIDAssert) IsNil() *UUIDAssert {
	a.t.Helper()
	a.check("IsNil", a.actual == uuid.Nil, func() string {
		return shouldBeEqual(a.repr(), a.actual, uuid.Nil, "")
	})
	return a
}

// IsNotNil checks that actual is not the nil UUID.
func (a *UUIDAssert) IsNotNil() *UUIDAssert {
	a.t.Helper()
	a.check("IsNotNil", a.actual != uuid.Nil, func() string {
		return shouldNotBeEqual(a.repr(), a.actual, uuid.Nil, "")
	})
	return a
}

// HasVersion checks the version field, 4 for random UUIDs.
func (a *UUIDAssert) HasVersion(version int) *UUIDAssert {
	a.t.Helper()
	got := int(a.actual.Version())
	a.check("HasVersion", got == version, func() string {
		return shouldHave(a.repr(), a.actual, "version", version, got)
	})
	return a
}

// HasVariant checks the variant field.
func (a *UUIDAssert) HasVariant(variant uuid.Variant) *UUIDAssert {
	a.t.Helper()
	got := a.actual.Variant()
	a.check("HasVariant", got == variant, func() string {
		return shouldHave(a.repr(), a.actual, "variant", variant, got)
	})
	return a
}
