package protocol

import (
	"fmt"
	"math"
)

type nullableState uint8

const (
	stateAbsent nullableState = iota
	stateNull
	stateValue
)

// Nullable is a tri-state optional: a body field can be absent, be an
// explicit JSON null, or carry a value. Validators that default unset
// optional fields collapse absent into the null state at their call
// site; the type keeps all three states.
type Nullable[T any] struct {
	state nullableState
	value T
}

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{state: stateValue, value: v}
}

// Null returns the explicit-null state.
func Null[T any]() Nullable[T] {
	return Nullable[T]{state: stateNull}
}

// Absent returns the field-not-present state. It is also the zero
// value.
func Absent[T any]() Nullable[T] {
	return Nullable[T]{}
}

func (n Nullable[T]) IsNull() bool   { return n.state == stateNull }
func (n Nullable[T]) IsAbsent() bool { return n.state == stateAbsent }

// Get returns the held value and whether one is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.state == stateValue
}

// ToJSON renders the held value, or nil for the null and absent
// states.
func (n Nullable[T]) ToJSON() any {
	v, ok := n.Get()
	if !ok {
		return nil
	}
	if j, ok := any(v).(interface{ ToJSON() any }); ok {
		return j.ToJSON()
	}
	return v
}

// NullableFrom parses a present field: JSON null maps to the null
// state, anything else goes through conv, whose failures propagate
// unchanged.
func NullableFrom[T any](raw any, conv func(any) (T, error)) (Nullable[T], error) {
	if raw == nil {
		return Null[T](), nil
	}
	v, err := conv(raw)
	if err != nil {
		return Nullable[T]{}, err
	}
	return Value(v), nil
}

// optionalNullable reads an optional field governed by the Nullable
// codec: absent defaults to the null state.
func optionalNullable[T any](data map[string]any, key string, conv func(any) (T, error)) (Nullable[T], error) {
	raw, ok := data[key]
	if !ok {
		return Null[T](), nil
	}
	return NullableFrom(raw, conv)
}

// ElementKey is the W3C web element identifier used to tag element
// references on the wire.
const ElementKey = "element-6066-11e4-a52e-4f735466cecf"

// legacy selenium wire key, accepted on input only
const legacyElementKey = "ELEMENT"

// WebElement is an opaque handle to a DOM element held by the browser.
type WebElement struct {
	ID string
}

// WebElementFromJSON parses an element reference object.
func WebElementFromJSON(v any) (WebElement, error) {
	data, ok := asObject(v)
	if !ok {
		return WebElement{}, NewError(InvalidArgument, "Could not convert element reference to object")
	}
	raw, ok := data[ElementKey]
	if !ok {
		raw, ok = data[legacyElementKey]
	}
	if !ok {
		return WebElement{}, NewError(InvalidArgument, "Missing element identifier key")
	}
	id, err := stringValue(raw, "Element id was not a string")
	if err != nil {
		return WebElement{}, err
	}
	return WebElement{ID: id}, nil
}

func (e WebElement) ToJSON() any {
	return map[string]any{ElementKey: e.ID}
}

// LocatorStrategy is the closed set of element location strategies.
type LocatorStrategy int

const (
	CSSSelector LocatorStrategy = iota
	LinkText
	PartialLinkText
	XPath
)

// LocatorStrategyFromJSON parses a strategy from its wire string.
func LocatorStrategyFromJSON(v any) (LocatorStrategy, error) {
	s, err := stringValue(v, "Expected a string locator strategy")
	if err != nil {
		return 0, err
	}
	switch s {
	case "css selector":
		return CSSSelector, nil
	case "link text":
		return LinkText, nil
	case "partial link text":
		return PartialLinkText, nil
	case "xpath":
		return XPath, nil
	}
	return 0, NewError(InvalidArgument, fmt.Sprintf("Unknown locator strategy %q", s))
}

func (l LocatorStrategy) String() string {
	switch l {
	case CSSSelector:
		return "css selector"
	case LinkText:
		return "link text"
	case PartialLinkText:
		return "partial link text"
	case XPath:
		return "xpath"
	}
	return ""
}

func (l LocatorStrategy) ToJSON() any {
	return l.String()
}

// FrameId identifies a browsing-context target: a window index, a
// contained element, or null for the top-level context. At most one of
// Short and Element is set; both nil means null.
type FrameId struct {
	Short   *uint16
	Element *WebElement
}

// FrameIdFromJSON parses a frame target from null, an integer index or
// an element reference object.
func FrameIdFromJSON(v any) (FrameId, error) {
	if v == nil {
		return FrameId{}, nil
	}
	if _, ok := asObject(v); ok {
		el, err := WebElementFromJSON(v)
		if err != nil {
			return FrameId{}, err
		}
		return FrameId{Element: &el}, nil
	}
	id, err := uintValue(v, "Frame id was not a positive integer")
	if err != nil {
		return FrameId{}, err
	}
	if id > math.MaxUint16 {
		return FrameId{}, NewError(InvalidArgument, "Frame id out of range")
	}
	short := uint16(id)
	return FrameId{Short: &short}, nil
}

func (f FrameId) ToJSON() any {
	switch {
	case f.Short != nil:
		return *f.Short
	case f.Element != nil:
		return f.Element.ToJSON()
	}
	return nil
}

// Date is a cookie timestamp in seconds since the Unix epoch.
//
// TODO: accept the RFC 1123 string form the cookie spec also allows;
// only the numeric-epoch form is parsed for now.
type Date uint64

// DateFromJSON parses a non-negative integer timestamp.
func DateFromJSON(v any, msg string) (Date, error) {
	n, err := uintValue(v, msg)
	if err != nil {
		return 0, err
	}
	return Date(n), nil
}

func (d Date) ToJSON() any {
	return uint64(d)
}
