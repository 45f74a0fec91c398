package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableStates(t *testing.T) {
	v := Value("hello")
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", got)
	assert.False(t, v.IsNull())
	assert.False(t, v.IsAbsent())

	n := Null[string]()
	_, ok = n.Get()
	assert.False(t, ok)
	assert.True(t, n.IsNull())
	assert.False(t, n.IsAbsent())

	a := Absent[string]()
	_, ok = a.Get()
	assert.False(t, ok)
	assert.False(t, a.IsNull())
	assert.True(t, a.IsAbsent())

	var zero Nullable[string]
	assert.True(t, zero.IsAbsent(), "zero value is the absent state")
}

func TestNullableFrom(t *testing.T) {
	conv := func(v any) (string, error) {
		return stringValue(v, "not a string")
	}

	n, err := NullableFrom[string](nil, conv)
	require.NoError(t, err)
	assert.True(t, n.IsNull())

	n, err = NullableFrom[string]("x", conv)
	require.NoError(t, err)
	got, ok := n.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", got)

	_, err = NullableFrom[string](parseJSON(t, "3"), conv)
	assertStatus(t, err, InvalidArgument)
}

func TestNullableToJSON(t *testing.T) {
	assert.Equal(t, "x", Value("x").ToJSON())
	assert.Nil(t, Null[string]().ToJSON())
	assert.Nil(t, Absent[string]().ToJSON())

	// types with their own codec serialize through it
	el := Value(WebElement{ID: "e1"})
	assert.Equal(t, map[string]any{ElementKey: "e1"}, el.ToJSON())
	assert.Equal(t, uint64(42), Value(Date(42)).ToJSON())
}

func TestWebElementFromJSON(t *testing.T) {
	el, err := WebElementFromJSON(parseJSON(t, `{"`+ElementKey+`":"abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", el.ID)

	el, err = WebElementFromJSON(parseJSON(t, `{"ELEMENT":"legacy"}`))
	require.NoError(t, err)
	assert.Equal(t, "legacy", el.ID)

	_, err = WebElementFromJSON(parseJSON(t, `{"other":"abc"}`))
	assertStatus(t, err, InvalidArgument)

	_, err = WebElementFromJSON(parseJSON(t, `"abc"`))
	assertStatus(t, err, InvalidArgument)

	_, err = WebElementFromJSON(parseJSON(t, `{"`+ElementKey+`":7}`))
	assertStatus(t, err, InvalidArgument)
}

func TestWebElementToJSON(t *testing.T) {
	el := WebElement{ID: "abc"}
	assert.Equal(t, map[string]any{ElementKey: "abc"}, el.ToJSON())
}

func TestLocatorStrategyCodec(t *testing.T) {
	cases := map[string]LocatorStrategy{
		"css selector":      CSSSelector,
		"link text":         LinkText,
		"partial link text": PartialLinkText,
		"xpath":             XPath,
	}
	for wire, want := range cases {
		got, err := LocatorStrategyFromJSON(wire)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, wire, got.String())
		assert.Equal(t, wire, got.ToJSON())
	}

	_, err := LocatorStrategyFromJSON("id")
	assertStatus(t, err, InvalidArgument)

	_, err = LocatorStrategyFromJSON(parseJSON(t, "5"))
	assertStatus(t, err, InvalidArgument)
}

func TestFrameIdFromJSON(t *testing.T) {
	id, err := FrameIdFromJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, id.Short)
	assert.Nil(t, id.Element)
	assert.Nil(t, id.ToJSON())

	id, err = FrameIdFromJSON(parseJSON(t, "7"))
	require.NoError(t, err)
	require.NotNil(t, id.Short)
	assert.Equal(t, uint16(7), *id.Short)
	assert.Equal(t, uint16(7), id.ToJSON())

	id, err = FrameIdFromJSON(parseJSON(t, "65535"))
	require.NoError(t, err)
	require.NotNil(t, id.Short)
	assert.Equal(t, uint16(65535), *id.Short)

	_, err = FrameIdFromJSON(parseJSON(t, "65536"))
	assertStatus(t, err, InvalidArgument)

	_, err = FrameIdFromJSON(parseJSON(t, "-1"))
	assertStatus(t, err, InvalidArgument)

	id, err = FrameIdFromJSON(parseJSON(t, `{"`+ElementKey+`":"f1"}`))
	require.NoError(t, err)
	require.NotNil(t, id.Element)
	assert.Equal(t, "f1", id.Element.ID)

	_, err = FrameIdFromJSON(parseJSON(t, `"top"`))
	assertStatus(t, err, InvalidArgument)
}

func TestDateFromJSON(t *testing.T) {
	d, err := DateFromJSON(parseJSON(t, "1609459200"), "bad date")
	require.NoError(t, err)
	assert.Equal(t, Date(1609459200), d)
	assert.Equal(t, uint64(1609459200), d.ToJSON())

	_, err = DateFromJSON(parseJSON(t, "-5"), "bad date")
	assertStatus(t, err, InvalidArgument)

	_, err = DateFromJSON(parseJSON(t, `"tomorrow"`), "bad date")
	assertStatus(t, err, InvalidArgument)
}
