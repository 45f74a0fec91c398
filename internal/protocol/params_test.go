package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every validator re-checks object-ness and reports it uniformly.
func TestValidatorsRejectNonObjectBody(t *testing.T) {
	body := parseJSON(t, `["not", "an", "object"]`)

	checks := []func() error{
		func() error { _, err := decodeGetParameters(body); return err },
		func() error { _, err := decodeTimeoutsParameters(body); return err },
		func() error { _, err := decodeWindowSizeParameters(body); return err },
		func() error { _, err := decodeSwitchToWindowParameters(body); return err },
		func() error { _, err := decodeLocatorParameters(body); return err },
		func() error { _, err := decodeSwitchToFrameParameters(body); return err },
		func() error { _, err := decodeSendKeysParameters(body); return err },
		func() error { _, err := decodeJavascriptCommandParameters(body); return err },
		func() error { _, err := decodeGetCookieParameters(body); return err },
		func() error { _, err := decodeAddCookieParameters(body); return err },
		func() error { _, err := decodeSendAlertTextParameters(body); return err },
		func() error { _, err := decodeTakeScreenshotParameters(body); return err },
	}

	for i, check := range checks {
		err := check()
		wdErr := assertStatus(t, err, UnknownError)
		assert.Equal(t, "Message body was not an object", wdErr.Message, "validator %d", i)
	}
}

func TestGetParameters(t *testing.T) {
	p, err := decodeGetParameters(parseJSON(t, `{"url":"https://example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", p.URL)

	_, err = decodeGetParameters(parseJSON(t, `{}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "url")

	_, err = decodeGetParameters(parseJSON(t, `{"url":3}`))
	assertStatus(t, err, InvalidArgument)
}

func TestTimeoutsParameters(t *testing.T) {
	p, err := decodeTimeoutsParameters(parseJSON(t, `{"type":"implicit","ms":5000.5}`))
	require.NoError(t, err)
	assert.Equal(t, "implicit", p.Type)
	assert.Equal(t, 5000.5, p.MS)

	_, err = decodeTimeoutsParameters(parseJSON(t, `{"type":"implicit"}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "ms")

	_, err = decodeTimeoutsParameters(parseJSON(t, `{"type":"implicit","ms":"soon"}`))
	assertStatus(t, err, InvalidArgument)
}

func TestWindowSizeParameters(t *testing.T) {
	p, err := decodeWindowSizeParameters(parseJSON(t, `{"width": 800, "height": 600}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(800), p.Width)
	assert.Equal(t, uint64(600), p.Height)

	_, err = decodeWindowSizeParameters(parseJSON(t, `{"width": 800}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "height")

	_, err = decodeWindowSizeParameters(parseJSON(t, `{"width": -800, "height": 600}`))
	assertStatus(t, err, InvalidArgument)

	_, err = decodeWindowSizeParameters(parseJSON(t, `{"width": 800.5, "height": 600}`))
	assertStatus(t, err, InvalidArgument)
}

func TestSwitchToWindowParameters(t *testing.T) {
	p, err := decodeSwitchToWindowParameters(parseJSON(t, `{"handle":"w-42"}`))
	require.NoError(t, err)
	assert.Equal(t, "w-42", p.Handle)

	_, err = decodeSwitchToWindowParameters(parseJSON(t, `{}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "handle")
}

func TestLocatorParameters(t *testing.T) {
	p, err := decodeLocatorParameters(parseJSON(t, `{"using":"css selector","value":"#main"}`))
	require.NoError(t, err)
	assert.Equal(t, CSSSelector, p.Using)
	assert.Equal(t, "#main", p.Value)

	_, err = decodeLocatorParameters(parseJSON(t, `{"value":"#main"}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "using")

	// strategy codec failures propagate unchanged
	_, err = decodeLocatorParameters(parseJSON(t, `{"using":"id","value":"#main"}`))
	wdErr = assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "locator strategy")

	_, err = decodeLocatorParameters(parseJSON(t, `{"using":"xpath"}`))
	assertStatus(t, err, InvalidArgument)
}

func TestSwitchToFrameParameters(t *testing.T) {
	p, err := decodeSwitchToFrameParameters(parseJSON(t, `{"id": 3}`))
	require.NoError(t, err)
	require.NotNil(t, p.ID.Short)
	assert.Equal(t, uint16(3), *p.ID.Short)

	p, err = decodeSwitchToFrameParameters(parseJSON(t, `{"id": null}`))
	require.NoError(t, err)
	assert.Nil(t, p.ID.Short)
	assert.Nil(t, p.ID.Element)

	_, err = decodeSwitchToFrameParameters(parseJSON(t, `{}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "id")

	_, err = decodeSwitchToFrameParameters(parseJSON(t, `{"id": 100000}`))
	assertStatus(t, err, InvalidArgument)
}

func TestSendKeysParameters(t *testing.T) {
	p, err := decodeSendKeysParameters(parseJSON(t, `{"value":["a","b"]}`))
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'b'}, p.Value)

	// multi-byte code points are still one character per slot
	p, err = decodeSendKeysParameters(parseJSON(t, `{"value":["é"]}`))
	require.NoError(t, err)
	assert.Equal(t, []rune{'é'}, p.Value)

	// an empty sequence is valid
	p, err = decodeSendKeysParameters(parseJSON(t, `{"value":[]}`))
	require.NoError(t, err)
	assert.Empty(t, p.Value)

	_, err = decodeSendKeysParameters(parseJSON(t, `{"value":["ab"]}`))
	assertStatus(t, err, InvalidArgument)

	_, err = decodeSendKeysParameters(parseJSON(t, `{"value":[""]}`))
	assertStatus(t, err, InvalidArgument)

	_, err = decodeSendKeysParameters(parseJSON(t, `{"value":[7]}`))
	assertStatus(t, err, InvalidArgument)

	_, err = decodeSendKeysParameters(parseJSON(t, `{"value":"abc"}`))
	assertStatus(t, err, InvalidArgument)

	_, err = decodeSendKeysParameters(parseJSON(t, `{}`))
	assertStatus(t, err, InvalidArgument)
}

func TestJavascriptCommandParameters(t *testing.T) {
	p, err := decodeJavascriptCommandParameters(parseJSON(t, `{"script":"return 1;","args":[1,"two"]}`))
	require.NoError(t, err)
	assert.Equal(t, "return 1;", p.Script)
	args, ok := p.Args.Get()
	require.True(t, ok)
	assert.Len(t, args, 2)

	p, err = decodeJavascriptCommandParameters(parseJSON(t, `{"script":"return 1;","args":null}`))
	require.NoError(t, err)
	assert.True(t, p.Args.IsNull())

	_, err = decodeJavascriptCommandParameters(parseJSON(t, `{"script":"return 1;"}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "args")

	_, err = decodeJavascriptCommandParameters(parseJSON(t, `{"args":[]}`))
	wdErr = assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "script")

	_, err = decodeJavascriptCommandParameters(parseJSON(t, `{"script":"x","args":{"a":1}}`))
	assertStatus(t, err, InvalidArgument)
}

func TestGetCookieParameters(t *testing.T) {
	p, err := decodeGetCookieParameters(parseJSON(t, `{"name":"sid"}`))
	require.NoError(t, err)
	name, ok := p.Name.Get()
	require.True(t, ok)
	assert.Equal(t, "sid", name)

	p, err = decodeGetCookieParameters(parseJSON(t, `{"name":null}`))
	require.NoError(t, err)
	assert.True(t, p.Name.IsNull())

	_, err = decodeGetCookieParameters(parseJSON(t, `{}`))
	assertStatus(t, err, InvalidArgument)

	_, err = decodeGetCookieParameters(parseJSON(t, `{"name":1}`))
	assertStatus(t, err, InvalidArgument)
}

func TestAddCookieParametersDefaults(t *testing.T) {
	p, err := decodeAddCookieParameters(parseJSON(t, `{"name":"x","value":"y"}`))
	require.NoError(t, err)

	assert.Equal(t, "x", p.Name)
	assert.Equal(t, "y", p.Value)
	assert.False(t, p.Secure)
	assert.False(t, p.HTTPOnly)
	assert.True(t, p.Path.IsNull())
	assert.True(t, p.Domain.IsNull())
	assert.True(t, p.Expiry.IsNull())
	assert.True(t, p.MaxAge.IsNull())
}

func TestAddCookieParametersFull(t *testing.T) {
	body := `{
		"name": "x", "value": "y",
		"path": "/admin", "domain": "example.com",
		"expiry": 1609459200, "maxAge": 3600,
		"secure": true, "httpOnly": true
	}`
	p, err := decodeAddCookieParameters(parseJSON(t, body))
	require.NoError(t, err)

	path, _ := p.Path.Get()
	assert.Equal(t, "/admin", path)
	domain, _ := p.Domain.Get()
	assert.Equal(t, "example.com", domain)
	expiry, _ := p.Expiry.Get()
	assert.Equal(t, Date(1609459200), expiry)
	maxAge, _ := p.MaxAge.Get()
	assert.Equal(t, Date(3600), maxAge)
	assert.True(t, p.Secure)
	assert.True(t, p.HTTPOnly)
}

func TestAddCookieParametersErrors(t *testing.T) {
	_, err := decodeAddCookieParameters(parseJSON(t, `{"value":"y"}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "name")

	_, err = decodeAddCookieParameters(parseJSON(t, `{"name":"x"}`))
	wdErr = assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "value")

	_, err = decodeAddCookieParameters(parseJSON(t, `{"name":"x","value":"y","expiry":"never"}`))
	assertStatus(t, err, InvalidArgument)

	_, err = decodeAddCookieParameters(parseJSON(t, `{"name":"x","value":"y","secure":"yes"}`))
	assertStatus(t, err, InvalidArgument)

	// explicit null is allowed for the nullable fields
	p, err := decodeAddCookieParameters(parseJSON(t, `{"name":"x","value":"y","path":null}`))
	require.NoError(t, err)
	assert.True(t, p.Path.IsNull())
}

func TestSendAlertTextParameters(t *testing.T) {
	p, err := decodeSendAlertTextParameters(parseJSON(t, `{"keysToSend":"ok"}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", p.KeysToSend)

	_, err = decodeSendAlertTextParameters(parseJSON(t, `{}`))
	wdErr := assertStatus(t, err, InvalidArgument)
	assert.Contains(t, wdErr.Message, "keysToSend")

	_, err = decodeSendAlertTextParameters(parseJSON(t, `{"keysToSend":false}`))
	assertStatus(t, err, InvalidArgument)
}

func TestTakeScreenshotParameters(t *testing.T) {
	p, err := decodeTakeScreenshotParameters(parseJSON(t, `{}`))
	require.NoError(t, err)
	assert.True(t, p.Element.IsNull(), "absent element collapses to the null state")

	p, err = decodeTakeScreenshotParameters(parseJSON(t, `{"element":null}`))
	require.NoError(t, err)
	assert.True(t, p.Element.IsNull())

	p, err = decodeTakeScreenshotParameters(parseJSON(t, `{"element":{"`+ElementKey+`":"e9"}}`))
	require.NoError(t, err)
	el, ok := p.Element.Get()
	require.True(t, ok)
	assert.Equal(t, "e9", el.ID)

	_, err = decodeTakeScreenshotParameters(parseJSON(t, `{"element":"e9"}`))
	assertStatus(t, err, InvalidArgument)
}
