package protocol

import "unicode/utf8"

// Parameters is the validated body payload attached to a command.
// Records are all-or-nothing: a validator either returns a fully
// populated record or the first error it hit, never a partial record.
type Parameters interface {
	ToJSON() map[string]any
}

// GetParameters carries the navigation target for the Get command.
type GetParameters struct {
	URL string
}

func decodeGetParameters(body any) (*GetParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	url, err := requiredString(data, "url", "Missing 'url' parameter", "'url' not a string")
	if err != nil {
		return nil, err
	}
	return &GetParameters{URL: url}, nil
}

func (p *GetParameters) ToJSON() map[string]any {
	return map[string]any{"url": p.URL}
}

// TimeoutsParameters sets one timeout category to a duration in
// milliseconds.
type TimeoutsParameters struct {
	Type string
	MS   float64
}

func decodeTimeoutsParameters(body any) (*TimeoutsParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	type_, err := requiredString(data, "type", "Missing 'type' parameter", "'type' not a string")
	if err != nil {
		return nil, err
	}
	ms, err := requiredFloat(data, "ms", "Missing 'ms' parameter", "'ms' not a float")
	if err != nil {
		return nil, err
	}
	return &TimeoutsParameters{Type: type_, MS: ms}, nil
}

func (p *TimeoutsParameters) ToJSON() map[string]any {
	return map[string]any{"type": p.Type, "ms": p.MS}
}

// WindowSizeParameters carries the requested outer window dimensions.
type WindowSizeParameters struct {
	Width  uint64
	Height uint64
}

func decodeWindowSizeParameters(body any) (*WindowSizeParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	height, err := requiredUint(data, "height", "Missing 'height' parameter", "'height' is not a positive integer")
	if err != nil {
		return nil, err
	}
	width, err := requiredUint(data, "width", "Missing 'width' parameter", "'width' is not a positive integer")
	if err != nil {
		return nil, err
	}
	return &WindowSizeParameters{Width: width, Height: height}, nil
}

func (p *WindowSizeParameters) ToJSON() map[string]any {
	return map[string]any{"width": p.Width, "height": p.Height}
}

// SwitchToWindowParameters names the window handle to focus.
type SwitchToWindowParameters struct {
	Handle string
}

func decodeSwitchToWindowParameters(body any) (*SwitchToWindowParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	handle, err := requiredString(data, "handle", "Missing 'handle' parameter", "'handle' not a string")
	if err != nil {
		return nil, err
	}
	return &SwitchToWindowParameters{Handle: handle}, nil
}

func (p *SwitchToWindowParameters) ToJSON() map[string]any {
	return map[string]any{"handle": p.Handle}
}

// LocatorParameters pairs a location strategy with its selector value.
type LocatorParameters struct {
	Using LocatorStrategy
	Value string
}

func decodeLocatorParameters(body any) (*LocatorParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	raw, err := requiredField(data, "using", "Missing 'using' parameter")
	if err != nil {
		return nil, err
	}
	using, err := LocatorStrategyFromJSON(raw)
	if err != nil {
		return nil, err
	}
	value, err := requiredString(data, "value", "Missing 'value' parameter", "'value' not a string")
	if err != nil {
		return nil, err
	}
	return &LocatorParameters{Using: using, Value: value}, nil
}

func (p *LocatorParameters) ToJSON() map[string]any {
	return map[string]any{"using": p.Using.ToJSON(), "value": p.Value}
}

// SwitchToFrameParameters carries the frame target.
type SwitchToFrameParameters struct {
	ID FrameId
}

func decodeSwitchToFrameParameters(body any) (*SwitchToFrameParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	raw, err := requiredField(data, "id", "Missing 'id' parameter")
	if err != nil {
		return nil, err
	}
	id, err := FrameIdFromJSON(raw)
	if err != nil {
		return nil, err
	}
	return &SwitchToFrameParameters{ID: id}, nil
}

func (p *SwitchToFrameParameters) ToJSON() map[string]any {
	return map[string]any{"id": p.ID.ToJSON()}
}

// SendKeysParameters is the keystroke sequence for element send-keys.
// The protocol transmits one code point per array slot.
type SendKeysParameters struct {
	Value []rune
}

func decodeSendKeysParameters(body any) (*SendKeysParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	raw, err := requiredField(data, "value", "Missing 'value' parameter")
	if err != nil {
		return nil, err
	}
	items, err := arrayValue(raw, "Could not convert 'value' to array")
	if err != nil {
		return nil, err
	}
	value := make([]rune, 0, len(items))
	for _, item := range items {
		s, err := stringValue(item, "Key value was not a string")
		if err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(s) != 1 {
			return nil, NewError(InvalidArgument, "Key value was not a single character")
		}
		r, _ := utf8.DecodeRuneInString(s)
		value = append(value, r)
	}
	return &SendKeysParameters{Value: value}, nil
}

func (p *SendKeysParameters) ToJSON() map[string]any {
	value := make([]any, len(p.Value))
	for i, r := range p.Value {
		value[i] = string(r)
	}
	return map[string]any{"value": value}
}

// JavascriptCommandParameters carries a script and its arguments for
// the execute commands. Args may be JSON null.
type JavascriptCommandParameters struct {
	Script string
	Args   Nullable[[]any]
}

func decodeJavascriptCommandParameters(body any) (*JavascriptCommandParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	rawArgs, err := requiredField(data, "args", "Missing 'args' parameter")
	if err != nil {
		return nil, err
	}
	args, err := NullableFrom(rawArgs, func(v any) ([]any, error) {
		return arrayValue(v, "Failed to convert args to array")
	})
	if err != nil {
		return nil, err
	}
	script, err := requiredString(data, "script", "Missing 'script' parameter", "Failed to convert script to string")
	if err != nil {
		return nil, err
	}
	return &JavascriptCommandParameters{Script: script, Args: args}, nil
}

func (p *JavascriptCommandParameters) ToJSON() map[string]any {
	return map[string]any{"script": p.Script, "args": p.Args.ToJSON()}
}

// GetCookieParameters optionally narrows a cookie fetch to one name.
type GetCookieParameters struct {
	Name Nullable[string]
}

func decodeGetCookieParameters(body any) (*GetCookieParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	raw, err := requiredField(data, "name", "Missing 'name' parameter")
	if err != nil {
		return nil, err
	}
	name, err := NullableFrom(raw, func(v any) (string, error) {
		return stringValue(v, "Failed to convert name to string")
	})
	if err != nil {
		return nil, err
	}
	return &GetCookieParameters{Name: name}, nil
}

func (p *GetCookieParameters) ToJSON() map[string]any {
	return map[string]any{"name": p.Name.ToJSON()}
}

// AddCookieParameters is a full cookie description. Optional string
// and date fields default to the null state; secure and httpOnly
// default to false.
type AddCookieParameters struct {
	Name     string
	Value    string
	Path     Nullable[string]
	Domain   Nullable[string]
	Expiry   Nullable[Date]
	MaxAge   Nullable[Date]
	Secure   bool
	HTTPOnly bool
}

func decodeAddCookieParameters(body any) (*AddCookieParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	name, err := requiredString(data, "name", "Missing 'name' parameter", "'name' is not a string")
	if err != nil {
		return nil, err
	}
	value, err := requiredString(data, "value", "Missing 'value' parameter", "'value' is not a string")
	if err != nil {
		return nil, err
	}
	path, err := optionalNullable(data, "path", func(v any) (string, error) {
		return stringValue(v, "Failed to convert path to string")
	})
	if err != nil {
		return nil, err
	}
	domain, err := optionalNullable(data, "domain", func(v any) (string, error) {
		return stringValue(v, "Failed to convert domain to string")
	})
	if err != nil {
		return nil, err
	}
	expiry, err := optionalNullable(data, "expiry", func(v any) (Date, error) {
		return DateFromJSON(v, "Failed to convert expiry to Date")
	})
	if err != nil {
		return nil, err
	}
	maxAge, err := optionalNullable(data, "maxAge", func(v any) (Date, error) {
		return DateFromJSON(v, "Failed to convert maxAge to Date")
	})
	if err != nil {
		return nil, err
	}
	secure, err := optionalBool(data, "secure", false, "Failed to convert secure to boolean")
	if err != nil {
		return nil, err
	}
	httpOnly, err := optionalBool(data, "httpOnly", false, "Failed to convert httpOnly to boolean")
	if err != nil {
		return nil, err
	}
	return &AddCookieParameters{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   domain,
		Expiry:   expiry,
		MaxAge:   maxAge,
		Secure:   secure,
		HTTPOnly: httpOnly,
	}, nil
}

func (p *AddCookieParameters) ToJSON() map[string]any {
	return map[string]any{
		"name":     p.Name,
		"value":    p.Value,
		"path":     p.Path.ToJSON(),
		"domain":   p.Domain.ToJSON(),
		"expiry":   p.Expiry.ToJSON(),
		"maxAge":   p.MaxAge.ToJSON(),
		"secure":   p.Secure,
		"httpOnly": p.HTTPOnly,
	}
}

// SendAlertTextParameters is the text typed into a prompt dialog.
type SendAlertTextParameters struct {
	KeysToSend string
}

func decodeSendAlertTextParameters(body any) (*SendAlertTextParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	keys, err := requiredString(data, "keysToSend", "Missing 'keysToSend' parameter", "'keysToSend' not a string")
	if err != nil {
		return nil, err
	}
	return &SendAlertTextParameters{KeysToSend: keys}, nil
}

func (p *SendAlertTextParameters) ToJSON() map[string]any {
	return map[string]any{"keysToSend": p.KeysToSend}
}

// TakeScreenshotParameters optionally scopes a screenshot to one
// element. Only the null and value states reach this record; absent
// collapses to null here.
type TakeScreenshotParameters struct {
	Element Nullable[WebElement]
}

func decodeTakeScreenshotParameters(body any) (*TakeScreenshotParameters, error) {
	data, err := bodyObject(body)
	if err != nil {
		return nil, err
	}
	element, err := optionalNullable(data, "element", WebElementFromJSON)
	if err != nil {
		return nil, err
	}
	return &TakeScreenshotParameters{Element: element}, nil
}

func (p *TakeScreenshotParameters) ToJSON() map[string]any {
	return map[string]any{"element": p.Element.ToJSON()}
}
