package protocol

import (
	"encoding/json"
	"math"
	"strconv"
)

// Probes over the generic JSON tree produced by parsing a request
// body. Bodies are parsed with json.Decoder.UseNumber, so numbers
// arrive as json.Number; plain float64 trees from json.Unmarshal are
// accepted too.

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// bodyObject re-checks that a validator's input is a JSON object.
func bodyObject(body any) (map[string]any, error) {
	data, ok := asObject(body)
	if !ok {
		return nil, NewError(UnknownError, "Message body was not an object")
	}
	return data, nil
}

// requiredField returns the value under key or fails invalid-argument
// with the given message.
func requiredField(data map[string]any, key, missing string) (any, error) {
	v, ok := data[key]
	if !ok {
		return nil, NewError(InvalidArgument, missing)
	}
	return v, nil
}

func stringValue(v any, msg string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", NewError(InvalidArgument, msg)
	}
	return s, nil
}

func boolValue(v any, msg string) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, NewError(InvalidArgument, msg)
	}
	return b, nil
}

func arrayValue(v any, msg string) ([]any, error) {
	a, ok := v.([]any)
	if !ok {
		return nil, NewError(InvalidArgument, msg)
	}
	return a, nil
}

func floatValue(v any, msg string) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, NewError(InvalidArgument, msg)
		}
		return f, nil
	case float64:
		return n, nil
	}
	return 0, NewError(InvalidArgument, msg)
}

// uintValue accepts only non-negative integral numbers.
func uintValue(v any, msg string) (uint64, error) {
	switch n := v.(type) {
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, NewError(InvalidArgument, msg)
		}
		return u, nil
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, NewError(InvalidArgument, msg)
		}
		return uint64(n), nil
	}
	return 0, NewError(InvalidArgument, msg)
}

func requiredString(data map[string]any, key, missing, wrongType string) (string, error) {
	raw, err := requiredField(data, key, missing)
	if err != nil {
		return "", err
	}
	return stringValue(raw, wrongType)
}

func requiredFloat(data map[string]any, key, missing, wrongType string) (float64, error) {
	raw, err := requiredField(data, key, missing)
	if err != nil {
		return 0, err
	}
	return floatValue(raw, wrongType)
}

func requiredUint(data map[string]any, key, missing, wrongType string) (uint64, error) {
	raw, err := requiredField(data, key, missing)
	if err != nil {
		return 0, err
	}
	return uintValue(raw, wrongType)
}

// optionalBool returns def when the key is absent.
func optionalBool(data map[string]any, key string, def bool, wrongType string) (bool, error) {
	raw, ok := data[key]
	if !ok {
		return def, nil
	}
	return boolValue(raw, wrongType)
}
