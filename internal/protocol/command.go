package protocol

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// Route identifies one WebDriver endpoint. The external router
// resolves a request to a Route; Decode maps it to a command shape.
type Route int

const (
	NewSession Route = iota
	DeleteSession
	Get
	GetCurrentURL
	GoBack
	GoForward
	Refresh
	GetTitle
	GetWindowHandle
	GetWindowHandles
	Close
	SetTimeouts
	SetWindowSize
	GetWindowSize
	MaximizeWindow
	SwitchToWindow
	SwitchToFrame
	SwitchToParentFrame
	FindElement
	FindElements
	FindElementElement
	FindElementElements
	IsDisplayed
	IsSelected
	GetElementAttribute
	GetCSSValue
	GetElementText
	GetElementTagName
	GetElementRect
	IsEnabled
	ExecuteScript
	ExecuteAsyncScript
	GetCookies
	GetCookie
	AddCookie
	DeleteCookies
	DeleteCookie
	ElementClick
	ElementTap
	ElementClear
	ElementSendKeys
	DismissAlert
	AcceptAlert
	GetAlertText
	SendAlertText
	TakeScreenshot
)

var routeNames = [...]string{
	NewSession:          "NewSession",
	DeleteSession:       "DeleteSession",
	Get:                 "Get",
	GetCurrentURL:       "GetCurrentURL",
	GoBack:              "GoBack",
	GoForward:           "GoForward",
	Refresh:             "Refresh",
	GetTitle:            "GetTitle",
	GetWindowHandle:     "GetWindowHandle",
	GetWindowHandles:    "GetWindowHandles",
	Close:               "Close",
	SetTimeouts:         "SetTimeouts",
	SetWindowSize:       "SetWindowSize",
	GetWindowSize:       "GetWindowSize",
	MaximizeWindow:      "MaximizeWindow",
	SwitchToWindow:      "SwitchToWindow",
	SwitchToFrame:       "SwitchToFrame",
	SwitchToParentFrame: "SwitchToParentFrame",
	FindElement:         "FindElement",
	FindElements:        "FindElements",
	FindElementElement:  "FindElementElement",
	FindElementElements: "FindElementElements",
	IsDisplayed:         "IsDisplayed",
	IsSelected:          "IsSelected",
	GetElementAttribute: "GetElementAttribute",
	GetCSSValue:         "GetCSSValue",
	GetElementText:      "GetElementText",
	GetElementTagName:   "GetElementTagName",
	GetElementRect:      "GetElementRect",
	IsEnabled:           "IsEnabled",
	ExecuteScript:       "ExecuteScript",
	ExecuteAsyncScript:  "ExecuteAsyncScript",
	GetCookies:          "GetCookies",
	GetCookie:           "GetCookie",
	AddCookie:           "AddCookie",
	DeleteCookies:       "DeleteCookies",
	DeleteCookie:        "DeleteCookie",
	ElementClick:        "ElementClick",
	ElementTap:          "ElementTap",
	ElementClear:        "ElementClear",
	ElementSendKeys:     "ElementSendKeys",
	DismissAlert:        "DismissAlert",
	AcceptAlert:         "AcceptAlert",
	GetAlertText:        "GetAlertText",
	SendAlertText:       "SendAlertText",
	TakeScreenshot:      "TakeScreenshot",
}

func (r Route) String() string {
	if r < 0 || int(r) >= len(routeNames) {
		return fmt.Sprintf("Route(%d)", int(r))
	}
	return routeNames[r]
}

// Captures is the named-capture lookup the router fills from URL path
// segments (sessionId, elementId, name, propertyName).
type Captures map[string]string

// Name returns the capture under key and whether it is present.
func (c Captures) Name(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

func (c Captures) require(key, missing string) (string, error) {
	v, ok := c[key]
	if !ok {
		return "", NewError(InvalidArgument, missing)
	}
	return v, nil
}

// Command is the decoded, typed form of one WebDriver request. Kind is
// always set; Element, Name and Params are populated only for routes
// that carry them. Immutable once decoded.
type Command struct {
	Kind    Route
	Element *WebElement
	Name    string
	Params  Parameters
}

// Message pairs the session id extracted from the request path with
// exactly one decoded command. This is the unit handed to the
// executor.
type Message struct {
	SessionID string
	Command   Command
}

// Decode turns a matched route, its path captures and the raw request
// body into a Message, or the first classified error encountered. It
// is a pure function of its inputs; when requiresBody is false the
// body is never read.
func Decode(route Route, captures Captures, body string, requiresBody bool) (*Message, error) {
	sessionID, _ := captures.Name("sessionId")
	var bodyData any
	if requiresBody {
		slog.Debug("decoding request body", "route", route.String(), "body", body)
		parsed, err := parseBody(body)
		if err != nil {
			return nil, err
		}
		bodyData = parsed
	}
	cmd, err := decodeCommand(route, captures, bodyData)
	if err != nil {
		return nil, err
	}
	return &Message{SessionID: sessionID, Command: *cmd}, nil
}

// parseBody is the outer body gate: the body must be JSON object
// syntax. Syntax errors and wrong-shape bodies both classify as
// invalid-argument here.
func parseBody(body string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, NewError(InvalidArgument, fmt.Sprintf("Failed to decode request body as json: %s", body))
	}
	if _, ok := asObject(v); !ok {
		return nil, NewError(InvalidArgument, "Body was not a json object")
	}
	return v, nil
}

func elementFromCaptures(captures Captures) (*WebElement, error) {
	id, err := captures.require("elementId", "Missing elementId parameter")
	if err != nil {
		return nil, err
	}
	return &WebElement{ID: id}, nil
}

func paramsCommand[T Parameters](route Route, body any, decode func(any) (T, error)) (*Command, error) {
	p, err := decode(body)
	if err != nil {
		return nil, err
	}
	return &Command{Kind: route, Params: p}, nil
}

func decodeCommand(route Route, captures Captures, body any) (*Command, error) {
	switch route {
	case NewSession, DeleteSession, GetCurrentURL, GoBack, GoForward, Refresh,
		GetTitle, GetWindowHandle, GetWindowHandles, Close, GetWindowSize,
		MaximizeWindow, SwitchToParentFrame, GetCookies, DeleteCookies,
		DismissAlert, AcceptAlert, GetAlertText, TakeScreenshot:
		return &Command{Kind: route}, nil

	case Get:
		return paramsCommand(route, body, decodeGetParameters)
	case SetTimeouts:
		return paramsCommand(route, body, decodeTimeoutsParameters)
	case SetWindowSize:
		return paramsCommand(route, body, decodeWindowSizeParameters)
	case SwitchToWindow:
		return paramsCommand(route, body, decodeSwitchToWindowParameters)
	case SwitchToFrame:
		return paramsCommand(route, body, decodeSwitchToFrameParameters)
	case FindElement, FindElements:
		return paramsCommand(route, body, decodeLocatorParameters)
	case ExecuteScript, ExecuteAsyncScript:
		return paramsCommand(route, body, decodeJavascriptCommandParameters)
	case AddCookie:
		return paramsCommand(route, body, decodeAddCookieParameters)
	case SendAlertText:
		return paramsCommand(route, body, decodeSendAlertTextParameters)

	case FindElementElement, FindElementElements:
		element, err := elementFromCaptures(captures)
		if err != nil {
			return nil, err
		}
		p, err := decodeLocatorParameters(body)
		if err != nil {
			return nil, err
		}
		return &Command{Kind: route, Element: element, Params: p}, nil

	case ElementSendKeys:
		element, err := elementFromCaptures(captures)
		if err != nil {
			return nil, err
		}
		p, err := decodeSendKeysParameters(body)
		if err != nil {
			return nil, err
		}
		return &Command{Kind: route, Element: element, Params: p}, nil

	case IsDisplayed, IsSelected, GetElementText, GetElementTagName,
		GetElementRect, IsEnabled, ElementClick, ElementTap, ElementClear:
		element, err := elementFromCaptures(captures)
		if err != nil {
			return nil, err
		}
		return &Command{Kind: route, Element: element}, nil

	case GetElementAttribute:
		element, err := elementFromCaptures(captures)
		if err != nil {
			return nil, err
		}
		name, err := captures.require("name", "Missing name parameter")
		if err != nil {
			return nil, err
		}
		return &Command{Kind: route, Element: element, Name: name}, nil

	case GetCSSValue:
		element, err := elementFromCaptures(captures)
		if err != nil {
			return nil, err
		}
		property, err := captures.require("propertyName", "Missing propertyName parameter")
		if err != nil {
			return nil, err
		}
		return &Command{Kind: route, Element: element, Name: property}, nil

	case GetCookie, DeleteCookie:
		name, err := captures.require("name", "Missing name parameter")
		if err != nil {
			return nil, err
		}
		return &Command{Kind: route, Name: name}, nil
	}
	return nil, NewError(UnknownError, fmt.Sprintf("Unhandled route %s", route))
}

// ToJSON reconstructs the wire envelope for the command: the record
// under "parameters" when the command carries one, an empty object
// otherwise.
func (m *Message) ToJSON() map[string]any {
	data := map[string]any{}
	if m.Command.Params != nil {
		data["parameters"] = m.Command.Params.ToJSON()
	}
	return data
}
