package httpapi

import (
	"net/http"

	"github.com/gowebdriver/webdriverd/internal/protocol"
)

// routeDef binds one protocol route to its HTTP method, chi URL
// pattern and body requirement. Only routes flagged requiresBody have
// their body parsed by the decoder.
type routeDef struct {
	method       string
	pattern      string
	route        protocol.Route
	requiresBody bool
}

var routeDefs = []routeDef{
	{http.MethodPost, "/session", protocol.NewSession, false},
	{http.MethodDelete, "/session/{sessionId}", protocol.DeleteSession, false},
	{http.MethodPost, "/session/{sessionId}/url", protocol.Get, true},
	{http.MethodGet, "/session/{sessionId}/url", protocol.GetCurrentURL, false},
	{http.MethodPost, "/session/{sessionId}/back", protocol.GoBack, false},
	{http.MethodPost, "/session/{sessionId}/forward", protocol.GoForward, false},
	{http.MethodPost, "/session/{sessionId}/refresh", protocol.Refresh, false},
	{http.MethodGet, "/session/{sessionId}/title", protocol.GetTitle, false},
	{http.MethodGet, "/session/{sessionId}/window", protocol.GetWindowHandle, false},
	{http.MethodGet, "/session/{sessionId}/window/handles", protocol.GetWindowHandles, false},
	{http.MethodDelete, "/session/{sessionId}/window", protocol.Close, false},
	{http.MethodPost, "/session/{sessionId}/timeouts", protocol.SetTimeouts, true},
	{http.MethodPost, "/session/{sessionId}/window/size", protocol.SetWindowSize, true},
	{http.MethodGet, "/session/{sessionId}/window/size", protocol.GetWindowSize, false},
	{http.MethodPost, "/session/{sessionId}/window/maximize", protocol.MaximizeWindow, false},
	{http.MethodPost, "/session/{sessionId}/window", protocol.SwitchToWindow, true},
	{http.MethodPost, "/session/{sessionId}/frame", protocol.SwitchToFrame, true},
	{http.MethodPost, "/session/{sessionId}/frame/parent", protocol.SwitchToParentFrame, false},
	{http.MethodPost, "/session/{sessionId}/element", protocol.FindElement, true},
	{http.MethodPost, "/session/{sessionId}/elements", protocol.FindElements, true},
	{http.MethodPost, "/session/{sessionId}/element/{elementId}/element", protocol.FindElementElement, true},
	{http.MethodPost, "/session/{sessionId}/element/{elementId}/elements", protocol.FindElementElements, true},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/displayed", protocol.IsDisplayed, false},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/selected", protocol.IsSelected, false},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/attribute/{name}", protocol.GetElementAttribute, false},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/css/{propertyName}", protocol.GetCSSValue, false},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/text", protocol.GetElementText, false},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/name", protocol.GetElementTagName, false},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/rect", protocol.GetElementRect, false},
	{http.MethodGet, "/session/{sessionId}/element/{elementId}/enabled", protocol.IsEnabled, false},
	{http.MethodPost, "/session/{sessionId}/execute/sync", protocol.ExecuteScript, true},
	{http.MethodPost, "/session/{sessionId}/execute/async", protocol.ExecuteAsyncScript, true},
	{http.MethodGet, "/session/{sessionId}/cookie", protocol.GetCookies, false},
	{http.MethodGet, "/session/{sessionId}/cookie/{name}", protocol.GetCookie, false},
	{http.MethodPost, "/session/{sessionId}/cookie", protocol.AddCookie, true},
	{http.MethodDelete, "/session/{sessionId}/cookie", protocol.DeleteCookies, false},
	{http.MethodDelete, "/session/{sessionId}/cookie/{name}", protocol.DeleteCookie, false},
	{http.MethodPost, "/session/{sessionId}/element/{elementId}/click", protocol.ElementClick, false},
	{http.MethodPost, "/session/{sessionId}/element/{elementId}/tap", protocol.ElementTap, false},
	{http.MethodPost, "/session/{sessionId}/element/{elementId}/clear", protocol.ElementClear, false},
	{http.MethodPost, "/session/{sessionId}/element/{elementId}/value", protocol.ElementSendKeys, true},
	{http.MethodPost, "/session/{sessionId}/alert/dismiss", protocol.DismissAlert, false},
	{http.MethodPost, "/session/{sessionId}/alert/accept", protocol.AcceptAlert, false},
	{http.MethodGet, "/session/{sessionId}/alert/text", protocol.GetAlertText, false},
	{http.MethodPost, "/session/{sessionId}/alert/text", protocol.SendAlertText, true},
	{http.MethodGet, "/session/{sessionId}/screenshot", protocol.TakeScreenshot, false},
}
