// Package protocol defines the HTTP/JSON protocol spoken by the LightWave LED server.
package protocol

import (
	"net/http"
	"net/url"
)

// DefaultBaseURL is the API root used when nothing else is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// Request describes a single call against the LED server.
// Path is relative to the base URL and always starts with a slash.
type Request struct {
	Method string
	Path   string
	Body   any // marshalled as JSON when non-nil
}

// StartEffectBody is the body of an effect start request.
type StartEffectBody struct {
	Params map[string]any `json:"params"`
}

// ColorBody is the body of a color request.
type ColorBody struct {
	Color string `json:"color"`
}

// BrightnessBody is the body of a brightness request.
type BrightnessBody struct {
	Brightness float64 `json:"brightness"`
}

// ListEffects returns GET /effects.
func ListEffects() *Request {
	return &Request{Method: http.MethodGet, Path: "/effects"}
}

// EffectInfo returns GET /effects/{name}.
func EffectInfo(name string) *Request {
	return &Request{Method: http.MethodGet, Path: "/effects/" + url.PathEscape(name)}
}

// StartEffect returns POST /effects/{name}/start.
// A nil params map is sent as an empty object.
func StartEffect(name string, params map[string]any) *Request {
	if params == nil {
		params = map[string]any{}
	}
	return &Request{
		Method: http.MethodPost,
		Path:   "/effects/" + url.PathEscape(name) + "/start",
		Body:   StartEffectBody{Params: params},
	}
}

// StopEffect returns POST /effects/stop.
func StopEffect() *Request {
	return &Request{Method: http.MethodPost, Path: "/effects/stop"}
}

// RunningEffect returns GET /effects/running.
func RunningEffect() *Request {
	return &Request{Method: http.MethodGet, Path: "/effects/running"}
}

// SetColor returns POST /leds/color. The color string is passed through
// untouched; the server detects its format.
func SetColor(color string) (*Request, error) {
	if color == "" {
		return nil, &ValidationError{Field: "color", Message: "color must not be empty"}
	}
	return &Request{
		Method: http.MethodPost,
		Path:   "/leds/color",
		Body:   ColorBody{Color: color},
	}, nil
}

// SetBrightness returns POST /leds/brightness after checking the value is in [0.0, 1.0].
func SetBrightness(brightness float64) (*Request, error) {
	// NaN fails both comparisons, so test for the valid range instead.
	if !(brightness >= 0 && brightness <= 1) {
		return nil, &ValidationError{Field: "brightness", Message: "brightness must be between 0.0 and 1.0"}
	}
	return &Request{
		Method: http.MethodPost,
		Path:   "/leds/brightness",
		Body:   BrightnessBody{Brightness: brightness},
	}, nil
}

// ClearLEDs returns POST /leds/clear.
func ClearLEDs() *Request {
	return &Request{Method: http.MethodPost, Path: "/leds/clear"}
}

// Status returns GET /status.
func Status() *Request {
	return &Request{Method: http.MethodGet, Path: "/status"}
}
