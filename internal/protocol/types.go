package protocol

import (
	"encoding/json"
	"strings"
)

// EffectSummary is one entry of the effect list.
type EffectSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EffectList is the response of GET /effects.
type EffectList struct {
	Effects []EffectSummary `json:"effects"`
}

// EffectParameter describes one tunable parameter of an effect.
type EffectParameter struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Default     any      `json:"default"`
	MinValue    any      `json:"min_value,omitempty"`
	MaxValue    any      `json:"max_value,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// EffectDetails is the response of GET /effects/{name}.
type EffectDetails struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Parameters  []EffectParameter `json:"parameters"`
}

// EffectStatus is the response of GET /effects/running and GET /status.
type EffectStatus struct {
	Running     bool           `json:"running"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	StartTime   string         `json:"start_time,omitempty"`
	Runtime     *float64       `json:"runtime,omitempty"` // seconds
}

// ErrorResponse is the body the server sends with a non-2xx status.
// Detail is either a plain string or a list of validation entries.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Msg string `json:"msg"`
	Loc []any  `json:"loc"`
}

// Message returns a human-readable form of Detail, or "" when there is none.
func (e *ErrorResponse) Message() string {
	if len(e.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s
	}

	var entries []validationDetail
	if err := json.Unmarshal(e.Detail, &entries); err == nil {
		msgs := make([]string, 0, len(entries))
		for _, d := range entries {
			if d.Msg == "" {
				continue
			}
			msgs = append(msgs, d.Msg)
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
