package request

import "strings"

const (
	fieldEventName   = "event_name"
	fieldLegacyEvent = "event"
)

// EventRequest is a flat JSON object: the event name plus any number of
// properties next to it.
type EventRequest map[string]any

// Name prefers event_name and falls back to the legacy "event" key.
func (r EventRequest) Name() string {
	for _, key := range []string{fieldEventName, fieldLegacyEvent} {
		if v, ok := r[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Properties is the body without the name keys.
func (r EventRequest) Properties() map[string]any {
	props := make(map[string]any, len(r))
	for k, v := range r {
		if k == fieldEventName || k == fieldLegacyEvent {
			continue
		}
		props[k] = v
	}
	return props
}
