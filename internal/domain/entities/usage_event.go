package entities

import "time"

// EventName identifies a usage event. Only allow-listed names are stored.
type EventName string

const (
	EventBulkCSVUploaded         EventName = "bulk_csv_uploaded"
	EventSingleOrderGenerated    EventName = "single_order_generated"
	EventFooterNavigationClicked EventName = "footer_navigation_clicked"
	EventBulkGenerateClicked     EventName = "bulk_generate_clicked"
	EventBulkGenerateSuccess     EventName = "bulk_generate_success"
	EventZipDownloaded           EventName = "zip_downloaded"
	EventBulkLimitHit            EventName = "bulk_limit_hit"
	EventUpgradeCTAViewed        EventName = "upgrade_cta_viewed"
	EventUpgradeCTAClicked       EventName = "upgrade_cta_clicked"
	EventSingleOrderStarted      EventName = "single_order_started"
	EventManualVerification      EventName = "manual_verification_event"

	// Legacy names still sent by older clients.
	EventBulkCSVUploadSuccess EventName = "bulk_csv_upload_success"
	EventSinglePDFGenerated   EventName = "single_pdf_generated"
)

var allowedEvents = map[EventName]struct{}{
	EventBulkCSVUploaded:         {},
	EventSingleOrderGenerated:    {},
	EventFooterNavigationClicked: {},
	EventBulkGenerateClicked:     {},
	EventBulkGenerateSuccess:     {},
	EventZipDownloaded:           {},
	EventBulkLimitHit:            {},
	EventUpgradeCTAViewed:        {},
	EventUpgradeCTAClicked:       {},
	EventSingleOrderStarted:      {},
	EventBulkCSVUploadSuccess:    {},
	EventSinglePDFGenerated:      {},
	EventManualVerification:      {},
}

var legacyEventAliases = map[EventName]EventName{
	EventBulkCSVUploadSuccess: EventBulkCSVUploaded,
	EventSinglePDFGenerated:   EventSingleOrderGenerated,
}

// Allowed reports whether the ingestion boundary accepts the name.
func (n EventName) Allowed() bool {
	_, ok := allowedEvents[n]
	return ok
}

// Canonical maps legacy aliases onto the name used for storage and metrics.
func (n EventName) Canonical() EventName {
	if c, ok := legacyEventAliases[n]; ok {
		return c
	}
	return n
}

type ToolMode string

const (
	ToolModeSingle  ToolMode = "single"
	ToolModeBulk    ToolMode = "bulk"
	ToolModeUnknown ToolMode = "unknown"
)

// ParseToolMode coerces anything outside the enum to ToolModeUnknown.
func ParseToolMode(v string) ToolMode {
	switch ToolMode(v) {
	case ToolModeSingle, ToolModeBulk:
		return ToolMode(v)
	}
	return ToolModeUnknown
}

type LandingContext string

const (
	LandingHome        LandingContext = "home"
	LandingBulkLanding LandingContext = "bulk_landing"
	LandingToolOther   LandingContext = "tool_other"
	LandingUnknown     LandingContext = "unknown"
)

// ParseLandingContext coerces anything outside the enum to LandingUnknown.
func ParseLandingContext(v string) LandingContext {
	switch LandingContext(v) {
	case LandingHome, LandingBulkLanding, LandingToolOther:
		return LandingContext(v)
	}
	return LandingUnknown
}

// UsageEvent is an immutable analytics record.
//
// Properties holds the caller's property bag, minus tool_mode and landing_context,
// serialized as a JSON object.
type UsageEvent struct {
	ID             string         `json:"id"`
	Timestamp      time.Time      `json:"ts"`
	EventName      EventName      `json:"event_name"`
	ToolMode       ToolMode       `json:"tool_mode"`
	LandingContext LandingContext `json:"landing_context"`
	Properties     string         `json:"properties"`
}
