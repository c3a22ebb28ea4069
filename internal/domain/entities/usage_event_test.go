package entities

import "testing"

func TestEventName_AllowedAndCanonical(t *testing.T) {
	if !EventBulkCSVUploadSuccess.Allowed() || !EventSinglePDFGenerated.Allowed() {
		t.Fatalf("legacy names must be accepted at the boundary")
	}
	if EventName("page_view").Allowed() {
		t.Fatalf("unexpected name accepted")
	}
	if got := EventBulkCSVUploadSuccess.Canonical(); got != EventBulkCSVUploaded {
		t.Fatalf("expected %s, got %s", EventBulkCSVUploaded, got)
	}
	if got := EventSinglePDFGenerated.Canonical(); got != EventSingleOrderGenerated {
		t.Fatalf("expected %s, got %s", EventSingleOrderGenerated, got)
	}
	if got := EventZipDownloaded.Canonical(); got != EventZipDownloaded {
		t.Fatalf("canonical name must map to itself, got %s", got)
	}
}

func TestParseToolModeAndLandingContext(t *testing.T) {
	if ParseToolMode("bulk") != ToolModeBulk || ParseToolMode("single") != ToolModeSingle {
		t.Fatalf("known tool modes must round-trip")
	}
	if ParseToolMode("") != ToolModeUnknown || ParseToolMode("BULK") != ToolModeUnknown {
		t.Fatalf("unknown tool modes must coerce to unknown")
	}
	if ParseLandingContext("bulk_landing") != LandingBulkLanding {
		t.Fatalf("known landing context must round-trip")
	}
	if ParseLandingContext("pricing") != LandingUnknown {
		t.Fatalf("unknown landing context must coerce to unknown")
	}
}

func TestPackingDocument_Total(t *testing.T) {
	doc := PackingDocument{Items: []PackingItem{
		{Quantity: 2, UnitPrice: 5},
		{Quantity: 1, UnitPrice: 3},
	}}
	if doc.Total() != 13 {
		t.Fatalf("expected 13, got %v", doc.Total())
	}
	if doc.Total() != doc.Total() {
		t.Fatalf("total must be stable across calls")
	}
	if (PackingDocument{}).Total() != 0 {
		t.Fatalf("empty document total must be 0")
	}
}
