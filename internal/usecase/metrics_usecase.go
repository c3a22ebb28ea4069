package usecase

import (
	"context"
	"encoding/json"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
	"slices"
	"time"
)

const (
	recentEventsLimit = 10

	PropOrdersCount     = "orders_count"
	PropRowsCount       = "rows_count"
	PropDestinationType = "destination_type"
)

// HistogramBucket is one closed range [Min, Max] of the orders distribution.
type HistogramBucket struct {
	Label string `json:"label"`
	Min   int    `json:"-"`
	Max   int    `json:"-"`
	Count int    `json:"count"`
}

// OrdersBuckets returns a fresh copy of the fixed bucket layout.
func OrdersBuckets() []HistogramBucket {
	return []HistogramBucket{
		{Label: "1-3", Min: 1, Max: 3},
		{Label: "4-10", Min: 4, Max: 10},
		{Label: "11-25", Min: 11, Max: 25},
		{Label: "26-50", Min: 26, Max: 50},
		{Label: "51-100", Min: 51, Max: 100},
	}
}

type WindowCount struct {
	D7  int `json:"d7"`
	D14 int `json:"d14"`
}

type OverviewMetrics struct {
	BulkUploads     WindowCount `json:"bulk_uploads"`
	SingleGenerated WindowCount `json:"single_generated"`
	BulkSuccess     WindowCount `json:"bulk_success"`
}

type BulkFunnelMetrics struct {
	Uploaded        int `json:"csv_uploaded"`
	GenerateClicked int `json:"generate_clicked"`
	LimitHit        int `json:"limit_hit"`
	Success         int `json:"success"`
	ZipDownloaded   int `json:"zip_downloaded"`
}

type UpgradeCTAMetrics struct {
	Viewed  int `json:"viewed"`
	Clicked int `json:"clicked"`
}

type FooterToBulkMetrics struct {
	TotalClicks int `json:"total_clicks"`
	ByMode      int `json:"by_mode"`
	ByProps     int `json:"by_props"`
}

// DashboardMetrics is the aggregate view served to operators.
type DashboardMetrics struct {
	GeneratedAt        time.Time           `json:"generated_at"`
	Overview           OverviewMetrics     `json:"overview"`
	BulkFunnel         BulkFunnelMetrics   `json:"bulk_funnel"`
	UpgradeCTA         UpgradeCTAMetrics   `json:"upgrade_cta"`
	OrdersDistribution []HistogramBucket   `json:"orders_distribution"`
	BulkLandingContext map[string]int      `json:"bulk_landing_context"`
	FooterToBulk       FooterToBulkMetrics `json:"footer_to_bulk"`
}

type DebugInfo struct {
	Backend         string                `json:"backend"`
	TotalEvents     int                   `json:"total_events"`
	RecentEvents    []entities.UsageEvent `json:"recent_events"`
	LastFooterEvent *entities.UsageEvent  `json:"last_footer_event"`
}

// IMetricsUseCase computes dashboard aggregates on read. There is no caching;
// every call scans the full event list once.
type IMetricsUseCase interface {
	Dashboard(ctx context.Context) (DashboardMetrics, error)
	Debug(ctx context.Context) (DebugInfo, error)
}

type MetricsUseCase struct {
	repo interfaces.IEventRepository
	now  func() time.Time
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

func NewMetricsUseCase(repo interfaces.IEventRepository) *MetricsUseCase {
	return &MetricsUseCase{repo: repo, now: time.Now}
}

func (u *MetricsUseCase) Dashboard(ctx context.Context) (DashboardMetrics, error) {
	events, err := u.repo.List(ctx)
	if err != nil {
		return DashboardMetrics{}, err
	}
	now := u.now().UTC()

	bulkMode := ToolModeIs(entities.ToolModeBulk)
	singleMode := ToolModeIs(entities.ToolModeSingle)

	m := DashboardMetrics{GeneratedAt: now}
	m.Overview = OverviewMetrics{
		BulkUploads: WindowCount{
			D7:  CountEvents(events, entities.EventBulkCSVUploaded, 7, now, nil),
			D14: CountEvents(events, entities.EventBulkCSVUploaded, 14, now, nil),
		},
		SingleGenerated: WindowCount{
			D7:  CountEvents(events, entities.EventSingleOrderGenerated, 7, now, singleMode),
			D14: CountEvents(events, entities.EventSingleOrderGenerated, 14, now, singleMode),
		},
		BulkSuccess: WindowCount{
			D7:  CountEvents(events, entities.EventBulkGenerateSuccess, 7, now, bulkMode),
			D14: CountEvents(events, entities.EventBulkGenerateSuccess, 14, now, bulkMode),
		},
	}
	m.BulkFunnel = BulkFunnelMetrics{
		Uploaded:        CountEvents(events, entities.EventBulkCSVUploaded, 7, now, nil),
		GenerateClicked: CountEvents(events, entities.EventBulkGenerateClicked, 7, now, nil),
		LimitHit:        CountEvents(events, entities.EventBulkLimitHit, 7, now, nil),
		Success:         CountEvents(events, entities.EventBulkGenerateSuccess, 7, now, nil),
		ZipDownloaded:   CountEvents(events, entities.EventZipDownloaded, 7, now, nil),
	}
	m.UpgradeCTA = UpgradeCTAMetrics{
		Viewed:  CountEvents(events, entities.EventUpgradeCTAViewed, 7, now, nil),
		Clicked: CountEvents(events, entities.EventUpgradeCTAClicked, 7, now, nil),
	}
	m.OrdersDistribution = OrdersHistogram(events, entities.EventBulkGenerateSuccess, PropOrdersCount, 7, now)
	m.BulkLandingContext = CountLandingContexts(events, entities.ToolModeBulk, 7, now)
	m.FooterToBulk = FooterToBulkMetrics{
		TotalClicks: CountEvents(events, entities.EventFooterNavigationClicked, 7, now, nil),
		ByMode:      CountEvents(events, entities.EventFooterNavigationClicked, 7, now, bulkMode),
		ByProps:     CountByProperty(events, entities.EventFooterNavigationClicked, PropDestinationType, "bulk", 7, now),
	}
	return m, nil
}

func (u *MetricsUseCase) Debug(ctx context.Context) (DebugInfo, error) {
	events, err := u.repo.List(ctx)
	if err != nil {
		return DebugInfo{}, err
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b entities.UsageEvent) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	info := DebugInfo{
		Backend:      u.repo.Name(),
		TotalEvents:  len(events),
		RecentEvents: sorted[:min(recentEventsLimit, len(sorted))],
	}
	for i := range sorted {
		if sorted[i].EventName == entities.EventFooterNavigationClicked {
			ev := sorted[i]
			info.LastFooterEvent = &ev
			break
		}
	}
	return info, nil
}

// ToolModeIs is a CountEvents predicate on the tool mode column.
func ToolModeIs(mode entities.ToolMode) func(entities.UsageEvent) bool {
	return func(e entities.UsageEvent) bool { return e.ToolMode == mode }
}

func inWindow(e entities.UsageEvent, days int, now time.Time) bool {
	since := now.Add(-time.Duration(days) * 24 * time.Hour)
	return !e.Timestamp.Before(since) && !e.Timestamp.After(now)
}

// CountEvents counts events named name inside the last days days, optionally filtered by pred.
func CountEvents(events []entities.UsageEvent, name entities.EventName, days int, now time.Time, pred func(entities.UsageEvent) bool) int {
	n := 0
	for _, e := range events {
		if e.EventName != name || !inWindow(e, days, now) {
			continue
		}
		if pred != nil && !pred(e) {
			continue
		}
		n++
	}
	return n
}

// OrdersHistogram buckets a numeric payload property. Records whose payload is
// not a JSON object, or whose value is missing, non-numeric or out of range, are skipped.
func OrdersHistogram(events []entities.UsageEvent, name entities.EventName, property string, days int, now time.Time) []HistogramBucket {
	buckets := OrdersBuckets()
	for _, e := range events {
		if e.EventName != name || !inWindow(e, days, now) {
			continue
		}
		props, ok := decodeProperties(e.Properties)
		if !ok {
			continue
		}
		v, ok := props[property].(float64)
		if !ok || v <= 0 {
			continue
		}
		for i := range buckets {
			if v <= float64(buckets[i].Max) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// CountByProperty counts events whose payload property is the string value.
func CountByProperty(events []entities.UsageEvent, name entities.EventName, property, value string, days int, now time.Time) int {
	n := 0
	for _, e := range events {
		if e.EventName != name || !inWindow(e, days, now) {
			continue
		}
		props, ok := decodeProperties(e.Properties)
		if !ok {
			continue
		}
		if s, ok := props[property].(string); ok && s == value {
			n++
		}
	}
	return n
}

// CountLandingContexts groups events of one tool mode by landing context.
func CountLandingContexts(events []entities.UsageEvent, mode entities.ToolMode, days int, now time.Time) map[string]int {
	out := make(map[string]int)
	for _, e := range events {
		if e.ToolMode != mode || !inWindow(e, days, now) {
			continue
		}
		out[string(e.LandingContext)]++
	}
	return out
}

func decodeProperties(raw string) (map[string]any, bool) {
	if raw == "" {
		return nil, false
	}
	var props map[string]any
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return nil, false
	}
	return props, true
}
