package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"packslip/internal/domain/entities"
	mock_interfaces "packslip/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var metricsNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func ev(name entities.EventName, age time.Duration, mode entities.ToolMode, props string) entities.UsageEvent {
	return entities.UsageEvent{
		ID:             string(name) + age.String(),
		Timestamp:      metricsNow.Add(-age),
		EventName:      name,
		ToolMode:       mode,
		LandingContext: entities.LandingUnknown,
		Properties:     props,
	}
}

const day = 24 * time.Hour

func TestCountEvents(t *testing.T) {
	events := []entities.UsageEvent{
		ev(entities.EventBulkCSVUploaded, time.Hour, entities.ToolModeBulk, "{}"),
		ev(entities.EventBulkCSVUploaded, 6*day, entities.ToolModeSingle, "{}"),
		ev(entities.EventBulkCSVUploaded, 7*day, entities.ToolModeBulk, "{}"),
		ev(entities.EventBulkCSVUploaded, 10*day, entities.ToolModeBulk, "{}"),
		ev(entities.EventBulkCSVUploaded, 20*day, entities.ToolModeBulk, "{}"),
		ev(entities.EventZipDownloaded, time.Hour, entities.ToolModeBulk, "{}"),
	}

	if got := CountEvents(events, entities.EventBulkCSVUploaded, 7, metricsNow, nil); got != 3 {
		t.Fatalf("expected 3 in 7d window, got %d", got)
	}
	if got := CountEvents(events, entities.EventBulkCSVUploaded, 14, metricsNow, nil); got != 4 {
		t.Fatalf("expected 4 in 14d window, got %d", got)
	}
	if got := CountEvents(events, entities.EventBulkCSVUploaded, 7, metricsNow, ToolModeIs(entities.ToolModeBulk)); got != 2 {
		t.Fatalf("expected 2 bulk in 7d window, got %d", got)
	}
	if got := CountEvents(events, entities.EventUpgradeCTAClicked, 7, metricsNow, nil); got != 0 {
		t.Fatalf("expected 0 for absent event, got %d", got)
	}
	if got := CountEvents(nil, entities.EventUpgradeCTAClicked, 7, metricsNow, nil); got != 0 {
		t.Fatalf("expected 0 for empty store, got %d", got)
	}
}

func TestOrdersHistogram(t *testing.T) {
	events := []entities.UsageEvent{
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":1}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":3}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":4}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":25}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":50}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":100}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":101}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":0}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":"7"}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{}`),
		ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `not json`),
		ev(entities.EventBulkGenerateSuccess, 8*day, entities.ToolModeBulk, `{"orders_count":2}`),
		ev(entities.EventBulkCSVUploaded, time.Hour, entities.ToolModeBulk, `{"orders_count":2}`),
	}

	buckets := OrdersHistogram(events, entities.EventBulkGenerateSuccess, PropOrdersCount, 7, metricsNow)
	want := map[string]int{"1-3": 2, "4-10": 1, "11-25": 1, "26-50": 1, "51-100": 1}
	if len(buckets) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(buckets))
	}
	order := []string{"1-3", "4-10", "11-25", "26-50", "51-100"}
	for i, b := range buckets {
		if b.Label != order[i] {
			t.Fatalf("bucket %d: expected %s, got %s", i, order[i], b.Label)
		}
		if b.Count != want[b.Label] {
			t.Fatalf("bucket %s: expected %d, got %d", b.Label, want[b.Label], b.Count)
		}
	}

	empty := OrdersHistogram(nil, entities.EventBulkGenerateSuccess, PropOrdersCount, 7, metricsNow)
	for _, b := range empty {
		if b.Count != 0 {
			t.Fatalf("expected empty histogram, got %+v", empty)
		}
	}
}

func TestCountByProperty(t *testing.T) {
	events := []entities.UsageEvent{
		ev(entities.EventFooterNavigationClicked, time.Hour, entities.ToolModeSingle, `{"destination_type":"bulk"}`),
		ev(entities.EventFooterNavigationClicked, time.Hour, entities.ToolModeSingle, `{"destination_type":"single"}`),
		ev(entities.EventFooterNavigationClicked, time.Hour, entities.ToolModeSingle, `{broken`),
		ev(entities.EventFooterNavigationClicked, 9*day, entities.ToolModeSingle, `{"destination_type":"bulk"}`),
	}
	if got := CountByProperty(events, entities.EventFooterNavigationClicked, PropDestinationType, "bulk", 7, metricsNow); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestMetricsUseCase_Dashboard(t *testing.T) {
	t.Run("aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEventRepository(ctrl)
		uc := NewMetricsUseCase(repo)
		uc.now = func() time.Time { return metricsNow }

		landing := ev(entities.EventBulkCSVUploaded, time.Hour, entities.ToolModeBulk, "{}")
		landing.LandingContext = entities.LandingBulkLanding

		repo.EXPECT().List(gomock.Any()).Return([]entities.UsageEvent{
			landing,
			ev(entities.EventBulkCSVUploaded, 10*day, entities.ToolModeBulk, "{}"),
			ev(entities.EventSingleOrderGenerated, time.Hour, entities.ToolModeSingle, "{}"),
			ev(entities.EventSingleOrderGenerated, time.Hour, entities.ToolModeUnknown, "{}"),
			ev(entities.EventBulkGenerateSuccess, time.Hour, entities.ToolModeBulk, `{"orders_count":12}`),
			ev(entities.EventBulkLimitHit, time.Hour, entities.ToolModeBulk, `{"rows_count":150}`),
			ev(entities.EventUpgradeCTAViewed, time.Hour, entities.ToolModeBulk, "{}"),
			ev(entities.EventFooterNavigationClicked, time.Hour, entities.ToolModeBulk, `{"destination_type":"bulk"}`),
			ev(entities.EventFooterNavigationClicked, time.Hour, entities.ToolModeSingle, `{"destination_type":"single"}`),
		}, nil)

		m, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Overview.BulkUploads != (WindowCount{D7: 1, D14: 2}) {
			t.Fatalf("unexpected bulk uploads: %+v", m.Overview.BulkUploads)
		}
		if m.Overview.SingleGenerated != (WindowCount{D7: 1, D14: 1}) {
			t.Fatalf("unexpected single generated: %+v", m.Overview.SingleGenerated)
		}
		if m.Overview.BulkSuccess != (WindowCount{D7: 1, D14: 1}) {
			t.Fatalf("unexpected bulk success: %+v", m.Overview.BulkSuccess)
		}
		if m.BulkFunnel != (BulkFunnelMetrics{Uploaded: 1, LimitHit: 1, Success: 1}) {
			t.Fatalf("unexpected funnel: %+v", m.BulkFunnel)
		}
		if m.UpgradeCTA != (UpgradeCTAMetrics{Viewed: 1}) {
			t.Fatalf("unexpected upgrade cta: %+v", m.UpgradeCTA)
		}
		if m.OrdersDistribution[2].Label != "11-25" || m.OrdersDistribution[2].Count != 1 {
			t.Fatalf("unexpected distribution: %+v", m.OrdersDistribution)
		}
		if m.FooterToBulk != (FooterToBulkMetrics{TotalClicks: 2, ByMode: 1, ByProps: 1}) {
			t.Fatalf("unexpected footer metrics: %+v", m.FooterToBulk)
		}
		if m.BulkLandingContext["bulk_landing"] != 1 || m.BulkLandingContext["unknown"] != 4 {
			t.Fatalf("unexpected landing contexts: %+v", m.BulkLandingContext)
		}
	})

	t.Run("empty store yields zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEventRepository(ctrl)
		uc := NewMetricsUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		m, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Overview.BulkUploads.D7 != 0 || m.FooterToBulk.TotalClicks != 0 {
			t.Fatalf("expected zeros, got %+v", m)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEventRepository(ctrl)
		uc := NewMetricsUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Dashboard(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestMetricsUseCase_Debug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEventRepository(ctrl)
	uc := NewMetricsUseCase(repo)

	var events []entities.UsageEvent
	for i := 0; i < 12; i++ {
		events = append(events, ev(entities.EventZipDownloaded, time.Duration(i)*time.Hour, entities.ToolModeBulk, "{}"))
	}
	footer := ev(entities.EventFooterNavigationClicked, 30*time.Minute, entities.ToolModeSingle, "{}")
	olderFooter := ev(entities.EventFooterNavigationClicked, 5*day, entities.ToolModeSingle, "{}")
	events = append(events, olderFooter, footer)

	repo.EXPECT().List(gomock.Any()).Return(events, nil)
	repo.EXPECT().Name().Return("memory")

	info, err := uc.Debug(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Backend != "memory" || info.TotalEvents != 14 {
		t.Fatalf("unexpected header: %+v", info)
	}
	if len(info.RecentEvents) != 10 {
		t.Fatalf("expected 10 recent events, got %d", len(info.RecentEvents))
	}
	for i := 1; i < len(info.RecentEvents); i++ {
		if info.RecentEvents[i].Timestamp.After(info.RecentEvents[i-1].Timestamp) {
			t.Fatalf("recent events not newest first")
		}
	}
	if info.RecentEvents[1].ID != footer.ID {
		t.Fatalf("expected footer event second, got %s", info.RecentEvents[1].ID)
	}
	if info.LastFooterEvent == nil || info.LastFooterEvent.ID != footer.ID {
		t.Fatalf("unexpected last footer event: %+v", info.LastFooterEvent)
	}
}
