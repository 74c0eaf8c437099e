package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-life-guard/internal/event"
	"smart-life-guard/internal/fixture"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/store"
	"smart-life-guard/pkg/apierror"
)

func newAlertService(t *testing.T) *AlertService {
	t.Helper()

	alerts := store.New(func(a model.Alert) string { return a.ID }, fixture.Alerts())
	rules := store.New(func(r model.AlertRule) string { return r.ID }, fixture.AlertRules())
	s := NewAlertService(alerts, rules, event.NewBus())
	s.now = func() time.Time { return time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC) }
	return s
}

func TestAlertServiceList(t *testing.T) {
	t.Parallel()

	t.Run("level label filter", func(t *testing.T) {
		s := newAlertService(t)
		got := s.List(AlertFilter{LevelLabel: "警告"})
		require.Len(t, got, 2)
		for _, a := range got {
			require.Equal(t, model.AlertWarning, a.Level)
		}
	})

	t.Run("category label translates to the stored tag", func(t *testing.T) {
		s := newAlertService(t)
		got := s.List(AlertFilter{CategoryLabel: "网络"})
		require.Len(t, got, 1)
		require.Equal(t, "ALT-2024-001", got[0].ID)
	})

	t.Run("text search covers title and device name", func(t *testing.T) {
		s := newAlertService(t)
		got := s.List(AlertFilter{Search: "摄像头"})
		require.Len(t, got, 1)
		require.Equal(t, "ALT-2024-002", got[0].ID)
	})

	t.Run("match-all labels return everything", func(t *testing.T) {
		s := newAlertService(t)
		require.Len(t, s.List(AlertFilter{LevelLabel: "全部", StatusLabel: "全部", CategoryLabel: "全部"}), 4)
	})
}

func TestAlertServiceStats(t *testing.T) {
	t.Parallel()

	s := newAlertService(t)
	stats := s.Stats()

	require.Equal(t, 4, stats.Total)
	require.Equal(t, 1, stats.Critical)
	require.Equal(t, 2, stats.Warning)
	require.Equal(t, 1, stats.Info)
	require.Equal(t, stats.Total, stats.Active+stats.Acknowledged+stats.Resolved)
}

func TestAlertServiceTransitions(t *testing.T) {
	t.Parallel()

	t.Run("acknowledge moves an active alert", func(t *testing.T) {
		s := newAlertService(t)
		alert, err := s.Acknowledge("ALT-2024-001")
		require.NoError(t, err)
		require.Equal(t, model.AlertAcknowledged, alert.Status)
		require.Equal(t, "2024-01-15 15:00:00", alert.LastUpdate)
	})

	t.Run("resolve closes an acknowledged alert", func(t *testing.T) {
		s := newAlertService(t)
		alert, err := s.Resolve("ALT-2024-002")
		require.NoError(t, err)
		require.Equal(t, model.AlertResolved, alert.Status)
	})

	t.Run("resolved alerts reject further transitions", func(t *testing.T) {
		s := newAlertService(t)
		_, err := s.Acknowledge("ALT-2024-003")
		require.ErrorIs(t, err, model.ErrAlreadyResolved)
		_, err = s.Resolve("ALT-2024-003")
		require.ErrorIs(t, err, model.ErrAlreadyResolved)
	})

	t.Run("unknown alert", func(t *testing.T) {
		s := newAlertService(t)
		_, err := s.Acknowledge("ALT-2024-404")
		require.ErrorIs(t, err, model.ErrAlertNotFound)
	})
}

func TestAlertServiceRules(t *testing.T) {
	t.Parallel()

	t.Run("toggle flips enabled", func(t *testing.T) {
		s := newAlertService(t)
		rule, err := s.ToggleRule("RULE-003")
		require.NoError(t, err)
		require.True(t, rule.Enabled)

		rule, err = s.ToggleRule("RULE-003")
		require.NoError(t, err)
		require.False(t, rule.Enabled)
	})

	t.Run("create requires name and condition", func(t *testing.T) {
		s := newAlertService(t)
		_, err := s.CreateRule(model.CreateAlertRuleRequest{Name: "温度告警"})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "BAD_REQUEST", apiErr.Code)
	})

	t.Run("create assigns a generated id", func(t *testing.T) {
		s := newAlertService(t)
		rule, err := s.CreateRule(model.CreateAlertRuleRequest{
			Name: "温度告警", Condition: "温度超过40度", Level: "warning", Enabled: true,
		})
		require.NoError(t, err)
		require.Contains(t, rule.ID, "RULE-")
		require.Len(t, s.Rules(), 4)
	})

	t.Run("delete removes the rule", func(t *testing.T) {
		s := newAlertService(t)
		require.NoError(t, s.DeleteRule("RULE-001"))
		require.ErrorIs(t, s.DeleteRule("RULE-001"), model.ErrRuleNotFound)
		require.Len(t, s.Rules(), 2)
	})
}
