package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"smart-life-guard/internal/event"
	"smart-life-guard/internal/fixture"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/service"
	"smart-life-guard/internal/store"
)

func newAlertRouter(t *testing.T) http.Handler {
	t.Helper()

	alerts := store.New(func(a model.Alert) string { return a.ID }, fixture.Alerts())
	rules := store.New(func(r model.AlertRule) string { return r.ID }, fixture.AlertRules())
	svc := service.NewAlertService(alerts, rules, event.NewBus())
	h := NewAlertHandler(svc)

	r := chi.NewRouter()
	r.Route("/api/v1/alerts", func(alerts chi.Router) {
		alerts.Get("/", h.List)
		alerts.Get("/stats", h.Stats)
		alerts.Get("/rules", h.Rules)
		alerts.Post("/rules", h.CreateRule)
		alerts.Post("/rules/{rule_id}/toggle", h.ToggleRule)
		alerts.Delete("/rules/{rule_id}", h.DeleteRule)
		alerts.Post("/{alert_id}/acknowledge", h.Acknowledge)
		alerts.Post("/{alert_id}/resolve", h.Resolve)
	})
	return r
}

func TestAlertHandlerList(t *testing.T) {
	t.Parallel()

	router := newAlertRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/alerts/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 4, envelope.Meta.Total)
}

func TestAlertHandlerTransitions(t *testing.T) {
	t.Parallel()

	router := newAlertRouter(t)

	t.Run("acknowledge an active alert", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/alerts/ALT-2024-001/acknowledge", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var alert model.Alert
		require.NoError(t, json.Unmarshal(envelope.Data, &alert))
		require.Equal(t, model.AlertAcknowledged, alert.Status)
	})

	t.Run("resolved alerts map to 409", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/alerts/ALT-2024-003/resolve", "")
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, "CONFLICT", envelope.Error.Code)
	})

	t.Run("unknown alert maps to 404", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/alerts/ALT-2024-404/resolve", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAlertHandlerRules(t *testing.T) {
	t.Parallel()

	router := newAlertRouter(t)

	t.Run("toggle flips enabled", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/alerts/rules/RULE-003/toggle", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var rule model.AlertRule
		require.NoError(t, json.Unmarshal(envelope.Data, &rule))
		require.True(t, rule.Enabled)
	})

	t.Run("create validates required fields", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/alerts/rules", `{"name":"温度告警"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "BAD_REQUEST", envelope.Error.Code)
	})

	t.Run("delete unknown rule maps to 404", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodDelete, "/api/v1/alerts/rules/RULE-404", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
