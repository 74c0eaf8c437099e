package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/model"
	"smart-life-guard/internal/service"
)

type AlertHandler struct {
	service *service.AlertService
}

func NewAlertHandler(service *service.AlertService) *AlertHandler {
	return &AlertHandler{service: service}
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.AlertFilter{
		Search:        strings.TrimSpace(r.URL.Query().Get("q")),
		LevelLabel:    strings.TrimSpace(r.URL.Query().Get("level")),
		StatusLabel:   strings.TrimSpace(r.URL.Query().Get("status")),
		CategoryLabel: strings.TrimSpace(r.URL.Query().Get("category")),
	}

	alerts := h.service.List(filter)
	writeSuccess(w, http.StatusOK, alerts, &model.Meta{Total: len(alerts)})
}

func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	alert, err := h.service.Get(chi.URLParam(r, "alert_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, alert, nil)
}

func (h *AlertHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Stats(), nil)
}

func (h *AlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	alert, err := h.service.Acknowledge(chi.URLParam(r, "alert_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, alert, nil)
}

func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	alert, err := h.service.Resolve(chi.URLParam(r, "alert_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, alert, nil)
}

func (h *AlertHandler) Rules(w http.ResponseWriter, _ *http.Request) {
	rules := h.service.Rules()
	writeSuccess(w, http.StatusOK, rules, &model.Meta{Total: len(rules)})
}

func (h *AlertHandler) ToggleRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.service.ToggleRule(chi.URLParam(r, "rule_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, rule, nil)
}

func (h *AlertHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAlertRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rule, err := h.service.CreateRule(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, rule, nil)
}

func (h *AlertHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRule(chi.URLParam(r, "rule_id")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "deleted"}, nil)
}
