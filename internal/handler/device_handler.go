package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/model"
	"smart-life-guard/internal/service"
)

type DeviceHandler struct {
	service *service.DeviceService
}

func NewDeviceHandler(service *service.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

func deviceFilterFromQuery(r *http.Request) service.DeviceFilter {
	return service.DeviceFilter{
		Search:      strings.TrimSpace(r.URL.Query().Get("q")),
		Type:        strings.TrimSpace(r.URL.Query().Get("type")),
		StatusLabel: strings.TrimSpace(r.URL.Query().Get("status")),
	}
}

func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	devices := h.service.List(deviceFilterFromQuery(r))
	writeSuccess(w, http.StatusOK, devices, &model.Meta{Total: len(devices)})
}

func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	device, err := h.service.Get(chi.URLParam(r, "device_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, device, nil)
}

func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDeviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	device, err := h.service.Create(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, device, nil)
}

func (h *DeviceHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Stats(), nil)
}

func (h *DeviceHandler) HealthOverview(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.HealthOverview(), nil)
}

// Export streams the filtered device list as a CSV download.
func (h *DeviceHandler) Export(w http.ResponseWriter, r *http.Request) {
	csv := h.service.ExportCSV(deviceFilterFromQuery(r))

	filename := fmt.Sprintf("设备列表_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

func (h *DeviceHandler) QRPayload(w http.ResponseWriter, r *http.Request) {
	payload, err := h.service.QRPayload(chi.URLParam(r, "device_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"payload": payload}, nil)
}

func (h *DeviceHandler) QRImage(w http.ResponseWriter, r *http.Request) {
	size := parseIntOrDefault(r.URL.Query().Get("size"), 200)
	png, err := h.service.QRImage(chi.URLParam(r, "device_id"), size)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *DeviceHandler) StartDiagnosis(w http.ResponseWriter, r *http.Request) {
	if err := h.service.StartDiagnosis(chi.URLParam(r, "device_id")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusAccepted, map[string]string{"status": "started"}, nil)
}

func (h *DeviceHandler) CancelDiagnosis(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelDiagnosis(chi.URLParam(r, "device_id")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "cancelled"}, nil)
}

func (h *DeviceHandler) Diagnosis(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Diagnosis(chi.URLParam(r, "device_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, snapshot, nil)
}

func (h *DeviceHandler) MaintenanceHistory(w http.ResponseWriter, r *http.Request) {
	records, totalCost, err := h.service.MaintenanceHistory(chi.URLParam(r, "device_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"records":    records,
		"total_cost": totalCost,
	}, &model.Meta{Total: len(records)})
}

func (h *DeviceHandler) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	record, err := h.service.AddMaintenance(chi.URLParam(r, "device_id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, record, nil)
}
