package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"smart-life-guard/internal/diag"
	"smart-life-guard/internal/event"
	"smart-life-guard/internal/fixture"
	"smart-life-guard/internal/metrics"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/qr"
	"smart-life-guard/internal/service"
	"smart-life-guard/internal/store"
)

type successEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *model.Meta     `json:"meta"`
	Error   *model.APIError `json:"error"`
}

func newDeviceRouter(t *testing.T) http.Handler {
	t.Helper()

	devices := store.New(func(d model.Device) string { return d.ID }, fixture.Devices())
	maintenance := store.New(func(m model.MaintenanceRecord) string { return m.ID }, fixture.MaintenanceRecords())
	encoder := qr.NewEncoder("http://localhost:8080", nil)
	svc := service.NewDeviceService(devices, maintenance, event.NewBus(), encoder, metrics.New(),
		time.Millisecond, diag.TimerScheduler{}, diag.RandomSource{})
	h := NewDeviceHandler(svc)

	r := chi.NewRouter()
	r.Route("/api/v1/devices", func(devices chi.Router) {
		devices.Get("/", h.List)
		devices.Post("/", h.Create)
		devices.Get("/stats", h.Stats)
		devices.Get("/export", h.Export)
		devices.Route("/{device_id}", func(device chi.Router) {
			device.Get("/", h.Get)
			device.Get("/qrcode", h.QRPayload)
			device.Get("/maintenance", h.MaintenanceHistory)
		})
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method string, target string, body string) (*httptest.ResponseRecorder, successEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope successEnvelope
	if strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestDeviceHandlerList(t *testing.T) {
	t.Parallel()

	router := newDeviceRouter(t)

	t.Run("full list with meta total", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/devices/", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, envelope.Success)
		require.NotNil(t, envelope.Meta)
		require.Equal(t, 4, envelope.Meta.Total)
	})

	t.Run("status query narrows the list", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/devices/?status=%E5%9C%A8%E7%BA%BF", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 2, envelope.Meta.Total)
	})
}

func TestDeviceHandlerGet(t *testing.T) {
	t.Parallel()

	router := newDeviceRouter(t)

	t.Run("known device", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/devices/SLG-001/", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var device model.Device
		require.NoError(t, json.Unmarshal(envelope.Data, &device))
		require.Equal(t, "智能门锁-A栋101", device.Name)
		require.Equal(t, "在线", device.StatusLabel)
	})

	t.Run("unknown device maps to 404", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/devices/SLG-404/", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.False(t, envelope.Success)
		require.Equal(t, "NOT_FOUND", envelope.Error.Code)
	})
}

func TestDeviceHandlerCreate(t *testing.T) {
	t.Parallel()

	router := newDeviceRouter(t)

	t.Run("missing fields map to 400 with details", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/devices/", `{"name":"新设备"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "BAD_REQUEST", envelope.Error.Code)
		require.Contains(t, envelope.Error.Details, "type")
	})

	t.Run("invalid json maps to 400", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/devices/", `{"name":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid request returns 201", func(t *testing.T) {
		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/devices/",
			`{"name":"智能水表","type":"智能水表","location":"C栋-1层","health":90}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var device model.Device
		require.NoError(t, json.Unmarshal(envelope.Data, &device))
		require.True(t, strings.HasPrefix(device.ID, "SLG-"))
	})
}

func TestDeviceHandlerExport(t *testing.T) {
	t.Parallel()

	router := newDeviceRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")

	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "设备ID,设备名称,设备类型,位置,状态,最后上报时间", lines[0])
}

func TestDeviceHandlerQRPayload(t *testing.T) {
	t.Parallel()

	router := newDeviceRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/devices/SLG-001/qrcode", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]string
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.Contains(t, data["payload"], `"id":"SLG-001"`)
}

func TestDeviceHandlerMaintenance(t *testing.T) {
	t.Parallel()

	router := newDeviceRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/devices/SLG-001/maintenance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 3, envelope.Meta.Total)

	var payload struct {
		TotalCost float64 `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &payload))
	require.Equal(t, 450.0, payload.TotalCost)
}
