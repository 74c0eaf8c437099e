package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-life-guard/internal/aggregate"
	"smart-life-guard/internal/diag"
	"smart-life-guard/internal/event"
	"smart-life-guard/internal/export"
	"smart-life-guard/internal/metrics"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/qr"
	"smart-life-guard/internal/query"
	"smart-life-guard/internal/store"
	"smart-life-guard/pkg/apierror"
)

// DeviceFilter carries the list view's filter state. Type and StatusLabel
// hold display values; "全部" (or empty) deactivates a dimension.
type DeviceFilter struct {
	Search      string
	Type        string
	StatusLabel string
}

type diagRun struct {
	runner *diag.Runner
	cancel context.CancelFunc
}

type DeviceService struct {
	devices     *store.Store[model.Device]
	maintenance *store.Store[model.MaintenanceRecord]
	bus         *event.InMemoryBus
	encoder     *qr.Encoder
	metrics     *metrics.Metrics

	checks      []diag.Check
	diagDelay   time.Duration
	diagSched   diag.Scheduler
	diagOutcome diag.OutcomeSource

	mu   sync.Mutex
	runs map[string]*diagRun
}

func NewDeviceService(
	devices *store.Store[model.Device],
	maintenance *store.Store[model.MaintenanceRecord],
	bus *event.InMemoryBus,
	encoder *qr.Encoder,
	m *metrics.Metrics,
	diagDelay time.Duration,
	diagSched diag.Scheduler,
	diagOutcome diag.OutcomeSource,
) *DeviceService {
	return &DeviceService{
		devices:     devices,
		maintenance: maintenance,
		bus:         bus,
		encoder:     encoder,
		metrics:     m,
		checks:      diag.DefaultChecks(),
		diagDelay:   diagDelay,
		diagSched:   diagSched,
		diagOutcome: diagOutcome,
		runs:        make(map[string]*diagRun),
	}
}

// List returns the filtered projection of the device store, original order
// preserved, with display labels attached.
func (s *DeviceService) List(filter DeviceFilter) []model.Device {
	projected := query.Project(s.devices.List(),
		query.Text(filter.Search, func(d model.Device) []string {
			return []string{d.Name, d.ID, d.Location}
		}),
		query.Equal(filter.Type, func(d model.Device) string { return d.Type }),
		query.Equal(filter.StatusLabel, func(d model.Device) string { return d.Status.Label() }),
	)

	for i := range projected {
		projected[i].StatusLabel = projected[i].Status.Label()
	}
	return projected
}

func (s *DeviceService) Get(id string) (model.Device, error) {
	device, ok := s.devices.Get(id)
	if !ok {
		return model.Device{}, model.ErrDeviceNotFound
	}
	device.StatusLabel = device.Status.Label()
	return device, nil
}

// Create validates and registers a new device. New devices start offline
// until first report.
func (s *DeviceService) Create(req model.CreateDeviceRequest) (model.Device, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(req.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return model.Device{}, apierror.New("BAD_REQUEST", "required fields are missing", strings.Join(missing, ", "), http.StatusBadRequest)
	}

	now := time.Now().Format("2006-01-02")
	device := model.Device{
		ID:          "SLG-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:        strings.TrimSpace(req.Name),
		Type:        strings.TrimSpace(req.Type),
		Brand:       strings.TrimSpace(req.Brand),
		Model:       strings.TrimSpace(req.Model),
		Location:    strings.TrimSpace(req.Location),
		Status:      model.DeviceOffline,
		Health:      model.ClampHealth(req.Health),
		InstallDate: now,
	}
	device.StatusLabel = device.Status.Label()

	s.devices.Add(device)
	s.bus.Emit(event.TypeDeviceCreated, device)
	return device, nil
}

// Stats derives the dashboard tile figures from the full store.
func (s *DeviceService) Stats() model.DeviceStats {
	devices := s.devices.List()
	counts := aggregate.CountBy(devices, func(d model.Device) model.DeviceStatus { return d.Status })

	return model.DeviceStats{
		Total:       len(devices),
		Online:      counts[model.DeviceOnline],
		Offline:     counts[model.DeviceOffline],
		Warning:     counts[model.DeviceWarning],
		Maintenance: counts[model.DeviceMaintenance],
		OnlineRate:  aggregate.Percent(counts[model.DeviceOnline], len(devices)),
	}
}

// HealthOverview summarizes each device type: online rate and mean health,
// zero-guarded for types with no devices.
func (s *DeviceService) HealthOverview() []model.HealthMetric {
	devices := s.devices.List()

	var order []string
	totals := make(map[string]int)
	online := make(map[string]int)
	healthSum := make(map[string]int)

	for _, device := range devices {
		if _, seen := totals[device.Type]; !seen {
			order = append(order, device.Type)
		}
		totals[device.Type]++
		healthSum[device.Type] += model.ClampHealth(device.Health)
		if device.Status == model.DeviceOnline {
			online[device.Type]++
		}
	}

	out := make([]model.HealthMetric, 0, len(order))
	for _, deviceType := range order {
		total := totals[deviceType]
		health := 0
		if total > 0 {
			health = healthSum[deviceType] / total
		}
		out = append(out, model.HealthMetric{
			Label:      deviceType,
			Total:      total,
			Online:     online[deviceType],
			OnlineRate: aggregate.Percent(online[deviceType], total),
			Health:     health,
		})
	}
	return out
}

// ExportCSV renders the filtered device list as CSV text.
func (s *DeviceService) ExportCSV(filter DeviceFilter) string {
	s.metrics.ExportsTotal.Inc()
	return export.DeviceCSV(s.List(filter))
}

func (s *DeviceService) QRPayload(id string) (string, error) {
	device, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return s.encoder.Encode(device)
}

func (s *DeviceService) QRImage(id string, size int) ([]byte, error) {
	device, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.encoder.EncodePNG(device, size)
}

// StartDiagnosis launches the check sequence for a device. A request while
// a run is in progress is rejected; callers poll Diagnosis or follow the
// websocket for progress.
func (s *DeviceService) StartDiagnosis(id string) error {
	device, ok := s.devices.Get(id)
	if !ok {
		return model.ErrDeviceNotFound
	}

	s.mu.Lock()
	run, exists := s.runs[device.ID]
	if exists && run.runner.Running() {
		s.mu.Unlock()
		return model.ErrRunInProgress
	}

	runner := diag.NewRunner(device.ID, s.checks, s.diagDelay, s.diagSched, s.diagOutcome, s.publishDiagEvent)
	ctx, cancel := context.WithCancel(context.Background())
	s.runs[device.ID] = &diagRun{runner: runner, cancel: cancel}
	s.mu.Unlock()

	go func() {
		defer cancel()
		if _, err := runner.Run(ctx); err != nil {
			s.metrics.DiagRunsTotal.WithLabelValues("cancelled").Inc()
			return
		}
		s.metrics.DiagRunsTotal.WithLabelValues("completed").Inc()
	}()

	return nil
}

// CancelDiagnosis stops an in-progress run. Remaining checks stay in the
// checking state and produce no further updates.
func (s *DeviceService) CancelDiagnosis(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[id]
	if !exists || !run.runner.Running() {
		return model.ErrDeviceNotFound
	}
	run.cancel()
	return nil
}

// Diagnosis returns the current run snapshot for a device.
func (s *DeviceService) Diagnosis(id string) (diag.Snapshot, error) {
	if _, ok := s.devices.Get(id); !ok {
		return diag.Snapshot{}, model.ErrDeviceNotFound
	}

	s.mu.Lock()
	run, exists := s.runs[id]
	s.mu.Unlock()

	if !exists {
		return diag.Snapshot{
			DeviceID: id,
			State:    diag.RunIdle,
			Items:    make([]diag.Item, 0),
		}, nil
	}
	return run.runner.Snapshot(), nil
}

func (s *DeviceService) publishDiagEvent(e diag.Event) {
	switch e.Kind {
	case diag.EventRunStarted:
		s.bus.Emit(event.TypeDiagStarted, e)
	case diag.EventCheckStarted, diag.EventCheckCompleted:
		s.bus.Emit(event.TypeDiagProgress, e)
	case diag.EventRunCompleted:
		s.bus.Emit(event.TypeDiagCompleted, e)
	case diag.EventRunCancelled:
		s.bus.Emit(event.TypeDiagCancelled, e)
	}
}

// MaintenanceHistory lists a device's service visits plus their total cost.
func (s *DeviceService) MaintenanceHistory(deviceID string) ([]model.MaintenanceRecord, float64, error) {
	if _, ok := s.devices.Get(deviceID); !ok {
		return nil, 0, model.ErrDeviceNotFound
	}

	records := query.Project(s.maintenance.List(),
		query.Equal(deviceID, func(r model.MaintenanceRecord) string { return r.DeviceID }),
	)

	costs := make([]string, 0, len(records))
	for _, record := range records {
		costs = append(costs, record.Cost)
	}
	return records, aggregate.SumCurrency(costs), nil
}

// AddMaintenance schedules a new service visit for a device.
func (s *DeviceService) AddMaintenance(deviceID string, req model.CreateMaintenanceRequest) (model.MaintenanceRecord, error) {
	if _, ok := s.devices.Get(deviceID); !ok {
		return model.MaintenanceRecord{}, model.ErrDeviceNotFound
	}

	var missing []string
	if strings.TrimSpace(req.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(req.Technician) == "" {
		missing = append(missing, "technician")
	}
	if len(missing) > 0 {
		return model.MaintenanceRecord{}, apierror.New("BAD_REQUEST", "required fields are missing", strings.Join(missing, ", "), http.StatusBadRequest)
	}

	record := model.MaintenanceRecord{
		ID:          fmt.Sprintf("MR-%s", strings.ToUpper(uuid.NewString()[:8])),
		DeviceID:    deviceID,
		Date:        strings.TrimSpace(req.ScheduledDate),
		Type:        strings.TrimSpace(req.Type),
		Status:      model.MaintenanceScheduled,
		Description: strings.TrimSpace(req.Description),
		Technician:  strings.TrimSpace(req.Technician),
		Duration:    strings.TrimSpace(req.EstimatedDuration),
		Cost:        strings.TrimSpace(req.EstimatedCost),
	}
	if record.Date == "" {
		record.Date = time.Now().Format("2006-01-02")
	}

	s.maintenance.Add(record)
	return record, nil
}
