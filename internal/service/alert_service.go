package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-life-guard/internal/aggregate"
	"smart-life-guard/internal/event"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/query"
	"smart-life-guard/internal/store"
	"smart-life-guard/pkg/apierror"
)

// AlertFilter holds display-label filter values; "全部" deactivates one.
type AlertFilter struct {
	Search        string
	LevelLabel    string
	StatusLabel   string
	CategoryLabel string
}

type AlertService struct {
	alerts *store.Store[model.Alert]
	rules  *store.Store[model.AlertRule]
	bus    *event.InMemoryBus
	now    func() time.Time
}

func NewAlertService(alerts *store.Store[model.Alert], rules *store.Store[model.AlertRule], bus *event.InMemoryBus) *AlertService {
	return &AlertService{alerts: alerts, rules: rules, bus: bus, now: time.Now}
}

func (s *AlertService) List(filter AlertFilter) []model.Alert {
	categoryTag := filter.CategoryLabel
	if tag, ok := model.AlertCategoryFromLabel(filter.CategoryLabel); ok {
		categoryTag = tag
	}

	return query.Project(s.alerts.List(),
		query.Text(filter.Search, func(a model.Alert) []string {
			return []string{a.Title, a.DeviceName, a.ID}
		}),
		query.Equal(filter.LevelLabel, func(a model.Alert) string { return a.Level.Label() }),
		query.Equal(filter.StatusLabel, func(a model.Alert) string { return a.Status.Label() }),
		query.Equal(categoryTag, func(a model.Alert) string { return a.Category }),
	)
}

func (s *AlertService) Get(id string) (model.Alert, error) {
	alert, ok := s.alerts.Get(id)
	if !ok {
		return model.Alert{}, model.ErrAlertNotFound
	}
	return alert, nil
}

func (s *AlertService) Stats() model.AlertStats {
	alerts := s.alerts.List()
	byLevel := aggregate.CountBy(alerts, func(a model.Alert) model.AlertLevel { return a.Level })
	byStatus := aggregate.CountBy(alerts, func(a model.Alert) model.AlertStatus { return a.Status })

	return model.AlertStats{
		Total:        len(alerts),
		Critical:     byLevel[model.AlertCritical],
		Warning:      byLevel[model.AlertWarning],
		Info:         byLevel[model.AlertInfo],
		Active:       byStatus[model.AlertActive],
		Acknowledged: byStatus[model.AlertAcknowledged],
		Resolved:     byStatus[model.AlertResolved],
	}
}

// Acknowledge moves an active alert to acknowledged.
func (s *AlertService) Acknowledge(id string) (model.Alert, error) {
	alert, ok := s.alerts.Get(id)
	if !ok {
		return model.Alert{}, model.ErrAlertNotFound
	}
	if alert.Status == model.AlertResolved {
		return model.Alert{}, model.ErrAlreadyResolved
	}

	updated, _ := s.alerts.Update(id, func(a model.Alert) model.Alert {
		a.Status = model.AlertAcknowledged
		a.LastUpdate = s.now().Format("2006-01-02 15:04:05")
		return a
	})
	s.bus.Emit(event.TypeAlertUpdated, updated)
	return updated, nil
}

// Resolve closes an alert from any non-resolved state.
func (s *AlertService) Resolve(id string) (model.Alert, error) {
	alert, ok := s.alerts.Get(id)
	if !ok {
		return model.Alert{}, model.ErrAlertNotFound
	}
	if alert.Status == model.AlertResolved {
		return model.Alert{}, model.ErrAlreadyResolved
	}

	updated, _ := s.alerts.Update(id, func(a model.Alert) model.Alert {
		a.Status = model.AlertResolved
		a.LastUpdate = s.now().Format("2006-01-02 15:04:05")
		return a
	})
	s.bus.Emit(event.TypeAlertUpdated, updated)
	return updated, nil
}

func (s *AlertService) Rules() []model.AlertRule {
	return s.rules.List()
}

// ToggleRule flips a rule's enabled flag.
func (s *AlertService) ToggleRule(id string) (model.AlertRule, error) {
	updated, ok := s.rules.Update(id, func(r model.AlertRule) model.AlertRule {
		r.Enabled = !r.Enabled
		return r
	})
	if !ok {
		return model.AlertRule{}, model.ErrRuleNotFound
	}
	s.bus.Emit(event.TypeRuleToggled, updated)
	return updated, nil
}

func (s *AlertService) CreateRule(req model.CreateAlertRuleRequest) (model.AlertRule, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Condition) == "" {
		missing = append(missing, "condition")
	}
	if len(missing) > 0 {
		return model.AlertRule{}, apierror.New("BAD_REQUEST", "required fields are missing", strings.Join(missing, ", "), http.StatusBadRequest)
	}

	rule := model.AlertRule{
		ID:        "RULE-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:      strings.TrimSpace(req.Name),
		Condition: strings.TrimSpace(req.Condition),
		Level:     strings.TrimSpace(req.Level),
		Enabled:   req.Enabled,
		Actions:   req.Actions,
	}
	s.rules.Add(rule)
	return rule, nil
}

func (s *AlertService) DeleteRule(id string) error {
	if !s.rules.Remove(id) {
		return model.ErrRuleNotFound
	}
	return nil
}
