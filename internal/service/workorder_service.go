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

type WorkOrderFilter struct {
	Search        string
	PriorityLabel string
	StatusLabel   string
	CategoryLabel string
}

var workOrderCategoryLabels = map[string]string{
	"hardware":    "硬件故障",
	"software":    "软件故障",
	"network":     "网络故障",
	"maintenance": "日常维护",
}

func workOrderCategoryFromLabel(label string) (string, bool) {
	for category, l := range workOrderCategoryLabels {
		if l == label {
			return category, true
		}
	}
	return "", false
}

type WorkOrderService struct {
	orders  *store.Store[model.WorkOrder]
	devices *store.Store[model.Device]
	bus     *event.InMemoryBus
	now     func() time.Time
}

func NewWorkOrderService(orders *store.Store[model.WorkOrder], devices *store.Store[model.Device], bus *event.InMemoryBus) *WorkOrderService {
	return &WorkOrderService{orders: orders, devices: devices, bus: bus, now: time.Now}
}

func (s *WorkOrderService) List(filter WorkOrderFilter) []model.WorkOrder {
	categoryTag := filter.CategoryLabel
	if tag, ok := workOrderCategoryFromLabel(filter.CategoryLabel); ok {
		categoryTag = tag
	}

	return query.Project(s.orders.List(),
		query.Text(filter.Search, func(o model.WorkOrder) []string {
			return []string{o.Title, o.ID, o.DeviceName}
		}),
		query.Equal(filter.PriorityLabel, func(o model.WorkOrder) string { return o.Priority.Label() }),
		query.Equal(filter.StatusLabel, func(o model.WorkOrder) string { return o.Status.Label() }),
		query.Equal(categoryTag, func(o model.WorkOrder) string { return o.Category }),
	)
}

func (s *WorkOrderService) Get(id string) (model.WorkOrder, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return model.WorkOrder{}, model.ErrWorkOrderNotFound
	}
	return order, nil
}

// Create validates and files a new work order. Title and description are
// required; submission is blocked with a field-level message otherwise.
func (s *WorkOrderService) Create(req model.CreateWorkOrderRequest) (model.WorkOrder, error) {
	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return model.WorkOrder{}, apierror.New("BAD_REQUEST", "required fields are missing", strings.Join(missing, ", "), http.StatusBadRequest)
	}

	priority := model.WorkOrderPriority(strings.TrimSpace(req.Priority))
	if _, ok := model.WorkOrderPriorityFromLabel(priority.Label()); !ok {
		priority = model.PriorityLow
	}

	order := model.WorkOrder{
		ID:           "WO-" + s.now().Format("2006") + "-" + strings.ToUpper(uuid.NewString()[:8]),
		Title:        strings.TrimSpace(req.Title),
		DeviceID:     strings.TrimSpace(req.DeviceID),
		Priority:     priority,
		Status:       model.WorkOrderPending,
		Assignee:     strings.TrimSpace(req.Assignee),
		Reporter:     strings.TrimSpace(req.Reporter),
		ReportTime:   s.now().Format("2006-01-02 15:04"),
		ExpectedTime: strings.TrimSpace(req.ExpectedTime),
		Description:  strings.TrimSpace(req.Description),
		Category:     strings.TrimSpace(req.Category),
	}

	if device, ok := s.devices.Get(order.DeviceID); ok {
		order.DeviceName = device.Name
		order.Location = device.Location
	}

	s.orders.Add(order)
	s.bus.Emit(event.TypeWorkOrderCreated, order)
	return order, nil
}

func (s *WorkOrderService) Stats() model.WorkOrderStats {
	orders := s.orders.List()
	counts := aggregate.CountBy(orders, func(o model.WorkOrder) model.WorkOrderStatus { return o.Status })

	return model.WorkOrderStats{
		Total:      len(orders),
		Pending:    counts[model.WorkOrderPending],
		InProgress: counts[model.WorkOrderInProgress],
		Completed:  counts[model.WorkOrderCompleted],
		Cancelled:  counts[model.WorkOrderCancelled],
	}
}
