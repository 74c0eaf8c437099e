package model

type WorkOrderPriority string

const (
	PriorityLow    WorkOrderPriority = "low"
	PriorityMedium WorkOrderPriority = "medium"
	PriorityHigh   WorkOrderPriority = "high"
	PriorityUrgent WorkOrderPriority = "urgent"
)

var priorityLabels = map[WorkOrderPriority]string{
	PriorityLow:    "低",
	PriorityMedium: "中",
	PriorityHigh:   "高",
	PriorityUrgent: "紧急",
}

func (p WorkOrderPriority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return LabelUnknown
}

func WorkOrderPriorityFromLabel(label string) (WorkOrderPriority, bool) {
	for priority, l := range priorityLabels {
		if l == label {
			return priority, true
		}
	}
	return "", false
}

type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "pending"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

var workOrderStatusLabels = map[WorkOrderStatus]string{
	WorkOrderPending:    "待派发",
	WorkOrderInProgress: "进行中",
	WorkOrderCompleted:  "已完成",
	WorkOrderCancelled:  "已取消",
}

func (s WorkOrderStatus) Label() string {
	if label, ok := workOrderStatusLabels[s]; ok {
		return label
	}
	return LabelUnknown
}

func WorkOrderStatusFromLabel(label string) (WorkOrderStatus, bool) {
	for status, l := range workOrderStatusLabels {
		if l == label {
			return status, true
		}
	}
	return "", false
}

type WorkOrder struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	DeviceID     string            `json:"device_id"`
	DeviceName   string            `json:"device_name"`
	Location     string            `json:"location"`
	Priority     WorkOrderPriority `json:"priority"`
	Status       WorkOrderStatus   `json:"status"`
	Assignee     string            `json:"assignee"`
	Reporter     string            `json:"reporter"`
	ReportTime   string            `json:"report_time"`
	ExpectedTime string            `json:"expected_time"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
}

type WorkOrderStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}
