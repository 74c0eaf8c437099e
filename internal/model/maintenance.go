package model

type MaintenanceStatus string

const (
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
)

var maintenanceStatusLabels = map[MaintenanceStatus]string{
	MaintenanceCompleted:  "已完成",
	MaintenanceScheduled:  "已安排",
	MaintenanceInProgress: "进行中",
}

func (s MaintenanceStatus) Label() string {
	if label, ok := maintenanceStatusLabels[s]; ok {
		return label
	}
	return LabelUnknown
}

// MaintenanceRecord is one service visit for a device. Cost keeps the
// display form with currency prefix ("￥150"); aggregate parses it.
type MaintenanceRecord struct {
	ID          string            `json:"id"`
	DeviceID    string            `json:"device_id"`
	Date        string            `json:"date"`
	Type        string            `json:"type"`
	Status      MaintenanceStatus `json:"status"`
	Description string            `json:"description"`
	Technician  string            `json:"technician"`
	Duration    string            `json:"duration"`
	Cost        string            `json:"cost"`
	Parts       []string          `json:"parts,omitempty"`
}
