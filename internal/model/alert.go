package model

type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
	AlertInfo     AlertLevel = "info"
)

var alertLevelLabels = map[AlertLevel]string{
	AlertCritical: "严重",
	AlertWarning:  "警告",
	AlertInfo:     "信息",
}

func (l AlertLevel) Label() string {
	if label, ok := alertLevelLabels[l]; ok {
		return label
	}
	return LabelUnknown
}

func AlertLevelFromLabel(label string) (AlertLevel, bool) {
	for level, l := range alertLevelLabels {
		if l == label {
			return level, true
		}
	}
	return "", false
}

type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
)

var alertStatusLabels = map[AlertStatus]string{
	AlertActive:       "活跃",
	AlertAcknowledged: "已确认",
	AlertResolved:     "已解决",
}

func (s AlertStatus) Label() string {
	if label, ok := alertStatusLabels[s]; ok {
		return label
	}
	return LabelUnknown
}

func AlertStatusFromLabel(label string) (AlertStatus, bool) {
	for status, l := range alertStatusLabels {
		if l == label {
			return status, true
		}
	}
	return "", false
}

var alertCategoryLabels = map[string]string{
	"network":     "网络",
	"hardware":    "硬件",
	"environment": "环境",
	"power":       "电源",
	"storage":     "存储",
}

// AlertCategoryFromLabel translates a category display label to its tag.
func AlertCategoryFromLabel(label string) (string, bool) {
	for category, l := range alertCategoryLabels {
		if l == label {
			return category, true
		}
	}
	return "", false
}

type Alert struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Level         AlertLevel  `json:"level"`
	Status        AlertStatus `json:"status"`
	DeviceID      string      `json:"device_id"`
	DeviceName    string      `json:"device_name"`
	Location      string      `json:"location"`
	Category      string      `json:"category"`
	Description   string      `json:"description"`
	TriggerTime   string      `json:"trigger_time"`
	LastUpdate    string      `json:"last_update"`
	Assignee      string      `json:"assignee"`
	AffectedUsers int         `json:"affected_users"`
}

type AlertStats struct {
	Total        int `json:"total"`
	Critical     int `json:"critical"`
	Warning      int `json:"warning"`
	Info         int `json:"info"`
	Active       int `json:"active"`
	Acknowledged int `json:"acknowledged"`
	Resolved     int `json:"resolved"`
}

// AlertRule is a user-managed trigger rule. Enabled toggles are in-memory
// only and reset on restart, like everything else in the record stores.
type AlertRule struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Condition string   `json:"condition"`
	Level     string   `json:"level"`
	Enabled   bool     `json:"enabled"`
	Actions   []string `json:"actions"`
}
