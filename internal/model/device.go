package model

// DeviceStatus is the closed set of device lifecycle states.
type DeviceStatus string

const (
	DeviceOnline      DeviceStatus = "online"
	DeviceOffline     DeviceStatus = "offline"
	DeviceWarning     DeviceStatus = "warning"
	DeviceMaintenance DeviceStatus = "maintenance"
)

// LabelUnknown is the fallback display label for any enum value outside its
// known set. Rendering it is always preferred over returning an error.
const LabelUnknown = "未知"

var deviceStatusLabels = map[DeviceStatus]string{
	DeviceOnline:      "在线",
	DeviceOffline:     "离线",
	DeviceWarning:     "告警",
	DeviceMaintenance: "维修中",
}

// Label returns the Chinese display label for the status.
func (s DeviceStatus) Label() string {
	if label, ok := deviceStatusLabels[s]; ok {
		return label
	}
	return LabelUnknown
}

// DeviceStatusFromLabel translates a display label back to its enum tag.
// The second return is false for unrecognized labels.
func DeviceStatusFromLabel(label string) (DeviceStatus, bool) {
	for status, l := range deviceStatusLabels {
		if l == label {
			return status, true
		}
	}
	return "", false
}

type Device struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Brand       string       `json:"brand"`
	Model       string       `json:"model"`
	Location    string       `json:"location"`
	Status      DeviceStatus `json:"status"`
	StatusLabel string       `json:"status_label"`
	Health      int          `json:"health"`
	LastOnline  string       `json:"last_online"`
	InstallDate string       `json:"install_date"`
	Warranty    string       `json:"warranty"`
}

// ClampHealth bounds a health percentage to [0,100]. Fixture data is
// well-formed but values from create requests are not trusted.
func ClampHealth(health int) int {
	if health < 0 {
		return 0
	}
	if health > 100 {
		return 100
	}
	return health
}

// DeviceStats are the dashboard tile figures derived from the full store.
type DeviceStats struct {
	Total       int `json:"total"`
	Online      int `json:"online"`
	Offline     int `json:"offline"`
	Warning     int `json:"warning"`
	Maintenance int `json:"maintenance"`
	OnlineRate  int `json:"online_rate"`
}

// HealthMetric summarizes one device type for the health overview panel.
type HealthMetric struct {
	Label      string `json:"label"`
	Total      int    `json:"total"`
	Online     int    `json:"online"`
	OnlineRate int    `json:"online_rate"`
	Health     int    `json:"health"`
}
