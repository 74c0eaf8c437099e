// Package export renders the filtered device list as the CSV the dashboard
// downloads. Fields are joined with plain commas and no quoting, matching
// the exported format exactly; encoding/csv would quote fields and change
// the output on the wire.
package export

import (
	"strings"

	"smart-life-guard/internal/model"
)

var deviceCSVHeader = []string{"设备ID", "设备名称", "设备类型", "位置", "状态", "最后上报时间"}

// exportStatusLabel maps a device status to its CSV label. Anything outside
// online/offline/warning renders as 维护.
func exportStatusLabel(status model.DeviceStatus) string {
	switch status {
	case model.DeviceOnline:
		return "在线"
	case model.DeviceOffline:
		return "离线"
	case model.DeviceWarning:
		return "告警"
	default:
		return "维护"
	}
}

// DeviceCSV returns the CSV text for the given (already filtered) devices:
// one header row plus one row per device.
func DeviceCSV(devices []model.Device) string {
	rows := make([]string, 0, len(devices)+1)
	rows = append(rows, strings.Join(deviceCSVHeader, ","))

	for _, device := range devices {
		fields := []string{
			device.ID,
			device.Name,
			device.Type,
			device.Location,
			exportStatusLabel(device.Status),
			device.LastOnline,
		}
		rows = append(rows, strings.Join(fields, ","))
	}

	return strings.Join(rows, "\n")
}
