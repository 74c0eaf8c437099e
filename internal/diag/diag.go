// Package diag models the device diagnostic sequence: a fixed list of
// checks processed strictly in order, each ending in a terminal state with
// a synthesized reading, with progress reported after every step.
package diag

// Status is the per-check state machine. Checking is the only non-terminal
// state; a check never transitions again once terminal.
type Status string

const (
	StatusChecking Status = "checking"
	StatusSuccess  Status = "success"
	StatusWarning  Status = "warning"
	StatusError    Status = "error"
)

var statusLabels = map[Status]string{
	StatusChecking: "检测中",
	StatusSuccess:  "正常",
	StatusWarning:  "警告",
	StatusError:    "异常",
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "未知"
}

// Terminal reports whether the check has finished.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusWarning || s == StatusError
}

// RunState is the state machine of a whole diagnostic run.
type RunState string

const (
	RunIdle     RunState = "idle"
	RunRunning  RunState = "running"
	RunComplete RunState = "complete"
)

// Check is one diagnostic step definition.
type Check struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Item is a check plus its current run state.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Value       string `json:"value,omitempty"`
}

// Summary holds the derived figures computed once every item is terminal.
type Summary struct {
	OverallHealth int `json:"overall_health"`
	WarningCount  int `json:"warning_count"`
	ErrorCount    int `json:"error_count"`
}

// DefaultChecks is the standard five-step device health sequence.
func DefaultChecks() []Check {
	return []Check{
		{Name: "CPU性能", Description: "检测处理器运行状态"},
		{Name: "内存使用", Description: "检测内存占用情况"},
		{Name: "网络连接", Description: "检测网络连接稳定性"},
		{Name: "电池状态", Description: "检测电池健康度"},
		{Name: "温度传感器", Description: "检测温度传感器精度"},
	}
}
