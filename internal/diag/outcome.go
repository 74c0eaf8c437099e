package diag

import (
	"fmt"
	"math/rand"
)

// Outcome is the terminal state chosen for one check plus its display value.
type Outcome struct {
	Status Status
	Value  string
}

// OutcomeSource decides how a check ends. The weighted random source is the
// production default; tests inject deterministic ones.
type OutcomeSource interface {
	Outcome(check Check) Outcome
}

// RandomSource draws a terminal state with configurable error/warning rates
// and synthesizes a reading appropriate to the check's domain.
type RandomSource struct {
	ErrorRate   float64
	WarningRate float64
}

func (s RandomSource) Outcome(check Check) Outcome {
	status := StatusSuccess
	draw := rand.Float64()
	switch {
	case draw < s.ErrorRate:
		status = StatusError
	case draw < s.ErrorRate+s.WarningRate:
		status = StatusWarning
	}

	return Outcome{Status: status, Value: syntheticValue(check.Name)}
}

// syntheticValue mirrors the reading ranges the dashboard displays per
// check: load and charge percentages, network latency, temperature.
func syntheticValue(name string) string {
	switch name {
	case "CPU性能":
		return fmt.Sprintf("%d%%", rand.Intn(30)+10)
	case "内存使用":
		return fmt.Sprintf("%d%%", rand.Intn(40)+40)
	case "网络连接":
		return fmt.Sprintf("%dms", rand.Intn(20)+80)
	case "电池状态":
		return fmt.Sprintf("%d%%", rand.Intn(30)+70)
	case "温度传感器":
		return fmt.Sprintf("%.1f°C", rand.Float64()*10+20)
	default:
		return "良好"
	}
}
