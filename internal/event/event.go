package event

type Type string

const (
	TypeDeviceCreated    Type = "device.created"
	TypeDiagStarted      Type = "diag.started"
	TypeDiagProgress     Type = "diag.progress"
	TypeDiagCompleted    Type = "diag.completed"
	TypeDiagCancelled    Type = "diag.cancelled"
	TypeUploadProgress   Type = "upload.progress"
	TypeUploadCompleted  Type = "upload.completed"
	TypeAlertUpdated     Type = "alert.updated"
	TypeRuleToggled      Type = "rule.toggled"
	TypeWorkOrderCreated Type = "workorder.created"
	TypeFileFavorited    Type = "file.favorited"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func())
}
