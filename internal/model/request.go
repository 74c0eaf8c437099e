package model

type CreateDeviceRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Location string `json:"location"`
	Health   int    `json:"health"`
}

type CreateWorkOrderRequest struct {
	Title        string `json:"title"`
	DeviceID     string `json:"device_id"`
	Priority     string `json:"priority"`
	Assignee     string `json:"assignee"`
	Reporter     string `json:"reporter"`
	ExpectedTime string `json:"expected_time"`
	Description  string `json:"description"`
	Category     string `json:"category"`
}

type CreateAlertRuleRequest struct {
	Name      string   `json:"name"`
	Condition string   `json:"condition"`
	Level     string   `json:"level"`
	Enabled   bool     `json:"enabled"`
	Actions   []string `json:"actions"`
}

type CreateMaintenanceRequest struct {
	Type              string `json:"type"`
	Description       string `json:"description"`
	Technician        string `json:"technician"`
	EstimatedDuration string `json:"estimated_duration"`
	EstimatedCost     string `json:"estimated_cost"`
	ScheduledDate     string `json:"scheduled_date"`
}

type CreateFolderRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

type StartUploadRequest struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Owner string `json:"owner"`
}

type IntakeRowPatch struct {
	Name  *string  `json:"name,omitempty"`
	Code  *string  `json:"code,omitempty"`
	Qty   *float64 `json:"qty,omitempty"`
	Unit  *string  `json:"unit,omitempty"`
	Price *float64 `json:"price,omitempty"`
	Note  *string  `json:"note,omitempty"`
}
