package model

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

var userStatusLabels = map[UserStatus]string{
	UserActive:   "活跃",
	UserInactive: "停用",
}

func (s UserStatus) Label() string {
	if label, ok := userStatusLabels[s]; ok {
		return label
	}
	return LabelUnknown
}

func UserStatusFromLabel(label string) (UserStatus, bool) {
	for status, l := range userStatusLabels {
		if l == label {
			return status, true
		}
	}
	return "", false
}

type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	Department  string     `json:"department"`
	Status      UserStatus `json:"status"`
	LastLogin   string     `json:"last_login"`
	CreateTime  string     `json:"create_time"`
	Permissions []string   `json:"permissions"`
}

type UserStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	UserCount   int      `json:"user_count"`
	Permissions []string `json:"permissions"`
}

// OperationLog records one administrative action for the audit tab.
type OperationLog struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Action string `json:"action"`
	Target string `json:"target"`
	Time   string `json:"time"`
	IP     string `json:"ip"`
	Result string `json:"result"`
}
