// Package fixture seeds the record stores. The service has no persistence;
// every store starts from these values on boot.
package fixture

import "smart-life-guard/internal/model"

func Devices() []model.Device {
	return []model.Device{
		{
			ID: "SLG-001", Name: "智能门锁-A栋101", Type: "智能门锁",
			Brand: "海康威视", Model: "DS-K1T341AMF", Location: "A栋-1层-101室",
			Status: model.DeviceOnline, Health: 95,
			LastOnline: "2024-01-15 14:30", InstallDate: "2023-08-15", Warranty: "2025-08-15",
		},
		{
			ID: "SLG-002", Name: "监控摄像头-大堂", Type: "监控摄像头",
			Brand: "大华", Model: "DH-IPC-HFW2431T", Location: "A栋-1层-大堂",
			Status: model.DeviceOnline, Health: 92,
			LastOnline: "2024-01-15 14:29", InstallDate: "2023-06-20", Warranty: "2025-06-20",
		},
		{
			ID: "SLG-003", Name: "智能空调-会议室", Type: "智能空调",
			Brand: "格力", Model: "GMV-H120WL/A", Location: "B栋-2层-会议室",
			Status: model.DeviceWarning, Health: 78,
			LastOnline: "2024-01-15 14:28", InstallDate: "2023-05-10", Warranty: "2026-05-10",
		},
		{
			ID: "SLG-004", Name: "烟雾探测器-走廊", Type: "烟雾探测器",
			Brand: "松下", Model: "FP7725", Location: "A栋-3层-走廊",
			Status: model.DeviceOffline, Health: 0,
			LastOnline: "2024-01-14 18:45", InstallDate: "2023-04-15", Warranty: "2028-04-15",
		},
	}
}

// DeviceTypes is the categorical filter option list, sentinel first.
func DeviceTypes() []string {
	return []string{"全部", "智能门锁", "监控摄像头", "智能空调", "烟雾探测器", "智能水表", "充电桩"}
}

func Alerts() []model.Alert {
	return []model.Alert{
		{
			ID: "ALT-2024-001", Title: "智能门锁通信中断",
			Level: model.AlertCritical, Status: model.AlertActive,
			DeviceID: "SLG-001", DeviceName: "智能门锁-A栋101", Location: "A栋-1层-101室",
			Category: "network", Description: "设备与服务器通信中断超过5分钟",
			TriggerTime: "2024-01-15 14:30:25", LastUpdate: "2024-01-15 14:35:12",
			Assignee: "张师傅", AffectedUsers: 1,
		},
		{
			ID: "ALT-2024-002", Title: "监控摄像头存储空间不足",
			Level: model.AlertWarning, Status: model.AlertAcknowledged,
			DeviceID: "SLG-002", DeviceName: "监控摄像头-大堂", Location: "A栋-1层-大堂",
			Category: "storage", Description: "存储空间使用率超过85%",
			TriggerTime: "2024-01-15 12:15:30", LastUpdate: "2024-01-15 12:20:15",
			Assignee: "王师傅", AffectedUsers: 0,
		},
		{
			ID: "ALT-2024-003", Title: "空调系统温度异常",
			Level: model.AlertWarning, Status: model.AlertResolved,
			DeviceID: "SLG-003", DeviceName: "智能空调-会议室", Location: "B栋-2层-会议室",
			Category: "environment", Description: "室内温度超出设定范围2度以上",
			TriggerTime: "2024-01-15 10:45:20", LastUpdate: "2024-01-15 11:30:45",
			Assignee: "陈师傅", AffectedUsers: 8,
		},
		{
			ID: "ALT-2024-004", Title: "烟雾探测器电池电量低",
			Level: model.AlertInfo, Status: model.AlertActive,
			DeviceID: "SLG-004", DeviceName: "烟雾探测器-走廊", Location: "A栋-3层-走廊",
			Category: "power", Description: "设备电池电量低于20%",
			TriggerTime: "2024-01-15 09:30:15", LastUpdate: "2024-01-15 09:30:15",
			Assignee: "刘师傅", AffectedUsers: 12,
		},
	}
}

func AlertRules() []model.AlertRule {
	return []model.AlertRule{
		{
			ID: "RULE-001", Name: "设备离线告警", Condition: "设备离线超过5分钟",
			Level: "critical", Enabled: true, Actions: []string{"通知管理员", "创建工单"},
		},
		{
			ID: "RULE-002", Name: "存储空间告警", Condition: "存储使用率超过85%",
			Level: "warning", Enabled: true, Actions: []string{"通知管理员"},
		},
		{
			ID: "RULE-003", Name: "电池电量告警", Condition: "电池电量低于20%",
			Level: "info", Enabled: false, Actions: []string{"记录日志"},
		},
	}
}

func WorkOrders() []model.WorkOrder {
	return []model.WorkOrder{
		{
			ID: "WO-2024-001", Title: "智能门锁无法识别指纹",
			DeviceID: "SLG-001", DeviceName: "智能门锁-A栋101", Location: "A栋-1层-101室",
			Priority: model.PriorityHigh, Status: model.WorkOrderInProgress,
			Assignee: "张师傅", Reporter: "李女士",
			ReportTime: "2024-01-15 09:30", ExpectedTime: "2024-01-15 16:00",
			Description: "门锁指纹识别模块出现故障，无法正常识别业主指纹", Category: "hardware",
		},
		{
			ID: "WO-2024-002", Title: "监控摄像头画面模糊",
			DeviceID: "SLG-002", DeviceName: "监控摄像头-大堂", Location: "A栋-1层-大堂",
			Priority: model.PriorityMedium, Status: model.WorkOrderPending,
			Assignee: "王师傅", Reporter: "物业管理",
			ReportTime: "2024-01-15 11:15", ExpectedTime: "2024-01-16 10:00",
			Description: "大堂监控摄像头画面出现模糊，需要清洁镜头或调整焦距", Category: "maintenance",
		},
		{
			ID: "WO-2024-003", Title: "智能空调温度控制异常",
			DeviceID: "SLG-003", DeviceName: "智能空调-会议室", Location: "B栋-2层-会议室",
			Priority: model.PriorityMedium, Status: model.WorkOrderCompleted,
			Assignee: "陈师傅", Reporter: "管理员",
			ReportTime: "2024-01-14 14:20", ExpectedTime: "2024-01-15 09:00",
			Description: "会议室空调无法准确控制温度，存在温度偏差", Category: "software",
		},
		{
			ID: "WO-2024-004", Title: "烟雾探测器离线",
			DeviceID: "SLG-004", DeviceName: "烟雾探测器-走廊", Location: "A栋-3层-走廊",
			Priority: model.PriorityHigh, Status: model.WorkOrderCancelled,
			Assignee: "刘师傅", Reporter: "系统自动",
			ReportTime: "2024-01-14 18:45", ExpectedTime: "2024-01-15 08:00",
			Description: "烟雾探测器设备离线，需要检查电源和网络连接", Category: "network",
		},
	}
}

func Users() []model.User {
	return []model.User{
		{
			ID: "USR-001", Name: "张明", Email: "zhang.ming@smartlife.com", Phone: "13812345678",
			Role: "系统管理员", Department: "技术部", Status: model.UserActive,
			LastLogin: "2024-01-15 14:30", CreateTime: "2023-06-15 10:00",
			Permissions: []string{"设备管理", "用户管理", "系统设置", "告警管理"},
		},
		{
			ID: "USR-002", Name: "李芳", Email: "li.fang@smartlife.com", Phone: "13987654321",
			Role: "维修主管", Department: "维修部", Status: model.UserActive,
			LastLogin: "2024-01-15 12:15", CreateTime: "2023-08-20 09:30",
			Permissions: []string{"工单管理", "设备管理", "告警管理"},
		},
		{
			ID: "USR-003", Name: "王师傅", Email: "wang.shifu@smartlife.com", Phone: "13765432198",
			Role: "维修员", Department: "维修部", Status: model.UserActive,
			LastLogin: "2024-01-15 11:45", CreateTime: "2023-09-10 14:20",
			Permissions: []string{"工单处理", "设备查看"},
		},
		{
			ID: "USR-004", Name: "陈经理", Email: "chen.jingli@smartlife.com", Phone: "13654321987",
			Role: "社区管理员", Department: "物业部", Status: model.UserInactive,
			LastLogin: "2024-01-10 16:20", CreateTime: "2023-07-05 11:10",
			Permissions: []string{"设备查看", "报告查看"},
		},
	}
}

func Roles() []model.Role {
	return []model.Role{
		{
			ID: "role-001", Name: "系统管理员", Description: "拥有系统全部权限", UserCount: 2,
			Permissions: []string{"设备管理", "用户管理", "系统设置", "告警管理", "工单管理", "数据分析"},
		},
		{
			ID: "role-002", Name: "维修主管", Description: "负责维修工单管理和设备维护", UserCount: 3,
			Permissions: []string{"工单管理", "设备管理", "告警管理", "维修员管理"},
		},
		{
			ID: "role-003", Name: "维修员", Description: "执行维修任务和设备检查", UserCount: 12,
			Permissions: []string{"工单处理", "设备查看", "上传报告"},
		},
		{
			ID: "role-004", Name: "社区管理员", Description: "查看社区设备状态和数据报告", UserCount: 8,
			Permissions: []string{"设备查看", "报告查看", "数据导出"},
		},
	}
}

func OperationLogs() []model.OperationLog {
	return []model.OperationLog{
		{ID: "LOG-001", User: "张明", Action: "创建用户", Target: "李芳", Time: "2024-01-15 14:25", IP: "192.168.1.100", Result: "成功"},
		{ID: "LOG-002", User: "李芳", Action: "分配工单", Target: "WO-2024-001", Time: "2024-01-15 13:40", IP: "192.168.1.101", Result: "成功"},
		{ID: "LOG-003", User: "王师傅", Action: "更新设备状态", Target: "SLG-001", Time: "2024-01-15 12:30", IP: "192.168.1.102", Result: "成功"},
	}
}

func Files() []model.FileItem {
	return []model.FileItem{
		{
			ID: "1", Name: "设备配置文档", Kind: model.KindFolder,
			ModifiedDate: "2024-01-15", Owner: "张三", Permissions: "管理员",
			Favorite: true, Shared: false,
		},
		{
			ID: "2", Name: "系统日志_20240115.txt", Kind: model.KindFile, FileType: model.FileDocument,
			Size: "2.5 MB", ModifiedDate: "2024-01-15", Owner: "系统", Permissions: "只读",
			Favorite: false, Shared: true,
		},
		{
			ID: "3", Name: "设备图片库", Kind: model.KindFolder,
			ModifiedDate: "2024-01-14", Owner: "李四", Permissions: "编辑",
			Favorite: false, Shared: true,
		},
		{
			ID: "4", Name: "监控视频_001.mp4", Kind: model.KindFile, FileType: model.FileVideo,
			Size: "45.2 MB", ModifiedDate: "2024-01-14", Owner: "王五", Permissions: "编辑",
			Favorite: true, Shared: false,
		},
		{
			ID: "5", Name: "用户手册.pdf", Kind: model.KindFile, FileType: model.FileDocument,
			Size: "8.7 MB", ModifiedDate: "2024-01-13", Owner: "张三", Permissions: "管理员",
			Favorite: false, Shared: true,
		},
	}
}

func MaintenanceRecords() []model.MaintenanceRecord {
	return []model.MaintenanceRecord{
		{
			ID: "MR-001", DeviceID: "SLG-001", Date: "2024-01-10", Type: "定期维护",
			Status: model.MaintenanceCompleted, Description: "更换电池，清理传感器，检查连接线路",
			Technician: "张工程师", Duration: "2小时", Cost: "￥150",
			Parts: []string{"电池", "清洁套件"},
		},
		{
			ID: "MR-002", DeviceID: "SLG-001", Date: "2023-12-15", Type: "故障维修",
			Status: model.MaintenanceCompleted, Description: "修复网络连接问题，更新固件版本",
			Technician: "李技师", Duration: "1.5小时", Cost: "￥200",
			Parts: []string{"网络模块"},
		},
		{
			ID: "MR-003", DeviceID: "SLG-001", Date: "2023-11-20", Type: "预防性维护",
			Status: model.MaintenanceCompleted, Description: "系统健康检查，数据备份，性能优化",
			Technician: "王工程师", Duration: "1小时", Cost: "￥100",
		},
	}
}
