package dto

// ScheduleEntry 一辆车一个月的售票员指派
type ScheduleEntry struct {
	VehicleNo   string `json:"vehicleNo" binding:"required"`
	ConductorNo string `json:"conductorNo" binding:"required"` // 售票员用车辆编号标识
}

// SaveScheduleReq 整月排班批量保存，整批一个事务
type SaveScheduleReq struct {
	Year    int             `json:"year" binding:"required"`
	Month   int             `json:"month" binding:"required"`
	Entries []ScheduleEntry `json:"entries" binding:"required"`
}

// ScheduleVo 排班视图
type ScheduleVo struct {
	VehicleNo   string `json:"vehicleNo"`
	ConductorNo string `json:"conductorNo"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
}

// VehicleVo 车辆名册条目
type VehicleVo struct {
	VehicleID uint64 `json:"vehicleId"`
	VehicleNo string `json:"vehicleNo"`
	Status    int    `json:"status"`
	SortOrder int    `json:"sortOrder"`
}
