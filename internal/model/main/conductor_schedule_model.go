package mainmodel

import "time"

// ConductorSchedule 售票员排班，(vehicle_id, year, month) 唯一。
// 售票员用另一辆车的 ID 标识，不允许指到本车。
type ConductorSchedule struct {
	ID          uint64 `gorm:"primaryKey"`
	VehicleID   uint64 `gorm:"uniqueIndex:uk_vehicle_year_month"`
	VehicleNo   string `gorm:"size:32"`
	Year        int    `gorm:"uniqueIndex:uk_vehicle_year_month"`
	Month       int    `gorm:"uniqueIndex:uk_vehicle_year_month"`
	ConductorID uint64
	ConductorNo string    `gorm:"size:32"`
	Operator    string    `gorm:"size:64"`
	CreateTime  time.Time `gorm:"autoCreateTime"`
	UpdateTime  time.Time `gorm:"autoUpdateTime"`
}

func (ConductorSchedule) TableName() string {
	return "v_conductor_schedule"
}
