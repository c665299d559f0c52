package mainmodel

import "time"

const (
	VehicleStatusActive   = 1 // 营运中
	VehicleStatusInactive = 0 // 已停运
)

type Vehicle struct {
	VehicleID  uint64 `gorm:"primaryKey"`
	VehicleNo  string `gorm:"size:32;uniqueIndex"` // 车牌编号，如 562
	Status     int    `gorm:"default:1"`
	SortOrder  int    // 名册展示顺序，排行榜无收入尾部按此排序
	Remark     string
	CreateTime time.Time `gorm:"autoCreateTime"`
	UpdateTime time.Time `gorm:"autoUpdateTime"`
}

func (Vehicle) TableName() string {
	return "v_vehicle"
}
