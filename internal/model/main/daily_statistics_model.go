package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStatistics 日统计，按日期唯一。只由日汇总重算写入，任何时候都是整日重算的结果。
// vehicle_count 是当天有记录的车辆数，均值分母是注册活跃车辆数，两者不同。
type DailyStatistics struct {
	ID               uint64          `gorm:"primaryKey"`
	StatDate         time.Time       `gorm:"type:date;uniqueIndex"`
	TotalRevenue     decimal.Decimal `gorm:"type:decimal(14,1)"`
	TotalNetIncome   decimal.Decimal `gorm:"type:decimal(14,1)"`
	VehicleCount     int
	AverageRevenue   decimal.Decimal `gorm:"type:decimal(12,1)"`
	AverageNetIncome decimal.Decimal `gorm:"type:decimal(12,1)"`
	CreateTime       time.Time       `gorm:"autoCreateTime"`
	UpdateTime       time.Time       `gorm:"autoUpdateTime"`
}

func (DailyStatistics) TableName() string {
	return "v_daily_statistics"
}
