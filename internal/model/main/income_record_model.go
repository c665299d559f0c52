package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeRecord 一车一天的营收记录，自然键 (stat_date, vehicle_id)。
// revenue/net_income/turn_count 为派生字段，每次写入都整单重算，禁止增量修补。
type IncomeRecord struct {
	ID        uint64    `gorm:"primaryKey"`
	StatDate  time.Time `gorm:"type:date;uniqueIndex:uk_date_vehicle"`
	VehicleID uint64    `gorm:"uniqueIndex:uk_date_vehicle"`
	VehicleNo string    `gorm:"size:32"`

	// 趟次金额，最多五趟，未跑为空。第 5 趟不计入趟次数
	Turn1 decimal.NullDecimal `gorm:"type:decimal(12,1)"`
	Turn2 decimal.NullDecimal `gorm:"type:decimal(12,1)"`
	Turn3 decimal.NullDecimal `gorm:"type:decimal(12,1)"`
	Turn4 decimal.NullDecimal `gorm:"type:decimal(12,1)"`
	Turn5 decimal.NullDecimal `gorm:"type:decimal(12,1)"`

	WechatAmount  decimal.Decimal `gorm:"type:decimal(12,1)"` // 微信收款
	FuelSubsidy   decimal.Decimal `gorm:"type:decimal(12,1)"` // 补油款
	RewardPenalty decimal.Decimal `gorm:"type:decimal(12,1)"` // 奖罚，有符号
	IsOvertime    bool

	// 派生字段
	Revenue   decimal.Decimal `gorm:"type:decimal(12,1)"` // 营业额
	NetIncome decimal.Decimal `gorm:"type:decimal(12,1)"` // 净收入
	TurnCount int

	Operator   string `gorm:"size:64"`
	Remark     string
	CreateTime time.Time `gorm:"autoCreateTime"`
	UpdateTime time.Time `gorm:"autoUpdateTime"`
}

func (IncomeRecord) TableName() string {
	return "v_income_record"
}

// Turns 按槽位顺序返回五趟金额
func (r *IncomeRecord) Turns() [5]decimal.NullDecimal {
	return [5]decimal.NullDecimal{r.Turn1, r.Turn2, r.Turn3, r.Turn4, r.Turn5}
}
