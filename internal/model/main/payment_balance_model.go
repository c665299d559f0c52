package mainmodel

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceVehicleDetail 结算快照里单车的应收应付，auto 与 corrected 两套并存。
type BalanceVehicleDetail struct {
	VehicleID uint64          `json:"vehicleId"`
	VehicleNo string          `json:"vehicleNo"`
	NetIncome decimal.Decimal `json:"netIncome"` // 该车当月净收入合计

	// 按自动均值算出的应付/应收
	AutoPaymentDue        decimal.Decimal `json:"autoPaymentDue"`
	AutoPaymentReceivable decimal.Decimal `json:"autoPaymentReceivable"`

	// 按生效均值（手工修正优先）算出的应付/应收
	PaymentDue        decimal.Decimal `json:"paymentDue"`
	PaymentReceivable decimal.Decimal `json:"paymentReceivable"`
}

// BalanceVehicleDetails JSON 列，保持名册顺序
type BalanceVehicleDetails []BalanceVehicleDetail

func (s *BalanceVehicleDetails) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("BalanceVehicleDetails scan failed: %v", value)
	}
	return json.Unmarshal(bytes, s)
}

func (s BalanceVehicleDetails) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// PaymentBalance (year, month) 唯一的结算快照。
// 保存后读取一律返回冻结值（含保存时刻的管理员工资），重新保存会用当前数据
// 从头重算并覆盖，属于有意保留的追溯修正行为。
type PaymentBalance struct {
	ID                  uint64 `gorm:"primaryKey"`
	Year                int    `gorm:"uniqueIndex:uk_year_month"`
	Month               int    `gorm:"uniqueIndex:uk_year_month"`
	AutoAverageIncome   decimal.Decimal       `gorm:"type:decimal(12,1)"`
	ManualAverageIncome decimal.NullDecimal   `gorm:"type:decimal(12,1)"`
	ManagerSalary       decimal.Decimal       `gorm:"type:decimal(12,1)"` // 保存时刻的全局工资，此后冻结
	VehicleDetails      BalanceVehicleDetails `gorm:"type:json"`
	Operator            string                `gorm:"size:64"`
	CreateTime          time.Time             `gorm:"autoCreateTime"`
	UpdateTime          time.Time             `gorm:"autoUpdateTime"`
}

func (PaymentBalance) TableName() string {
	return "v_payment_balance"
}
