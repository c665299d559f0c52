package dto

import "github.com/shopspring/decimal"

// BalanceVehicleVo 单车补款明细，auto 与修正两套同时给到前端
type BalanceVehicleVo struct {
	VehicleID uint64          `json:"vehicleId"`
	VehicleNo string          `json:"vehicleNo"`
	NetIncome decimal.Decimal `json:"netIncome"`

	AutoPaymentDue        decimal.Decimal `json:"autoPaymentDue"`
	AutoPaymentReceivable decimal.Decimal `json:"autoPaymentReceivable"`
	PaymentDue            decimal.Decimal `json:"paymentDue"`
	PaymentReceivable     decimal.Decimal `json:"paymentReceivable"`
}

// BalanceVo 补款结算视图。IsSaved 为真时全部字段来自冻结快照
type BalanceVo struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	AutoAverageIncome      decimal.Decimal     `json:"autoAverageIncome"`
	ManualAverageIncome    decimal.NullDecimal `json:"manualAverageIncome"`
	EffectiveAverageIncome decimal.Decimal     `json:"effectiveAverageIncome"`
	ManagerSalary          decimal.Decimal     `json:"managerSalary"`

	VehicleDetails []BalanceVehicleVo `json:"vehicleDetails"`

	IsSaved  bool   `json:"isSaved"`
	Operator string `json:"operator,omitempty"`
}

// PreviewBalanceReq 结算试算，不落库
type PreviewBalanceReq struct {
	Year                int     `json:"year" binding:"required"`
	Month               int     `json:"month" binding:"required"`
	ManagerSalary       string  `json:"managerSalary" binding:"required"`
	ManualAverageIncome *string `json:"manualAverageIncome"`
}

// SaveBalanceReq 结算保存。工资会写回全局设置，快照整体重算后覆盖
type SaveBalanceReq struct {
	Year                int     `json:"year" binding:"required"`
	Month               int     `json:"month" binding:"required"`
	ManagerSalary       string  `json:"managerSalary" binding:"required"`
	ManualAverageIncome *string `json:"manualAverageIncome"`
}
