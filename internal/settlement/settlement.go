package settlement

import (
	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/constant"
	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/money"
)

// 月末补款结算的纯计算部分，不碰存储。
// 自动均值 = truncate((全队净收入合计 - 管理员工资) / 活跃车辆数)；
// 生效均值 = 手工修正值（若有），否则自动均值。
// 单车：净收入低于生效均值的车补缴差额（payment_due），高于的收取差额
// （payment_receivable），恰好持平两者皆为 0。auto 与修正两套口径都保留。

// VehicleNet 单车当月净收入
type VehicleNet struct {
	VehicleID uint64
	VehicleNo string
	NetIncome decimal.Decimal
}

// Input 结算输入，Vehicles 按名册顺序
type Input struct {
	TotalNetIncome      decimal.Decimal
	ManagerSalary       decimal.Decimal
	ManualAverageIncome decimal.NullDecimal
	Vehicles            []VehicleNet
}

// Result 结算输出
type Result struct {
	AutoAverageIncome      decimal.Decimal
	EffectiveAverageIncome decimal.Decimal
	Details                []mainmodel.BalanceVehicleDetail
}

// Calculate 计算整月补款。活跃车辆数为 0 时均值无定义，报口径错误而不是静默取 0
func Calculate(in Input) (Result, error) {
	var res Result
	if len(in.Vehicles) == 0 {
		return res, constant.NewError(constant.CodeNoActiveVehicle)
	}

	n := decimal.NewFromInt(int64(len(in.Vehicles)))
	res.AutoAverageIncome = money.DivTruncate(in.TotalNetIncome.Sub(in.ManagerSalary), n)

	if in.ManualAverageIncome.Valid {
		res.EffectiveAverageIncome = money.Truncate(in.ManualAverageIncome.Decimal)
	} else {
		res.EffectiveAverageIncome = res.AutoAverageIncome
	}

	res.Details = make([]mainmodel.BalanceVehicleDetail, 0, len(in.Vehicles))
	for _, v := range in.Vehicles {
		d := mainmodel.BalanceVehicleDetail{
			VehicleID: v.VehicleID,
			VehicleNo: v.VehicleNo,
			NetIncome: v.NetIncome,
		}
		d.AutoPaymentDue, d.AutoPaymentReceivable = split(res.AutoAverageIncome, v.NetIncome)
		d.PaymentDue, d.PaymentReceivable = split(res.EffectiveAverageIncome, v.NetIncome)
		res.Details = append(res.Details, d)
	}
	return res, nil
}

// split 均值与单车净收入的差额拆成补缴/应收
func split(average, net decimal.Decimal) (due, receivable decimal.Decimal) {
	diff := money.Truncate(average.Sub(net))
	switch {
	case diff.IsPositive():
		return diff, decimal.Zero
	case diff.IsNegative():
		return decimal.Zero, diff.Neg()
	default:
		return decimal.Zero, decimal.Zero
	}
}
