package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dto"
	"fleet-ledger-api/internal/event"
	"fleet-ledger-api/internal/logger"
	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/money"
	"fleet-ledger-api/internal/settlement"
	"fleet-ledger-api/internal/utils/timeutil"
)

// BalanceService 月末补款结算，两个状态一个迁移：
// 未保存（每次用当前数据和当前全局工资现算）-> 保存（读取冻结快照）。
// 再次保存会用当下数据整体重算并覆盖快照，这是有意保留的追溯修正行为，
// 保存过的月份没有回到未保存状态的路径。
type BalanceService struct {
	monthly  *MonthlyStatsService
	settings SettingStore
	balances BalanceStore
}

func NewBalanceService(monthly *MonthlyStatsService, settings SettingStore, balances BalanceStore) *BalanceService {
	return &BalanceService{
		monthly:  monthly,
		settings: settings,
		balances: balances,
	}
}

// GetOrCompute 有快照返回快照原值（含冻结工资），没有则用当前全局工资现算
func (s *BalanceService) GetOrCompute(year, month int) (dto.BalanceVo, error) {
	var vo dto.BalanceVo
	if !timeutil.ValidMonth(month) || year <= 0 {
		return vo, constant.NewError(constant.CodeMonthInvalid)
	}

	saved, err := s.balances.Get(year, month)
	if err != nil {
		return vo, err
	}
	if saved != nil {
		return snapshotVo(saved), nil
	}

	salary, err := s.settings.GetManagerSalary()
	if err != nil {
		return vo, err
	}
	return s.compute(year, month, salary, decimal.NullDecimal{})
}

// Preview 试算：用给定工资和手工均值现算，不落库不改全局设置
func (s *BalanceService) Preview(req dto.PreviewBalanceReq) (dto.BalanceVo, error) {
	var vo dto.BalanceVo
	if !timeutil.ValidMonth(req.Month) || req.Year <= 0 {
		return vo, constant.NewError(constant.CodeMonthInvalid)
	}
	salary, manual, err := parseBalanceInput(req.ManagerSalary, req.ManualAverageIncome)
	if err != nil {
		return vo, err
	}
	return s.compute(req.Year, req.Month, salary, manual)
}

// Save 唯一的写操作：工资写回全局设置（影响之后所有未保存月份），
// 用该工资从头重算整月并覆盖 (year, month) 快照。
func (s *BalanceService) Save(req dto.SaveBalanceReq, operator string) (dto.BalanceVo, error) {
	var vo dto.BalanceVo
	if !timeutil.ValidMonth(req.Month) || req.Year <= 0 {
		return vo, constant.NewError(constant.CodeMonthInvalid)
	}
	salary, manual, err := parseBalanceInput(req.ManagerSalary, req.ManualAverageIncome)
	if err != nil {
		return vo, err
	}

	unlock := keyLocks.Lock(lockKeyBalance(req.Year, req.Month))
	defer unlock()
	// 工资读后写和快照覆盖在同一把锁内，两个经办人同时调工资不会丢更新
	unlockSalary := keyLocks.Lock("setting|manager_salary")
	defer unlockSalary()

	if err := s.settings.SetManagerSalary(salary, operator); err != nil {
		return vo, err
	}

	vo, err = s.compute(req.Year, req.Month, salary, manual)
	if err != nil {
		return vo, err
	}

	snapshot := &mainmodel.PaymentBalance{
		Year:                req.Year,
		Month:               req.Month,
		AutoAverageIncome:   vo.AutoAverageIncome,
		ManualAverageIncome: manual,
		ManagerSalary:       salary,
		Operator:            operator,
	}
	_ = copier.Copy(&snapshot.VehicleDetails, &vo.VehicleDetails)
	if existing, err := s.balances.Get(req.Year, req.Month); err != nil {
		return vo, err
	} else if existing != nil {
		snapshot.ID = existing.ID
	}
	if err := s.balances.Upsert(snapshot); err != nil {
		return vo, err
	}

	logger.AuditBalanceSaved(operator, req.Year, req.Month, salary, manual)
	event.PublishBalanceSaved(req.Year, req.Month, operator)

	vo.IsSaved = true
	vo.Operator = operator
	return vo, nil
}

// compute 现算一个月的补款：读月汇总的净收入口径，套用结算纯计算
func (s *BalanceService) compute(year, month int, salary decimal.Decimal, manual decimal.NullDecimal) (dto.BalanceVo, error) {
	var vo dto.BalanceVo

	monthly, err := s.monthly.ComputeMonth(year, month)
	if err != nil {
		return vo, err
	}

	in := settlement.Input{
		TotalNetIncome:      monthly.TotalNetIncome,
		ManagerSalary:       salary,
		ManualAverageIncome: manual,
		Vehicles:            make([]settlement.VehicleNet, 0, len(monthly.Vehicles)),
	}
	for _, v := range monthly.Vehicles {
		in.Vehicles = append(in.Vehicles, settlement.VehicleNet{
			VehicleID: v.VehicleID,
			VehicleNo: v.VehicleNo,
			NetIncome: v.NetIncome,
		})
	}
	res, err := settlement.Calculate(in)
	if err != nil {
		return vo, err
	}

	vo.Year, vo.Month = year, month
	vo.AutoAverageIncome = res.AutoAverageIncome
	vo.EffectiveAverageIncome = res.EffectiveAverageIncome
	vo.ManualAverageIncome = manual
	vo.ManagerSalary = salary
	_ = copier.Copy(&vo.VehicleDetails, &res.Details)
	return vo, nil
}

// snapshotVo 快照原样返回，不碰当前全局工资
func snapshotVo(b *mainmodel.PaymentBalance) dto.BalanceVo {
	vo := dto.BalanceVo{
		Year:                b.Year,
		Month:               b.Month,
		AutoAverageIncome:   b.AutoAverageIncome,
		ManualAverageIncome: b.ManualAverageIncome,
		ManagerSalary:       b.ManagerSalary,
		IsSaved:             true,
		Operator:            b.Operator,
	}
	if b.ManualAverageIncome.Valid {
		vo.EffectiveAverageIncome = b.ManualAverageIncome.Decimal
	} else {
		vo.EffectiveAverageIncome = b.AutoAverageIncome
	}
	_ = copier.Copy(&vo.VehicleDetails, &b.VehicleDetails)
	return vo
}

func parseBalanceInput(salaryRaw string, manualRaw *string) (decimal.Decimal, decimal.NullDecimal, error) {
	salary, err := money.FromString(salaryRaw)
	if err != nil || salary.IsNegative() {
		return decimal.Zero, decimal.NullDecimal{}, constant.NewError(constant.CodeSalaryInvalid)
	}
	manual := decimal.NullDecimal{}
	if manualRaw != nil && *manualRaw != "" {
		d, err := money.FromString(*manualRaw)
		if err != nil {
			return decimal.Zero, decimal.NullDecimal{}, constant.NewError(constant.CodeAverageInvalid)
		}
		manual = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	return salary, manual, nil
}

func lockKeyBalance(year, month int) string {
	return fmt.Sprintf("balance|%d-%02d", year, month)
}
