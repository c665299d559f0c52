package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/config"
	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dto"
	"fleet-ledger-api/internal/event"
	"fleet-ledger-api/internal/logger"
	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/money"
	"fleet-ledger-api/internal/utils/timeutil"
)

type IncomeService struct {
	incomes  IncomeStore
	vehicles VehicleStore
	daily    *DailyStatsService
}

func NewIncomeService(incomes IncomeStore, vehicles VehicleStore, daily *DailyStatsService) *IncomeService {
	return &IncomeService{
		incomes:  incomes,
		vehicles: vehicles,
		daily:    daily,
	}
}

// DeriveAndSave 录入或修改一车一天的营收。派生字段整单重算后落库，
// 返回前同步重算当天日统计，调用方拿到结果时日聚合一定已包含本次写入。
func (s *IncomeService) DeriveAndSave(req dto.SaveIncomeReq, operator string) (dto.IncomeRecordVo, error) {
	var vo dto.IncomeRecordVo

	date, err := timeutil.ParseDate(req.StatDate)
	if err != nil {
		return vo, constant.NewError(constant.CodeIncomeDateInvalid)
	}
	if err := checkBackfill(date); err != nil {
		return vo, err
	}
	vehicle, err := s.activeVehicle(req.VehicleNo)
	if err != nil {
		return vo, err
	}
	rec, err := buildRecord(date, vehicle, entryOf(req), operator)
	if err != nil {
		return vo, err
	}

	unlock := keyLocks.Lock(lockKeyIncome(date))
	defer unlock()

	if existing, err := s.incomes.Get(date, vehicle.VehicleID); err != nil {
		return vo, err
	} else if existing != nil {
		rec.ID = existing.ID
	}
	if err := s.incomes.Save(rec); err != nil {
		return vo, err
	}
	// 写后同步重算，这是契约不是尽力而为
	if _, err := s.daily.RecomputeDay(date); err != nil {
		return vo, err
	}

	logger.AuditIncomeSaved(operator, req.StatDate, vehicle.VehicleNo, rec.Revenue, rec.NetIncome)
	event.PublishIncomeSaved(vehicle.VehicleNo, req.StatDate, rec.Revenue, rec.NetIncome)

	return recordVo(rec), nil
}

// Delete 删除一车一天的营收记录，随后同步重算当天日统计
func (s *IncomeService) Delete(statDate, vehicleNo, operator string) error {
	date, err := timeutil.ParseDate(statDate)
	if err != nil {
		return constant.NewError(constant.CodeIncomeDateInvalid)
	}
	vehicle, err := s.vehicles.GetByNo(vehicleNo)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return constant.NewError(constant.CodeVehicleNotFound)
	}

	unlock := keyLocks.Lock(lockKeyIncome(date))
	defer unlock()

	deleted, err := s.incomes.Delete(date, vehicle.VehicleID)
	if err != nil {
		return err
	}
	if !deleted {
		return constant.NewError(constant.CodeIncomeRecordNotFound)
	}
	if _, err := s.daily.RecomputeDay(date); err != nil {
		return err
	}

	logger.AuditIncomeDeleted(operator, statDate, vehicleNo)
	return nil
}

// SaveBatch 一天多车批量录入：整批一个事务，日统计只在批后重算一次，
// 避免批量导入时按条触发的重复重算。
func (s *IncomeService) SaveBatch(req dto.BatchSaveIncomeReq, operator string) ([]dto.IncomeRecordVo, error) {
	date, err := timeutil.ParseDate(req.StatDate)
	if err != nil {
		return nil, constant.NewError(constant.CodeIncomeDateInvalid)
	}
	if err := checkBackfill(date); err != nil {
		return nil, err
	}
	if len(req.Records) == 0 {
		return nil, constant.NewError(constant.CodeIncomeBatchEmpty)
	}

	seen := make(map[string]bool, len(req.Records))
	recs := make([]*mainmodel.IncomeRecord, 0, len(req.Records))
	for _, entry := range req.Records {
		if seen[entry.VehicleNo] {
			return nil, constant.NewError(constant.CodeInvalidParams).
				WithData("重复车辆: " + entry.VehicleNo)
		}
		seen[entry.VehicleNo] = true

		vehicle, err := s.activeVehicle(entry.VehicleNo)
		if err != nil {
			return nil, err
		}
		rec, err := buildRecord(date, vehicle, entry, operator)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	unlock := keyLocks.Lock(lockKeyIncome(date))
	defer unlock()

	for _, rec := range recs {
		if existing, err := s.incomes.Get(date, rec.VehicleID); err != nil {
			return nil, err
		} else if existing != nil {
			rec.ID = existing.ID
		}
	}
	if err := s.incomes.SaveBatch(recs); err != nil {
		return nil, err
	}
	if _, err := s.daily.RecomputeDay(date); err != nil {
		return nil, err
	}

	vos := make([]dto.IncomeRecordVo, 0, len(recs))
	for _, rec := range recs {
		logger.AuditIncomeSaved(operator, req.StatDate, rec.VehicleNo, rec.Revenue, rec.NetIncome)
		vos = append(vos, recordVo(rec))
	}
	return vos, nil
}

// Get 查询一车一天的营收记录
func (s *IncomeService) Get(statDate, vehicleNo string) (dto.IncomeRecordVo, error) {
	var vo dto.IncomeRecordVo
	date, err := timeutil.ParseDate(statDate)
	if err != nil {
		return vo, constant.NewError(constant.CodeIncomeDateInvalid)
	}
	vehicle, err := s.vehicles.GetByNo(vehicleNo)
	if err != nil {
		return vo, err
	}
	if vehicle == nil {
		return vo, constant.NewError(constant.CodeVehicleNotFound)
	}
	rec, err := s.incomes.Get(date, vehicle.VehicleID)
	if err != nil {
		return vo, err
	}
	if rec == nil {
		return vo, constant.NewError(constant.CodeIncomeRecordNotFound)
	}
	return recordVo(rec), nil
}

func (s *IncomeService) activeVehicle(no string) (*mainmodel.Vehicle, error) {
	vehicle, err := s.vehicles.GetByNo(no)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, constant.NewError(constant.CodeVehicleNotFound)
	}
	if vehicle.Status != mainmodel.VehicleStatusActive {
		return nil, constant.NewError(constant.CodeVehicleInactive)
	}
	return vehicle, nil
}

// lockKeyIncome 单笔、批量、删除共用同一把日期锁，find-then-save 的写入
// 和随后的日统计重算在同一个临界区内完成
func lockKeyIncome(date time.Time) string {
	return "income|" + timeutil.FormatDate(date)
}

// checkBackfill 回填窗口限制，backfillDays 为 0 不限制
func checkBackfill(date time.Time) error {
	days := config.C.Fleet.BackfillDays
	if days <= 0 {
		return nil
	}
	earliest := timeutil.DateOnly(time.Now()).AddDate(0, 0, -days)
	if date.Before(earliest) {
		return constant.NewError(constant.CodeIncomeDateInvalid).
			WithData(fmt.Sprintf("最早可回填日期: %s", timeutil.FormatDate(earliest)))
	}
	return nil
}

func entryOf(req dto.SaveIncomeReq) dto.BatchIncomeEntry {
	return dto.BatchIncomeEntry{
		VehicleNo:     req.VehicleNo,
		Turn1:         req.Turn1,
		Turn2:         req.Turn2,
		Turn3:         req.Turn3,
		Turn4:         req.Turn4,
		Turn5:         req.Turn5,
		WechatAmount:  req.WechatAmount,
		FuelSubsidy:   req.FuelSubsidy,
		RewardPenalty: req.RewardPenalty,
		IsOvertime:    req.IsOvertime,
		Remark:        req.Remark,
	}
}

// buildRecord 金额入口统一截断到一位小数，再整单推导派生字段。
// 营业额 = truncate(五趟合计 + 微信)，空趟按 0 计；
// 净收入 = truncate(营业额 - 补油款 + 奖罚)；
// 趟次数只数第 1-4 趟中大于 0 的槽位，第 5 趟约定不计。
func buildRecord(date time.Time, vehicle *mainmodel.Vehicle, entry dto.BatchIncomeEntry, operator string) (*mainmodel.IncomeRecord, error) {
	turns := [5]decimal.NullDecimal{}
	for i, raw := range []*string{entry.Turn1, entry.Turn2, entry.Turn3, entry.Turn4, entry.Turn5} {
		turn, err := parseNullAmount(raw)
		if err != nil {
			return nil, err
		}
		turns[i] = turn
	}
	wechat, err := parseAmount(entry.WechatAmount)
	if err != nil {
		return nil, err
	}
	fuel, err := parseAmount(entry.FuelSubsidy)
	if err != nil {
		return nil, err
	}
	rewardPenalty, err := parseSignedAmount(entry.RewardPenalty)
	if err != nil {
		return nil, err
	}

	revenue := wechat
	for _, turn := range turns {
		revenue = revenue.Add(money.OrZero(turn))
	}
	revenue = money.Truncate(revenue)
	netIncome := money.Truncate(revenue.Sub(fuel).Add(rewardPenalty))

	turnCount := 0
	for i := 0; i < 4; i++ {
		if turns[i].Valid && turns[i].Decimal.IsPositive() {
			turnCount++
		}
	}

	return &mainmodel.IncomeRecord{
		StatDate:      date,
		VehicleID:     vehicle.VehicleID,
		VehicleNo:     vehicle.VehicleNo,
		Turn1:         turns[0],
		Turn2:         turns[1],
		Turn3:         turns[2],
		Turn4:         turns[3],
		Turn5:         turns[4],
		WechatAmount:  wechat,
		FuelSubsidy:   fuel,
		RewardPenalty: rewardPenalty,
		IsOvertime:    entry.IsOvertime,
		Revenue:       revenue,
		NetIncome:     netIncome,
		TurnCount:     turnCount,
		Operator:      operator,
		Remark:        entry.Remark,
	}, nil
}

// parseNullAmount 可空非负金额，空指针按空值处理
func parseNullAmount(raw *string) (decimal.NullDecimal, error) {
	if raw == nil || *raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := money.FromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, constant.NewError(constant.CodeIncomeAmountInvalid)
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, constant.NewError(constant.CodeIncomeAmountNegative)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// parseAmount 非负金额，空串按 0 计
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := money.FromString(raw)
	if err != nil {
		return decimal.Zero, constant.NewError(constant.CodeIncomeAmountInvalid)
	}
	if d.IsNegative() {
		return decimal.Zero, constant.NewError(constant.CodeIncomeAmountNegative)
	}
	return d, nil
}

// parseSignedAmount 有符号金额（奖罚），空串按 0 计
func parseSignedAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := money.FromString(raw)
	if err != nil {
		return decimal.Zero, constant.NewError(constant.CodeIncomeAmountInvalid)
	}
	return d, nil
}

func recordVo(rec *mainmodel.IncomeRecord) dto.IncomeRecordVo {
	return dto.IncomeRecordVo{
		StatDate:      timeutil.FormatDate(rec.StatDate),
		VehicleNo:     rec.VehicleNo,
		Turn1:         rec.Turn1,
		Turn2:         rec.Turn2,
		Turn3:         rec.Turn3,
		Turn4:         rec.Turn4,
		Turn5:         rec.Turn5,
		WechatAmount:  rec.WechatAmount,
		FuelSubsidy:   rec.FuelSubsidy,
		RewardPenalty: rec.RewardPenalty,
		IsOvertime:    rec.IsOvertime,
		Revenue:       rec.Revenue,
		NetIncome:     rec.NetIncome,
		TurnCount:     rec.TurnCount,
		Operator:      rec.Operator,
		Remark:        rec.Remark,
	}
}
