package service

import (
	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dto"
	"fleet-ledger-api/internal/money"
)

type SettingService struct {
	settings SettingStore
}

func NewSettingService(settings SettingStore) *SettingService {
	return &SettingService{settings: settings}
}

// GetManagerSalary 读当前全局管理员工资（已保存快照里的工资不受其影响）
func (s *SettingService) GetManagerSalary() (decimal.Decimal, error) {
	return s.settings.GetManagerSalary()
}

// SetManagerSalary 改全局工资，和结算保存共用一把锁，避免并发丢更新
func (s *SettingService) SetManagerSalary(raw string, operator string) (decimal.Decimal, error) {
	salary, err := money.FromString(raw)
	if err != nil || salary.IsNegative() {
		return decimal.Zero, constant.NewError(constant.CodeSalaryInvalid)
	}
	unlock := keyLocks.Lock("setting|manager_salary")
	defer unlock()
	if err := s.settings.SetManagerSalary(salary, operator); err != nil {
		return decimal.Zero, err
	}
	return salary, nil
}

type VehicleService struct {
	vehicles VehicleStore
}

func NewVehicleService(vehicles VehicleStore) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// ListActive 活跃车辆名册，名册顺序即榜单无收入尾部的顺序
func (s *VehicleService) ListActive() ([]dto.VehicleVo, error) {
	vehicles, err := s.vehicles.ListActive()
	if err != nil {
		return nil, err
	}
	vos := make([]dto.VehicleVo, 0, len(vehicles))
	for _, v := range vehicles {
		vos = append(vos, dto.VehicleVo{
			VehicleID: v.VehicleID,
			VehicleNo: v.VehicleNo,
			Status:    v.Status,
			SortOrder: v.SortOrder,
		})
	}
	return vos, nil
}
