package dao

import (
	"errors"

	"gorm.io/gorm"

	"fleet-ledger-api/internal/dal"
	mainmodel "fleet-ledger-api/internal/model/main"
)

type VehicleDao struct{}

// ListActive 活跃车辆名册，按名册顺序返回
func (r *VehicleDao) ListActive() ([]mainmodel.Vehicle, error) {
	var list []mainmodel.Vehicle
	if err := dal.MainDB.Where("status=?", mainmodel.VehicleStatusActive).
		Order("sort_order, vehicle_no").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetByNo 按车牌编号查询，不存在返回 nil
func (r *VehicleDao) GetByNo(no string) (*mainmodel.Vehicle, error) {
	var m mainmodel.Vehicle
	err := dal.MainDB.Where("vehicle_no=?", no).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
