package dao

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fleet-ledger-api/internal/dal"
	"fleet-ledger-api/internal/idgen"
	mainmodel "fleet-ledger-api/internal/model/main"
)

type IncomeDao struct{}

// Get 查询一车一天的营收记录，不存在返回 nil
func (r *IncomeDao) Get(date time.Time, vehicleID uint64) (*mainmodel.IncomeRecord, error) {
	var m mainmodel.IncomeRecord
	err := dal.MainDB.Where("stat_date=? AND vehicle_id=?", date, vehicleID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByDate 查询某天全部营收记录
func (r *IncomeDao) ListByDate(date time.Time) ([]mainmodel.IncomeRecord, error) {
	var list []mainmodel.IncomeRecord
	if err := dal.MainDB.Where("stat_date=?", date).Order("vehicle_no").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListByRange 查询日期区间（含两端）的营收记录
func (r *IncomeDao) ListByRange(from, to time.Time) ([]mainmodel.IncomeRecord, error) {
	var list []mainmodel.IncomeRecord
	if err := dal.MainDB.Where("stat_date BETWEEN ? AND ?", from, to).
		Order("stat_date, vehicle_no").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Save 按主键写入，新记录从 idgen 取号
func (r *IncomeDao) Save(rec *mainmodel.IncomeRecord) error {
	if rec.ID == 0 {
		rec.ID = idgen.New()
		return dal.MainDB.Create(rec).Error
	}
	return dal.MainDB.Save(rec).Error
}

// SaveBatch 批量写入，整批一个事务，任何一条失败整批回滚
func (r *IncomeDao) SaveBatch(recs []*mainmodel.IncomeRecord) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		for _, rec := range recs {
			if rec.ID == 0 {
				rec.ID = idgen.New()
				if err := tx.Create(rec).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Save(rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 删除一车一天的记录，返回是否真的删了
func (r *IncomeDao) Delete(date time.Time, vehicleID uint64) (bool, error) {
	res := dal.MainDB.Where("stat_date=? AND vehicle_id=?", date, vehicleID).
		Delete(&mainmodel.IncomeRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
