package dao

import (
	"errors"

	"gorm.io/gorm"

	"fleet-ledger-api/internal/dal"
	"fleet-ledger-api/internal/idgen"
	mainmodel "fleet-ledger-api/internal/model/main"
)

type BalanceDao struct{}

// Get 查询某月结算快照，不存在返回 nil
func (r *BalanceDao) Get(year, month int) (*mainmodel.PaymentBalance, error) {
	var m mainmodel.PaymentBalance
	err := dal.MainDB.Where("year=? AND month=?", year, month).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert 按 (year, month) 覆盖快照，重新保存即追溯重算后的覆盖
func (r *BalanceDao) Upsert(b *mainmodel.PaymentBalance) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		var existing mainmodel.PaymentBalance
		err := tx.Where("year=? AND month=?", b.Year, b.Month).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			b.ID = existing.ID
			b.CreateTime = existing.CreateTime
			return tx.Save(b).Error
		}
		b.ID = idgen.New()
		return tx.Create(b).Error
	})
}
