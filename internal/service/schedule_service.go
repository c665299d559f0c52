package service

import (
	"fmt"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dto"
	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/utils/timeutil"
)

type ScheduleService struct {
	schedules ScheduleStore
	vehicles  VehicleStore
}

func NewScheduleService(schedules ScheduleStore, vehicles VehicleStore) *ScheduleService {
	return &ScheduleService{schedules: schedules, vehicles: vehicles}
}

// SaveMonth 整月排班批量保存，整批一个事务。售票员用另一辆车的 ID 标识，
// 指到本车直接拒绝。
func (s *ScheduleService) SaveMonth(req dto.SaveScheduleReq, operator string) error {
	if !timeutil.ValidMonth(req.Month) || req.Year <= 0 {
		return constant.NewError(constant.CodeMonthInvalid)
	}
	if len(req.Entries) == 0 {
		return constant.NewError(constant.CodeMissingParams)
	}

	items := make([]*mainmodel.ConductorSchedule, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if entry.VehicleNo == entry.ConductorNo {
			return constant.NewError(constant.CodeConductorSelfAssign).
				WithData("车辆: " + entry.VehicleNo)
		}
		vehicle, err := s.vehicles.GetByNo(entry.VehicleNo)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return constant.NewError(constant.CodeVehicleNotFound)
		}
		conductor, err := s.vehicles.GetByNo(entry.ConductorNo)
		if err != nil {
			return err
		}
		if conductor == nil {
			return constant.NewError(constant.CodeVehicleNotInRoster).
				WithData("售票员: " + entry.ConductorNo)
		}
		items = append(items, &mainmodel.ConductorSchedule{
			VehicleID:   vehicle.VehicleID,
			VehicleNo:   vehicle.VehicleNo,
			Year:        req.Year,
			Month:       req.Month,
			ConductorID: conductor.VehicleID,
			ConductorNo: conductor.VehicleNo,
			Operator:    operator,
		})
	}

	unlock := keyLocks.Lock(fmt.Sprintf("schedule|%d-%02d", req.Year, req.Month))
	defer unlock()
	return s.schedules.SaveBatch(items)
}

// ListMonth 查询某月排班
func (s *ScheduleService) ListMonth(year, month int) ([]dto.ScheduleVo, error) {
	if !timeutil.ValidMonth(month) || year <= 0 {
		return nil, constant.NewError(constant.CodeMonthInvalid)
	}
	items, err := s.schedules.ListByMonth(year, month)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.ScheduleVo, 0, len(items))
	for _, item := range items {
		vos = append(vos, dto.ScheduleVo{
			VehicleNo:   item.VehicleNo,
			ConductorNo: item.ConductorNo,
			Year:        item.Year,
			Month:       item.Month,
		})
	}
	return vos, nil
}
