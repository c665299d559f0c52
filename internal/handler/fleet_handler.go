package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dao"
	"fleet-ledger-api/internal/dto"
	"fleet-ledger-api/internal/middleware"
	"fleet-ledger-api/internal/service"
	"fleet-ledger-api/internal/utils"
)

// FleetHandler 车队名册、售票员排班、全局设置
type FleetHandler struct {
	vehicles  *service.VehicleService
	schedules *service.ScheduleService
	settings  *service.SettingService
}

func NewFleetHandler() *FleetHandler {
	return &FleetHandler{
		vehicles:  service.NewVehicleService(&dao.VehicleDao{}),
		schedules: service.NewScheduleService(&dao.ScheduleDao{}, &dao.VehicleDao{}),
		settings:  service.NewSettingService(&dao.SettingDao{}),
	}
}

// ListVehicles 活跃车辆名册
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	vos, err := h.vehicles.ListActive()
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vos))
}

// ListSchedules 某月售票员排班
func (h *FleetHandler) ListSchedules(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}
	vos, err := h.schedules.ListMonth(year, month)
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vos))
}

// SaveSchedules 整月排班批量保存
func (h *FleetHandler) SaveSchedules(c *gin.Context) {
	var req dto.SaveScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}
	if err := h.schedules.SaveMonth(req, c.GetString(middleware.OperatorKey)); err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// GetManagerSalary 当前全局管理员工资
func (h *FleetHandler) GetManagerSalary(c *gin.Context) {
	salary, err := h.settings.GetManagerSalary()
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"managerSalary": salary}))
}

// SetManagerSalary 修改全局管理员工资（只影响未保存月份的结算）
func (h *FleetHandler) SetManagerSalary(c *gin.Context) {
	var req struct {
		ManagerSalary string `json:"managerSalary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}
	salary, err := h.settings.SetManagerSalary(req.ManagerSalary, c.GetString(middleware.OperatorKey))
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"managerSalary": salary}))
}
