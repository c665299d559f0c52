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

// BalanceHandler 月末补款结算
type BalanceHandler struct{ svc *service.BalanceService }

func NewBalanceHandler() *BalanceHandler {
	monthly := service.NewMonthlyStatsService(&dao.IncomeDao{}, &dao.VehicleDao{}, &dao.ScheduleDao{})
	return &BalanceHandler{
		svc: service.NewBalanceService(monthly, &dao.SettingDao{}, &dao.BalanceDao{}),
	}
}

// Get 有快照返回快照，没有则现算
func (h *BalanceHandler) Get(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}
	vo, err := h.svc.GetOrCompute(year, month)
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Preview 试算，不落库
func (h *BalanceHandler) Preview(c *gin.Context) {
	var req dto.PreviewBalanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}
	vo, err := h.svc.Preview(req)
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Save 保存结算快照，工资同时写回全局设置
func (h *BalanceHandler) Save(c *gin.Context) {
	var req dto.SaveBalanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}
	vo, err := h.svc.Save(req, c.GetString(middleware.OperatorKey))
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}
