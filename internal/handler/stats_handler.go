package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dao"
	"fleet-ledger-api/internal/service"
	"fleet-ledger-api/internal/utils"
	"fleet-ledger-api/internal/utils/timeutil"
)

// StatsHandler 日/月统计查询
type StatsHandler struct {
	daily   *service.DailyStatsService
	monthly *service.MonthlyStatsService
}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{
		daily:   service.NewDailyStatsService(&dao.IncomeDao{}, &dao.StatsDao{}, &dao.VehicleDao{}),
		monthly: service.NewMonthlyStatsService(&dao.IncomeDao{}, &dao.VehicleDao{}, &dao.ScheduleDao{}),
	}
}

// GetDaily 查询某天日统计
func (h *StatsHandler) GetDaily(c *gin.Context) {
	vo, err := h.daily.GetDay(c.Query("statDate"))
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// RecomputeDaily 手工触发整日重算，修数据后用
func (h *StatsHandler) RecomputeDaily(c *gin.Context) {
	date, err := timeutil.ParseDate(c.Query("statDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeIncomeDateInvalid))
		return
	}
	vo, err := h.daily.RecomputeDay(date)
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// GetMonthly 月统计按需现算
func (h *StatsHandler) GetMonthly(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}
	vo, err := h.monthly.ComputeMonth(year, month)
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// yearMonth 解析 year/month 查询参数，失败直接写响应
func yearMonth(c *gin.Context) (int, int, bool) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsFormatError))
		return 0, 0, false
	}
	return year, month, true
}
