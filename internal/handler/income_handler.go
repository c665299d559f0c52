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

// IncomeHandler 营收录入处理器
type IncomeHandler struct{ svc *service.IncomeService }

func NewIncomeHandler() *IncomeHandler {
	daily := service.NewDailyStatsService(&dao.IncomeDao{}, &dao.StatsDao{}, &dao.VehicleDao{})
	return &IncomeHandler{
		svc: service.NewIncomeService(&dao.IncomeDao{}, &dao.VehicleDao{}, daily),
	}
}

// Save 录入/修改一车一天的营收
func (h *IncomeHandler) Save(c *gin.Context) {
	var req dto.SaveIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}
	vo, err := h.svc.DeriveAndSave(req, c.GetString(middleware.OperatorKey))
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// SaveBatch 一天多车批量录入
func (h *IncomeHandler) SaveBatch(c *gin.Context) {
	var req dto.BatchSaveIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}
	vos, err := h.svc.SaveBatch(req, c.GetString(middleware.OperatorKey))
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vos))
}

// Get 查询一车一天的营收
func (h *IncomeHandler) Get(c *gin.Context) {
	vo, err := h.svc.Get(c.Query("statDate"), c.Query("vehicleNo"))
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Delete 删除一车一天的营收，随后当天日统计同步重算
func (h *IncomeHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Query("statDate"), c.Query("vehicleNo"), c.GetString(middleware.OperatorKey))
	if err != nil {
		c.JSON(statusOf(err), utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// statusOf 错误分类映射 HTTP 状态码
func statusOf(err error) int {
	switch {
	case constant.IsValidation(err):
		return http.StatusBadRequest
	case constant.IsNotFound(err):
		return http.StatusNotFound
	case constant.IsConsistency(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
