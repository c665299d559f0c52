package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:       {"操作成功", "Success"},
	CodeSystemError:   {"系统错误", "System error"},
	CodeDatabaseError: {"数据库错误", "Database error"},
	CodeRedisError:    {"缓存服务错误", "Cache error"},
	CodeInternalError: {"内部服务错误", "Internal error"},

	// 参数错误
	CodeInvalidParams:     {"参数格式错误", "Invalid params"},
	CodeMissingParams:     {"缺少必要参数", "Missing params"},
	CodeParamsFormatError: {"参数格式错误", "Params format error"},
	CodeParamsRangeError:  {"参数范围错误", "Params range error"},

	// 车辆相关错误
	CodeVehicleNotFound:    {"车辆不存在", "Vehicle not found"},
	CodeVehicleInactive:    {"车辆已停运", "Vehicle inactive"},
	CodeNoActiveVehicle:    {"活跃车辆数为0，均值无法计算", "No active vehicle, average undefined"},
	CodeVehicleNotInRoster: {"车辆不在活跃车队名册内", "Vehicle not in active roster"},

	// 营收记录相关错误
	CodeIncomeRecordNotFound: {"营收记录不存在", "Income record not found"},
	CodeIncomeAmountNegative: {"金额不能为负数", "Amount must not be negative"},
	CodeIncomeAmountInvalid:  {"金额格式错误", "Amount format invalid"},
	CodeIncomeDateInvalid:    {"日期格式错误", "Date format invalid"},
	CodeIncomeBatchEmpty:     {"批量录入内容为空", "Batch is empty"},

	// 统计相关错误
	CodeDailyStatsNotFound: {"该日期没有日统计数据", "Daily statistics not found"},
	CodeMonthInvalid:       {"月份无效", "Month invalid"},

	// 结算相关错误
	CodeBalanceNotFound: {"该月份没有已保存的结算", "Settlement not found"},
	CodeSalaryInvalid:   {"管理员工资金额无效", "Manager salary invalid"},
	CodeAverageInvalid:  {"手工平均净收入金额无效", "Manual average income invalid"},

	// 售票员排班相关错误
	CodeScheduleNotFound:    {"售票员排班不存在", "Conductor schedule not found"},
	CodeConductorSelfAssign: {"售票员不能指派为本车车主", "Conductor equals own vehicle"},
}
