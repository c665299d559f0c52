package constant

// 业务级错误码 (2xxx)

// 车辆相关错误码
const (
	CodeVehicleNotFound    = 2000 // 车辆不存在，请检查车牌编号是否正确
	CodeVehicleInactive    = 2001 // 车辆已停运，不能再录入营收
	CodeNoActiveVehicle    = 2002 // 活跃车辆数为 0，日均/结算均值无法计算
	CodeVehicleNotInRoster = 2003 // 车辆不在当前活跃车队名册内
)

// 营收记录相关错误码
const (
	CodeIncomeRecordNotFound = 2100 // 营收记录不存在，请检查日期与车辆
	CodeIncomeAmountNegative = 2101 // 趟次/微信/补油款金额不能为负数
	CodeIncomeAmountInvalid  = 2102 // 金额格式错误，请检查数值格式
	CodeIncomeDateInvalid    = 2103 // 日期格式错误，应为 YYYY-MM-DD
	CodeIncomeBatchEmpty     = 2104 // 批量录入内容为空
)

// 统计相关错误码
const (
	CodeDailyStatsNotFound = 2200 // 该日期没有日统计数据
	CodeMonthInvalid       = 2201 // 月份无效，应在 1-12 之间
)

// 结算相关错误码
const (
	CodeBalanceNotFound = 2300 // 该月份没有已保存的补款结算
	CodeSalaryInvalid   = 2301 // 管理员工资金额无效
	CodeAverageInvalid  = 2302 // 手工平均净收入金额无效
)

// 售票员排班相关错误码
const (
	CodeScheduleNotFound    = 2400 // 售票员排班不存在
	CodeConductorSelfAssign = 2401 // 售票员不能指派为本车车主
)
