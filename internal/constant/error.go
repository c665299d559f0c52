package constant

import (
	"errors"
	"fmt"
)

// Error 错误接口
type Error interface {
	error
	Code() int
	Message() string
	WithData(data interface{}) Error
}

// CustomError 自定义错误实现
type CustomError struct {
	code    int
	message string
	data    interface{}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.code, e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) WithData(data interface{}) Error {
	e.data = data
	return e
}

// NewError 创建错误
func NewError(code int) Error {
	if info, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: info.CN}
	}
	return &CustomError{code: code, message: "未知错误"}
}

// GetErrorInfo 获取错误信息
func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, exists := ErrorMessages[code]
	return info, exists
}

// CodeOf 提取错误码，非本系统错误按系统错误处理
func CodeOf(err error) int {
	var ce Error
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return CodeSystemError
}

// IsValidation 入参校验类错误，直接返回调用方，不重试
func IsValidation(err error) bool {
	code := CodeOf(err)
	return (code >= 1100 && code <= 1199) || validationCodes[code]
}

// IsNotFound 数据不存在类错误，区别于"合法的空聚合"
func IsNotFound(err error) bool {
	return notFoundCodes[CodeOf(err)]
}

// IsConsistency 口径类错误，如活跃车辆数为 0 导致均值无定义
func IsConsistency(err error) bool {
	return consistencyCodes[CodeOf(err)]
}

var validationCodes = map[int]bool{
	CodeVehicleInactive:      true,
	CodeIncomeAmountNegative: true,
	CodeIncomeAmountInvalid:  true,
	CodeIncomeDateInvalid:    true,
	CodeIncomeBatchEmpty:     true,
	CodeMonthInvalid:         true,
	CodeSalaryInvalid:        true,
	CodeAverageInvalid:       true,
	CodeConductorSelfAssign:  true,
	CodeVehicleNotInRoster:   true,
}

var notFoundCodes = map[int]bool{
	CodeVehicleNotFound:      true,
	CodeIncomeRecordNotFound: true,
	CodeDailyStatsNotFound:   true,
	CodeBalanceNotFound:      true,
	CodeScheduleNotFound:     true,
}

var consistencyCodes = map[int]bool{
	CodeNoActiveVehicle: true,
}
