package errors

import (
	"errors"
	"fmt"
)

// Kind 错误分类
// 传输层根据Kind决定HTTP状态码,业务层只关心Code
type Kind int

const (
	KindInternal         Kind = iota // 系统内部错误
	KindValidation                   // 值对象校验失败
	KindInvalidOperation             // 违反聚合状态规则
	KindNotFound                     // 资源不存在
	KindUnauthorized                 // 未认证
	KindMethodNotAllowed             // 路由存在但方法不支持
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "internal"
	}
}

// AppError 自定义应用错误
// Code是稳定的字符串错误码(如DUPLICATE_ISBN),Message面向调用方,
// Err是内部错误,仅记录到日志,不返回给客户端
type AppError struct {
	Kind    Kind   `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 错误码相同即视为同一错误(参数化消息不影响比较)
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New 创建新的AppError
func New(kind Kind, code, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Newf 格式化消息
func Newf(kind Kind, code, format string, args ...interface{}) *AppError {
	return New(kind, code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误(如数据库错误、网络错误)
// 用途:将底层错误转换为内部错误,隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// =========================================
// 通用错误码
// =========================================
// 领域错误码由各领域包自行声明(book/errors.go、author/errors.go)

const (
	CodeInternal         = "INTERNAL_ERROR"
	CodeRequiredField    = "REQUIRED_FIELD"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeInvalidParams    = "INVALID_PARAMS"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// InternalMessage 对外暴露的内部错误提示
const InternalMessage = "An unexpected error occurred"

var (
	ErrInternal         = New(KindInternal, CodeInternal, InternalMessage)
	ErrUnauthorized     = New(KindUnauthorized, CodeUnauthorized, "Authentication required")
	ErrInvalidToken     = New(KindUnauthorized, CodeInvalidToken, "Invalid token")
	ErrTokenExpired     = New(KindUnauthorized, CodeTokenExpired, "Token expired")
	ErrInvalidParams    = New(KindValidation, CodeInvalidParams, "Invalid request parameters")
	ErrRouteNotFound    = New(KindNotFound, CodeNotFound, "Route not found")
	ErrMethodNotAllowed = New(KindMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed")
)

// RequiredField 必填字段缺失
func RequiredField(entity, field string) *AppError {
	return Newf(KindValidation, CodeRequiredField, "'%s.%s' is required", entity, field)
}

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError(如果不是AppError则包装成Internal错误)
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, InternalMessage)
}

// CodeOf 返回错误码,nil返回空串
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	return GetAppError(err).Code
}

// HasCode 判断错误链中是否包含指定错误码
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}
