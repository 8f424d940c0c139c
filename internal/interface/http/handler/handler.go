package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// bindJSON 绑定请求体,失败时直接写INVALID_PARAMS响应并返回false
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperrors.Newf(apperrors.KindValidation, apperrors.CodeInvalidParams, "Invalid request parameters: %v", err))
		return false
	}
	return true
}
