package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wmdm/library/pkg/errors"
)

// ErrorBody 错误信封
// 约定：所有失败响应的body都是 {"errors": ["...", ...]}
// 字段校验失败时每个字段一条，业务规则被拒时只有一条描述信息
type ErrorBody struct {
	Errors []string `json:"errors"`
}

// Created 201响应（资源创建成功）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NoContent 204响应（删除成功）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound 404响应（body无要求）
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := bookService.Create(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不进响应
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	c.JSON(httpStatus(appErr.Code), ErrorBody{Errors: []string{appErr.Message}})
}

// ValidationErrors 400响应，一条校验失败信息对应一个errors条目
func ValidationErrors(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Errors: messages})
}

// httpStatus 业务错误码 → HTTP状态码
// 规范见pkg/errors：404xx对应404，其余4xxxx对应400，5xxxx对应500
func httpStatus(code int) int {
	switch {
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40000 && code < 50000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// =========================================
// 分页响应结构
// =========================================

// Pageable 分页元数据
type Pageable struct {
	PageNumber int `json:"pageNumber"` // 页码（从0开始）
	PageSize   int `json:"pageSize"`   // 每页大小
}

// PageData 分页数据封装
type PageData struct {
	Content       interface{} `json:"content"`       // 数据列表
	TotalElements int64       `json:"totalElements"` // 总记录数
	TotalPages    int         `json:"totalPages"`    // 总页数
	Pageable      Pageable    `json:"pageable"`      // 分页元数据
}

// NewPageData 创建分页数据
func NewPageData(content interface{}, total int64, page, size int) *PageData {
	totalPages := 0
	if size > 0 {
		totalPages = int(total) / size
		if int(total)%size != 0 {
			totalPages++
		}
	}

	return &PageData{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Pageable: Pageable{
			PageNumber: page,
			PageSize:   size,
		},
	}
}

// OKWithPage 分页成功响应
func OKWithPage(c *gin.Context, content interface{}, total int64, page, size int) {
	OK(c, NewPageData(content, total, page, size))
}
