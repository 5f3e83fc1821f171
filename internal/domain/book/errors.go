package book

import (
	apperrors "github.com/wmdm/library/pkg/errors"
)

// 图书领域错误定义
// 注意:Message会原样出现在API响应的errors数组里,因此保持英文文案
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrIsbnAlreadyRegistered ISBN已被登记
	ErrIsbnAlreadyRegistered = apperrors.New(apperrors.ErrCodeIsbnDuplicate, "Isbn already registered")

	// ErrInvalidBook 无效的图书参数(nil实体或ID为0时的更新/删除)
	ErrInvalidBook = apperrors.New(apperrors.ErrCodeInvalidParams, "Book id is required")
)
