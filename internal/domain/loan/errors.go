package loan

import (
	apperrors "github.com/wmdm/library/pkg/errors"
)

// 借阅领域错误定义
// 注意:Message会原样出现在API响应的errors数组里,因此保持英文文案
var (
	// ErrBookNotFoundForISBN 传入的ISBN没有对应图书
	ErrBookNotFoundForISBN = apperrors.New(apperrors.ErrCodeLoanBookNotFound, "Book not found for passed isbn")

	// ErrBookAlreadyLoaned 图书已被借出
	ErrBookAlreadyLoaned = apperrors.New(apperrors.ErrCodeBookAlreadyLoaned, "Book already loaned")
)
