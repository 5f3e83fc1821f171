package dto

import (
	"github.com/wmdm/library/internal/domain/book"
)

// CreateBookRequest HTTP图书登记请求
// validator tag说明:
// - required: 必填字段,缺失时返回"<字段> is required"
type CreateBookRequest struct {
	Title  string `json:"title" binding:"required" example:"As aventuras"`
	Author string `json:"author" binding:"required" example:"Fulano"`
	ISBN   string `json:"isbn" binding:"required" example:"9787115428028"`
}

// UpdateBookRequest HTTP图书更新请求
type UpdateBookRequest struct {
	Title  string `json:"title" binding:"required" example:"As aventuras"`
	Author string `json:"author" binding:"required" example:"Fulano"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID     uint   `json:"id" example:"1"`
	Title  string `json:"title" example:"As aventuras"`
	Author string `json:"author" example:"Fulano"`
	ISBN   string `json:"isbn" example:"9787115428028"`
}

// SearchBooksRequest HTTP图书查询请求
// page从0开始,size默认20、上限100
type SearchBooksRequest struct {
	Title  string `form:"title" example:"aventuras"`
	Author string `form:"author" example:"Fulano"`
	ISBN   string `form:"isbn" example:"9787115428028"`
	Page   int    `form:"page" binding:"omitempty,min=0" example:"0"`
	Size   int    `form:"size" binding:"omitempty,min=1,max=100" example:"20"`
}

// ToBookResponse 领域实体 → HTTP响应
func ToBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}
}

// ToBookResponses 领域实体列表 → HTTP响应列表
// 保证空列表序列化为[]而不是null
func ToBookResponses(books []*book.Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, ToBookResponse(b))
	}
	return out
}
