package dto

import (
	"github.com/wmdm/library/internal/domain/loan"
)

// LoanRequest HTTP借阅请求
type LoanRequest struct {
	ISBN     string `json:"isbn" binding:"required" example:"9787115428028"`
	Customer string `json:"customer" binding:"required" example:"Fulano"`
}

// LoanResponse HTTP借阅响应
type LoanResponse struct {
	ID       uint   `json:"id" example:"1"`
	ISBN     string `json:"isbn" example:"9787115428028"`
	Customer string `json:"customer" example:"Fulano"`
}

// ToLoanResponse 领域实体 → HTTP响应
func ToLoanResponse(l *loan.Loan) *LoanResponse {
	return &LoanResponse{
		ID:       l.ID,
		ISBN:     l.ISBN,
		Customer: l.Customer,
	}
}
