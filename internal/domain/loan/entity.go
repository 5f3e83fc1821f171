package loan

import (
	"time"
)

// Loan 借阅实体(聚合根)
// DDD设计说明:
// 1. 借阅通过ISBN引用图书聚合,不持有Book实体
// 2. 不建模归还流程,存在借阅记录即视为图书在借
type Loan struct {
	ID        uint
	ISBN      string // 被借图书的ISBN
	Customer  string // 借阅人
	CreatedAt time.Time
}

// NewLoan 创建新借阅(工厂方法)
func NewLoan(isbn, customer string) *Loan {
	return &Loan{
		ISBN:      isbn,
		Customer:  customer,
		CreatedAt: time.Now(),
	}
}
