package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/wmdm/library/internal/domain/loan"
	apperrors "github.com/wmdm/library/pkg/errors"
)

// loanRepository 借阅仓储实现(MySQL)
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository 创建借阅仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

// Create 创建借阅记录
func (r *loanRepository) Create(ctx context.Context, l *loan.Loan) error {
	model := &LoanModel{
		ISBN:     l.ISBN,
		Customer: l.Customer,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅失败")
	}

	l.ID = model.ID
	l.CreatedAt = model.CreatedAt

	return nil
}

// ExistsActiveByISBN 判断指定ISBN是否存在在借记录
func (r *loanRepository) ExistsActiveByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LoanModel{}).
		Where("isbn = ?", isbn).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询借阅失败")
	}
	return count > 0, nil
}
