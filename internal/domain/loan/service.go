package loan

import (
	"context"

	"github.com/wmdm/library/internal/domain/book"
)

// BookFinder 图书查询接口(借阅服务对图书聚合的最小依赖)
// 设计说明:借阅创建只需要按ISBN解析图书,不依赖完整的book.Service
type BookFinder interface {
	FindByISBN(ctx context.Context, isbn string) (*book.Book, error)
}

// Service 借阅领域服务接口
type Service interface {
	// Create 创建借阅
	// 业务规则:
	// - ISBN必须对应已登记的图书,否则返回ErrBookNotFoundForISBN
	// - 图书不能已有在借记录,否则返回ErrBookAlreadyLoaned
	// 任一规则被拒绝时不落库
	Create(ctx context.Context, l *Loan) (*Loan, error)
}

// service 领域服务实现
type service struct {
	repo  Repository
	books BookFinder
}

// NewService 创建借阅领域服务
func NewService(repo Repository, books BookFinder) Service {
	return &service{repo: repo, books: books}
}

// Create 创建借阅
func (s *service) Create(ctx context.Context, l *Loan) (*Loan, error) {
	// 1. 解析图书:ISBN必须已登记
	b, err := s.books.FindByISBN(ctx, l.ISBN)
	if err != nil {
		if err == book.ErrBookNotFound {
			return nil, ErrBookNotFoundForISBN
		}
		return nil, err
	}
	if b == nil {
		return nil, ErrBookNotFoundForISBN
	}

	// 2. 检查图书是否已借出
	loaned, err := s.repo.ExistsActiveByISBN(ctx, l.ISBN)
	if err != nil {
		return nil, err
	}
	if loaned {
		return nil, ErrBookAlreadyLoaned
	}

	// 3. 持久化
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}
