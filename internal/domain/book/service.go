package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验(ISBN唯一性等)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// Create 登记新图书
	// 业务规则:ISBN不能重复,重复时返回ErrIsbnAlreadyRegistered且不落库
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID 根据ID获取图书详情
	GetByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN获取图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	// 业务规则:实体必须已持久化(ID>0)
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete 删除图书
	// 业务规则:实体必须已持久化(ID>0)
	Delete(ctx context.Context, b *Book) error

	// Search 按条件分页查询图书
	Search(ctx context.Context, filter Filter, page PageRequest) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 登记新图书
func (s *service) Create(ctx context.Context, b *Book) (*Book, error) {
	// 1. 检查ISBN是否已登记(重复时不会调用Create)
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrIsbnAlreadyRegistered
	}

	// 2. 持久化
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetByID 根据ID获取图书
func (s *service) GetByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByISBN 根据ISBN获取图书
func (s *service) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// Update 更新图书信息
func (s *service) Update(ctx context.Context, b *Book) (*Book, error) {
	// 未持久化的实体不能更新
	if b == nil || b.ID == 0 {
		return nil, ErrInvalidBook
	}
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete 删除图书
func (s *service) Delete(ctx context.Context, b *Book) error {
	// 未持久化的实体不能删除
	if b == nil || b.ID == 0 {
		return ErrInvalidBook
	}
	return s.repo.Delete(ctx, b.ID)
}

// Search 按条件分页查询图书
func (s *service) Search(ctx context.Context, filter Filter, page PageRequest) ([]*Book, int64, error) {
	return s.repo.Search(ctx, filter, page.Normalize())
}
