package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 未找到时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	// 未找到时返回ErrBookNotFound
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// ExistsByISBN 判断ISBN是否已登记
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// Save 保存图书信息(更新)
	Save(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// Search 分页查询图书列表
	// 返回当前页的图书和满足过滤条件的总数
	Search(ctx context.Context, filter Filter, page PageRequest) ([]*Book, int64, error)
}

// Filter 图书查询过滤条件
// 各字段为子串匹配(不区分大小写),空字段表示不过滤,多个字段为AND关系
type Filter struct {
	Title  string
	Author string
	ISBN   string
}

// PageRequest 分页参数
// Page从0开始,Size为每页数量
type PageRequest struct {
	Page int
	Size int
}

// 分页参数边界
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize 将分页参数收敛到合法范围
// 规则:Page<0归零,Size<=0取默认值,Size>上限取上限
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset 计算查询偏移量
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
