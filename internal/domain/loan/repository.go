package loan

import (
	"context"
)

// Repository 借阅仓储接口
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建借阅记录
	Create(ctx context.Context, l *Loan) error

	// ExistsActiveByISBN 判断指定ISBN是否存在在借记录
	ExistsActiveByISBN(ctx context.Context, isbn string) (bool, error)
}
