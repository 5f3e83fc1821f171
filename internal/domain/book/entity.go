package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. ISBN作为业务唯一标识(数据库层保证唯一性)
// 3. 借阅(Loan)是独立聚合,通过ISBN引用图书,不在此实体内建模
type Book struct {
	ID        uint
	Title     string // 书名
	Author    string // 作者
	ISBN      string // ISBN号(国际标准书号)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 参数由调用方先做必填校验(interface层的binding校验)
func NewBook(title, author, isbn string) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateInfo 更新图书基本信息(领域行为)
// 空字段表示不修改
func (b *Book) UpdateInfo(title, author string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	b.UpdatedAt = time.Now()
}
