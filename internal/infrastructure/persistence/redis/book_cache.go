package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wmdm/library/internal/domain/book"
)

// BookCache 图书详情缓存(Cache-Aside)
//
// 缓存策略:
// - 读:先查缓存,未命中再查数据库并回填
// - 写:更新/删除数据库后删除缓存,下次查询重新加载
//
// client为nil时所有操作退化为未命中/空操作,API可在无Redis环境下运行
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache 创建图书缓存实例
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{client: client, ttl: ttl}
}

// Get 获取图书详情缓存
// 未命中返回(nil, nil),调用方需要查询数据库
func (c *BookCache) Get(ctx context.Context, bookID uint) (*book.Book, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, c.detailKey(bookID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	var b book.Book
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}

	return &b, nil
}

// Set 设置图书详情缓存
func (c *BookCache) Set(ctx context.Context, b *book.Book) error {
	if c == nil || c.client == nil {
		return nil
	}

	val, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, c.detailKey(b.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}

	return nil
}

// Delete 删除图书详情缓存
// 更新和删除图书时调用,删除缓存比更新缓存可靠
func (c *BookCache) Delete(ctx context.Context, bookID uint) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, c.detailKey(bookID)).Err(); err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}

	return nil
}

// detailKey 生成图书详情缓存key
// 格式：library:book:{book_id}
func (c *BookCache) detailKey(bookID uint) string {
	return fmt.Sprintf("library:book:%d", bookID)
}
