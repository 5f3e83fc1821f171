//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire是编译期依赖注入工具,与运行时反射注入不同,
// 它在编译期生成代码:零运行时开销、类型安全、编译期检测循环依赖
//
// 工作流程:
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码

package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	"github.com/wmdm/library/internal/domain/book"
	"github.com/wmdm/library/internal/domain/loan"
	"github.com/wmdm/library/internal/infrastructure/config"
	"github.com/wmdm/library/internal/infrastructure/persistence/mysql"
	"github.com/wmdm/library/internal/infrastructure/persistence/redis"
	"github.com/wmdm/library/internal/interface/http/handler"
	"github.com/wmdm/library/internal/interface/http/router"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含:配置加载、数据库连接、Redis连接
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
	provideBookCache,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository, // 图书仓储
	mysql.NewLoanRepository, // 借阅仓储
	provideBookFinder,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
	loan.NewService, // 借阅领域服务
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler, // 图书处理器
	handler.NewLoanHandler, // 借阅处理器
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideBookCache 从Redis客户端创建图书缓存
func provideBookCache(client *goredis.Client) *redis.BookCache {
	return redis.NewBookCache(client, 10*time.Minute)
}

// provideBookFinder 借阅服务只依赖图书仓储的查询能力
// Wire无法自动做接口收窄,需要手动适配
func provideBookFinder(repo book.Repository) loan.BookFinder {
	return repo
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// 返回:配置好的Gin引擎
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		handlerSet,
		router.New,
	)

	// 占位返回值,实际运行时由wire_gen.go替代
	return nil, nil
}
