package main

import (
	"fmt"
	"log"
	"time"

	"github.com/wmdm/library/internal/domain/book"
	"github.com/wmdm/library/internal/domain/loan"
	"github.com/wmdm/library/internal/infrastructure/config"
	"github.com/wmdm/library/internal/infrastructure/persistence/mysql"
	"github.com/wmdm/library/internal/infrastructure/persistence/redis"
	"github.com/wmdm/library/internal/interface/http/handler"
	"github.com/wmdm/library/internal/interface/http/router"

	_ "github.com/wmdm/library/docs" // Swagger文档(swag init生成)
)

// @title           Library API
// @version         1.0
// @description     图书馆管理服务:图书登记、查询与借阅
// @BasePath        /

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire配置,运行wire gen可生成注入代码）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	// Redis不可用时降级运行(缓存退化为直连数据库)
	var bookCache *redis.BookCache
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("[WARN] Redis不可用,缓存已禁用: %v", err)
	} else {
		bookCache = redis.NewBookCache(redisClient, 10*time.Minute)
	}

	// 4. 依赖注入（手动组装）
	// Repository ← Service ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	loanRepo := mysql.NewLoanRepository(db)

	// 领域层
	bookService := book.NewService(bookRepo)
	loanService := loan.NewService(loanRepo, bookRepo)

	// 接口层
	bookHandler := handler.NewBookHandler(bookService, bookCache)
	loanHandler := handler.NewLoanHandler(loanService)

	// 5. 初始化Gin引擎并注册路由
	r := router.New(cfg, db, bookHandler, loanHandler)

	// 6. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   图书登记: POST http://localhost%s/api/books\n", addr)
	fmt.Printf("   创建借阅: POST http://localhost%s/api/loan\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}
