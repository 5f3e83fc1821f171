package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/wmdm/library/internal/infrastructure/config"
	"github.com/wmdm/library/internal/interface/http/handler"
	"github.com/wmdm/library/internal/interface/http/middleware"
	"github.com/wmdm/library/pkg/metrics"
)

// New 创建并配置Gin引擎
// 路由一览:
//
//	GET  /ping            健康检查(含数据库探活)
//	GET  /metrics         Prometheus指标
//	GET  /swagger/*any    Swagger文档
//	POST /api/books       登记图书
//	GET  /api/books       查询图书列表
//	GET  /api/books/:id   获取图书详情
//	PUT  /api/books/:id   更新图书
//	DELETE /api/books/:id 删除图书
//	POST /api/loan        创建借阅
func New(cfg *config.Config, db *gorm.DB, bookHandler *handler.BookHandler, loanHandler *handler.LoanHandler) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	// 健康检查(同时探测数据库连接)
	r.GET("/ping", func(c *gin.Context) {
		status := "healthy"
		httpCode := 200

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "unhealthy"
			httpCode = 503
		}

		c.JSON(httpCode, gin.H{
			"message": "pong",
			"status":  status,
		})
	})

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	api := r.Group("/api")
	{
		// 图书模块
		books := api.Group("/books")
		{
			books.POST("", bookHandler.Create)
			books.GET("", bookHandler.Search)
			books.GET("/:id", bookHandler.Get)
			books.PUT("/:id", bookHandler.Update)
			books.DELETE("/:id", bookHandler.Delete)
		}

		// 借阅模块
		api.POST("/loan", loanHandler.Create)
	}

	return r
}
