package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/soft_delete"

	"github.com/wmdm/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// AutoMigrate 自动迁移表结构
// 注意:AutoMigrate只会创建表、添加字段,不会删除或修改现有字段
// 导出是为了让测试可以在sqlite内存库上建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&LoanModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM
// 3. ISBN唯一索引为(isbn, deleted_at)复合索引:软删除的行deleted_at>0,
//    不再占用ISBN,删除后可以重新登记同一ISBN;在册的行deleted_at恒为0,
//    同一ISBN最多一条在册记录
type BookModel struct {
	ID        uint                  `gorm:"primaryKey"`
	Title     string                `gorm:"index:idx_search;size:200;not null;comment:书名"` // 搜索索引
	Author    string                `gorm:"index:idx_search;size:100;not null;comment:作者"` // 搜索索引
	ISBN      string                `gorm:"uniqueIndex:udx_books_isbn;size:20;not null;comment:ISBN号"`
	CreatedAt time.Time             `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time             `gorm:"comment:更新时间"`
	DeletedAt soft_delete.DeletedAt `gorm:"uniqueIndex:udx_books_isbn;softDelete:milli;comment:删除时间(毫秒时间戳,0为在册)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// LoanModel GORM借阅模型
// 设计说明:
// 1. 通过ISBN关联图书(业务键),不使用外键
// 2. ISBN上建索引,支撑"是否在借"的存在性查询
type LoanModel struct {
	ID        uint      `gorm:"primaryKey"`
	ISBN      string    `gorm:"index;size:20;not null;comment:被借图书ISBN"`
	Customer  string    `gorm:"size:100;not null;comment:借阅人"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "loans"
}
