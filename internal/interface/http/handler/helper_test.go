package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wmdm/library/internal/domain/book"
	"github.com/wmdm/library/internal/domain/loan"
	"github.com/wmdm/library/internal/infrastructure/persistence/mysql"
)

// newTestRouter 搭建完整的HTTP测试环境
// sqlite内存库 + 真实仓储/领域服务 + 无缓存(cache为nil)
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, mysql.AutoMigrate(db))

	bookRepo := mysql.NewBookRepository(db)
	loanRepo := mysql.NewLoanRepository(db)
	bookService := book.NewService(bookRepo)
	loanService := loan.NewService(loanRepo, bookRepo)

	bookHandler := NewBookHandler(bookService, nil)
	loanHandler := NewLoanHandler(loanService)

	r := gin.New()
	api := r.Group("/api")
	{
		books := api.Group("/books")
		{
			books.POST("", bookHandler.Create)
			books.GET("", bookHandler.Search)
			books.GET("/:id", bookHandler.Get)
			books.PUT("/:id", bookHandler.Update)
			books.DELETE("/:id", bookHandler.Delete)
		}
		api.POST("/loan", loanHandler.Create)
	}

	return r
}

// doJSON 发送JSON请求并返回响应记录器
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRaw 发送原始字符串body的请求(测试畸形JSON)
func doRaw(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody 反序列化响应body
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// errorsOf 提取错误信封中的errors数组
func errorsOf(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var body struct {
		Errors []string `json:"errors"`
	}
	decodeBody(t, w, &body)
	return body.Errors
}

// createBookViaAPI 通过API登记一本图书,返回其ID
func createBookViaAPI(t *testing.T, r *gin.Engine, title, author, isbn string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/books", gin.H{
		"title":  title,
		"author": author,
		"isbn":   isbn,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.ID)
	return resp.ID
}
