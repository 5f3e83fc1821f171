package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmdm/library/internal/interface/http/dto"
)

// TestCreateLoanAPI 测试创建借阅成功返回200
func TestCreateLoanAPI(t *testing.T) {
	r := newTestRouter(t)
	createBookViaAPI(t, r, "As aventuras", "Fulano", "123")

	w := doJSON(t, r, http.MethodPost, "/api/loan", gin.H{
		"isbn":     "123",
		"customer": "Wedson",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoanResponse
	decodeBody(t, w, &resp)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "123", resp.ISBN)
	assert.Equal(t, "Wedson", resp.Customer)
}

// TestCreateLoanAPIBookNotFound 测试ISBN未登记时返回400和提示信息
func TestCreateLoanAPIBookNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/loan", gin.H{
		"isbn":     "123",
		"customer": "Wedson",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := errorsOf(t, w)
	require.Len(t, errs, 1)
	assert.Equal(t, "Book not found for passed isbn", errs[0])
}

// TestCreateLoanAPIAlreadyLoaned 测试图书已借出时返回400和提示信息
func TestCreateLoanAPIAlreadyLoaned(t *testing.T) {
	r := newTestRouter(t)
	createBookViaAPI(t, r, "As aventuras", "Fulano", "123")

	w := doJSON(t, r, http.MethodPost, "/api/loan", gin.H{
		"isbn":     "123",
		"customer": "Wedson",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 同一本书再次借阅
	w = doJSON(t, r, http.MethodPost, "/api/loan", gin.H{
		"isbn":     "123",
		"customer": "Other customer",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := errorsOf(t, w)
	require.Len(t, errs, 1)
	assert.Equal(t, "Book already loaned", errs[0])
}

// TestCreateLoanAPIValidation 测试必填字段校验
func TestCreateLoanAPIValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/loan", gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := errorsOf(t, w)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "isbn is required")
	assert.Contains(t, errs, "customer is required")
}

// TestCreateLoanAPIDifferentBooks 测试不同图书互不影响
func TestCreateLoanAPIDifferentBooks(t *testing.T) {
	r := newTestRouter(t)
	createBookViaAPI(t, r, "As aventuras", "Fulano", "123")
	createBookViaAPI(t, r, "Dom Casmurro", "Machado", "456")

	w := doJSON(t, r, http.MethodPost, "/api/loan", gin.H{
		"isbn":     "123",
		"customer": "Wedson",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/loan", gin.H{
		"isbn":     "456",
		"customer": "Wedson",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
