package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wmdm/library/internal/domain/loan"
	"github.com/wmdm/library/internal/interface/http/dto"
	"github.com/wmdm/library/pkg/metrics"
	"github.com/wmdm/library/pkg/response"
)

// LoanHandler 借阅HTTP处理器
type LoanHandler struct {
	loanService loan.Service
}

// NewLoanHandler 创建借阅处理器
func NewLoanHandler(loanService loan.Service) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Create 创建借阅
// @Summary      创建借阅
// @Description  按ISBN借出一本图书,图书必须已登记且未被借出
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.LoanRequest true "借阅信息"
// @Success      200 {object} dto.LoanResponse
// @Failure      400 {object} response.ErrorBody "参数错误、ISBN未登记或图书已借出"
// @Router       /api/loan [post]
func (h *LoanHandler) Create(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncCounterVec(metrics.LoansRejectedTotal, map[string]string{"reason": "validation"})
		response.ValidationErrors(c, dto.BindErrorMessages(err))
		return
	}

	// 2. 调用领域服务
	saved, err := h.loanService.Create(c.Request.Context(), loan.NewLoan(req.ISBN, req.Customer))
	if err != nil {
		switch err {
		case loan.ErrBookNotFoundForISBN:
			metrics.IncCounterVec(metrics.LoansRejectedTotal, map[string]string{"reason": "book_not_found"})
		case loan.ErrBookAlreadyLoaned:
			metrics.IncCounterVec(metrics.LoansRejectedTotal, map[string]string{"reason": "already_loaned"})
		}
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应(借阅创建返回200)
	metrics.IncCounter(metrics.LoansCreatedTotal)
	response.OK(c, dto.ToLoanResponse(saved))
}
