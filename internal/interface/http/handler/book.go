package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wmdm/library/internal/domain/book"
	"github.com/wmdm/library/internal/infrastructure/persistence/redis"
	"github.com/wmdm/library/internal/interface/http/dto"
	"github.com/wmdm/library/pkg/metrics"
	"github.com/wmdm/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewBookHandler 创建图书处理器
// cache可以为nil(无Redis环境),此时读写直达数据库
func NewBookHandler(bookService book.Service, cache *redis.BookCache) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		cache:       cache,
	}
}

// Create 登记图书
// @Summary      登记图书
// @Description  登记一本新图书,ISBN不能重复
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误或ISBN已注册"
// @Router       /api/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncCounterVec(metrics.BooksRejectedTotal, map[string]string{"reason": "validation"})
		response.ValidationErrors(c, dto.BindErrorMessages(err))
		return
	}

	// 2. 调用领域服务
	saved, err := h.bookService.Create(c.Request.Context(), book.NewBook(req.Title, req.Author, req.ISBN))
	if err != nil {
		if err == book.ErrIsbnAlreadyRegistered {
			metrics.IncCounterVec(metrics.BooksRejectedTotal, map[string]string{"reason": "duplicate_isbn"})
		}
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	metrics.IncCounter(metrics.BooksRegisteredTotal)
	response.Created(c, dto.ToBookResponse(saved))
}

// Get 获取图书详情
// @Summary      获取图书详情
// @Description  根据ID获取图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 "图书不存在"
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// 1. 先查缓存(Cache-Aside)
	if cached, err := h.cache.Get(c.Request.Context(), id); err == nil && cached != nil {
		response.OK(c, dto.ToBookResponse(cached))
		return
	}

	// 2. 缓存未命中,查数据库
	b, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == book.ErrBookNotFound {
			response.NotFound(c)
			return
		}
		response.Error(c, err)
		return
	}

	// 3. 回填缓存(失败不影响响应)
	_ = h.cache.Set(c.Request.Context(), b)

	response.OK(c, dto.ToBookResponse(b))
}

// Update 更新图书
// @Summary      更新图书
// @Description  更新图书的标题和作者,ISBN不可修改
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新内容"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 "图书不存在"
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, dto.BindErrorMessages(err))
		return
	}

	// 1. 查询图书,不存在返回404
	b, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == book.ErrBookNotFound {
			response.NotFound(c)
			return
		}
		response.Error(c, err)
		return
	}

	// 2. 更新并持久化
	b.UpdateInfo(req.Title, req.Author)
	updated, err := h.bookService.Update(c.Request.Context(), b)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 删除缓存,下次查询重新加载
	_ = h.cache.Delete(c.Request.Context(), id)

	response.OK(c, dto.ToBookResponse(updated))
}

// Delete 删除图书
// @Summary      删除图书
// @Description  根据ID删除图书
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      404 "图书不存在"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// 1. 查询图书,不存在返回404
	b, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == book.ErrBookNotFound {
			response.NotFound(c)
			return
		}
		response.Error(c, err)
		return
	}

	// 2. 删除
	if err := h.bookService.Delete(c.Request.Context(), b); err != nil {
		response.Error(c, err)
		return
	}

	// 3. 删除缓存
	_ = h.cache.Delete(c.Request.Context(), id)

	response.NoContent(c)
}

// Search 查询图书列表
// @Summary      查询图书列表
// @Description  按标题/作者/ISBN过滤并分页,page从0开始
// @Tags         图书
// @Produce      json
// @Param        title query string false "标题(子串匹配,忽略大小写)"
// @Param        author query string false "作者(子串匹配,忽略大小写)"
// @Param        isbn query string false "ISBN(子串匹配)"
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量(默认20,最大100)"
// @Success      200 {object} response.PageData{content=[]dto.BookResponse}
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Router       /api/books [get]
func (h *BookHandler) Search(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationErrors(c, dto.BindErrorMessages(err))
		return
	}

	filter := book.Filter{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	}
	page := book.PageRequest{Page: req.Page, Size: req.Size}.Normalize()

	books, total, err := h.bookService.Search(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithPage(c, dto.ToBookResponses(books), total, page.Page, page.Size)
}

// parseID 解析路径中的图书ID
// 非数字ID视为资源不存在,直接返回404
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}
