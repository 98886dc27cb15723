package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/zhangwei/bookshop/internal/application/book"
	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/interface/http/dto"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookUseCase *appbook.UseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookUseCase *appbook.UseCase) *BookHandler {
	return &BookHandler{bookUseCase: bookUseCase}
}

// Create 创建图书
// @Summary      创建图书
// @Tags         图书
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "分类或作者不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	b, err := h.bookUseCase.Create(c.Request.Context(), appbook.CreateInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Price:      req.Price,
		CoverPhoto: req.CoverPhoto,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	b, err := h.bookUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// List 图书分页检索
// @Summary      图书分页检索
// @Description  支持按分类/作者过滤、评分下限筛选与多种排序,返回含折后价与评分聚合的列表项
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Param        category_id query int false "分类ID"
// @Param        author_id query int false "作者ID"
// @Param        min_rating query number false "平均评分下限(0-5)"
// @Param        sort_mode query string false "排序方式" Enums(on_sale, popularity, price_low_to_high, price_high_to_low)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	query.Normalize()

	listings, total, err := h.bookUseCase.List(c.Request.Context(), book.ListParams{
		CategoryID: query.CategoryID,
		AuthorID:   query.AuthorID,
		MinRating:  query.MinRating,
		SortMode:   book.SortMode(query.SortMode),
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewBookListItems(listings), total, query.Page, query.PageSize)
}

// Recommended 推荐榜
// @Summary      推荐图书
// @Description  按平均评分降序取前8本
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookListItem}
// @Router       /api/v1/books/recommended [get]
func (h *BookHandler) Recommended(c *gin.Context) {
	listings, err := h.bookUseCase.Recommended(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookListItems(listings))
}

// Popular 热门榜
// @Summary      热门图书
// @Description  按评论数降序取前8本
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookListItem}
// @Router       /api/v1/books/popular [get]
func (h *BookHandler) Popular(c *gin.Context) {
	listings, err := h.bookUseCase.Popular(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookListItems(listings))
}

// TopDiscounted 折扣榜
// @Summary      高折扣图书
// @Description  按折扣力度降序取前10本,只含当前有生效折扣的图书
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookListItem}
// @Router       /api/v1/books/top-discounted [get]
func (h *BookHandler) TopDiscounted(c *gin.Context) {
	listings, err := h.bookUseCase.TopDiscounted(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookListItems(listings))
}

// Update 更新图书
// @Summary      更新图书
// @Tags         图书
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书/分类/作者不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	b, err := h.bookUseCase.Update(c.Request.Context(), id, appbook.CreateInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Price:      req.Price,
		CoverPhoto: req.CoverPhoto,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	if err := h.bookUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
