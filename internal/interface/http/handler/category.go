package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/zhangwei/bookshop/internal/application/category"
	"github.com/zhangwei/bookshop/internal/interface/http/dto"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	categoryUseCase *appcategory.UseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(categoryUseCase *appcategory.UseCase) *CategoryHandler {
	return &CategoryHandler{categoryUseCase: categoryUseCase}
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      409 {object} response.Response "分类名已存在"
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	cat, err := h.categoryUseCase.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCategoryResponse(cat))
}

// Get 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	cat, err := h.categoryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCategoryResponse(cat))
}

// List 分类分页列表
// @Summary      分类分页列表
// @Tags         分类
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	query.Normalize()

	categories, total, err := h.categoryUseCase.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewCategoryResponses(categories), total, query.Page, query.PageSize)
}

// ListAll 全量分类(下拉框用,按名称排序)
// @Summary      全量分类列表
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.CategoryResponse}
// @Router       /api/v1/categories/all [get]
func (h *CategoryHandler) ListAll(c *gin.Context) {
	categories, err := h.categoryUseCase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCategoryResponses(categories))
}

// Update 更新分类
// @Summary      更新分类
// @Tags         分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "分类名已存在"
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	cat, err := h.categoryUseCase.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCategoryResponse(cat))
}

// Delete 删除分类
// @Summary      删除分类
// @Description  被图书引用的分类不可删除
// @Tags         分类
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "分类被图书引用"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
