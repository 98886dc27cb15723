package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/zhangwei/bookshop/internal/application/author"
	"github.com/zhangwei/bookshop/internal/interface/http/dto"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authorUseCase *appauthor.UseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authorUseCase *appauthor.UseCase) *AuthorHandler {
	return &AuthorHandler{authorUseCase: authorUseCase}
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      403 {object} response.Response "需要管理员权限"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	a, err := h.authorUseCase.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(a))
}

// Get 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	a, err := h.authorUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(a))
}

// List 作者分页列表
// @Summary      作者分页列表
// @Tags         作者
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	query.Normalize()

	authors, total, err := h.authorUseCase.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewAuthorResponses(authors), total, query.Page, query.PageSize)
}

// ListAll 全量作者(下拉框用,按名称排序)
// @Summary      全量作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /api/v1/authors/all [get]
func (h *AuthorHandler) ListAll(c *gin.Context) {
	authors, err := h.authorUseCase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponses(authors))
}

// Update 更新作者
// @Summary      更新作者
// @Tags         作者
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	a, err := h.authorUseCase.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(a))
}

// Delete 删除作者
// @Summary      删除作者
// @Description  被图书引用的作者不可删除
// @Tags         作者
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      409 {object} response.Response "作者被图书引用"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	if err := h.authorUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
