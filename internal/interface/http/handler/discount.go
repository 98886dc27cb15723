package handler

import (
	"github.com/gin-gonic/gin"

	appdiscount "github.com/zhangwei/bookshop/internal/application/discount"
	"github.com/zhangwei/bookshop/internal/domain/discount"
	"github.com/zhangwei/bookshop/internal/interface/http/dto"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/response"
)

// DiscountHandler 折扣HTTP处理器
type DiscountHandler struct {
	discountUseCase *appdiscount.UseCase
}

// NewDiscountHandler 创建折扣处理器
func NewDiscountHandler(discountUseCase *appdiscount.UseCase) *DiscountHandler {
	return &DiscountHandler{discountUseCase: discountUseCase}
}

// Create 创建折扣
// @Summary      创建折扣
// @Description  同一本书的折扣时间段不允许重叠,缺省的起/止日期视为无限远
// @Tags         折扣
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateDiscountRequest true "折扣信息"
// @Success      200 {object} response.Response{data=dto.DiscountResponse}
// @Failure      400 {object} response.Response "日期区间非法"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "折扣时间段重叠"
// @Router       /api/v1/discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req dto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		response.Error(c, discount.ErrInvalidDateRange)
		return
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		response.Error(c, discount.ErrInvalidDateRange)
		return
	}

	d, err := h.discountUseCase.Create(c.Request.Context(), appdiscount.CreateInput{
		BookID:        req.BookID,
		DiscountPrice: req.DiscountPrice,
		StartDate:     start,
		EndDate:       end,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewDiscountResponse(d))
}

// Get 折扣详情
// @Summary      折扣详情
// @Tags         折扣
// @Produce      json
// @Param        id path int true "折扣ID"
// @Success      200 {object} response.Response{data=dto.DiscountResponse}
// @Failure      404 {object} response.Response "折扣不存在"
// @Router       /api/v1/discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	d, err := h.discountUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewDiscountResponse(d))
}

// List 折扣分页列表
// @Summary      折扣分页列表
// @Tags         折扣
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Param        book_id query int false "按图书过滤"
// @Param        active_only query bool false "只看当前生效的折扣"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/discounts [get]
func (h *DiscountHandler) List(c *gin.Context) {
	var query dto.ListDiscountsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	query.Normalize()

	discounts, total, err := h.discountUseCase.List(c.Request.Context(), discount.ListParams{
		BookID:     query.BookID,
		ActiveOnly: query.ActiveOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewDiscountResponses(discounts), total, query.Page, query.PageSize)
}

// Update 更新折扣
// @Summary      更新折扣
// @Description  更新后的时间段同样不允许与该书其他折扣重叠
// @Tags         折扣
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "折扣ID"
// @Param        request body dto.UpdateDiscountRequest true "折扣信息"
// @Success      200 {object} response.Response{data=dto.DiscountResponse}
// @Failure      400 {object} response.Response "日期区间非法"
// @Failure      404 {object} response.Response "折扣不存在"
// @Failure      409 {object} response.Response "折扣时间段重叠"
// @Router       /api/v1/discounts/{id} [put]
func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	var req dto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		response.Error(c, discount.ErrInvalidDateRange)
		return
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		response.Error(c, discount.ErrInvalidDateRange)
		return
	}

	d, err := h.discountUseCase.Update(c.Request.Context(), id, appdiscount.UpdateInput{
		DiscountPrice: req.DiscountPrice,
		StartDate:     start,
		EndDate:       end,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewDiscountResponse(d))
}

// Delete 删除折扣
// @Summary      删除折扣
// @Tags         折扣
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "折扣ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "折扣不存在"
// @Router       /api/v1/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	if err := h.discountUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
