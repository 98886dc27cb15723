package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/zhangwei/bookshop/internal/application/review"
	"github.com/zhangwei/bookshop/internal/domain/review"
	"github.com/zhangwei/bookshop/internal/interface/http/dto"
	"github.com/zhangwei/bookshop/internal/interface/http/middleware"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/response"
)

// ReviewHandler 书评HTTP处理器
type ReviewHandler struct {
	reviewUseCase *appreview.UseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(reviewUseCase *appreview.UseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

// Create 发表书评
// @Summary      发表书评
// @Tags         书评
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "书评内容"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	r, err := h.reviewUseCase.Create(c.Request.Context(), appreview.CreateInput{
		BookID: req.BookID,
		UserID: middleware.GetUserID(c),
		Rating: req.Rating,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewReviewResponse(r))
}

// Get 书评详情
// @Summary      书评详情
// @Tags         书评
// @Produce      json
// @Param        id path int true "书评ID"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	r, err := h.reviewUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewReviewResponse(r))
}

// List 书评分页列表
// @Summary      书评分页列表
// @Description  支持按图书/用户/星级过滤,默认按评论日期倒序
// @Tags         书评
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Param        book_id query int false "按图书过滤"
// @Param        user_id query int false "按用户过滤"
// @Param        rating_star query int false "只看某一星级(1-5)"
// @Param        sort query string false "排序" Enums(newest, oldest)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var query dto.ListReviewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	query.Normalize()

	reviews, total, err := h.reviewUseCase.List(c.Request.Context(), review.ListParams{
		BookID:     query.BookID,
		UserID:     query.UserID,
		RatingStar: query.RatingStar,
		Ascending:  query.Sort == "oldest",
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewReviewResponses(reviews), total, query.Page, query.PageSize)
}

// Stats 图书评分统计
// @Summary      图书评分统计
// @Description  返回平均分、评论总数及各星级分布
// @Tags         书评
// @Produce      json
// @Param        book_id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.RatingStatsResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/reviews/stats/{book_id} [get]
func (h *ReviewHandler) Stats(c *gin.Context) {
	bookID, ok := parseIDParam(c, "book_id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	stats, err := h.reviewUseCase.Stats(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewRatingStatsResponse(stats))
}

// Update 修改书评
// @Summary      修改书评
// @Description  仅书评作者本人可修改,修改会刷新评论日期
// @Tags         书评
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "书评ID"
// @Param        request body dto.UpdateReviewRequest true "书评内容"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      403 {object} response.Response "不是书评作者"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	r, err := h.reviewUseCase.Update(c.Request.Context(), id, middleware.GetUserID(c), appreview.UpdateInput{
		Rating: req.Rating,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewReviewResponse(r))
}

// Delete 删除书评
// @Summary      删除书评
// @Description  书评作者本人或管理员可删除
// @Tags         书评
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "书评ID"
// @Success      200 {object} response.Response
// @Failure      403 {object} response.Response "无权删除"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	err := h.reviewUseCase.Delete(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
