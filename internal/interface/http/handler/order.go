package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/zhangwei/bookshop/internal/application/order"
	"github.com/zhangwei/bookshop/internal/domain/order"
	"github.com/zhangwei/bookshop/internal/interface/http/dto"
	"github.com/zhangwei/bookshop/internal/interface/http/middleware"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	orderUseCase *apporder.UseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(orderUseCase *apporder.UseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

// Create 创建订单
// @Summary      创建订单
// @Description  按下单时刻的生效折扣价冻结单价,订单与明细在一个事务内写入
// @Tags         订单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "订单明细"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "明细为空或数量非法"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	items := make([]apporder.CreateItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, apporder.CreateItemInput{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}

	o, err := h.orderUseCase.Create(c.Request.Context(), middleware.GetUserID(c), items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// Get 订单详情
// @Summary      订单详情
// @Description  普通用户只能查看自己的订单
// @Tags         订单
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      403 {object} response.Response "无权访问该订单"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	o, err := h.orderUseCase.Get(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// List 订单分页列表
// @Summary      订单分页列表
// @Description  普通用户查自己的订单;管理员可按用户/状态筛选全量订单
// @Tags         订单
// @Security     BearerAuth
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页大小" default(20)
// @Param        user_id query int false "按用户过滤(仅管理员)"
// @Param        status query string false "按状态过滤" Enums(pending, processing, shipped, delivered, cancelled)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var query dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	query.Normalize()

	params := order.ListParams{
		UserID:   query.UserID,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status, _ := order.ParseStatus(query.Status)
		params.Status = &status
	}

	orders, total, err := h.orderUseCase.List(c.Request.Context(), middleware.GetUserID(c), middleware.IsAdmin(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewOrderResponses(orders), total, query.Page, query.PageSize)
}

// UpdateStatus 更新订单状态
// @Summary      更新订单状态
// @Description  仅管理员,状态流转受状态机约束
// @Tags         订单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "非法状态流转"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// binding oneof已兜底,此处解析不会失败
	status, _ := order.ParseStatus(req.Status)

	o, err := h.orderUseCase.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// Cancel 取消订单
// @Summary      取消订单
// @Description  订单所有者或管理员可取消,已发货/已送达的订单不可取消
// @Tags         订单
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "订单已发货,无法取消"
// @Failure      403 {object} response.Response "无权访问该订单"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	o, err := h.orderUseCase.Cancel(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}
