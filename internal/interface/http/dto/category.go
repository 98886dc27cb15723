package dto

import "github.com/zhangwei/bookshop/internal/domain/category"

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"科幻"`
	Description string `json:"description" binding:"max=5000"`
}

// CategoryResponse 分类响应
type CategoryResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"科幻"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt   string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// NewCategoryResponse 领域实体→HTTP响应
func NewCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

// NewCategoryResponses 批量转换
func NewCategoryResponses(categories []*category.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
