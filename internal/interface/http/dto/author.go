package dto

import "github.com/zhangwei/bookshop/internal/domain/author"

// AuthorRequest 创建/更新作者请求
type AuthorRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"刘慈欣"`
	Description string `json:"description" binding:"max=5000"`
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"刘慈欣"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt   string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// NewAuthorResponse 领域实体→HTTP响应
func NewAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

// NewAuthorResponses 批量转换
func NewAuthorResponses(authors []*author.Author) []*AuthorResponse {
	out := make([]*AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, NewAuthorResponse(a))
	}
	return out
}
