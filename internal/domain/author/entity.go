package author

import (
	"time"
)

// Author 作者实体
type Author struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor 创建作者(工厂方法)
func NewAuthor(name, description string) *Author {
	now := time.Now()
	return &Author{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
