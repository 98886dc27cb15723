package category

import (
	"time"
)

// Category 图书分类实体
// 分类名称全局唯一(数据库UNIQUE索引)
type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建分类(工厂方法)
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
