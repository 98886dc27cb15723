package user

import (
	"time"
)

// User 用户实体(聚合根)
// DDD设计说明:
// 1. User是用户聚合的根实体,密码只保存bcrypt哈希,不暴露明文
// 2. Admin标记管理员,管理端接口由中间件依据此字段放行
// 3. 领域实体不带GORM tag,infrastructure层的Repository负责映射
type User struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Password  string // bcrypt哈希值
	Admin     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Admin:     false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FullName 拼接展示用姓名
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
