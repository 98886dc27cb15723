package discount

import (
	"context"
	"time"
)

// ListParams 折扣列表查询参数
type ListParams struct {
	BookID     uint // 0表示不过滤
	ActiveOnly bool // 只看当前生效的折扣
	Page       int
	PageSize   int
}

// Repository 折扣仓储接口
type Repository interface {
	// Create 创建折扣
	Create(ctx context.Context, d *Discount) error

	// FindByID 根据ID查找折扣,不存在返回ErrDiscountNotFound
	FindByID(ctx context.Context, id uint) (*Discount, error)

	// ListByBookForUpdate 行锁读取某本书的全部折扣(SELECT ... FOR UPDATE)
	// 只能在事务内调用,重叠校验期间阻塞并发写入
	ListByBookForUpdate(ctx context.Context, bookID uint) ([]*Discount, error)

	// List 分页列表,按ID升序
	List(ctx context.Context, params ListParams) ([]*Discount, int64, error)

	// FindActiveByBook 查某本书在date当天生效的最低价折扣,无则返回nil
	FindActiveByBook(ctx context.Context, bookID uint, date time.Time) (*Discount, error)

	// Update 更新折扣
	Update(ctx context.Context, d *Discount) error

	// Delete 删除折扣
	Delete(ctx context.Context, id uint) error
}
