package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zhangwei/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("数据库连接成功")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只创建表、补字段,不会删除或修改现有字段;
// 生产环境应使用版本化迁移脚本
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BlacklistedTokenModel{},
		&AuthorModel{},
		&CategoryModel{},
		&BookModel{},
		&DiscountModel{},
		&ReviewModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. infrastructure层的数据模型,带GORM tag
// 2. domain/user/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	FirstName string         `gorm:"size:50;comment:名"`
	LastName  string         `gorm:"size:50;comment:姓"`
	Email     string         `gorm:"uniqueIndex;size:70;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Admin     bool           `gorm:"default:false;comment:管理员标记"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (UserModel) TableName() string {
	return "users"
}

// BlacklistedTokenModel 已吊销Token模型
// JTI唯一索引:重复登出时INSERT冲突按成功处理;
// Expiry建索引供定时清理按范围删除
type BlacklistedTokenModel struct {
	ID            uint      `gorm:"primaryKey"`
	JTI           string    `gorm:"column:jti;uniqueIndex;size:36;not null;comment:JWT ID"`
	Expiry        time.Time `gorm:"index;not null;comment:Token过期时间"`
	BlacklistedOn time.Time `gorm:"not null;comment:吊销时间"`
}

func (BlacklistedTokenModel) TableName() string {
	return "blacklisted_tokens"
}

// AuthorModel 作者模型
type AuthorModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"index;size:100;not null;comment:作者姓名"`
	Description string    `gorm:"type:text;comment:作者简介"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel 分类模型,名称唯一
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	Description string    `gorm:"type:text;comment:分类描述"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel 图书模型
// 价格以分(int64)存储,避免浮点数精度问题
type BookModel struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"index;size:255;not null;comment:书名"`
	Summary    string    `gorm:"type:text;comment:简介"`
	Price      int64     `gorm:"index;not null;comment:定价(分)"`
	CoverPhoto string    `gorm:"size:255;comment:封面URL"`
	CategoryID uint      `gorm:"index;not null;comment:分类ID"`
	AuthorID   uint      `gorm:"index;not null;comment:作者ID"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

func (BookModel) TableName() string {
	return "books"
}

// DiscountModel 折扣模型
// StartDate/EndDate为NULL时表示该方向无界
type DiscountModel struct {
	ID            uint       `gorm:"primaryKey"`
	BookID        uint       `gorm:"index;not null;comment:图书ID"`
	DiscountPrice int64      `gorm:"not null;comment:折扣价(分)"`
	StartDate     *time.Time `gorm:"type:date;comment:生效日期(NULL为无界)"`
	EndDate       *time.Time `gorm:"type:date;comment:失效日期(NULL为无界)"`
	CreatedAt     time.Time  `gorm:"comment:创建时间"`
	UpdatedAt     time.Time  `gorm:"comment:更新时间"`
}

func (DiscountModel) TableName() string {
	return "discounts"
}

// ReviewModel 书评模型
// ReviewDate是业务时间,列表排序按它(修改书评会刷新)
type ReviewModel struct {
	ID         uint      `gorm:"primaryKey"`
	BookID     uint      `gorm:"index;not null;comment:图书ID"`
	UserID     uint      `gorm:"index;not null;comment:用户ID"`
	Rating     int       `gorm:"type:tinyint;not null;comment:评分(1-5)"`
	Title      string    `gorm:"size:120;not null;comment:书评标题"`
	Body       string    `gorm:"type:text;comment:书评内容"`
	ReviewDate time.Time `gorm:"index;not null;comment:书评时间"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// OrderModel 订单模型
// 与OrderItemModel一对多,Status用int存储(便于索引)
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	UserID    uint             `gorm:"index;not null;comment:买家用户ID"`
	OrderDate time.Time        `gorm:"index;not null;comment:下单时间"`
	Amount    int64            `gorm:"not null;comment:订单总金额(分)"`
	Status    int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1待处理2处理中3已发货4已送达5已取消)"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time        `gorm:"comment:创建时间"`
	UpdatedAt time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细模型
// Price记录下单时的单价快照
type OrderItemModel struct {
	ID       uint  `gorm:"primaryKey"`
	OrderID  uint  `gorm:"index;not null;comment:订单ID"`
	BookID   uint  `gorm:"index;not null;comment:图书ID"`
	Quantity int   `gorm:"not null;comment:购买数量"`
	Price    int64 `gorm:"not null;comment:下单时单价(分)"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
