package interfaces

import "github.com/Kishor-Irnak/wave.v0.1/internal/model"

// UserRepository 接口定义了用户仓库应该实现的方法
// Find* 方法未命中时返回 (nil, nil)；唯一性约束（uid、用户名、
// 邮箱）由实现在与插入同一临界区内检查，冲突时返回 ErrUserExists。
// Update 在同一临界区内完成读取、合并与写回，nil 字段保持原值，
// 记录不存在时返回 ErrUserNotFound
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int) (*model.User, error)
	FindByUID(uid string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(id int, update *model.UserUpdate) (*model.User, error)
	Count() (int, error)
}
