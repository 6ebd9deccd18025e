package memory

import (
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/store"
)

// userRepository 实现了 UserRepository 接口，数据保存在进程内存中
type userRepository struct {
	store *store.Store
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(s *store.Store) *userRepository {
	return &userRepository{s}
}

// Create 创建一个新用户
// 唯一性检查与插入在同一写锁临界区内完成
func (r *userRepository) Create(user *model.User) error {
	r.store.Lock()
	defer r.store.Unlock()

	for _, u := range r.store.Users.All() {
		if u.UID == user.UID {
			return errors.New(errors.ErrUserExists, "uid already registered")
		}
		if u.Username == user.Username {
			return errors.New(errors.ErrUserExists, "username already exists")
		}
		if u.Email == user.Email {
			return errors.New(errors.ErrUserExists, "email already exists")
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	*user = r.store.Users.Insert(*user)
	return nil
}

// FindByID 通过ID查找用户
func (r *userRepository) FindByID(id int) (*model.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	user, ok := r.store.Users.Get(id)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// FindByUID 通过外部身份令牌查找用户
func (r *userRepository) FindByUID(uid string) (*model.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, u := range r.store.Users.All() {
		if u.UID == uid {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// FindByUsername 通过用户名查找用户
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, u := range r.store.Users.All() {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// FindByEmail 通过邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, u := range r.store.Users.All() {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// Update 部分更新用户信息，nil 字段保持原值
// 读取、合并、唯一性检查与写回在同一写锁临界区内完成，
// 并发更新不会丢失彼此的字段
func (r *userRepository) Update(id int, update *model.UserUpdate) (*model.User, error) {
	r.store.Lock()
	defer r.store.Unlock()

	user, ok := r.store.Users.Get(id)
	if !ok {
		return nil, errors.New(errors.ErrUserNotFound, "user not found")
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Website != nil {
		user.Website = *update.Website
	}

	for _, u := range r.store.Users.All() {
		if u.ID == id {
			continue
		}
		if u.Username == user.Username {
			return nil, errors.New(errors.ErrUserExists, "username already exists")
		}
		if u.Email == user.Email {
			return nil, errors.New(errors.ErrUserExists, "email already exists")
		}
	}

	user.UpdatedAt = time.Now()
	r.store.Users.Replace(id, user)
	return &user, nil
}

// Count 返回用户总数
func (r *userRepository) Count() (int, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	return r.store.Users.Len(), nil
}
