package service

import (
	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/repository/interfaces"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"go.uber.org/zap"
)

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser 创建新用户（由外部身份提供商的注册回调触发）
// uid、用户名、邮箱的唯一性由仓库在插入临界区内保证
func (s *UserService) CreateUser(user *model.User) error {
	if err := s.userRepo.Create(user); err != nil {
		return err
	}
	util.Logger.Info("用户创建成功", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return nil
}

// GetUserByID 通过ID获取用户信息
func (s *UserService) GetUserByID(id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "user not found")
	}
	return user, nil
}

// GetUserByUID 通过外部身份令牌获取用户信息
func (s *UserService) GetUserByUID(uid string) (*model.User, error) {
	user, err := s.userRepo.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "user not found")
	}
	return user, nil
}

// GetUserByUsername 通过用户名获取用户信息
func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "user not found")
	}
	return user, nil
}

// UpdateUser 部分更新用户资料，未提供的字段保持原值
// 合并在仓库的临界区内完成，并发更新不会互相覆盖
func (s *UserService) UpdateUser(id int, update *model.UserUpdate) (*model.User, error) {
	user, err := s.userRepo.Update(id, update)
	if err != nil {
		return nil, err
	}
	util.Logger.Info("用户更新成功", zap.Int("user_id", user.ID))
	return user, nil
}
