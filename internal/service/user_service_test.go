package service

import (
	"os"
	"testing"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	util.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUID(uid string) (*model.User, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(id int, update *model.UserUpdate) (*model.User, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// TestCreateUser 测试创建用户功能
func TestCreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	user := &model.User{
		UID:      "provider|abc123",
		Username: "testuser",
		Email:    "test@example.com",
		Name:     "Test User",
	}

	// 测试成功创建
	mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

	err := service.CreateUser(user)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// 测试唯一性冲突
	mockRepo2 := new(MockUserRepository)
	service2 := NewUserService(mockRepo2)
	mockRepo2.On("Create", mock.AnythingOfType("*model.User")).
		Return(errors.New(errors.ErrUserExists, "username, email or uid already exists"))

	err = service2.CreateUser(user)
	assert.Error(t, err)
	assert.True(t, errors.IsConflict(err))
}

// TestGetUserByUID 测试通过外部身份令牌查找用户
func TestGetUserByUID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	existing := &model.User{ID: 1, UID: "provider|abc123", Username: "testuser"}
	mockRepo.On("FindByUID", "provider|abc123").Return(existing, nil)
	mockRepo.On("FindByUID", "provider|missing").Return(nil, nil)

	user, err := service.GetUserByUID("provider|abc123")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	user, err = service.GetUserByUID("provider|missing")
	assert.Nil(t, user)
	assert.True(t, errors.IsNotFound(err))
}

// TestUpdateUser 测试部分更新用户资料
func TestUpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	bio := "new bio"
	update := &model.UserUpdate{Bio: &bio}
	merged := &model.User{
		ID:       1,
		UID:      "provider|abc123",
		Username: "testuser",
		Email:    "test@example.com",
		Name:     "Test User",
		Bio:      "new bio",
	}
	mockRepo.On("Update", 1, update).Return(merged, nil)

	updated, err := service.UpdateUser(1, update)
	assert.NoError(t, err)
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "testuser", updated.Username)
	mockRepo.AssertExpectations(t)

	// 测试用户不存在
	mockRepo.On("Update", 999, update).
		Return(nil, errors.New(errors.ErrUserNotFound, "user not found"))
	updated, err = service.UpdateUser(999, update)
	assert.Nil(t, updated)
	assert.True(t, errors.IsNotFound(err))
}
