package service

import (
	"testing"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommunityRepository 是 CommunityRepository 接口的模拟实现
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) CreateLike(like *model.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockCommunityRepository) DeleteLike(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) FindLike(userID, blogID int) (*model.Like, error) {
	args := m.Called(userID, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockCommunityRepository) ListLikesByBlog(blogID int) ([]*model.Like, error) {
	args := m.Called(blogID)
	return args.Get(0).([]*model.Like), args.Error(1)
}

func (m *MockCommunityRepository) ListLikesByUser(userID int) ([]*model.Like, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Like), args.Error(1)
}

func (m *MockCommunityRepository) CreateFollow(follow *model.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockCommunityRepository) DeleteFollow(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) FindFollow(followerID, followingID int) (*model.Follow, error) {
	args := m.Called(followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockCommunityRepository) ListFollowers(userID int) ([]*model.Follow, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Follow), args.Error(1)
}

func (m *MockCommunityRepository) ListFollowing(userID int) ([]*model.Follow, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Follow), args.Error(1)
}

func (m *MockCommunityRepository) CreateComment(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommunityRepository) FindCommentByID(id int) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommunityRepository) ListCommentsByBlog(blogID int) ([]*model.Comment, error) {
	args := m.Called(blogID)
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommunityRepository) ListCommentsByUser(userID int) ([]*model.Comment, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommunityRepository) UpdateComment(id int, update *model.CommentUpdate) (*model.Comment, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommunityRepository) DeleteComment(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// TestLikeBlog 测试点赞功能
func TestLikeBlog(t *testing.T) {
	mockRepo := new(MockCommunityRepository)
	service := NewCommunityService(mockRepo)

	like := &model.Like{UserID: 1, BlogID: 2}
	mockRepo.On("CreateLike", like).Return(nil).Once()

	err := service.LikeBlog(like)
	assert.NoError(t, err)

	// 重复点赞返回冲突
	mockRepo.On("CreateLike", like).
		Return(errors.New(errors.ErrLikeExists, "like already exists")).Once()
	err = service.LikeBlog(like)
	assert.True(t, errors.IsConflict(err))
	mockRepo.AssertExpectations(t)
}

// TestUnlikeBlog 测试取消点赞功能
func TestUnlikeBlog(t *testing.T) {
	mockRepo := new(MockCommunityRepository)
	service := NewCommunityService(mockRepo)

	mockRepo.On("DeleteLike", 1).Return(true, nil)
	mockRepo.On("DeleteLike", 999).Return(false, nil)

	assert.NoError(t, service.UnlikeBlog(1))
	assert.True(t, errors.IsNotFound(service.UnlikeBlog(999)))
}

// TestFollowUser 测试关注功能
func TestFollowUser(t *testing.T) {
	mockRepo := new(MockCommunityRepository)
	service := NewCommunityService(mockRepo)

	follow := &model.Follow{FollowerID: 1, FollowingID: 2}
	mockRepo.On("CreateFollow", follow).Return(nil).Once()

	err := service.FollowUser(follow)
	assert.NoError(t, err)

	// 不允许自己关注自己，不应触达仓库
	err = service.FollowUser(&model.Follow{FollowerID: 1, FollowingID: 1})
	assert.Error(t, err)
	assert.Equal(t, errors.ErrValidation, errors.Code(err))

	// 重复关注返回冲突
	mockRepo.On("CreateFollow", follow).
		Return(errors.New(errors.ErrFollowExists, "follow already exists")).Once()
	err = service.FollowUser(follow)
	assert.True(t, errors.IsConflict(err))
	mockRepo.AssertExpectations(t)
}

// TestUpdateComment 测试更新评论功能
func TestUpdateComment(t *testing.T) {
	mockRepo := new(MockCommunityRepository)
	service := NewCommunityService(mockRepo)

	content := "new content"
	update := &model.CommentUpdate{Content: &content}
	merged := &model.Comment{ID: 1, UserID: 1, BlogID: 2, Content: "new content"}
	mockRepo.On("UpdateComment", 1, update).Return(merged, nil)

	updated, err := service.UpdateComment(1, update)
	assert.NoError(t, err)
	assert.Equal(t, "new content", updated.Content)

	// 测试评论不存在
	mockRepo.On("UpdateComment", 999, update).
		Return(nil, errors.New(errors.ErrCommentNotFound, "comment not found"))
	updated, err = service.UpdateComment(999, update)
	assert.Nil(t, updated)
	assert.True(t, errors.IsNotFound(err))
}
