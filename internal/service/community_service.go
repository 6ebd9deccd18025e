package service

import (
	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/repository/interfaces"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"go.uber.org/zap"
)

// CommunityService 处理点赞、关注和评论相关的业务逻辑
type CommunityService struct {
	communityRepo interfaces.CommunityRepository
}

// NewCommunityService 创建一个新的 CommunityService 实例
func NewCommunityService(communityRepo interfaces.CommunityRepository) *CommunityService {
	return &CommunityService{communityRepo: communityRepo}
}

// LikeBlog 为博客点赞，同一用户对同一博客重复点赞返回冲突错误
func (s *CommunityService) LikeBlog(like *model.Like) error {
	if err := s.communityRepo.CreateLike(like); err != nil {
		return err
	}
	util.Logger.Info("点赞成功", zap.Int("like_id", like.ID), zap.Int("blog_id", like.BlogID))
	return nil
}

// UnlikeBlog 取消点赞
func (s *CommunityService) UnlikeBlog(id int) error {
	deleted, err := s.communityRepo.DeleteLike(id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New(errors.ErrLikeNotFound, "like not found")
	}
	return nil
}

// GetLikesByBlog 返回某篇博客收到的所有点赞
func (s *CommunityService) GetLikesByBlog(blogID int) ([]*model.Like, error) {
	return s.communityRepo.ListLikesByBlog(blogID)
}

// GetLikesByUser 返回某个用户发出的所有点赞
func (s *CommunityService) GetLikesByUser(userID int) ([]*model.Like, error) {
	return s.communityRepo.ListLikesByUser(userID)
}

// FollowUser 关注用户，不允许自己关注自己，重复关注返回冲突错误
func (s *CommunityService) FollowUser(follow *model.Follow) error {
	if follow.FollowerID == follow.FollowingID {
		return errors.New(errors.ErrValidation, "cannot follow yourself")
	}
	if err := s.communityRepo.CreateFollow(follow); err != nil {
		return err
	}
	util.Logger.Info("关注成功",
		zap.Int("follower_id", follow.FollowerID),
		zap.Int("following_id", follow.FollowingID))
	return nil
}

// UnfollowUser 取消关注
func (s *CommunityService) UnfollowUser(id int) error {
	deleted, err := s.communityRepo.DeleteFollow(id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New(errors.ErrFollowNotFound, "follow not found")
	}
	return nil
}

// GetFollowers 返回关注了某个用户的关注记录
func (s *CommunityService) GetFollowers(userID int) ([]*model.Follow, error) {
	return s.communityRepo.ListFollowers(userID)
}

// GetFollowing 返回某个用户发起的关注记录
func (s *CommunityService) GetFollowing(userID int) ([]*model.Follow, error) {
	return s.communityRepo.ListFollowing(userID)
}

// CreateComment 发表评论
func (s *CommunityService) CreateComment(comment *model.Comment) error {
	if err := s.communityRepo.CreateComment(comment); err != nil {
		return err
	}
	util.Logger.Info("评论创建成功", zap.Int("comment_id", comment.ID), zap.Int("blog_id", comment.BlogID))
	return nil
}

// GetCommentByID 通过ID获取评论
func (s *CommunityService) GetCommentByID(id int) (*model.Comment, error) {
	comment, err := s.communityRepo.FindCommentByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.New(errors.ErrCommentNotFound, "comment not found")
	}
	return comment, nil
}

// GetCommentsByBlog 返回某篇博客下的所有评论
func (s *CommunityService) GetCommentsByBlog(blogID int) ([]*model.Comment, error) {
	return s.communityRepo.ListCommentsByBlog(blogID)
}

// GetCommentsByUser 返回某个用户发表的所有评论
func (s *CommunityService) GetCommentsByUser(userID int) ([]*model.Comment, error) {
	return s.communityRepo.ListCommentsByUser(userID)
}

// UpdateComment 部分更新评论内容
// 合并在仓库的临界区内完成，并发更新不会互相覆盖
func (s *CommunityService) UpdateComment(id int, update *model.CommentUpdate) (*model.Comment, error) {
	return s.communityRepo.UpdateComment(id, update)
}

// DeleteComment 删除评论
func (s *CommunityService) DeleteComment(id int) error {
	deleted, err := s.communityRepo.DeleteComment(id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New(errors.ErrCommentNotFound, "comment not found")
	}
	return nil
}
