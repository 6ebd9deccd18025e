package service

import (
	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/repository/interfaces"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"go.uber.org/zap"
)

// 时间线分页默认值
const (
	DefaultFeedLimit  = 10
	DefaultFeedOffset = 0
)

// BlogService 处理与博客相关的业务逻辑
type BlogService struct {
	blogRepo interfaces.BlogRepository
}

// NewBlogService 创建一个新的 BlogService 实例
func NewBlogService(blogRepo interfaces.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// CreateBlog 创建一篇新博客
// 作者ID不校验存在性，与存储层的外键策略保持一致
func (s *BlogService) CreateBlog(blog *model.Blog) error {
	if err := s.blogRepo.Create(blog); err != nil {
		return err
	}
	util.Logger.Info("博客创建成功", zap.Int("blog_id", blog.ID), zap.Int("user_id", blog.UserID))
	return nil
}

// GetBlogByID 通过ID获取博客
func (s *BlogService) GetBlogByID(id int) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, errors.New(errors.ErrBlogNotFound, "blog not found")
	}
	return blog, nil
}

// ListBlogs 返回全局时间线，limit/offset 须为非负整数（由接口层校验）
func (s *BlogService) ListBlogs(limit, offset int) ([]*model.Blog, error) {
	return s.blogRepo.List(limit, offset)
}

// ListBlogsByUser 返回某个用户发布的所有博客
func (s *BlogService) ListBlogsByUser(userID int) ([]*model.Blog, error) {
	return s.blogRepo.ListByUser(userID)
}

// ListBlogsByCategory 返回指定分类下的所有博客
func (s *BlogService) ListBlogsByCategory(category string) ([]*model.Blog, error) {
	return s.blogRepo.ListByCategory(category)
}

// UpdateBlog 部分更新博客，未提供的字段保持原值
// 合并在仓库的临界区内完成，并发更新不会互相覆盖
func (s *BlogService) UpdateBlog(id int, update *model.BlogUpdate) (*model.Blog, error) {
	return s.blogRepo.Update(id, update)
}

// DeleteBlog 删除博客，其点赞和评论由仓库级联删除
func (s *BlogService) DeleteBlog(id int) error {
	deleted, err := s.blogRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New(errors.ErrBlogNotFound, "blog not found")
	}
	return nil
}
