package blog

import (
	"net/http"
	"strconv"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/service"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlogHandler 处理博客相关的请求
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler 创建一个新的 BlogHandler 实例
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService}
}

// parseNonNegative 解析必须为非负整数的查询参数
func parseNonNegative(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New(errors.ErrValidation, "无效的分页参数 "+key)
	}
	return value, nil
}

// ListBlogs 返回全局时间线，按发布时间倒序分页
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	limit, err := parseNonNegative(c, "limit", service.DefaultFeedLimit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	offset, err := parseNonNegative(c, "offset", service.DefaultFeedOffset)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	blogs, err := h.blogService.ListBlogs(limit, offset)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlog 处理通过ID获取博客的请求
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的博客ID", err))
		return
	}

	blog, err := h.blogService.GetBlogByID(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// ListBlogsByUser 返回某个用户发布的所有博客
func (h *BlogHandler) ListBlogsByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的用户ID", err))
		return
	}

	blogs, err := h.blogService.ListBlogsByUser(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// ListBlogsByCategory 返回指定分类下的所有博客
func (h *BlogHandler) ListBlogsByCategory(c *gin.Context) {
	blogs, err := h.blogService.ListBlogsByCategory(c.Param("category"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// CreateBlog 处理创建博客的请求
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var blog model.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		util.Logger.Warn("创建博客失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的博客数据", err))
		return
	}

	if err := h.blogService.CreateBlog(&blog); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// UpdateBlog 处理部分更新博客的请求
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的博客ID", err))
		return
	}

	var update model.BlogUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		util.Logger.Warn("更新博客失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	blog, err := h.blogService.UpdateBlog(id, &update)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// DeleteBlog 处理删除博客的请求，点赞和评论随之删除
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的博客ID", err))
		return
	}

	if err := h.blogService.DeleteBlog(id); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
