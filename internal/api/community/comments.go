package community

import (
	"net/http"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListCommentsByBlog 返回某篇博客下的所有评论
func (h *CommunityHandler) ListCommentsByBlog(c *gin.Context) {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	comments, err := h.communityService.GetCommentsByBlog(blogID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ListCommentsByUser 返回某个用户发表的所有评论
func (h *CommunityHandler) ListCommentsByUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	comments, err := h.communityService.GetCommentsByUser(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment 处理发表评论的请求
func (h *CommunityHandler) CreateComment(c *gin.Context) {
	var comment model.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		util.Logger.Warn("发表评论失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的评论数据", err))
		return
	}

	if err := h.communityService.CreateComment(&comment); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// UpdateComment 处理部分更新评论的请求
func (h *CommunityHandler) UpdateComment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var update model.CommentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		util.Logger.Warn("更新评论失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	comment, err := h.communityService.UpdateComment(id, &update)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment 处理删除评论的请求
func (h *CommunityHandler) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.communityService.DeleteComment(id); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
