package community

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

// CommunityHandler 处理点赞、关注和评论相关的请求
type CommunityHandler struct {
	communityService *service.CommunityService
}

// NewCommunityHandler 创建一个新的 CommunityHandler 实例
func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService}
}

// pathID 解析路径中的整数参数
func pathID(c *gin.Context, key string) (int, error) {
	id, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return 0, errors.Wrap(errors.ErrValidation, "无效的路径参数 "+key, err)
	}
	return id, nil
}

// ListLikesByBlog 返回某篇博客收到的所有点赞
func (h *CommunityHandler) ListLikesByBlog(c *gin.Context) {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	likes, err := h.communityService.GetLikesByBlog(blogID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// ListLikesByUser 返回某个用户发出的所有点赞
func (h *CommunityHandler) ListLikesByUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	likes, err := h.communityService.GetLikesByUser(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// CreateLike 处理点赞请求，重复点赞返回409
func (h *CommunityHandler) CreateLike(c *gin.Context) {
	var like model.Like
	if err := c.ShouldBindJSON(&like); err != nil {
		util.Logger.Warn("点赞失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的点赞数据", err))
		return
	}

	if err := h.communityService.LikeBlog(&like); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

// DeleteLike 处理取消点赞请求
func (h *CommunityHandler) DeleteLike(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.communityService.UnlikeBlog(id); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
