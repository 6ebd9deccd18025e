package community

import (
	"net/http"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListFollowers 返回关注了某个用户的关注记录
func (h *CommunityHandler) ListFollowers(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	follows, err := h.communityService.GetFollowers(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, follows)
}

// ListFollowing 返回某个用户发起的关注记录
func (h *CommunityHandler) ListFollowing(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	follows, err := h.communityService.GetFollowing(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, follows)
}

// CreateFollow 处理关注请求，重复关注返回409
func (h *CommunityHandler) CreateFollow(c *gin.Context) {
	var follow model.Follow
	if err := c.ShouldBindJSON(&follow); err != nil {
		util.Logger.Warn("关注失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的关注数据", err))
		return
	}

	if err := h.communityService.FollowUser(&follow); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, follow)
}

// DeleteFollow 处理取消关注请求
func (h *CommunityHandler) DeleteFollow(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.communityService.UnfollowUser(id); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
