package user

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

// UserHandler 处理用户相关的请求
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService}
}

// GetUserByID 处理通过ID获取用户的请求
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的用户ID", err))
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByUID 处理通过外部身份令牌获取用户的请求
func (h *UserHandler) GetUserByUID(c *gin.Context) {
	user, err := h.userService.GetUserByUID(c.Param("uid"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByUsername 处理通过用户名获取用户的请求
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.userService.GetUserByUsername(c.Param("username"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser 处理创建用户的请求（身份提供商注册回调）
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		util.Logger.Warn("创建用户失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的用户数据", err))
		return
	}

	if err := h.userService.CreateUser(&user); err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser 处理部分更新用户资料的请求
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的用户ID", err))
		return
	}

	var update model.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		util.Logger.Warn("更新用户失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user, err := h.userService.UpdateUser(id, &update)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Me 返回当前认证令牌对应的用户
// 注册回调尚未创建用户时返回404
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未授权的访问"))
		return
	}

	user, err := h.userService.GetUserByUID(uid)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
