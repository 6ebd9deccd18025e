package system

import (
	"net/http"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/repository/interfaces"

	"github.com/gin-gonic/gin"
)

// StatsHandler 暴露调试用的运行统计
type StatsHandler struct {
	userRepo  interfaces.UserRepository
	blogRepo  interfaces.BlogRepository
	analytics *errors.ErrorAnalytics
}

// NewStatsHandler 创建一个新的 StatsHandler 实例
func NewStatsHandler(userRepo interfaces.UserRepository, blogRepo interfaces.BlogRepository, analytics *errors.ErrorAnalytics) *StatsHandler {
	return &StatsHandler{userRepo, blogRepo, analytics}
}

// GetStats 返回实体计数和错误统计
func (h *StatsHandler) GetStats(c *gin.Context) {
	userCount, err := h.userRepo.Count()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	blogCount, err := h.blogRepo.Count()
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":  userCount,
		"blogs":  blogCount,
		"errors": h.analytics.GetStats(),
	})
}
