package user

import (
	"fmt"
	"net/http"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/storage"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadHandler 处理文件上传请求（头像、封面图等）
type UploadHandler struct {
	storage storage.FileStorage
}

// NewUploadHandler 创建一个新的 UploadHandler 实例
func NewUploadHandler(storage storage.FileStorage) *UploadHandler {
	return &UploadHandler{storage}
}

// Upload 接收多部分表单中的 file 字段并保存到配置的存储后端
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "缺少上传文件", err))
		return
	}

	uid := c.GetString("uid")
	filename := util.GenerateUniqueFilename(file.Filename)
	path := fmt.Sprintf("users/%s/%s", uid, filename)

	url, err := h.storage.UploadFile(file, path)
	if err != nil {
		util.Logger.Error("文件上传失败", zap.Error(err), zap.String("uid", uid))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "文件上传失败", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
