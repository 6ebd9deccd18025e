package storage

import "mime/multipart"

// FileStorage 文件存储接口，按 STORAGE_DRIVER 选择本地或 S3 实现
type FileStorage interface {
	UploadFile(file *multipart.FileHeader, path string) (string, error)
}
