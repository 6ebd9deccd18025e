package storage

import (
	"fmt"
	"mime/multipart"

	"github.com/Kishor-Irnak/wave.v0.1/internal/common"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Client 基于 AWS S3 的文件存储实现
type S3Client struct {
	s3     *s3.S3
	bucket string
}

func NewS3Client(region, bucket string) (*S3Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3Client{
		s3:     s3.New(sess),
		bucket: bucket,
	}, nil
}

func (c *S3Client) UploadFile(file *multipart.FileHeader, path string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// 上传网络抖动时重试
	err = common.WithRetry(func() error {
		if _, err := f.Seek(0, 0); err != nil {
			return err
		}
		_, err := c.s3.PutObject(&s3.PutObjectInput{
			Bucket:        aws.String(c.bucket),
			Key:           aws.String(path),
			Body:          f,
			ContentLength: aws.Int64(file.Size),
			ContentType:   aws.String(file.Header.Get("Content-Type")),
		})
		return err
	}, 3)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, path), nil
}
