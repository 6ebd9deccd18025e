package model

import "time"

// Blog 结构体表示博客文章模型
// UserID 为作者ID，存储层不校验其存在性
type Blog struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// BlogUpdate 部分更新博客时使用，nil 字段保持原值
type BlogUpdate struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	CoverURL *string   `json:"coverUrl"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
}
