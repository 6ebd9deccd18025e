package model

import "time"

// User 结构体表示用户模型
// UID 是外部身份提供商分配的令牌，创建后不可变更
type User struct {
	ID        int       `json:"id"`
	UID       string    `json:"uid" binding:"required"`
	Username  string    `json:"username" binding:"required,handle"`
	Email     string    `json:"email" binding:"required,email"`
	Name      string    `json:"name" binding:"required"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Location  string    `json:"location,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate 部分更新用户资料时使用，nil 字段保持原值
// UID 不在其中：身份令牌不允许修改
type UserUpdate struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	Location  *string `json:"location"`
	Website   *string `json:"website"`
}
