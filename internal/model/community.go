package model

import "time"

// Like 表示用户对博客的点赞，(UserID, BlogID) 组合唯一
type Like struct {
	ID     int `json:"id"`
	UserID int `json:"userId" binding:"required"`
	BlogID int `json:"blogId" binding:"required"`
}

// Follow 表示关注关系，(FollowerID, FollowingID) 组合唯一
type Follow struct {
	ID          int `json:"id"`
	FollowerID  int `json:"followerId" binding:"required"`
	FollowingID int `json:"followingId" binding:"required"`
}

// Comment 表示博客评论
// ParentID 非空时为楼中楼回复，本层不负责组装评论树
type Comment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId" binding:"required"`
	BlogID    int       `json:"blogId" binding:"required"`
	Content   string    `json:"content" binding:"required"`
	ParentID  *int      `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentUpdate 部分更新评论时使用，nil 字段保持原值
type CommentUpdate struct {
	Content *string `json:"content"`
}
