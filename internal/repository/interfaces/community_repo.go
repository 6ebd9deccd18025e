package interfaces

import "github.com/Kishor-Irnak/wave.v0.1/internal/model"

// CommunityRepository 定义了点赞、关注、评论相关的数据操作接口
// FindLike/FindFollow 未命中时返回 (nil, nil)，命中时返回完整记录，
// 供调用方取消点赞/关注时按标识删除；Create* 在与插入同一临界区内
// 检查组合键唯一性，冲突时返回 ErrLikeExists/ErrFollowExists
type CommunityRepository interface {
	CreateLike(like *model.Like) error
	DeleteLike(id int) (bool, error)
	FindLike(userID, blogID int) (*model.Like, error)
	ListLikesByBlog(blogID int) ([]*model.Like, error)
	ListLikesByUser(userID int) ([]*model.Like, error)

	CreateFollow(follow *model.Follow) error
	DeleteFollow(id int) (bool, error)
	FindFollow(followerID, followingID int) (*model.Follow, error)
	ListFollowers(userID int) ([]*model.Follow, error)
	ListFollowing(userID int) ([]*model.Follow, error)

	CreateComment(comment *model.Comment) error
	FindCommentByID(id int) (*model.Comment, error)
	ListCommentsByBlog(blogID int) ([]*model.Comment, error)
	ListCommentsByUser(userID int) ([]*model.Comment, error)
	UpdateComment(id int, update *model.CommentUpdate) (*model.Comment, error)
	DeleteComment(id int) (bool, error)
}
