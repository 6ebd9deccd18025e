package memory

import (
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/store"
)

// communityRepository 实现了 CommunityRepository 接口，数据保存在进程内存中
type communityRepository struct {
	store *store.Store
}

// NewCommunityRepository 创建一个新的 communityRepository 实例
func NewCommunityRepository(s *store.Store) *communityRepository {
	return &communityRepository{s}
}

// CreateLike 创建点赞
// 组合键 (userId, blogId) 的存在性检查与插入在同一写锁临界区内完成
func (r *communityRepository) CreateLike(like *model.Like) error {
	r.store.Lock()
	defer r.store.Unlock()

	for _, l := range r.store.Likes.All() {
		if l.UserID == like.UserID && l.BlogID == like.BlogID {
			return errors.New(errors.ErrLikeExists, "like already exists")
		}
	}

	*like = r.store.Likes.Insert(*like)
	return nil
}

// DeleteLike 删除点赞
func (r *communityRepository) DeleteLike(id int) (bool, error) {
	r.store.Lock()
	defer r.store.Unlock()
	return r.store.Likes.Delete(id), nil
}

// FindLike 按组合键查找点赞记录，未命中时返回 (nil, nil)
func (r *communityRepository) FindLike(userID, blogID int) (*model.Like, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, l := range r.store.Likes.All() {
		if l.UserID == userID && l.BlogID == blogID {
			like := l
			return &like, nil
		}
	}
	return nil, nil
}

// ListLikesByBlog 返回某篇博客收到的所有点赞
func (r *communityRepository) ListLikesByBlog(blogID int) ([]*model.Like, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Like{}
	for _, l := range r.store.Likes.All() {
		if l.BlogID == blogID {
			like := l
			out = append(out, &like)
		}
	}
	return out, nil
}

// ListLikesByUser 返回某个用户发出的所有点赞
func (r *communityRepository) ListLikesByUser(userID int) ([]*model.Like, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Like{}
	for _, l := range r.store.Likes.All() {
		if l.UserID == userID {
			like := l
			out = append(out, &like)
		}
	}
	return out, nil
}

// CreateFollow 创建关注关系
// 组合键 (followerId, followingId) 的检查与插入在同一写锁临界区内完成
func (r *communityRepository) CreateFollow(follow *model.Follow) error {
	r.store.Lock()
	defer r.store.Unlock()

	for _, f := range r.store.Follows.All() {
		if f.FollowerID == follow.FollowerID && f.FollowingID == follow.FollowingID {
			return errors.New(errors.ErrFollowExists, "follow already exists")
		}
	}

	*follow = r.store.Follows.Insert(*follow)
	return nil
}

// DeleteFollow 删除关注关系
func (r *communityRepository) DeleteFollow(id int) (bool, error) {
	r.store.Lock()
	defer r.store.Unlock()
	return r.store.Follows.Delete(id), nil
}

// FindFollow 按组合键查找关注记录，未命中时返回 (nil, nil)
func (r *communityRepository) FindFollow(followerID, followingID int) (*model.Follow, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, f := range r.store.Follows.All() {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			follow := f
			return &follow, nil
		}
	}
	return nil, nil
}

// ListFollowers 返回关注了 userID 的记录（粉丝列表）
func (r *communityRepository) ListFollowers(userID int) ([]*model.Follow, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Follow{}
	for _, f := range r.store.Follows.All() {
		if f.FollowingID == userID {
			follow := f
			out = append(out, &follow)
		}
	}
	return out, nil
}

// ListFollowing 返回 userID 关注他人的记录（关注列表）
func (r *communityRepository) ListFollowing(userID int) ([]*model.Follow, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Follow{}
	for _, f := range r.store.Follows.All() {
		if f.FollowerID == userID {
			follow := f
			out = append(out, &follow)
		}
	}
	return out, nil
}

// CreateComment 创建评论
func (r *communityRepository) CreateComment(comment *model.Comment) error {
	r.store.Lock()
	defer r.store.Unlock()

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	*comment = r.store.Comments.Insert(*comment)
	return nil
}

// FindCommentByID 通过ID查找评论
func (r *communityRepository) FindCommentByID(id int) (*model.Comment, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	comment, ok := r.store.Comments.Get(id)
	if !ok {
		return nil, nil
	}
	return &comment, nil
}

// ListCommentsByBlog 返回某篇博客下的所有评论
func (r *communityRepository) ListCommentsByBlog(blogID int) ([]*model.Comment, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Comment{}
	for _, c := range r.store.Comments.All() {
		if c.BlogID == blogID {
			comment := c
			out = append(out, &comment)
		}
	}
	return out, nil
}

// ListCommentsByUser 返回某个用户发表的所有评论
func (r *communityRepository) ListCommentsByUser(userID int) ([]*model.Comment, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Comment{}
	for _, c := range r.store.Comments.All() {
		if c.UserID == userID {
			comment := c
			out = append(out, &comment)
		}
	}
	return out, nil
}

// UpdateComment 部分更新评论，nil 字段保持原值
// 读取、合并与写回在同一写锁临界区内完成
func (r *communityRepository) UpdateComment(id int, update *model.CommentUpdate) (*model.Comment, error) {
	r.store.Lock()
	defer r.store.Unlock()

	comment, ok := r.store.Comments.Get(id)
	if !ok {
		return nil, errors.New(errors.ErrCommentNotFound, "comment not found")
	}

	if update.Content != nil {
		comment.Content = *update.Content
	}

	r.store.Comments.Replace(id, comment)
	return &comment, nil
}

// DeleteComment 删除评论
func (r *communityRepository) DeleteComment(id int) (bool, error) {
	r.store.Lock()
	defer r.store.Unlock()
	return r.store.Comments.Delete(id), nil
}
