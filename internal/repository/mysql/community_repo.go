package mysql

import (
	"database/sql"
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"go.uber.org/zap"
)

// communityRepository 实现了 CommunityRepository 接口
// 点赞和关注的组合键检查与插入在一个事务内完成（SELECT ... FOR UPDATE），
// 避免并发下重复插入
type communityRepository struct {
	db *sql.DB
}

// NewCommunityRepository 创建一个新的 communityRepository 实例
func NewCommunityRepository(db *sql.DB) *communityRepository {
	return &communityRepository{db}
}

// CreateLike 创建点赞
func (r *communityRepository) CreateLike(like *model.Like) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow(`SELECT id FROM likes WHERE user_id = ? AND blog_id = ? FOR UPDATE`,
		like.UserID, like.BlogID).Scan(&existing)
	if err == nil {
		return errors.New(errors.ErrLikeExists, "like already exists")
	}
	if err != sql.ErrNoRows {
		return errors.Wrap(errors.ErrDatabase, "failed to check like existence", err)
	}

	result, err := tx.Exec(`INSERT INTO likes (user_id, blog_id) VALUES (?, ?)`,
		like.UserID, like.BlogID)
	if err != nil {
		util.Logger.Error("创建点赞失败", zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "failed to create like", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to get new like id", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to commit transaction", err)
	}

	like.ID = int(id)
	return nil
}

// DeleteLike 删除点赞
func (r *communityRepository) DeleteLike(id int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM likes WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to delete like", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to get rows affected", err)
	}
	return affected > 0, nil
}

// FindLike 按组合键查找点赞记录
func (r *communityRepository) FindLike(userID, blogID int) (*model.Like, error) {
	var like model.Like
	err := r.db.QueryRow(`SELECT id, user_id, blog_id FROM likes WHERE user_id = ? AND blog_id = ?`,
		userID, blogID).Scan(&like.ID, &like.UserID, &like.BlogID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrDatabase, "failed to find like", err)
	}
	return &like, nil
}

func (r *communityRepository) queryLikes(query string, args ...interface{}) ([]*model.Like, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to query likes", err)
	}
	defer rows.Close()

	likes := []*model.Like{}
	for rows.Next() {
		var like model.Like
		if err := rows.Scan(&like.ID, &like.UserID, &like.BlogID); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "failed to scan like", err)
		}
		likes = append(likes, &like)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to iterate likes", err)
	}
	return likes, nil
}

// ListLikesByBlog 返回某篇博客收到的所有点赞
func (r *communityRepository) ListLikesByBlog(blogID int) ([]*model.Like, error) {
	return r.queryLikes(`SELECT id, user_id, blog_id FROM likes WHERE blog_id = ?`, blogID)
}

// ListLikesByUser 返回某个用户发出的所有点赞
func (r *communityRepository) ListLikesByUser(userID int) ([]*model.Like, error) {
	return r.queryLikes(`SELECT id, user_id, blog_id FROM likes WHERE user_id = ?`, userID)
}

// CreateFollow 创建关注关系
func (r *communityRepository) CreateFollow(follow *model.Follow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow(`SELECT id FROM follows WHERE follower_id = ? AND following_id = ? FOR UPDATE`,
		follow.FollowerID, follow.FollowingID).Scan(&existing)
	if err == nil {
		return errors.New(errors.ErrFollowExists, "follow already exists")
	}
	if err != sql.ErrNoRows {
		return errors.Wrap(errors.ErrDatabase, "failed to check follow existence", err)
	}

	result, err := tx.Exec(`INSERT INTO follows (follower_id, following_id) VALUES (?, ?)`,
		follow.FollowerID, follow.FollowingID)
	if err != nil {
		util.Logger.Error("创建关注失败", zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "failed to create follow", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to get new follow id", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to commit transaction", err)
	}

	follow.ID = int(id)
	return nil
}

// DeleteFollow 删除关注关系
func (r *communityRepository) DeleteFollow(id int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM follows WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to delete follow", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to get rows affected", err)
	}
	return affected > 0, nil
}

// FindFollow 按组合键查找关注记录
func (r *communityRepository) FindFollow(followerID, followingID int) (*model.Follow, error) {
	var follow model.Follow
	err := r.db.QueryRow(`SELECT id, follower_id, following_id FROM follows WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID).Scan(&follow.ID, &follow.FollowerID, &follow.FollowingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrDatabase, "failed to find follow", err)
	}
	return &follow, nil
}

func (r *communityRepository) queryFollows(query string, args ...interface{}) ([]*model.Follow, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to query follows", err)
	}
	defer rows.Close()

	follows := []*model.Follow{}
	for rows.Next() {
		var follow model.Follow
		if err := rows.Scan(&follow.ID, &follow.FollowerID, &follow.FollowingID); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "failed to scan follow", err)
		}
		follows = append(follows, &follow)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to iterate follows", err)
	}
	return follows, nil
}

// ListFollowers 返回关注了 userID 的记录
func (r *communityRepository) ListFollowers(userID int) ([]*model.Follow, error) {
	return r.queryFollows(`SELECT id, follower_id, following_id FROM follows WHERE following_id = ?`, userID)
}

// ListFollowing 返回 userID 关注他人的记录
func (r *communityRepository) ListFollowing(userID int) ([]*model.Follow, error) {
	return r.queryFollows(`SELECT id, follower_id, following_id FROM follows WHERE follower_id = ?`, userID)
}

// CreateComment 创建评论
func (r *communityRepository) CreateComment(comment *model.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	result, err := r.db.Exec(`INSERT INTO comments (user_id, blog_id, content, parent_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		comment.UserID, comment.BlogID, comment.Content, comment.ParentID, comment.CreatedAt)
	if err != nil {
		util.Logger.Error("创建评论失败", zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "failed to create comment", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to get new comment id", err)
	}
	comment.ID = int(id)
	return nil
}

func scanComment(row interface{ Scan(...interface{}) error }) (*model.Comment, error) {
	var comment model.Comment
	err := row.Scan(&comment.ID, &comment.UserID, &comment.BlogID, &comment.Content, &comment.ParentID, &comment.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// FindCommentByID 通过ID查找评论
func (r *communityRepository) FindCommentByID(id int) (*model.Comment, error) {
	comment, err := scanComment(r.db.QueryRow(
		`SELECT id, user_id, blog_id, content, parent_id, created_at FROM comments WHERE id = ?`, id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to find comment", err)
	}
	return comment, nil
}

func (r *communityRepository) queryComments(query string, args ...interface{}) ([]*model.Comment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to query comments", err)
	}
	defer rows.Close()

	comments := []*model.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "failed to scan comment", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to iterate comments", err)
	}
	return comments, nil
}

// ListCommentsByBlog 返回某篇博客下的所有评论
func (r *communityRepository) ListCommentsByBlog(blogID int) ([]*model.Comment, error) {
	return r.queryComments(`SELECT id, user_id, blog_id, content, parent_id, created_at FROM comments WHERE blog_id = ?`, blogID)
}

// ListCommentsByUser 返回某个用户发表的所有评论
func (r *communityRepository) ListCommentsByUser(userID int) ([]*model.Comment, error) {
	return r.queryComments(`SELECT id, user_id, blog_id, content, parent_id, created_at FROM comments WHERE user_id = ?`, userID)
}

// UpdateComment 部分更新评论，nil 字段保持原值
// 读取、合并与写回在同一事务内完成，行锁防止并发更新互相覆盖
func (r *communityRepository) UpdateComment(id int, update *model.CommentUpdate) (*model.Comment, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	comment, err := scanComment(tx.QueryRow(
		`SELECT id, user_id, blog_id, content, parent_id, created_at FROM comments WHERE id = ? FOR UPDATE`, id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to load comment", err)
	}
	if comment == nil {
		return nil, errors.New(errors.ErrCommentNotFound, "comment not found")
	}

	if update.Content != nil {
		comment.Content = *update.Content
	}

	if _, err := tx.Exec(`UPDATE comments SET content = ? WHERE id = ?`, comment.Content, id); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to update comment", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to commit transaction", err)
	}
	return comment, nil
}

// DeleteComment 删除评论
func (r *communityRepository) DeleteComment(id int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to delete comment", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to get rows affected", err)
	}
	return affected > 0, nil
}
