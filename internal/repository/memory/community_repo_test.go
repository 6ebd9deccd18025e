package memory

import (
	"testing"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/store"
	"github.com/stretchr/testify/assert"
)

// TestLikeIdempotency 测试同一 (userId, blogId) 只能点赞一次，
// 取消后可以重新点赞且分配新的标识
func TestLikeIdempotency(t *testing.T) {
	repo := NewCommunityRepository(store.New())

	first := &model.Like{UserID: 1, BlogID: 1}
	assert.NoError(t, repo.CreateLike(first))

	dup := &model.Like{UserID: 1, BlogID: 1}
	err := repo.CreateLike(dup)
	assert.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	// 不同组合不受影响
	assert.NoError(t, repo.CreateLike(&model.Like{UserID: 1, BlogID: 2}))
	assert.NoError(t, repo.CreateLike(&model.Like{UserID: 2, BlogID: 1}))

	deleted, err := repo.DeleteLike(first.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	again := &model.Like{UserID: 1, BlogID: 1}
	assert.NoError(t, repo.CreateLike(again))
	assert.Greater(t, again.ID, first.ID)
}

// TestFindLikeReturnsRecord 测试组合键存在性检查返回完整记录
func TestFindLikeReturnsRecord(t *testing.T) {
	repo := NewCommunityRepository(store.New())

	like := &model.Like{UserID: 7, BlogID: 9}
	assert.NoError(t, repo.CreateLike(like))

	found, err := repo.FindLike(7, 9)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, like.ID, found.ID)

	missing, err := repo.FindLike(9, 7)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

// TestFollowIdempotency 测试关注关系的幂等约束与方向性
func TestFollowIdempotency(t *testing.T) {
	repo := NewCommunityRepository(store.New())

	follow := &model.Follow{FollowerID: 1, FollowingID: 2}
	assert.NoError(t, repo.CreateFollow(follow))

	err := repo.CreateFollow(&model.Follow{FollowerID: 1, FollowingID: 2})
	assert.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	// 反向关注是另一条记录
	assert.NoError(t, repo.CreateFollow(&model.Follow{FollowerID: 2, FollowingID: 1}))

	followers, err := repo.ListFollowers(2)
	assert.NoError(t, err)
	assert.Len(t, followers, 1)
	assert.Equal(t, 1, followers[0].FollowerID)

	following, err := repo.ListFollowing(1)
	assert.NoError(t, err)
	assert.Len(t, following, 1)
	assert.Equal(t, 2, following[0].FollowingID)
}

// TestCommentLifecycle 测试评论的创建、部分更新和删除
func TestCommentLifecycle(t *testing.T) {
	repo := NewCommunityRepository(store.New())

	parent := &model.Comment{UserID: 1, BlogID: 1, Content: "first"}
	assert.NoError(t, repo.CreateComment(parent))
	assert.False(t, parent.CreatedAt.IsZero())

	reply := &model.Comment{UserID: 2, BlogID: 1, Content: "reply", ParentID: &parent.ID}
	assert.NoError(t, repo.CreateComment(reply))

	byBlog, err := repo.ListCommentsByBlog(1)
	assert.NoError(t, err)
	assert.Len(t, byBlog, 2)

	edited := "edited"
	got, err := repo.UpdateComment(parent.ID, &model.CommentUpdate{Content: &edited})
	assert.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
	// 未提供的字段保持原值
	assert.Equal(t, parent.BlogID, got.BlogID)

	_, err = repo.UpdateComment(99, &model.CommentUpdate{Content: &edited})
	assert.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	deleted, err := repo.DeleteComment(parent.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteComment(parent.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
