package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/store"
	"github.com/stretchr/testify/assert"
)

// TestListPagination 测试时间线分页
// 15 篇发布时间各不相同的博客：前 10 篇按时间倒序，偏移 10 取到
// 剩余 5 篇，偏移超出集合大小时返回空列表
func TestListPagination(t *testing.T) {
	repo := NewBlogRepository(store.New())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		err := repo.Create(&model.Blog{
			UserID:      1,
			Title:       fmt.Sprintf("post %d", i),
			Content:     "content",
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		})
		assert.NoError(t, err)
	}

	page, err := repo.List(10, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 10)
	for i := 1; i < len(page); i++ {
		assert.True(t, page[i-1].PublishedAt.After(page[i].PublishedAt))
	}
	assert.Equal(t, "post 14", page[0].Title)

	rest, err := repo.List(10, 10)
	assert.NoError(t, err)
	assert.Len(t, rest, 5)
	assert.Equal(t, "post 4", rest[0].Title)

	empty, err := repo.List(10, 20)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

// TestListTieBreakByID 测试同一发布时间按标识倒序排序
func TestListTieBreakByID(t *testing.T) {
	repo := NewBlogRepository(store.New())

	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := &model.Blog{UserID: 1, Title: "first", Content: "c", PublishedAt: at}
	second := &model.Blog{UserID: 1, Title: "second", Content: "c", PublishedAt: at}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))

	page, err := repo.List(10, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, second.ID, page[0].ID)
	assert.Equal(t, first.ID, page[1].ID)
}

// TestListByCategory 测试分类过滤区分大小写
func TestListByCategory(t *testing.T) {
	repo := NewBlogRepository(store.New())

	assert.NoError(t, repo.Create(&model.Blog{UserID: 1, Title: "a", Content: "c", Category: "Tech"}))
	assert.NoError(t, repo.Create(&model.Blog{UserID: 2, Title: "b", Content: "c", Category: "Tech"}))
	assert.NoError(t, repo.Create(&model.Blog{UserID: 1, Title: "d", Content: "c", Category: "tech"}))

	tech, err := repo.ListByCategory("Tech")
	assert.NoError(t, err)
	assert.Len(t, tech, 2)

	lower, err := repo.ListByCategory("tech")
	assert.NoError(t, err)
	assert.Len(t, lower, 1)
}

// TestFeedScenario 测试时间线场景：后发布的博客排在前面
func TestFeedScenario(t *testing.T) {
	s := store.New()
	users := NewUserRepository(s)
	blogs := NewBlogRepository(s)

	alice := &model.User{UID: "u-1", Username: "alice", Email: "alice@example.com", Name: "Alice"}
	bob := &model.User{UID: "u-2", Username: "bob", Email: "bob@example.com", Name: "Bob"}
	assert.NoError(t, users.Create(alice))
	assert.NoError(t, users.Create(bob))

	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	post1 := &model.Blog{UserID: alice.ID, Title: "one", Content: "c", Category: "Tech", PublishedAt: t1}
	post2 := &model.Blog{UserID: bob.ID, Title: "two", Content: "c", Category: "Tech", PublishedAt: t2}
	assert.NoError(t, blogs.Create(post1))
	assert.NoError(t, blogs.Create(post2))

	byCategory, err := blogs.ListByCategory("Tech")
	assert.NoError(t, err)
	assert.Len(t, byCategory, 2)

	feed, err := blogs.List(10, 0)
	assert.NoError(t, err)
	assert.Len(t, feed, 2)
	assert.Equal(t, post2.ID, feed[0].ID)
	assert.Equal(t, post1.ID, feed[1].ID)
}

// TestDeleteCascades 测试删除博客时级联删除其点赞和评论
func TestDeleteCascades(t *testing.T) {
	s := store.New()
	blogs := NewBlogRepository(s)
	community := NewCommunityRepository(s)

	blog := &model.Blog{UserID: 1, Title: "t", Content: "c"}
	other := &model.Blog{UserID: 1, Title: "t2", Content: "c"}
	assert.NoError(t, blogs.Create(blog))
	assert.NoError(t, blogs.Create(other))

	assert.NoError(t, community.CreateLike(&model.Like{UserID: 2, BlogID: blog.ID}))
	assert.NoError(t, community.CreateLike(&model.Like{UserID: 2, BlogID: other.ID}))
	assert.NoError(t, community.CreateComment(&model.Comment{UserID: 2, BlogID: blog.ID, Content: "hi"}))

	deleted, err := blogs.Delete(blog.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	likes, err := community.ListLikesByBlog(blog.ID)
	assert.NoError(t, err)
	assert.Empty(t, likes)

	comments, err := community.ListCommentsByBlog(blog.ID)
	assert.NoError(t, err)
	assert.Empty(t, comments)

	kept, err := community.ListLikesByBlog(other.ID)
	assert.NoError(t, err)
	assert.Len(t, kept, 1)

	deleted, err = blogs.Delete(blog.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
