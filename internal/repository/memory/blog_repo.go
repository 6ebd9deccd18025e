package memory

import (
	"sort"
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/store"
)

// blogRepository 实现了 BlogRepository 接口，数据保存在进程内存中
type blogRepository struct {
	store *store.Store
}

// NewBlogRepository 创建一个新的 blogRepository 实例
func NewBlogRepository(s *store.Store) *blogRepository {
	return &blogRepository{s}
}

// Create 创建一篇新博客
func (r *blogRepository) Create(blog *model.Blog) error {
	r.store.Lock()
	defer r.store.Unlock()

	if blog.PublishedAt.IsZero() {
		blog.PublishedAt = time.Now()
	}
	*blog = r.store.Blogs.Insert(*blog)
	return nil
}

// FindByID 通过ID查找博客
func (r *blogRepository) FindByID(id int) (*model.Blog, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	blog, ok := r.store.Blogs.Get(id)
	if !ok {
		return nil, nil
	}
	return &blog, nil
}

// List 返回全局时间线
// 按发布时间倒序排序，同一时间按标识倒序，保证全序稳定；
// offset 超出集合大小时返回空列表
func (r *blogRepository) List(limit, offset int) ([]*model.Blog, error) {
	r.store.RLock()
	blogs := r.store.Blogs.All()
	r.store.RUnlock()

	sort.Slice(blogs, func(i, j int) bool {
		if blogs[i].PublishedAt.Equal(blogs[j].PublishedAt) {
			return blogs[i].ID > blogs[j].ID
		}
		return blogs[i].PublishedAt.After(blogs[j].PublishedAt)
	})

	if offset >= len(blogs) {
		return []*model.Blog{}, nil
	}
	end := offset + limit
	if end > len(blogs) {
		end = len(blogs)
	}

	page := make([]*model.Blog, 0, end-offset)
	for i := offset; i < end; i++ {
		blog := blogs[i]
		page = append(page, &blog)
	}
	return page, nil
}

// ListByUser 返回某个用户发布的所有博客
func (r *blogRepository) ListByUser(userID int) ([]*model.Blog, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Blog{}
	for _, b := range r.store.Blogs.All() {
		if b.UserID == userID {
			blog := b
			out = append(out, &blog)
		}
	}
	return out, nil
}

// ListByCategory 返回指定分类下的所有博客，分类匹配区分大小写
func (r *blogRepository) ListByCategory(category string) ([]*model.Blog, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	out := []*model.Blog{}
	for _, b := range r.store.Blogs.All() {
		if b.Category == category {
			blog := b
			out = append(out, &blog)
		}
	}
	return out, nil
}

// Update 部分更新博客，nil 字段保持原值
// 读取、合并与写回在同一写锁临界区内完成
func (r *blogRepository) Update(id int, update *model.BlogUpdate) (*model.Blog, error) {
	r.store.Lock()
	defer r.store.Unlock()

	blog, ok := r.store.Blogs.Get(id)
	if !ok {
		return nil, errors.New(errors.ErrBlogNotFound, "blog not found")
	}

	if update.Title != nil {
		blog.Title = *update.Title
	}
	if update.Content != nil {
		blog.Content = *update.Content
	}
	if update.CoverURL != nil {
		blog.CoverURL = *update.CoverURL
	}
	if update.Category != nil {
		blog.Category = *update.Category
	}
	if update.Tags != nil {
		blog.Tags = *update.Tags
	}

	r.store.Blogs.Replace(id, blog)
	return &blog, nil
}

// Delete 删除博客并级联删除其下的点赞和评论
// 级联与删除在同一写锁临界区内完成
func (r *blogRepository) Delete(id int) (bool, error) {
	r.store.Lock()
	defer r.store.Unlock()

	if !r.store.Blogs.Delete(id) {
		return false, nil
	}

	for _, like := range r.store.Likes.All() {
		if like.BlogID == id {
			r.store.Likes.Delete(like.ID)
		}
	}
	for _, comment := range r.store.Comments.All() {
		if comment.BlogID == id {
			r.store.Comments.Delete(comment.ID)
		}
	}
	return true, nil
}

// Count 返回博客总数
func (r *blogRepository) Count() (int, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	return r.store.Blogs.Len(), nil
}
