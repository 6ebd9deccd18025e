package mysql

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"go.uber.org/zap"
)

// blogRepository 实现了 BlogRepository 接口
// 标签序列化为 JSON 存放在 tags 列中
type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository 创建一个新的 blogRepository 实例
func NewBlogRepository(db *sql.DB) *blogRepository {
	return &blogRepository{db}
}

const blogColumns = `id, user_id, title, content, cover_url, category, tags, published_at`

func scanBlog(row interface{ Scan(...interface{}) error }) (*model.Blog, error) {
	var blog model.Blog
	var tags []byte
	err := row.Scan(
		&blog.ID, &blog.UserID, &blog.Title, &blog.Content,
		&blog.CoverURL, &blog.Category, &tags, &blog.PublishedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &blog.Tags); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "failed to decode tags", err)
		}
	}
	return &blog, nil
}

func (r *blogRepository) queryBlogs(query string, args ...interface{}) ([]*model.Blog, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to query blogs", err)
	}
	defer rows.Close()

	blogs := []*model.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "failed to scan blog", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to iterate blogs", err)
	}
	return blogs, nil
}

// Create 创建一篇新博客
func (r *blogRepository) Create(blog *model.Blog) error {
	if blog.PublishedAt.IsZero() {
		blog.PublishedAt = time.Now()
	}

	tags, err := json.Marshal(blog.Tags)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "failed to encode tags", err)
	}

	query := `INSERT INTO blogs (user_id, title, content, cover_url, category, tags, published_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.Exec(query,
		blog.UserID, blog.Title, blog.Content, blog.CoverURL,
		blog.Category, tags, blog.PublishedAt)
	if err != nil {
		util.Logger.Error("创建博客失败", zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "failed to create blog", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to get new blog id", err)
	}
	blog.ID = int(id)
	return nil
}

// FindByID 通过ID查找博客
func (r *blogRepository) FindByID(id int) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = ?`
	return scanBlog(r.db.QueryRow(query, id))
}

// List 返回全局时间线，按发布时间倒序、同时间按标识倒序
func (r *blogRepository) List(limit, offset int) ([]*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
	          ORDER BY published_at DESC, id DESC
	          LIMIT ? OFFSET ?`
	return r.queryBlogs(query, limit, offset)
}

// ListByUser 返回某个用户发布的所有博客
func (r *blogRepository) ListByUser(userID int) ([]*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE user_id = ?`
	return r.queryBlogs(query, userID)
}

// ListByCategory 返回指定分类下的所有博客
// BINARY 比较保证分类匹配区分大小写
func (r *blogRepository) ListByCategory(category string) ([]*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE BINARY category = ?`
	return r.queryBlogs(query, category)
}

// Update 部分更新博客，nil 字段保持原值
// 读取、合并与写回在同一事务内完成，行锁防止并发更新互相覆盖
func (r *blogRepository) Update(id int, update *model.BlogUpdate) (*model.Blog, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = ? FOR UPDATE`
	blog, err := scanBlog(tx.QueryRow(query, id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to load blog", err)
	}
	if blog == nil {
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

	tags, err := json.Marshal(blog.Tags)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "failed to encode tags", err)
	}

	writeQuery := `UPDATE blogs
	          SET title = ?, content = ?, cover_url = ?, category = ?, tags = ?
	          WHERE id = ?`
	if _, err := tx.Exec(writeQuery,
		blog.Title, blog.Content, blog.CoverURL, blog.Category, tags, id); err != nil {
		util.Logger.Error("更新博客失败", zap.Error(err), zap.Int("blog_id", id))
		return nil, errors.Wrap(errors.ErrDatabase, "failed to update blog", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to commit transaction", err)
	}
	return blog, nil
}

// Delete 删除博客并在同一事务中级联删除其点赞和评论
func (r *blogRepository) Delete(id int) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to delete blog", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to get rows affected", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.Exec(`DELETE FROM likes WHERE blog_id = ?`, id); err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to delete blog likes", err)
	}
	if _, err := tx.Exec(`DELETE FROM comments WHERE blog_id = ?`, id); err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to delete blog comments", err)
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "failed to commit transaction", err)
	}

	util.Logger.Info("博客删除成功", zap.Int("blog_id", id))
	return true, nil
}

// Count 返回博客总数
func (r *blogRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "failed to count blogs", err)
	}
	return count, nil
}
