package interfaces

import "github.com/Kishor-Irnak/wave.v0.1/internal/model"

// BlogRepository 接口定义了博客仓库应该实现的方法
// List 按发布时间倒序（同时间按标识倒序）返回 [offset, offset+limit)
// 区间；Update 在同一临界区内完成读取、合并与写回，nil 字段保持
// 原值；Delete 级联删除该博客下的点赞和评论
type BlogRepository interface {
	Create(blog *model.Blog) error
	FindByID(id int) (*model.Blog, error)
	List(limit, offset int) ([]*model.Blog, error)
	ListByUser(userID int) ([]*model.Blog, error)
	ListByCategory(category string) ([]*model.Blog, error)
	Update(id int, update *model.BlogUpdate) (*model.Blog, error)
	Delete(id int) (bool, error)
	Count() (int, error)
}
