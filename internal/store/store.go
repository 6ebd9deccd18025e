package store

import (
	"sync"

	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
)

// Store 聚合五张实体表，作为进程内唯一的数据源
// 表本身不加锁；所有读操作须持有读锁，所有写操作（包括
// 先查后写的约束检查）须持有写锁，以保证同一时刻只有一个
// 变更在执行
type Store struct {
	mu sync.RWMutex

	Users    *Table[model.User]
	Blogs    *Table[model.Blog]
	Likes    *Table[model.Like]
	Follows  *Table[model.Follow]
	Comments *Table[model.Comment]
}

// New 创建一个空的 Store，在进程启动时构造一次并注入各仓库
func New() *Store {
	return &Store{
		Users:    NewTable(func(u *model.User, id int) { u.ID = id }),
		Blogs:    NewTable(func(b *model.Blog, id int) { b.ID = id }),
		Likes:    NewTable(func(l *model.Like, id int) { l.ID = id }),
		Follows:  NewTable(func(f *model.Follow, id int) { f.ID = id }),
		Comments: NewTable(func(c *model.Comment, id int) { c.ID = id }),
	}
}

func (s *Store) Lock()    { s.mu.Lock() }
func (s *Store) Unlock()  { s.mu.Unlock() }
func (s *Store) RLock()   { s.mu.RLock() }
func (s *Store) RUnlock() { s.mu.RUnlock() }
