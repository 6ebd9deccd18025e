package store

// Table 是按整型标识键入的通用实体容器
// 标识从 1 开始单调递增，记录删除后其标识不会被复用
type Table[T any] struct {
	rows   map[int]T
	order  []int
	nextID int
	setID  func(*T, int)
}

// NewTable 创建一个空表，setID 用于把分配的标识写回实体
func NewTable[T any](setID func(*T, int)) *Table[T] {
	return &Table[T]{
		rows:  make(map[int]T),
		setID: setID,
	}
}

// Insert 分配下一个标识并存储实体，返回带标识的副本
func (t *Table[T]) Insert(row T) T {
	t.nextID++
	t.setID(&row, t.nextID)
	t.rows[t.nextID] = row
	t.order = append(t.order, t.nextID)
	return row
}

// Get 按标识查找，O(1)
func (t *Table[T]) Get(id int) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// Replace 整体替换已存在的记录，标识不存在时返回 false
func (t *Table[T]) Replace(id int, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.setID(&row, id)
	t.rows[id] = row
	return true
}

// Delete 删除记录，记录存在且被删除时返回 true
func (t *Table[T]) Delete(id int) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// All 按插入顺序返回当前所有记录的快照
func (t *Table[T]) All() []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range t.order {
		if row, ok := t.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out
}

// Len 返回当前记录数
func (t *Table[T]) Len() int {
	return len(t.rows)
}
