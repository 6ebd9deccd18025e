package store

import (
	"testing"

	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/stretchr/testify/assert"
)

func newUserTable() *Table[model.User] {
	return NewTable(func(u *model.User, id int) { u.ID = id })
}

// TestInsertAssignsSequentialIDs 测试标识从 1 开始顺序分配
func TestInsertAssignsSequentialIDs(t *testing.T) {
	tbl := newUserTable()

	a := tbl.Insert(model.User{Username: "alice"})
	b := tbl.Insert(model.User{Username: "bob"})

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

// TestInsertGetRoundTrip 测试插入后按标识取回的记录与输入一致
func TestInsertGetRoundTrip(t *testing.T) {
	tbl := newUserTable()

	in := model.User{UID: "ext-1", Username: "alice", Email: "alice@example.com", Name: "Alice"}
	stored := tbl.Insert(in)

	got, ok := tbl.Get(stored.ID)
	assert.True(t, ok)

	in.ID = stored.ID
	assert.Equal(t, in, got)
}

// TestIDsNeverReused 测试删除后标识不会被后续插入复用
func TestIDsNeverReused(t *testing.T) {
	tbl := newUserTable()

	a := tbl.Insert(model.User{Username: "alice"})
	assert.Equal(t, 1, a.ID)
	assert.True(t, tbl.Delete(a.ID))

	b := tbl.Insert(model.User{Username: "bob"})
	assert.Equal(t, 2, b.ID)
}

// TestDeleteReturnsTrueExactlyOnce 测试同一标识只有第一次删除返回 true
func TestDeleteReturnsTrueExactlyOnce(t *testing.T) {
	tbl := newUserTable()

	u := tbl.Insert(model.User{Username: "alice"})
	assert.True(t, tbl.Delete(u.ID))
	assert.False(t, tbl.Delete(u.ID))
	assert.False(t, tbl.Delete(999))
}

// TestReplaceMissingID 测试替换不存在的记录返回 false
func TestReplaceMissingID(t *testing.T) {
	tbl := newUserTable()

	assert.False(t, tbl.Replace(1, model.User{Username: "ghost"}))

	u := tbl.Insert(model.User{Username: "alice"})
	u.Bio = "updated"
	assert.True(t, tbl.Replace(u.ID, u))

	got, ok := tbl.Get(u.ID)
	assert.True(t, ok)
	assert.Equal(t, "updated", got.Bio)
}

// TestAllPreservesInsertionOrder 测试快照按插入顺序返回且跳过已删除记录
func TestAllPreservesInsertionOrder(t *testing.T) {
	tbl := newUserTable()

	a := tbl.Insert(model.User{Username: "a"})
	b := tbl.Insert(model.User{Username: "b"})
	c := tbl.Insert(model.User{Username: "c"})

	tbl.Delete(b.ID)

	all := tbl.All()
	assert.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, c.ID, all[1].ID)
	assert.Equal(t, 2, tbl.Len())
}
