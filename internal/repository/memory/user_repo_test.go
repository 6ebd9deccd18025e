package memory

import (
	"sync"
	"testing"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/store"
	"github.com/stretchr/testify/assert"
)

// TestCreateUniqueConstraints 测试唯一性冲突拒绝插入且不改变存量
func TestCreateUniqueConstraints(t *testing.T) {
	repo := NewUserRepository(store.New())

	alice := &model.User{UID: "u-1", Username: "alice", Email: "alice@example.com", Name: "Alice"}
	assert.NoError(t, repo.Create(alice))
	assert.Equal(t, 1, alice.ID)

	cases := []model.User{
		{UID: "u-1", Username: "other", Email: "other@example.com", Name: "X"},
		{UID: "u-2", Username: "alice", Email: "other@example.com", Name: "X"},
		{UID: "u-3", Username: "other", Email: "alice@example.com", Name: "X"},
	}
	for _, c := range cases {
		dup := c
		err := repo.Create(&dup)
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))

		count, _ := repo.Count()
		assert.Equal(t, 1, count)
	}
}

// TestFindBySecondaryKeys 测试按 uid、用户名、邮箱查找
func TestFindBySecondaryKeys(t *testing.T) {
	repo := NewUserRepository(store.New())

	alice := &model.User{UID: "u-1", Username: "alice", Email: "alice@example.com", Name: "Alice"}
	assert.NoError(t, repo.Create(alice))

	byUID, err := repo.FindByUID("u-1")
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, byUID.ID)

	byName, err := repo.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byEmail, err := repo.FindByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	missing, err := repo.FindByUsername("nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

// TestUpdateMissingUser 测试更新不存在的用户返回未找到错误
func TestUpdateMissingUser(t *testing.T) {
	repo := NewUserRepository(store.New())

	ghost := "ghost"
	updated, err := repo.Update(42, &model.UserUpdate{Username: &ghost})
	assert.Nil(t, updated)
	assert.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

// TestUpdateUniqueness 测试更新时用户名不能占用他人已有的值
func TestUpdateUniqueness(t *testing.T) {
	repo := NewUserRepository(store.New())

	alice := &model.User{UID: "u-1", Username: "alice", Email: "alice@example.com", Name: "Alice"}
	bob := &model.User{UID: "u-2", Username: "bob", Email: "bob@example.com", Name: "Bob"}
	assert.NoError(t, repo.Create(alice))
	assert.NoError(t, repo.Create(bob))

	taken := "alice"
	_, err := repo.Update(bob.ID, &model.UserUpdate{Username: &taken})
	assert.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	// 保留自己原有的值不算冲突
	bio := "hello"
	updated, err := repo.Update(bob.ID, &model.UserUpdate{Bio: &bio})
	assert.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "bob", updated.Username)
}

// TestConcurrentPartialUpdates 测试并发的部分更新互不覆盖
// 合并与写回在同一写锁临界区内，两个字段的更新都必须生效
func TestConcurrentPartialUpdates(t *testing.T) {
	for i := 0; i < 100; i++ {
		repo := NewUserRepository(store.New())
		user := &model.User{UID: "u-1", Username: "alice", Email: "alice@example.com", Name: "Alice"}
		assert.NoError(t, repo.Create(user))

		bio := "new bio"
		location := "new loc"

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.Update(user.ID, &model.UserUpdate{Bio: &bio})
		}()
		go func() {
			defer wg.Done()
			repo.Update(user.ID, &model.UserUpdate{Location: &location})
		}()
		wg.Wait()

		got, err := repo.FindByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "new bio", got.Bio)
		assert.Equal(t, "new loc", got.Location)
	}
}
