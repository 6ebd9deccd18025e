package mysql

import (
	"database/sql"
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/model"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// userRepository 实现了 UserRepository 接口
// users 表在 uid、username、email 上建有唯一索引，
// 唯一性由数据库约束保证（错误码 1062 映射为冲突错误）
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

const userColumns = `id, uid, username, email, name, bio, avatar_url, location, website, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.UID, &user.Username, &user.Email, &user.Name,
		&user.Bio, &user.AvatarURL, &user.Location, &user.Website,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// isDuplicateEntry 判断是否为唯一索引冲突
func isDuplicateEntry(err error) bool {
	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		return mysqlErr.Number == 1062
	}
	return false
}

// Create 创建一个新用户
func (r *userRepository) Create(user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `INSERT INTO users (uid, username, email, name, bio, avatar_url, location, website, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.Exec(query,
		user.UID, user.Username, user.Email, user.Name,
		user.Bio, user.AvatarURL, user.Location, user.Website,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isDuplicateEntry(err) {
			return errors.Wrap(errors.ErrUserExists, "username, email or uid already exists", err)
		}
		util.Logger.Error("创建用户失败", zap.Error(err))
		return errors.Wrap(errors.ErrDatabase, "failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "failed to get new user id", err)
	}
	user.ID = int(id)
	return nil
}

// FindByID 通过ID查找用户
func (r *userRepository) FindByID(id int) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRow(query, id))
}

// FindByUID 通过外部身份令牌查找用户
func (r *userRepository) FindByUID(uid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = ?`
	return scanUser(r.db.QueryRow(query, uid))
}

// FindByUsername 通过用户名查找用户
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return scanUser(r.db.QueryRow(query, username))
}

// FindByEmail 通过邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(r.db.QueryRow(query, email))
}

// Update 部分更新用户信息，nil 字段保持原值，uid 不可变更
// 读取、合并与写回在同一事务内完成，行锁防止并发更新互相覆盖
func (r *userRepository) Update(id int, update *model.UserUpdate) (*model.User, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ? FOR UPDATE`
	user, err := scanUser(tx.QueryRow(query, id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to load user", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "user not found")
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Website != nil {
		user.Website = *update.Website
	}
	user.UpdatedAt = time.Now()

	writeQuery := `UPDATE users
	          SET username = ?, email = ?, name = ?, bio = ?, avatar_url = ?, location = ?, website = ?, updated_at = ?
	          WHERE id = ?`
	_, err = tx.Exec(writeQuery,
		user.Username, user.Email, user.Name, user.Bio,
		user.AvatarURL, user.Location, user.Website, user.UpdatedAt,
		id)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, errors.Wrap(errors.ErrUserExists, "username or email already exists", err)
		}
		util.Logger.Error("更新用户失败", zap.Error(err), zap.Int("user_id", id))
		return nil, errors.Wrap(errors.ErrDatabase, "failed to update user", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "failed to commit transaction", err)
	}
	return user, nil
}

// Count 返回用户总数
func (r *userRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "failed to count users", err)
	}
	return count, nil
}
