package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/littlelemon/restaurant-backend/models"
	"github.com/littlelemon/restaurant-backend/repositories"
)

var userColumns = []string{"id", "username", "email", "password_hash", "is_superuser", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	t.Run("new user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, zap.NewNop())

		user := models.NewUser("maria", "maria@example.com", "hashed-pw")
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Username, user.Email, user.PasswordHash, user.IsSuperuser, user.CreatedAt, user.UpdatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, zap.NewNop())

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

		user := models.NewUser("maria", "", "hashed-pw")
		err := repo.Create(context.Background(), user)

		assert.True(t, errors.Is(err, repositories.ErrDuplicate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other database error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, zap.NewNop())

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New("connection refused"))

		user := models.NewUser("maria", "", "hashed-pw")
		err := repo.Create(context.Background(), user)

		require.Error(t, err)
		assert.False(t, errors.Is(err, repositories.ErrDuplicate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, zap.NewNop())

		now := time.Now()
		rows := sqlmock.NewRows(userColumns).
			AddRow(int64(5), "maria", "maria@example.com", "hashed-pw", false, now, now)
		mock.ExpectQuery("SELECT id, username, email, password_hash, is_superuser, created_at, updated_at FROM users WHERE username").
			WithArgs("maria").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(context.Background(), "maria")

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		assert.Equal(t, "maria", user.Username)
		assert.Equal(t, "hashed-pw", user.PasswordHash)
		assert.False(t, user.IsSuperuser)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, zap.NewNop())

		mock.ExpectQuery("SELECT id, username, email, password_hash, is_superuser, created_at, updated_at FROM users WHERE username").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := repo.GetByUsername(context.Background(), "ghost")

		assert.True(t, errors.Is(err, repositories.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, zap.NewNop())

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(int64(9), "admin", "", "hashed-pw", true, now, now)
	mock.ExpectQuery("SELECT id, username, email, password_hash, is_superuser, created_at, updated_at FROM users WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.IsSuperuser)
	assert.NoError(t, mock.ExpectationsWereMet())
}
