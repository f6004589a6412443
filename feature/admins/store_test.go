package admins

import (
	"context"
	"errors"
	"testing"

	"mc-panel/core/database"
	"mc-panel/core/middleware/auth"
	"mc-panel/feature/admins/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewStore(db), db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestHashPassword(t *testing.T) {
	salt := []byte("0123456789abcdef")
	a := HashPassword(salt, "correct")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashPassword(salt, "correct"))
	assert.NotEqual(t, a, HashPassword(salt, "wrong"))
	assert.NotEqual(t, a, HashPassword([]byte("fedcba9876543210"), "correct"))
}

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)
	assert.Len(t, a, SaltSize)
	assert.NotEqual(t, a, b)
}

func TestStore_Validate(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, "alice", "correct"))

	admin, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, admin.Salt, SaltSize)
	assert.Equal(t, HashPassword(admin.Salt, "correct"), admin.Password)
	assert.NotContains(t, admin.Password, "correct")

	ok, err := store.Validate(ctx, "alice", "correct")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Validate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Validate(ctx, "ghost", "correct")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Create(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "alice", "pw"))
	assert.ErrorIs(t, store.Create(ctx, "alice", "other"), ErrUsernameTaken)
	assert.ErrorIs(t, store.Create(ctx, "", "pw"), ErrInvalidInput)
	assert.ErrorIs(t, store.Create(ctx, "bob", ""), ErrInvalidInput)

	require.NoError(t, store.Create(ctx, "bob", "pw"))
	a, _ := store.Get(ctx, "alice")
	b, _ := store.Get(ctx, "bob")
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Password, b.Password)
}

func TestStore_UpdateWithoutPassword(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, "alice", "secret"))
	before, err := store.Get(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, "alice", "alicia", ""))

	_, err = store.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrAdminNotFound)
	after, err := store.Get(ctx, "alicia")
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
	assert.Equal(t, before.Salt, after.Salt)

	ok, err := store.Validate(ctx, "alicia", "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_UpdatePassword(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, "alice", "old"))
	before, _ := store.Get(ctx, "alice")

	require.NoError(t, store.Update(ctx, "alice", "alice", "new"))

	after, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, before.Salt, after.Salt)
	assert.NotEqual(t, before.Password, after.Password)

	ok, _ := store.Validate(ctx, "alice", "old")
	assert.False(t, ok)
	ok, _ = store.Validate(ctx, "alice", "new")
	assert.True(t, ok)
}

func TestStore_UpdateErrors(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, "alice", "pw"))
	require.NoError(t, store.Create(ctx, "bob", "pw"))

	assert.ErrorIs(t, store.Update(ctx, "ghost", "ghost2", ""), ErrAdminNotFound)
	assert.ErrorIs(t, store.Update(ctx, "alice", "bob", ""), ErrUsernameTaken)
	assert.ErrorIs(t, store.Update(ctx, "alice", "", "pw"), ErrInvalidInput)
}

func TestStore_DeleteAndList(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, u := range []string{"carol", "alice", "bob"} {
		require.NoError(t, store.Create(ctx, u, "pw"))
	}
	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)

	require.NoError(t, store.Delete(ctx, "bob"))
	assert.ErrorIs(t, store.Delete(ctx, "bob"), ErrAdminNotFound)

	names, _ = store.List(ctx)
	assert.Equal(t, []string{"alice", "carol"}, names)
}

var _ auth.Verifier = (*Store)(nil)

func TestStore_Exists(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, "alice", "pw"))

	ok, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Update(ctx, "alice", "alicia", ""))
	ok, err = store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "alicia"))
	ok, err = store.Exists(ctx, "alicia")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Bootstrap(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	created, err := store.Bootstrap(ctx, Config{})
	require.NoError(t, err)
	assert.False(t, created)

	cfg := Config{BootstrapUser: "root", BootstrapPassword: "toor"}
	created, err = store.Bootstrap(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.Bootstrap(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMigrate(t *testing.T) {
	_, db := setupStore(t)
	// A second run is a no-op.
	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Admin{}))
}

func TestStore_DatabaseErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)
	ctx := context.Background()
	boom := errors.New("connection reset")

	mock.ExpectQuery("SELECT `username` FROM `admins`").WillReturnError(boom)
	_, err := store.List(ctx)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery("SELECT \\* FROM `admins` WHERE username = \\?").WillReturnError(boom)
	ok, err := store.Validate(ctx, "alice", "pw")
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `admins`").WillReturnError(boom)
	err = store.Create(ctx, "alice", "pw")
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetMapsMissingRow(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `admins` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password", "salt"}))

	_, err := store.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAdminNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
