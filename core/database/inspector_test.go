package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_admins (username TEXT, password TEXT, salt BLOB)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_admins")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["username"])
	assert.Equal(t, "blob", colMap["salt"])

	// Missing tables report no columns rather than an error.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE partial (username TEXT)").Error)

	missing, err := MissingColumns(db, "partial", "username", "password", "salt")
	assert.NoError(t, err)
	assert.Equal(t, []string{"password", "salt"}, missing)
}
