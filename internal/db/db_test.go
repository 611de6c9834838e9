package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestMigrateAndReset(t *testing.T) {
	gdb, err := Open("sqlite", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)

	require.NoError(t, Migrate(gdb))
	for _, m := range []interface{}{&model.User{}, &model.Project{}, &model.Task{}} {
		assert.True(t, gdb.Migrator().HasTable(m))
	}

	require.NoError(t, Reset(gdb))
	for _, m := range []interface{}{&model.User{}, &model.Project{}, &model.Task{}} {
		assert.False(t, gdb.Migrator().HasTable(m))
	}
}
