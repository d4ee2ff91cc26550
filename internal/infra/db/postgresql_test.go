package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finex/backend/config"
	"github.com/finex/backend/internal/integration/persistence/model"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), GormConfig())
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return conn
}

func TestMigrate_CreatesTables(t *testing.T) {
	database := NewDatabase(openSQLite(t), &config.DatabaseConfig{AutoMigrate: true})
	defer database.Close()

	require.NoError(t, database.Migrate())

	migrator := database.DB().Migrator()
	for _, table := range []string{"operadores", "categorias", "produtos", "movimentos"} {
		assert.True(t, migrator.HasTable(table), table)
	}
	assert.True(t, migrator.HasIndex(&model.ProductModel{}, "idx_produtos_operador_codigo"))
	assert.True(t, database.HealthCheck())
}

func TestMigrate_Disabled(t *testing.T) {
	database := NewDatabase(openSQLite(t), &config.DatabaseConfig{AutoMigrate: false})
	defer database.Close()

	require.NoError(t, database.Migrate())
	assert.False(t, database.DB().Migrator().HasTable("produtos"))
}
