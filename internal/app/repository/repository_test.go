package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepository поднимает репозиторий на in-memory SQLite
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	// Уникальное имя на тест, иначе пул соединений размножит базы
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	repo, err := NewWithDB(db)
	require.NoError(t, err)
	return repo
}
