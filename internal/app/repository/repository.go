package repository

import (
	"fmt"

	"blog-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return NewWithDB(db)
}

// NewWithDB оборачивает уже открытое соединение (используется в тестах)
func NewWithDB(db *gorm.DB) (*Repository, error) {
	// Автоматическая миграция всех таблиц
	err := db.AutoMigrate(
		&ds.User{},
		&ds.Post{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
