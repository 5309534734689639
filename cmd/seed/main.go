package main

import (
	"fmt"
	"log"

	"blog-backend/internal/app/ds"
	"blog-backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	if err := db.AutoMigrate(&ds.User{}, &ds.Post{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Администратор по умолчанию
	admin := ds.User{
		Email:    "admin@example.com",
		Password: "admin",
		IsAdmin:  true,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Пара демонстрационных постов от имени администратора
	var count int64
	db.Model(&ds.Post{}).Count(&count)
	if count == 0 {
		posts := []ds.Post{
			{Title: "Добро пожаловать", Content: "Первый пост на сайте.", UserID: &admin.ID},
			{Title: "Правила", Content: "Публикуйте посты из личной комнаты.", UserID: &admin.ID},
		}
		if err := db.Create(&posts).Error; err != nil {
			log.Fatalf("failed to seed posts: %v", err)
		}
	}

	fmt.Println("Seed completed: admin =", admin.Email)
}
