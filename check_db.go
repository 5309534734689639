package main

import (
	"fmt"
	"log"

	"blog-backend/internal/app/ds"
	"blog-backend/internal/app/dsn"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var users []ds.User
	if err := db.Find(&users).Error; err != nil {
		log.Fatal("Failed to get users:", err)
	}

	fmt.Println("Users in database:")
	for _, user := range users {
		fmt.Printf("ID: %d, Email: %s, IsAdmin: %v\n", user.ID, user.Email, user.IsAdmin)
	}

	var posts []ds.Post
	if err := db.Find(&posts).Error; err != nil {
		log.Fatal("Failed to get posts:", err)
	}

	fmt.Println("Posts in database:")
	for _, post := range posts {
		owner := "NULL"
		if post.UserID != nil {
			owner = fmt.Sprint(*post.UserID)
		}
		fmt.Printf("ID: %d, Title: %s, UserID: %s\n", post.ID, post.Title, owner)
	}
}
