package repository

import (
	"blog-backend/internal/app/ds"
	"blog-backend/internal/app/dto"
)

// Методы для постов (ORM)

func (r *Repository) GetAllPosts() ([]ds.Post, error) {
	var posts []ds.Post
	err := r.db.Order("id").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *Repository) GetPostByID(id uint) (*ds.Post, error) {
	var post ds.Post
	err := r.db.First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *Repository) GetPostsByUserID(userID uint) ([]ds.Post, error) {
	var posts []ds.Post
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *Repository) CreatePost(title, content string, userID uint) (*ds.Post, error) {
	post := ds.Post{
		Title:   title,
		Content: content,
		UserID:  &userID,
	}

	err := r.db.Create(&post).Error
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// EditPost применяет команду частичного обновления одним UPDATE.
// Возвращает gorm.ErrRecordNotFound если поста нет.
func (r *Repository) EditPost(cmd dto.EditPostCommand) error {
	var post ds.Post
	if err := r.db.First(&post, cmd.PostID).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if cmd.NewTitle != "" {
		updates["title"] = cmd.NewTitle
	}
	if cmd.NewContent != "" {
		updates["content"] = cmd.NewContent
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.Model(&ds.Post{}).Where("id = ?", cmd.PostID).Updates(updates).Error
}

func (r *Repository) DeletePost(id uint) error {
	var post ds.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&post).Error
}
