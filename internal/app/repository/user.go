package repository

import (
	"blog-backend/internal/app/ds"
	"blog-backend/internal/app/dto"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserExistsByEmail проверяет занят ли email
func (r *Repository) UserExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindUserByCredentials ищет пользователя по точному совпадению email и пароля
func (r *Repository) FindUserByCredentials(email, password string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("email = ? AND password = ?", email, password).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(email, password string) (*ds.User, error) {
	user := ds.User{
		Email:    email,
		Password: password,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetAllUsers() ([]ds.User, error) {
	var users []ds.User
	err := r.db.Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser применяет команду частичного обновления одним UPDATE.
// Возвращает gorm.ErrRecordNotFound если пользователя нет.
func (r *Repository) UpdateUser(cmd dto.UpdateUserCommand) error {
	var user ds.User
	if err := r.db.First(&user, cmd.UserID).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if cmd.NewEmail != "" {
		updates["email"] = cmd.NewEmail
	}
	if cmd.NewPassword != "" {
		updates["password"] = cmd.NewPassword
	}
	if cmd.MakeAdmin {
		updates["is_admin"] = true
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.Model(&ds.User{}).Where("id = ?", cmd.UserID).Updates(updates).Error
}

// DeleteUser удаляет пользователя; посты пользователя не трогаем
func (r *Repository) DeleteUser(id uint) error {
	var user ds.User
	if err := r.db.First(&user, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&user).Error
}
