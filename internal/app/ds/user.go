package ds

// 1. Таблица пользователей
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"type:varchar(150);unique;not null"`
	Password string `gorm:"type:varchar(150);not null"` // хранится как введён, без хеширования
	IsAdmin  bool   `gorm:"type:boolean;default:false;not null"`
}
